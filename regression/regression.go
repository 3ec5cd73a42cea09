// This file is part of GopherBorg.
//
// GopherBorg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherBorg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherBorg.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/database"
	"github.com/jetsetilly/gopherborg/monitor/easyterm/ansi"
)

// the location of the regression database. a var rather than a const so that
// tests can point it at a temporary directory.
var regressionDBFile = filepath.Join(".gopherborg", "regressionDB")

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. message is the
	// string to print while the regression is running
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(vectorEntryID, deserialiseVectorEntry)
}

func startSession(activity database.Activity) (*database.Session, error) {
	if activity == database.ActivityCreating {
		if err := os.MkdirAll(filepath.Dir(regressionDBFile), 0755); err != nil {
			return nil, curated.Errorf("regression: %v", err)
		}
	}
	return database.StartSession(regressionDBFile, activity, initDBSession)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	db, err := startSession(database.ActivityReading)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the regression database. The
// confirmation reader is used to ask the user before anything is lost.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	db, err := startSession(database.ActivityModifying)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from the regression database\n", key)))
	}

	return nil
}

// RegressAdd adds a new regression entry to the database. The entry is run
// once before it is added; an entry that does not pass is not stored.
func RegressAdd(output io.Writer, reg Regressor) error {
	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if !ok || err != nil {
		output.Write([]byte("\n"))
		return curated.Errorf("regression: %v", err)
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressRun runs the tests in the regression database. An empty filterKeys
// list means every entry is tested.
func RegressRun(output io.Writer, filterKeys []string) error {
	db, err := startSession(database.ActivityReading)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", k)
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	numSucceed := 0
	numFail := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail\n", numSucceed, numFail)))
	}()

	_, err = db.SelectKeys(func(ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: not a regression entry (%s)", ent.ID())
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		output.Write([]byte(ansi.ClearLine))
		if !ok || err != nil {
			numFail++
			output.Write([]byte(fmt.Sprintf("\r%sfailure%s: %s\n", ansi.Pens["red"], ansi.NormalPen, reg)))
			if err != nil {
				output.Write([]byte(fmt.Sprintf("  %v\n", err)))
			}
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\r%ssucceed%s: %s\n", ansi.Pens["green"], ansi.NormalPen, reg)))
		}

		return nil
	}, keys...)

	return err
}
