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

package database

import (
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherborg/curated"
)

// Activity describes the type of activity that will be occurring during the
// database session.
type Activity int

// List of valid Activity values.
const (
	// ActivityReading promises the session will not alter the database
	ActivityReading Activity = iota

	// ActivityModifying requires the database file to exist already
	ActivityModifying

	// ActivityCreating creates the database file if it does not exist. if it
	// does exist it is treated the same as ActivityModifying
	ActivityCreating
)

// Session is an active connection to a database file.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession reads the database file at path and deserialises its entries.
// The init function is called before any reading takes place; it is where
// entry types should be registered.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf("database: %v", err)
	}

	for _, line := range strings.Split(string(data), entrySep) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return nil, curated.Errorf("database: malformed entry (%s)", line)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return nil, curated.Errorf("database: invalid key (%s)", fields[leaderFieldKey])
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return nil, curated.Errorf("database: unrecognised entry type (%s)", fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
		ent.SetKey(key)

		db.entries[key] = ent
	}

	return db, nil
}

// EndSession closes the database. If commit is true and the session activity
// allows it, the database file is rewritten from the current entries.
func (db *Session) EndSession(commit bool) error {
	if !commit {
		return nil
	}

	if db.activity == ActivityReading {
		return curated.Errorf("database: cannot commit a read-only session")
	}

	s := strings.Builder{}
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		s.WriteString(recordHeader(key, ent.ID()))
		for _, f := range ser {
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString(entrySep)
	}

	if err := os.WriteFile(db.path, []byte(s.String()), 0644); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}
