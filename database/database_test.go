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

package database_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherborg/database"
	"github.com/jetsetilly/gopherborg/test"
)

// minimal entry type for testing the database mechanism.
type testEntry struct {
	key   int
	value string
}

func deserialiseTestEntry(fields []string) (database.Entry, error) {
	return &testEntry{value: fields[0]}, nil
}

func (ent testEntry) ID() string      { return "test" }
func (ent testEntry) String() string  { return ent.value }
func (ent testEntry) CleanUp() error  { return nil }
func (ent testEntry) GetKey() int     { return ent.key }
func (ent *testEntry) SetKey(key int) { ent.key = key }

func (ent testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.value}, nil
}

func initSession(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testDB")

	// create and populate
	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, db.Add(&testEntry{value: "first"}))
	test.ExpectSuccess(t, db.Add(&testEntry{value: "second"}))
	test.ExpectEquality(t, db.NumEntries(), 2)

	test.DemandSuccess(t, db.EndSession(true))

	// reload and check
	db, err = database.StartSession(path, database.ActivityReading, initSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	ent, err := db.Get(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "second")

	tw := &test.Writer{}
	test.ExpectSuccess(t, db.List(tw))
	test.ExpectEquality(t, tw.Contains("000 first"), true)
	test.ExpectEquality(t, tw.Contains("Total: 2"), true)

	// read-only sessions cannot commit
	test.ExpectFailure(t, db.EndSession(true))
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, db.Add(&testEntry{value: "doomed"}))
	test.ExpectSuccess(t, db.Delete(0))
	test.ExpectEquality(t, db.NumEntries(), 0)

	// deleting a key that does not exist is an error
	test.ExpectFailure(t, db.Delete(0))
}

func TestSelectKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(path, database.ActivityCreating, initSession)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, db.Add(&testEntry{value: "a"}))
	test.ExpectSuccess(t, db.Add(&testEntry{value: "b"}))
	test.ExpectSuccess(t, db.Add(&testEntry{value: "c"}))

	count := 0
	_, err = db.SelectAll(func(_ database.Entry) error {
		count++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 3)

	ent, err := db.SelectKeys(nil, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "b")
}
