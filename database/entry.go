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
	"github.com/jetsetilly/gopherborg/curated"
)

// Deserialiser is the initialisation function called when an entry of a
// registered type is read from the database file.
type Deserialiser func(fields []string) (Entry, error)

// SerialisedEntry is the Entry data represented as an array of strings.
type SerialisedEntry []string

// Entry represents the generic entry in the database.
type Entry interface {
	// ID identifies the entry type in the database file
	ID() string

	// String returns information about the entry in a human readable format.
	// the machine readable representation is returned by Serialise()
	String() string

	// Serialise returns the Entry data as an instance of SerialisedEntry
	Serialise() (SerialisedEntry, error)

	// CleanUp is called when the entry is deleted from the database
	CleanUp() error

	// the database key assigned to this entry
	GetKey() int
	SetKey(key int)
}

// RegisterEntryType tells the database what entries to expect in the database
// file and how to deserialise them.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf("database: entry type already registered (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}
