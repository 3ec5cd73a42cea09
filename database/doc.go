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

// Package database is a very simple way of storing structured entries of
// arbitrary types in a flat file. It is as simple as simple can be but it is
// enough to organise the regression vectors.
//
// Use of a database requires starting a "session" with the StartSession()
// function, coupled with an EndSession() once done (error handling removed
// for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initSession)
//	defer db.EndSession(true)
//
// The activity argument describes what will be happening during the session:
// reading, modifying or creating. The init function is where entry types are
// registered:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("vector", deserialiseVector)
//	}
//
// A Deserialiser takes the serialised fields of an entry (not including the
// key and ID leader fields) and returns a value satisfying the Entry
// interface. Entries are deserialised as part of StartSession() and any
// deserialisation error causes the session to fail.
package database
