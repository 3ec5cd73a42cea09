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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopherborg/logger"
	"github.com/jetsetilly/gopherborg/test"
)

func TestCentralLog(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\n"), true)

	// clear the test writer and try the Tail() function
	tw.Clear()
	logger.Logf(logger.Allow, "test", "this is a %s", "second test")
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.Compare("test: this is a second test\n"), true)
}

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log(logger.Allow, "test", "same entry")
	logger.Log(logger.Allow, "test", "same entry")
	logger.Log(logger.Allow, "test", "same entry")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: same entry (repeat x3)\n"), true)

	// a different entry ends the run
	tw.Clear()
	logger.Log(logger.Allow, "test", "new entry")
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.Compare("test: new entry\n"), true)
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log(logger.Allow, "test", "old entry")
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.Compare("test: old entry\n"), true)

	// entries already seen by WriteRecent() are not written again
	tw.Clear()
	logger.Log(logger.Allow, "test", "recent entry")
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.Compare("test: recent entry\n"), true)
}
