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

package performance_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/hardware/tqv"
	"github.com/jetsetilly/gopherborg/performance"
	"github.com/jetsetilly/gopherborg/test"
)

func TestCheck(t *testing.T) {
	host := tqv.NewTQV(borg.Float, 1)

	tw := &test.Writer{}
	err := performance.Check(tw, performance.ProfileNone, host, "10ms")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.Contains("transactions/sec"), true)

	// the reported rate is over the measured time, which is always a little
	// longer than the requested duration
	var rate, seconds float64
	var numTransactions int
	_, err = fmt.Sscanf(tw.String(), "%f transactions/sec (%d transactions in %f seconds)",
		&rate, &numTransactions, &seconds)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, seconds >= 0.01, true)
	test.ExpectEquality(t, rate < float64(numTransactions)/0.01, true)
}

func TestCheckBadDuration(t *testing.T) {
	host := tqv.NewTQV(borg.Float, 0)

	tw := &test.Writer{}
	err := performance.Check(tw, performance.ProfileNone, host, "never")
	test.ExpectFailure(t, err)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	_, err = performance.ParseProfile("all")
	test.ExpectFailure(t, err)
}
