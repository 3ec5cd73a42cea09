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

package verify_test

import (
	"testing"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/test"
	"github.com/jetsetilly/gopherborg/verify"
)

func TestCannedScripts(t *testing.T) {
	tw := &test.Writer{}

	err := verify.RunAll(tw)
	test.ExpectSuccess(t, err)

	// one "ok" line per script
	test.ExpectEquality(t, tw.Contains("float/epsilon: ok"), true)
	test.ExpectEquality(t, tw.Contains("float/exact-bits: ok"), true)
	test.ExpectEquality(t, tw.Contains("integer: ok"), true)
}

func TestScriptOutput(t *testing.T) {
	tw := &test.Writer{}

	err := verify.RunScript(tw, verify.EpsilonScript())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.Contains("1.25 + 2.5 = 3.75"), true)
}

// a script that reads the result before the settle latency has elapsed must
// fail. the read transaction absorbs one cycle so a latency of three with no
// explicit wait leaves the result register stale.
func TestInsufficientWait(t *testing.T) {
	tw := &test.Writer{}

	script := verify.Script{
		Name:   "stale-read",
		Mode:   borg.Float,
		Settle: 3,
		Checks: []verify.Check{
			verify.FloatCheck(1.25, 2.5, verify.ExactBits, 0),
		},
	}

	err := verify.RunScript(tw, script)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, verify.FailedCheck), true)

	// the same script passes once the wait covers the settle latency
	script.Checks[0].Wait = 2
	err = verify.RunScript(tw, script)
	test.ExpectSuccess(t, err)
}

func TestIntegerComparison(t *testing.T) {
	tw := &test.Writer{}

	script := verify.IntegerScript()
	err := verify.RunScript(tw, script)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.Contains("0x42 + 0x1 = 0x43"), true)
}
