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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/test"
	"github.com/jetsetilly/gopherborg/verify"
)

func TestVectorSerialisation(t *testing.T) {
	reg, err := NewVectorRegression("float", 1, "123.5", "456.75", "exact-bits", 1)
	test.DemandSuccess(t, err)

	ser, err := reg.Serialise()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ser), numVectorFields)

	ent, err := deserialiseVectorEntry(ser)
	test.DemandSuccess(t, err)

	des, ok := ent.(*VectorRegression)
	test.DemandEquality(t, ok, true)

	test.ExpectEquality(t, des.Mode, reg.Mode)
	test.ExpectEquality(t, des.Settle, reg.Settle)
	test.ExpectEquality(t, des.A, reg.A)
	test.ExpectEquality(t, des.B, reg.B)
	test.ExpectEquality(t, des.Strategy, reg.Strategy)
	test.ExpectEquality(t, des.Wait, reg.Wait)
}

func TestVectorRegress(t *testing.T) {
	reg, err := NewVectorRegression("integer", 0, "0x42", "0x01", "epsilon", 0)
	test.DemandSuccess(t, err)

	tw := &test.Writer{}
	ok, err := reg.regress(true, tw, "running")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, true)

	// a vector that reads the result before the settle latency has elapsed
	reg.Mode = borg.Float
	reg.A = 0x3fa00000 // 1.25
	reg.B = 0x40200000 // 2.5
	reg.Strategy = verify.ExactBits
	reg.Settle = 3
	reg.Wait = 0

	ok, err = reg.regress(true, tw, "running")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ok, false)
}

func TestRegressDatabase(t *testing.T) {
	regressionDBFile = filepath.Join(t.TempDir(), "regressionDB")

	reg, err := NewVectorRegression("float", 0, "1.25", "2.5", "epsilon", 0)
	test.DemandSuccess(t, err)

	tw := &test.Writer{}
	test.DemandSuccess(t, RegressAdd(tw, reg))
	test.ExpectEquality(t, tw.Contains("added:"), true)

	tw.Clear()
	test.ExpectSuccess(t, RegressList(tw))
	test.ExpectEquality(t, tw.Contains("[vector] float/epsilon 1.25 + 2.5"), true)

	tw.Clear()
	test.ExpectSuccess(t, RegressRun(tw, nil))
	test.ExpectEquality(t, tw.Contains("succeed"), true)
	test.ExpectEquality(t, tw.Contains("1 succeed, 0 fail"), true)
}
