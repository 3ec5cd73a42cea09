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

package tqv_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherborg/hardware/tqv"
	"github.com/jetsetilly/gopherborg/test"
)

func TestTransactionCycles(t *testing.T) {
	host := tqv.NewTQV(borg.Integer, 0)
	host.Reset()
	test.DemandEquality(t, host.Cycles(), uint64(0))

	err := host.WriteWordReg(addresses.RegA, 1)
	test.ExpectSuccess(t, err)
	err = host.WriteWordReg(addresses.RegB, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, host.Cycles(), uint64(2))

	host.ClockCycles(3)
	test.ExpectEquality(t, host.Cycles(), uint64(5))

	_, err = host.ReadWordReg(addresses.RegResult)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, host.Cycles(), uint64(6))
}

// a peripheral with a settle latency of one cycle works with or without an
// explicit wait. the read transaction supplies the missing cycle.
func TestSettleAbsorbedByRead(t *testing.T) {
	for _, wait := range []int{0, 1} {
		host := tqv.NewTQV(borg.Float, 1)
		host.Reset()

		err := host.WriteWordReg(addresses.RegA, math.Float32bits(1.25))
		test.DemandSuccess(t, err)
		err = host.WriteWordReg(addresses.RegB, math.Float32bits(2.5))
		test.DemandSuccess(t, err)

		host.ClockCycles(wait)

		v, err := host.ReadWordReg(addresses.RegResult)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, math.Float32bits(3.75), "wait", wait)
	}
}

func TestResetClearsState(t *testing.T) {
	host := tqv.NewTQV(borg.Integer, 0)
	host.Reset()

	err := host.WriteWordReg(addresses.RegA, 0x42)
	test.DemandSuccess(t, err)
	err = host.WriteWordReg(addresses.RegB, 0x01)
	test.DemandSuccess(t, err)

	host.Reset()
	test.ExpectEquality(t, host.Cycles(), uint64(0))

	v, err := host.ReadWordReg(addresses.RegResult)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
}
