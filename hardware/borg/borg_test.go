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

package borg_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherborg/hardware/memory/bus"
	"github.com/jetsetilly/gopherborg/test"
)

// writePair writes both operands and returns the value of the RESULT
// register. settle latency is assumed to be zero.
func writePair(t *testing.T, brg *borg.Borg, a uint32, b uint32) uint32 {
	t.Helper()

	err := brg.WriteWord(addresses.RegA, a)
	test.DemandSuccess(t, err)
	err = brg.WriteWord(addresses.RegB, b)
	test.DemandSuccess(t, err)

	v, err := brg.ReadWord(addresses.RegResult)
	test.DemandSuccess(t, err)
	return v
}

func TestFloatAddition(t *testing.T) {
	brg := borg.NewBorg(borg.Float, 0)

	pairs := [][2]float32{
		{1.25, 2.5},
		{10.0, 20.0},
		{0.1, 0.2},
		{-5.5, 2.25},
		{100.0, 0.0},
		{1.23e-2, 4.56e-2},
	}

	for _, p := range pairs {
		v := writePair(t, brg, math.Float32bits(p[0]), math.Float32bits(p[1]))
		test.ExpectApproximate(t, math.Float32frombits(v), p[0]+p[1], 1e-6, p[0], p[1])
	}
}

func TestFloatExactBits(t *testing.T) {
	brg := borg.NewBorg(borg.Float, 0)

	// the sum of these two operands is exactly representable in binary32 so
	// the result bit pattern must match the reference computation exactly
	v := writePair(t, brg, math.Float32bits(123.5), math.Float32bits(456.75))
	test.ExpectEquality(t, v, math.Float32bits(580.25))

	// the small operand is lost to float32 precision
	v = writePair(t, brg, math.Float32bits(1.0), math.Float32bits(1.0e-10))
	test.ExpectEquality(t, v, math.Float32bits(1.0))
}

func TestIntegerAddition(t *testing.T) {
	brg := borg.NewBorg(borg.Integer, 0)

	v := writePair(t, brg, 0x42, 0x01)
	test.ExpectEquality(t, v, uint32(0x43))

	// unsigned wraparound
	v = writePair(t, brg, 0xffffffff, 0x01)
	test.ExpectEquality(t, v, uint32(0))
}

func TestOperandIndependence(t *testing.T) {
	brg := borg.NewBorg(borg.Float, 0)

	a := math.Float32bits(1.25)
	b := math.Float32bits(2.5)
	_ = writePair(t, brg, a, b)

	// writing B must not have altered A, and vice versa
	v, err := brg.ReadWord(addresses.RegA)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, a)

	v, err = brg.ReadWord(addresses.RegB)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, b)

	// repeated reads return the same bits
	w, err := brg.ReadWord(addresses.RegA)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, a)
}

func TestSequentialIndependence(t *testing.T) {
	brg := borg.NewBorg(borg.Float, 0)

	v := writePair(t, brg, math.Float32bits(1.25), math.Float32bits(2.5))
	test.ExpectEquality(t, v, math.Float32bits(3.75))

	// a new operand pair fully replaces the previous result
	v = writePair(t, brg, math.Float32bits(10.0), math.Float32bits(20.0))
	test.ExpectEquality(t, v, math.Float32bits(30.0))
}

func TestSettleLatency(t *testing.T) {
	brg := borg.NewBorg(borg.Integer, 1)

	err := brg.WriteWord(addresses.RegA, 2)
	test.DemandSuccess(t, err)
	err = brg.WriteWord(addresses.RegB, 3)
	test.DemandSuccess(t, err)

	// result not visible until the peripheral has been stepped
	v, err := brg.ReadWord(addresses.RegResult)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))

	brg.Step()
	v, err = brg.ReadWord(addresses.RegResult)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(5))

	// additional steps do not change the settled result
	brg.Step()
	v, _ = brg.ReadWord(addresses.RegResult)
	test.ExpectEquality(t, v, uint32(5))
}

func TestReset(t *testing.T) {
	brg := borg.NewBorg(borg.Integer, 0)

	_ = writePair(t, brg, 0x42, 0x01)
	brg.Reset()

	for _, address := range []uint16{addresses.RegA, addresses.RegB, addresses.RegResult} {
		v, err := brg.ReadWord(address)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint32(0), addresses.ReadSymbols[address])
	}
}

func TestBusErrors(t *testing.T) {
	brg := borg.NewBorg(borg.Float, 0)

	// RESULT is read-only
	err := brg.WriteWord(addresses.RegResult, 0)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, borg.UnwritableAddress), true)

	// addresses outside of the register map
	_, err = brg.ReadWord(0x0c)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, borg.UnreadableAddress), true)
}

// the peripheral is only ever accessed over the bus interfaces by the rest of
// the system. drive it entirely through them.
func TestBusInterfaces(t *testing.T) {
	brg := borg.NewBorg(borg.Integer, 1)

	var regs bus.PeriphBus = brg
	var clock bus.ClockBus = brg
	var dbg bus.DebugBus = brg

	test.DemandSuccess(t, regs.WriteWord(addresses.RegA, 2))
	test.DemandSuccess(t, regs.WriteWord(addresses.RegB, 3))
	clock.Step()

	v, err := regs.ReadWord(addresses.RegResult)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(5))

	// the debug bus bypasses the settle latency
	test.DemandSuccess(t, dbg.Poke(addresses.RegA, 10))
	v, err = dbg.Peek(addresses.RegResult)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(13))
}

func TestPoke(t *testing.T) {
	// poking bypasses the settle latency
	brg := borg.NewBorg(borg.Integer, 1)

	err := brg.Poke(addresses.RegA, 7)
	test.DemandSuccess(t, err)
	err = brg.Poke(addresses.RegB, 8)
	test.DemandSuccess(t, err)

	v, err := brg.Peek(addresses.RegResult)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(15))
}
