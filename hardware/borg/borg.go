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

package borg

import (
	"fmt"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherborg/hardware/memory/bus"
	"github.com/jetsetilly/gopherborg/logger"
)

// error patterns for register access through the peripheral bus.
const (
	UnreadableAddress = "borg: unreadable address (%#04x)"
	UnwritableAddress = "borg: unwritable address (%#04x)"
)

// the peripheral is accessed over these buses.
var _ bus.PeriphBus = (*Borg)(nil)
var _ bus.ClockBus = (*Borg)(nil)
var _ bus.DebugBus = (*Borg)(nil)

// Borg is the register-mapped adder peripheral. Two writable operand
// registers and one read-only result register, as defined in the addresses
// package.
//
// The peripheral is clocked. A write to an operand register loads the adder
// and, if the instance has a non-zero settle latency, the RESULT register
// does not reflect the new sum until Step() has been called that many times.
// With a settle latency of zero the adder is effectively combinational.
type Borg struct {
	mode   ArithMode
	settle int

	// operand registers. raw bits, interpretation depends on mode
	a uint32
	b uint32

	// the RESULT register as visible on the bus
	result uint32

	// the sum waiting in the adder pipeline and the number of cycles before
	// it is latched into the result register. pending is zero when the
	// pipeline is empty
	sum     uint32
	pending int
}

// NewBorg is the preferred method of initialisation for the Borg type. The
// settle argument is the number of clock cycles between the last operand
// write and the new sum appearing in the RESULT register.
func NewBorg(mode ArithMode, settle int) *Borg {
	if settle < 0 {
		settle = 0
	}

	brg := &Borg{
		mode:   mode,
		settle: settle,
	}
	brg.Reset()

	logger.Logf(logger.Allow, "borg", "%s adder, settle latency of %d", mode, settle)

	return brg
}

func (brg *Borg) String() string {
	return fmt.Sprintf("A=%#08x B=%#08x RESULT=%#08x (%s)", brg.a, brg.b, brg.result, brg.mode)
}

// Mode returns the arithmetic mode the peripheral was built with.
func (brg *Borg) Mode() ArithMode {
	return brg.mode
}

// SettleLatency returns the number of cycles between an operand write and the
// result being visible.
func (brg *Borg) SettleLatency() int {
	return brg.settle
}

// Reset the register file to a known state. Must complete before any register
// access; in this model completion is immediate.
func (brg *Borg) Reset() {
	brg.a = 0
	brg.b = 0
	brg.result = 0
	brg.sum = 0
	brg.pending = 0
}

// Step implements the bus.ClockBus interface. One call advances the
// peripheral by one clock cycle, draining the adder pipeline if a sum is
// pending.
func (brg *Borg) Step() {
	if brg.pending > 0 {
		brg.pending--
		if brg.pending == 0 {
			brg.result = brg.sum
		}
	}
}

// ReadWord implements the bus.PeriphBus interface. Operand registers read
// back the last written value unchanged; the RESULT register reads the sum of
// the two most recently written operands, subject to the settle latency.
func (brg *Borg) ReadWord(address uint16) (uint32, error) {
	switch address {
	case addresses.RegA:
		return brg.a, nil
	case addresses.RegB:
		return brg.b, nil
	case addresses.RegResult:
		return brg.result, nil
	}
	return 0, curated.Errorf(UnreadableAddress, address)
}

// WriteWord implements the bus.PeriphBus interface. Writing one operand never
// alters the other. Writing the RESULT register is rejected.
func (brg *Borg) WriteWord(address uint16, data uint32) error {
	switch address {
	case addresses.RegA:
		brg.a = data
	case addresses.RegB:
		brg.b = data
	default:
		return curated.Errorf(UnwritableAddress, address)
	}

	brg.sum = brg.add()
	if brg.settle == 0 {
		brg.result = brg.sum
		brg.pending = 0
	} else {
		brg.pending = brg.settle
	}

	return nil
}

// Peek implements the bus.DebugBus interface. All three registers are
// peekable and peeking has no clocking side effects.
func (brg *Borg) Peek(address uint16) (uint32, error) {
	if _, ok := addresses.ReadSymbols[address]; !ok {
		return 0, curated.Errorf(UnreadableAddress, address)
	}
	return brg.ReadWord(address)
}

// Poke implements the bus.DebugBus interface. Poking an operand register
// updates the result immediately, regardless of settle latency.
func (brg *Borg) Poke(address uint16, data uint32) error {
	switch address {
	case addresses.RegA:
		brg.a = data
	case addresses.RegB:
		brg.b = data
	default:
		return curated.Errorf(UnwritableAddress, address)
	}

	brg.sum = brg.add()
	brg.result = brg.sum
	brg.pending = 0

	return nil
}
