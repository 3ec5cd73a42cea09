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

package tqv

import (
	"fmt"

	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/hardware/memory/bus"
	"github.com/jetsetilly/gopherborg/logger"
)

// TQV is the host side of the peripheral bus. It owns the peripheral and the
// clock: every bus transaction costs one clock cycle, which is passed on to
// the peripheral with Step().
//
// The cycle cost is why a peripheral with a settle latency of one works
// whether or not the caller waits explicitly between writing the second
// operand and reading the result - the read transaction itself provides the
// settle cycle.
type TQV struct {
	Periph *borg.Borg

	// register access and clocking is through the bus interfaces
	regs  bus.PeriphBus
	clock bus.ClockBus

	// number of clock cycles since the last Reset()
	cycles uint64
}

// NewTQV is the preferred method of initialisation for the TQV type.
func NewTQV(mode borg.ArithMode, settle int) *TQV {
	periph := borg.NewBorg(mode, settle)
	return &TQV{
		Periph: periph,
		regs:   periph,
		clock:  periph,
	}
}

func (host *TQV) String() string {
	return fmt.Sprintf("cycle %d: %s", host.cycles, host.Periph.String())
}

// Cycles returns the number of clock cycles since the last Reset().
func (host *TQV) Cycles() uint64 {
	return host.cycles
}

// Reset the peripheral and the cycle counter. Completes before returning;
// register access is valid immediately afterwards.
func (host *TQV) Reset() {
	host.Periph.Reset()
	host.cycles = 0
	logger.Log(logger.Allow, "tqv", "peripheral reset")
}

// ClockCycles pulses the clock n times without a bus transaction.
func (host *TQV) ClockCycles(n int) {
	for i := 0; i < n; i++ {
		host.clock.Step()
		host.cycles++
	}
}

// WriteWordReg performs a write transaction on the peripheral bus. The
// transaction costs one clock cycle.
func (host *TQV) WriteWordReg(address uint16, data uint32) error {
	if err := host.regs.WriteWord(address, data); err != nil {
		return err
	}
	host.ClockCycles(1)
	return nil
}

// ReadWordReg performs a read transaction on the peripheral bus. The
// transaction costs one clock cycle, which elapses before the data is
// sampled.
func (host *TQV) ReadWordReg(address uint16) (uint32, error) {
	host.ClockCycles(1)
	return host.regs.ReadWord(address)
}
