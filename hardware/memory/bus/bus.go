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

// Package bus defines the access interfaces between the host model and the
// peripheral. The PeriphBus is the normal word-level register bus. The
// DebugBus allows inspection and alteration of register state without any of
// the gating the PeriphBus applies; it is intended for the monitor and for
// tests.
package bus

// PeriphBus is the word-level register bus presented to the host.
type PeriphBus interface {
	// ReadWord returns the 32-bit value at the register address
	ReadWord(address uint16) (uint32, error)

	// WriteWord stores a 32-bit value at the register address. Only writable
	// registers are accepted
	WriteWord(address uint16, data uint32) error
}

// ClockBus is implemented by components that advance on the system clock.
type ClockBus interface {
	// Step advances the component by one clock cycle
	Step()
}

// DebugBus defines the meaning of the Peek and Poke functions. Implementations
// must not have any clocking or pipeline side effects.
type DebugBus interface {
	Peek(address uint16) (uint32, error)
	Poke(address uint16, data uint32) error
}
