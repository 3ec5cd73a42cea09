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

// Package addresses defines the register map of the Borg peripheral. All
// registers are 32-bit words addressed by byte offset, little-endian on the
// host bus.
package addresses

// Byte offsets of the Borg registers.
const (
	RegA      uint16 = 0x00
	RegB      uint16 = 0x04
	RegResult uint16 = 0x08
)

// ReadSymbols is the canonical name of every readable register.
var ReadSymbols = map[uint16]string{
	RegA:      "A",
	RegB:      "B",
	RegResult: "RESULT",
}

// WriteSymbols is the canonical name of every writable register. RESULT is
// not in this table; it is read-only from the host side.
var WriteSymbols = map[uint16]string{
	RegA: "A",
	RegB: "B",
}

// Lookup returns the address for a register name. The bool return value works
// like a map lookup.
func Lookup(symbol string) (uint16, bool) {
	for a, s := range ReadSymbols {
		if s == symbol {
			return a, true
		}
	}
	return 0, false
}
