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
	"math"

	"github.com/jetsetilly/gopherborg/curated"
)

// ArithMode selects how the adder interprets the operand bit patterns. The
// hardware exists in both variants so the mode is fixed at construction
// rather than being switchable at run time.
type ArithMode int

// List of valid ArithMode values.
const (
	// operands summed as unsigned 32-bit integers. wraps on overflow
	Integer ArithMode = iota

	// operand bit patterns reinterpreted as IEEE-754 binary32 values and
	// summed with standard rounding
	Float
)

func (mode ArithMode) String() string {
	switch mode {
	case Integer:
		return "integer"
	case Float:
		return "float"
	}
	panic("unknown arithmetic mode")
}

// ParseArithMode converts the string representation used on the command line
// into an ArithMode value.
func ParseArithMode(s string) (ArithMode, error) {
	switch s {
	case "integer":
		return Integer, nil
	case "float":
		return Float, nil
	}
	return Integer, curated.Errorf("borg: unrecognised arithmetic mode (%s)", s)
}

// add sums the current operand registers according to the arithmetic mode.
func (brg *Borg) add() uint32 {
	switch brg.mode {
	case Integer:
		return brg.a + brg.b
	case Float:
		return math.Float32bits(math.Float32frombits(brg.a) + math.Float32frombits(brg.b))
	}
	panic("unknown arithmetic mode")
}
