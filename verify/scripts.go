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

package verify

import (
	"io"

	"github.com/jetsetilly/gopherborg/hardware/borg"
)

// EpsilonScript reproduces the original epsilon-tolerance test vectors for
// the combinational float variant of the peripheral.
func EpsilonScript() Script {
	return Script{
		Name:   "float/epsilon",
		Mode:   borg.Float,
		Settle: 0,
		Checks: []Check{
			FloatCheck(1.25, 2.5, Epsilon, 0),
			FloatCheck(10.0, 20.0, Epsilon, 0),
			FloatCheck(0.1, 0.2, Epsilon, 0),
			FloatCheck(-5.5, 2.25, Epsilon, 0),
			FloatCheck(100.0, 0.0, Epsilon, 0),
			FloatCheck(1.23e-2, 4.56e-2, Epsilon, 0),
		},
	}
}

// ExactBitsScript reproduces the bit-for-bit test vectors for the one-cycle
// settle variant of the peripheral: an exactly representable sum and a sum
// where the smaller operand is lost to float32 precision.
func ExactBitsScript() Script {
	return Script{
		Name:   "float/exact-bits",
		Mode:   borg.Float,
		Settle: 1,
		Checks: []Check{
			FloatCheck(123.5, 456.75, ExactBits, 1),
			FloatCheck(1.0, 1.0e-10, ExactBits, 1),
			FloatCheck(3.75, 0.375, ExactBits, 1),
		},
	}
}

// IntegerScript reproduces the raw integer addition vectors.
func IntegerScript() Script {
	return Script{
		Name:   "integer",
		Mode:   borg.Integer,
		Settle: 0,
		Checks: []Check{
			{A: 0x42, B: 0x01},
			{A: 0x00, B: 0x00},
			{A: 0x7f, B: 0x80},
		},
	}
}

// RunAll runs every canned script in order, stopping at the first failure.
func RunAll(output io.Writer) error {
	for _, script := range []Script{
		EpsilonScript(),
		ExactBitsScript(),
		IntegerScript(),
	} {
		if err := RunScript(output, script); err != nil {
			return err
		}
	}
	return nil
}
