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
	"math"
	"strconv"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/verify"
)

// NewVectorRegression creates a vector entry from command line style
// arguments. Operands for a float vector are given as decimal numbers
// ("1.25"); operands for an integer vector as decimal or hex ("0x42").
func NewVectorRegression(mode string, settle int, a string, b string, strategy string, wait int) (*VectorRegression, error) {
	reg := &VectorRegression{
		Settle: settle,
		Wait:   wait,
	}

	var err error

	reg.Mode, err = borg.ParseArithMode(mode)
	if err != nil {
		return nil, err
	}

	reg.Strategy, err = verify.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}

	reg.A, err = parseOperand(reg.Mode, a)
	if err != nil {
		return nil, err
	}
	reg.B, err = parseOperand(reg.Mode, b)
	if err != nil {
		return nil, err
	}

	return reg, nil
}

func parseOperand(mode borg.ArithMode, s string) (uint32, error) {
	switch mode {
	case borg.Integer:
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return 0, curated.Errorf("vector: invalid integer operand (%s)", s)
		}
		return uint32(v), nil

	case borg.Float:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, curated.Errorf("vector: invalid float operand (%s)", s)
		}
		return math.Float32bits(float32(f)), nil
	}

	return 0, curated.Errorf("vector: unrecognised mode")
}
