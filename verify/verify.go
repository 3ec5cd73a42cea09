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
	"fmt"
	"io"
	"math"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherborg/hardware/tqv"
)

// FailedCheck is the error pattern for any mismatch between the value read
// from the RESULT register and the independently computed expected value.
// There is no recovery from a failed check; the script aborts immediately.
const FailedCheck = "verify: failed check: %s"

// Tolerance is the comparison slack used by the Epsilon strategy. It absorbs
// rounding differences between the reference computation and the modelled
// hardware arithmetic.
const Tolerance = 1e-6

// Strategy selects how a float result is compared against the reference
// computation. The original hardware test variants disagree on this point so
// the choice is explicit per check.
type Strategy int

// List of valid Strategy values. Integer results are always compared exactly,
// whatever the strategy.
const (
	// |result - reference| must be less than Tolerance
	Epsilon Strategy = iota

	// result bit pattern must equal the reference bit pattern exactly
	ExactBits
)

func (s Strategy) String() string {
	switch s {
	case Epsilon:
		return "epsilon"
	case ExactBits:
		return "exact-bits"
	}
	panic("unknown comparison strategy")
}

// ParseStrategy converts the string representation used on the command line
// and in the regression database into a Strategy value.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "epsilon":
		return Epsilon, nil
	case "exact-bits":
		return ExactBits, nil
	}
	return Epsilon, curated.Errorf("verify: unrecognised strategy (%s)", s)
}

// Check is a single vector: an operand pair, the number of clock cycles to
// wait before reading the result, and the comparison strategy.
type Check struct {
	// operand bit patterns as written to the A and B registers
	A uint32
	B uint32

	// additional clock cycles between writing operand B and reading RESULT
	Wait int

	Strategy Strategy
}

// FloatCheck is a convenience constructor for a Check in a float mode script.
func FloatCheck(a float32, b float32, strategy Strategy, wait int) Check {
	return Check{
		A:        math.Float32bits(a),
		B:        math.Float32bits(b),
		Wait:     wait,
		Strategy: strategy,
	}
}

// Script is an ordered sequence of checks run against a freshly built
// peripheral of the given variant.
type Script struct {
	Name   string
	Mode   borg.ArithMode
	Settle int
	Checks []Check
}

// RunScript drives a new host model through every check in the script in
// strict sequence: reset, write A, write B, wait, read RESULT, compare. The
// operand registers are read back after every check to make sure they have
// not been disturbed.
//
// One line is written to output for every successful check. The first
// mismatch ends the script with a FailedCheck error.
func RunScript(output io.Writer, script Script) error {
	host := tqv.NewTQV(script.Mode, script.Settle)
	host.Reset()

	for _, chk := range script.Checks {
		if err := runCheck(host, script.Mode, chk); err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("%s: %s\n", script.Name, describe(script.Mode, chk))))
	}

	output.Write([]byte(fmt.Sprintf("%s: ok (%d checks, %d cycles)\n", script.Name, len(script.Checks), host.Cycles())))

	return nil
}

func runCheck(host *tqv.TQV, mode borg.ArithMode, chk Check) error {
	if err := host.WriteWordReg(addresses.RegA, chk.A); err != nil {
		return err
	}
	if err := host.WriteWordReg(addresses.RegB, chk.B); err != nil {
		return err
	}

	host.ClockCycles(chk.Wait)

	result, err := host.ReadWordReg(addresses.RegResult)
	if err != nil {
		return err
	}

	if err := compare(mode, chk, result); err != nil {
		return err
	}

	// operand registers must read back exactly the bits that were written
	for _, rb := range []struct {
		address uint16
		data    uint32
	}{
		{addresses.RegA, chk.A},
		{addresses.RegB, chk.B},
	} {
		v, err := host.ReadWordReg(rb.address)
		if err != nil {
			return err
		}
		if v != rb.data {
			return curated.Errorf(FailedCheck,
				fmt.Sprintf("operand %s corrupted: %#08x read back as %#08x",
					addresses.ReadSymbols[rb.address], rb.data, v))
		}
	}

	return nil
}

func compare(mode borg.ArithMode, chk Check, result uint32) error {
	switch mode {
	case borg.Integer:
		expected := chk.A + chk.B
		if result != expected {
			return curated.Errorf(FailedCheck,
				fmt.Sprintf("%#x + %#x = %#x (expected %#x)", chk.A, chk.B, result, expected))
		}

	case borg.Float:
		a := math.Float32frombits(chk.A)
		b := math.Float32frombits(chk.B)
		reference := a + b

		switch chk.Strategy {
		case Epsilon:
			diff := float64(math.Float32frombits(result)) - float64(reference)
			if diff < 0 {
				diff = -diff
			}
			if diff >= Tolerance {
				return curated.Errorf(FailedCheck,
					fmt.Sprintf("%v + %v = %v (expected %v, tolerance %v)",
						a, b, math.Float32frombits(result), reference, Tolerance))
			}

		case ExactBits:
			if result != math.Float32bits(reference) {
				return curated.Errorf(FailedCheck,
					fmt.Sprintf("%v + %v = %#08x (expected %#08x)",
						a, b, result, math.Float32bits(reference)))
			}
		}
	}

	return nil
}

func describe(mode borg.ArithMode, chk Check) string {
	if mode == borg.Integer {
		return fmt.Sprintf("%#x + %#x = %#x", chk.A, chk.B, chk.A+chk.B)
	}

	a := math.Float32frombits(chk.A)
	b := math.Float32frombits(chk.B)
	return fmt.Sprintf("%v + %v = %v (%s)", a, b, a+b, chk.Strategy)
}
