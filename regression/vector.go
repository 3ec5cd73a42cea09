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
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/database"
	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/verify"
)

const vectorEntryID = "vector"

const (
	vectorFieldMode int = iota
	vectorFieldSettle
	vectorFieldA
	vectorFieldB
	vectorFieldStrategy
	vectorFieldWait
	numVectorFields
)

// VectorRegression is a regression entry that runs one vector against a
// freshly built peripheral of the stored variant.
type VectorRegression struct {
	key int

	Mode   borg.ArithMode
	Settle int

	// operand bit patterns
	A uint32
	B uint32

	Strategy verify.Strategy
	Wait     int
}

func deserialiseVectorEntry(fields []string) (database.Entry, error) {
	if len(fields) != numVectorFields {
		return nil, curated.Errorf("vector: wrong number of fields")
	}

	reg := &VectorRegression{}

	var err error

	reg.Mode, err = borg.ParseArithMode(fields[vectorFieldMode])
	if err != nil {
		return nil, err
	}

	reg.Settle, err = strconv.Atoi(fields[vectorFieldSettle])
	if err != nil {
		return nil, curated.Errorf("vector: invalid settle field (%s)", fields[vectorFieldSettle])
	}

	a, err := strconv.ParseUint(fields[vectorFieldA], 16, 32)
	if err != nil {
		return nil, curated.Errorf("vector: invalid operand field (%s)", fields[vectorFieldA])
	}
	reg.A = uint32(a)

	b, err := strconv.ParseUint(fields[vectorFieldB], 16, 32)
	if err != nil {
		return nil, curated.Errorf("vector: invalid operand field (%s)", fields[vectorFieldB])
	}
	reg.B = uint32(b)

	reg.Strategy, err = verify.ParseStrategy(fields[vectorFieldStrategy])
	if err != nil {
		return nil, err
	}

	reg.Wait, err = strconv.Atoi(fields[vectorFieldWait])
	if err != nil {
		return nil, curated.Errorf("vector: invalid wait field (%s)", fields[vectorFieldWait])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg VectorRegression) ID() string {
	return vectorEntryID
}

// String implements the database.Entry interface.
func (reg VectorRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] ", reg.ID()))

	switch reg.Mode {
	case borg.Integer:
		s.WriteString(fmt.Sprintf("%s %#x + %#x", reg.Mode, reg.A, reg.B))
	case borg.Float:
		s.WriteString(fmt.Sprintf("%s/%s %v + %v", reg.Mode, reg.Strategy,
			math.Float32frombits(reg.A), math.Float32frombits(reg.B)))
	}

	if reg.Settle > 0 || reg.Wait > 0 {
		s.WriteString(fmt.Sprintf(" (settle=%d wait=%d)", reg.Settle, reg.Wait))
	}

	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg VectorRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Mode.String(),
		strconv.Itoa(reg.Settle),
		fmt.Sprintf("%08x", reg.A),
		fmt.Sprintf("%08x", reg.B),
		reg.Strategy.String(),
		strconv.Itoa(reg.Wait),
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg VectorRegression) CleanUp() error {
	return nil
}

// GetKey implements the database.Entry interface.
func (reg VectorRegression) GetKey() int {
	return reg.key
}

// SetKey implements the database.Entry interface.
func (reg *VectorRegression) SetKey(key int) {
	reg.key = key
}

// regress runs the vector. the newRegression flag is true when the entry is
// being added to the database rather than re-run from it.
func (reg *VectorRegression) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	output.Write([]byte(message))

	script := verify.Script{
		Name:   reg.ID(),
		Mode:   reg.Mode,
		Settle: reg.Settle,
		Checks: []verify.Check{
			{A: reg.A, B: reg.B, Wait: reg.Wait, Strategy: reg.Strategy},
		},
	}

	if err := verify.RunScript(io.Discard, script); err != nil {
		return false, err
	}

	return true, nil
}
