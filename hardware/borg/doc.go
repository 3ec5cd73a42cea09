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

// Package borg models the Borg peripheral: an IEEE-754 binary32 adder behind
// a three-register, memory-mapped interface.
//
//	0x00  A       read/write  operand A (raw bits)
//	0x04  B       read/write  operand B (raw bits)
//	0x08  RESULT  read only   A + B
//
// Writing one operand never disturbs the other and operand registers read
// back exactly the bits that were written. The RESULT register reflects the
// sum of the two most recently written operands with no carryover from
// earlier operand pairs.
//
// The real hardware exists in two arithmetic variants and with differing
// settle latencies, so both are construction-time parameters of the model
// rather than hidden assumptions. See the ArithMode type and the settle
// argument to NewBorg().
package borg
