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

// Package verify runs scripted checks against the modelled peripheral. A
// script is a linear sequence of vectors, each one following the same shape
// as the original hardware testbench: reset, write operand A, write operand
// B, wait, read RESULT and compare against an independently computed
// expected value.
//
// Two comparison strategies exist because the original test variants
// disagree on the point: Epsilon accepts any result within a small tolerance
// of the reference sum while ExactBits requires the result bit pattern to
// equal the reference float32 computation exactly.
//
// The canned scripts returned by EpsilonScript(), ExactBitsScript() and
// IntegerScript() carry the original test vectors. RunAll() runs the lot.
package verify
