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

// Package curated is the error type used throughout the project. A curated
// error is created with the Errorf() function. Unlike fmt.Errorf() the
// pattern string doubles as the error's identity, which can later be tested
// for with the Is() and Has() functions:
//
//	err := doSomething()
//	if curated.Is(err, verify.FailedCheck) {
//		...
//	}
//
// Is() matches the outer-most error only. Has() matches the pattern anywhere
// in the chain of wrapped curated errors.
//
// The Error() function normalises the message, removing adjacent duplicate
// parts that occur naturally when errors are wrapped as they move up through
// the call stack.
package curated
