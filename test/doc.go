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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The Expect functions record a test error and continue. The Demand functions
// are fatal on failure, which is useful when subsequent tests depend on the
// demanded value being correct.
//
// It is worth describing how the "Expect" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is a consequence of how errors usually work (nil indicating no error).
//
// ExpectApproximate exists because the results read back from the modelled
// adder are float32 values that have been through hardware-style rounding. An
// epsilon comparison absorbs the rounding differences between the reference
// and modelled computations.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Compare() and Contains() functions can then be used to
// test the captured output.
package test
