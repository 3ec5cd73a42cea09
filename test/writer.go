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

package test

import "strings"

// Writer implements the io.Writer interface. It should be used to capture
// output that would otherwise be written to the terminal.
type Writer struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *Writer) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Compare buffered output with the expected string.
func (tw *Writer) Compare(expected string) bool {
	return tw.buffer.String() == expected
}

// Contains returns true if the buffered output contains the expected string.
func (tw *Writer) Contains(expected string) bool {
	return strings.Contains(tw.buffer.String(), expected)
}

// String returns the buffered output.
func (tw *Writer) String() string {
	return tw.buffer.String()
}

// Clear the buffer.
func (tw *Writer) Clear() {
	tw.buffer.Reset()
}
