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

// Package monitor is an interactive terminal onto the modelled peripheral.
// It is deliberately small: registers can be peeked and poked, the clock
// stepped, and the live hardware structure dumped as a graphviz file for
// inspection. Peek and poke use the debug bus so the monitor never disturbs
// the clocking behaviour it is being used to observe.
//
// POKE values can be given in decimal, in hex with the 0x prefix, or as a
// float with an f suffix (eg. "POKE A 1.25f" writes the binary32 bit pattern
// of 1.25).
package monitor
