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

// Package regression keeps a database of vectors known to have passed and
// re-runs them on demand. It is most useful when working on the model itself:
// add vectors as behaviour is confirmed and run the lot after every change.
//
// Entries are stored in a flat-file database (see the database package) in
// the .gopherborg directory. Every entry records the peripheral variant it
// was confirmed against (arithmetic mode and settle latency) as well as the
// operands, wait cycles and comparison strategy.
package regression
