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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions.
//
// The most important difference to the standard flag package is the ability
// to handle "modes". In this context, a mode is a special command line
// argument that when specified puts the program into a different mode of
// operation, with its own set of flags and expected arguments; the best
// example is the go command itself (build, doc, get, test, etc.)
//
// Sub-modes are registered with the AddSubModes() function. The first
// sub-mode in the list is the default, used when no mode is specified on the
// command line. All sub-mode comparisons are case insensitive.
//
//	md.AddSubModes("RUN", "REGRESS", "MONITOR")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		...
//	case "REGRESS":
//		// modes can be chained as deep as required. the REGRESS mode
//		// declares its own sub-modes with a new call to NewMode(),
//		// AddSubModes() and Parse()
//		...
//	}
//
// The Parse() function returns a ParseResult value. ParseHelp indicates that
// a help message has already been printed and should be treated like an
// error, without printing anything further.
package modalflag
