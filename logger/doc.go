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

// Package logger is the central log for the application. There is no option
// to have more than one log. All log entries are tagged with a short string,
// conventionally the name of the package or sub-system making the entry:
//
//	logger.Logf(logger.Allow, "borg", "settle latency of %d cycles", n)
//
// Identical entries arriving in a run are collapsed into one entry with a
// repeat count. Entries can be echoed to an io.Writer as they arrive, with
// SetEcho(), which is how the -log flag on the command line works.
package logger
