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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import "fmt"

const csi = "\033["

// ansi colour numbers.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = csi + "0m"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = csi + "2K"

// Pens is the table of bright colours to be used for text.
var Pens map[string]string

// DimPens is the table of dim colours to be used for text.
var DimPens map[string]string

// Bold is the CSI sequence for bold text.
const Bold = csi + "1m"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	for name, col := range map[string]int{
		"black":   colBlack,
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
	} {
		Pens[name] = fmt.Sprintf("%s1;3%dm", csi, col)
		DimPens[name] = fmt.Sprintf("%s2;3%dm", csi, col)
	}
}
