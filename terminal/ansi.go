// This file is part of addrmapper.
//
// addrmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// addrmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with addrmapper.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import "fmt"

// ansi colour numbers.
const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
)

// CSI sequence for the given foreground colour. bright colours use the 9x
// range.
func pen(col int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[%dm", 90+col)
	}
	return fmt.Sprintf("\033[%dm", 30+col)
}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// Pens is the table of colours to be used for text.
var Pens = map[string]string{
	"red":     pen(colRed, true),
	"green":   pen(colGreen, true),
	"yellow":  pen(colYellow, true),
	"blue":    pen(colBlue, true),
	"magenta": pen(colMagenta, true),
	"cyan":    pen(colCyan, true),
}

// DimPens is the table of pastel colours to be used for text.
var DimPens = map[string]string{
	"red":     pen(colRed, false),
	"green":   pen(colGreen, false),
	"yellow":  pen(colYellow, false),
	"blue":    pen(colBlue, false),
	"magenta": pen(colMagenta, false),
	"cyan":    pen(colCyan, false),
}
