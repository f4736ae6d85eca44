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

import (
	"io"
	"strings"
)

// Colorizer writes the first line of every Write() in the named pen and any
// further lines in the dim version of the same pen. It is intended for
// multi-line messages where the first line is the summary, such as a
// configuration error followed by its detail.
type Colorizer struct {
	out io.Writer
	pen string
	dim string
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type. The pen is a key in the Pens and DimPens tables; an unknown key means
// no colouring.
func NewColorizer(out io.Writer, pen string) Colorizer {
	return Colorizer{out: out, pen: Pens[pen], dim: DimPens[pen]}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")

	s := l[0] + "\n"
	if c.pen != "" {
		s = c.pen + l[0] + NormalPen + "\n"
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		return 0, err
	}

	if len(l) > 1 {
		s = strings.Join(l[1:], "\n") + "\n"
		if c.dim != "" {
			s = c.dim + s + NormalPen
		}
		if _, err := io.WriteString(c.out, s); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
