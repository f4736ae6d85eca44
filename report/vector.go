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

package report

import (
	"fmt"
	"strings"

	"github.com/hbmsim/addrmapper/addrmap"
)

// Vector returns the coordinates of the mapped request on a single line, each
// coordinate labelled with the name of its level. Unset coordinates are shown
// as a dash.
func Vector(req *addrmap.Request, org *addrmap.Organization) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#08x", req.Addr))

	for i, v := range req.AddrVec {
		name := fmt.Sprintf("%d", i)
		if org != nil && i < len(org.Levels) {
			name = org.Levels[i].Name
		}

		if v == addrmap.Unset {
			s.WriteString(fmt.Sprintf(" %s=-", name))
		} else {
			s.WriteString(fmt.Sprintf(" %s=%d", name, v))
		}
	}

	return s.String()
}
