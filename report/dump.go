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
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/hbmsim/addrmapper/addrmap"
)

// Dump writes a graphviz representation of the organization snapshot.
func Dump(w io.Writer, org *addrmap.Organization) {
	memviz.Map(w, org)
}
