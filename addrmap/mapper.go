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

package addrmap

// Mapper implementations translate the address of a request into a
// coordinate vector.
type Mapper interface {
	// name of the mapper as used by New()
	ID() string

	// the organization snapshot used by the mapper. nil if the mapper has
	// not yet been bound to a DRAM model (see Deferred)
	Organization() *Organization

	// Apply writes the coordinate vector for req.Addr to req.AddrVec. The
	// vector is resized to the number of levels in the organization and
	// levels that the mapper does not slice are left Unset.
	//
	// Only a Deferred mapper ever returns an error.
	Apply(req *Request) error
}
