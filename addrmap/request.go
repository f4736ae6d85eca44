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

// Unset is the value of a coordinate that has not been written by the
// mapper. Coordinates for levels absent from the DRAM model are always Unset.
const Unset = -1

// Request is a memory request as seen by an address mapper. The mapper reads
// Addr and writes AddrVec.
type Request struct {
	Addr uint64

	// one coordinate per level of the organization, in the same order.
	// resized by the mapper
	AddrVec []int
}

// NewRequest is the preferred method of initialisation for the Request type.
func NewRequest(addr uint64) *Request {
	return &Request{Addr: addr}
}

// prepare AddrVec for n levels, reusing the existing slice if possible.
func (req *Request) reset(n int) {
	if cap(req.AddrVec) < n {
		req.AddrVec = make([]int, n)
	}
	req.AddrVec = req.AddrVec[:n]
	for i := range req.AddrVec {
		req.AddrVec[i] = Unset
	}
}
