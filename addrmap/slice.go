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

import "math/bits"

// Slice returns the low width bits of the address and shifts the address
// right by the same amount, exposing the next field. A width of zero returns
// zero and leaves the address unchanged.
func Slice(addr *uint64, width int) int {
	if width <= 0 {
		return 0
	}
	if width >= 64 {
		v := *addr
		*addr = 0
		return int(v)
	}
	v := *addr & (1<<uint(width) - 1)
	*addr >>= uint(width)
	return int(v)
}

// Log2Ceil returns the number of bits required to represent n distinct
// values. Zero for n <= 1.
func Log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
