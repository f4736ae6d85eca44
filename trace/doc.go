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

// Package trace reads memory request traces. A trace is a text file with one
// request per line, either a bare address or an operation followed by the
// address:
//
//	0x1000
//	LD 0x1040
//	st 4096
//
// Addresses with the 0x prefix are hexadecimal, otherwise decimal. The
// operations LD, ST, R and W are accepted in any case. Blank lines and lines
// beginning with # are ignored.
package trace
