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

// Package dram describes the organization of DRAM devices: the ordered list
// of hierarchy levels (channel down to column), the number of units at each
// level, the internal prefetch size and the channel width.
//
// This is the information an address mapper needs and nothing more. Timing,
// refresh and power are the business of the memory-system model and are not
// described here.
//
// The Model interface is what address mappers consume. The Device type is
// the implementation provided by this package for the standards in the
// catalogue (see Standards()). A Device is created uninitialised and the
// organization counts are only available after Init() has been called. This
// mirrors the way a memory-system model populates its organization during
// its own initialisation; a mapper constructed against an uninitialised
// device will fail.
package dram
