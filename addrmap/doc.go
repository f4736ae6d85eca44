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

// Package addrmap translates the linear address of a memory request into the
// coordinates of the DRAM unit that services it: channel, pseudochannel,
// bankgroup, bank, row and column.
//
// The address is first normalised by discarding the bits that address bytes
// within a single transfer (the transaction offset). The remaining
// transaction address is then consumed from the least significant end, one
// bit field per hierarchy level, by the Slice() function. The width of each
// field is taken from an Organization, a snapshot of the DRAM model built
// once when the mapper is created.
//
// Two mappers are provided. RoBaRaCoCh slices the levels in the canonical
// order:
//
//	channel, row, bank, [bankgroup], [pseudochannel], column
//
// where the bracketed levels are only sliced if the DRAM model has them.
//
// GroupGated models channel-select gating, as found in HBM4, where only some
// of the channels are enabled at any one time. The channels are divided into
// groups; a single address bit (the group-select bit) chooses the group and
// the low bits of the transaction address choose the channel within the
// group.
//
// Mappers are created by name with New(). Construction validates the DRAM
// model against the mapper's requirements and any problem is returned as an
// error matching the ConfigurationError pattern. These errors are fatal: a
// mapping produced from a bad configuration is physically meaningless.
// Once constructed a mapper never fails and Apply() may be called
// concurrently.
//
// For hosts that wire the mapper before the DRAM model is initialised, Defer()
// postpones construction until the first call to Apply().
package addrmap
