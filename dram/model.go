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

package dram

// Level names used by the standards in the catalogue. Mappers resolve levels
// by name so a standard can omit the optional levels (pseudochannel,
// bankgroup, rank) without affecting the position of the others.
const (
	Channel       = "channel"
	PseudoChannel = "pseudochannel"
	Rank          = "rank"
	BankGroup     = "bankgroup"
	Bank          = "bank"
	Row           = "row"
	Column        = "column"
)

// Model is the view of a DRAM organization required by an address mapper.
type Model interface {
	// ordered names of the hierarchy levels, outermost (channel) first
	Levels() []string

	// number of units at each level, in the same order as Levels(). empty
	// if the model has not been initialised
	Counts() []int

	// position of the named level in Levels()
	Level(name string) (int, bool)

	// number of data words transferred per column access
	PrefetchSize() int

	// width of the channel in bits
	ChannelWidth() int
}
