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

import (
	"fmt"

	"github.com/hbmsim/addrmapper/curated"
	"github.com/hbmsim/addrmapper/dram"
)

// LevelIndex is the position of a level in an Organization. Optional levels
// may not be present, in which case Index() should not be used.
type LevelIndex struct {
	idx     int
	present bool
}

// Present returns true if the level is part of the organization.
func (l LevelIndex) Present() bool {
	return l.present
}

// Index returns the position of the level. Returns Unset if the level is not
// present.
func (l LevelIndex) Index() int {
	if !l.present {
		return Unset
	}
	return l.idx
}

func (l LevelIndex) String() string {
	if !l.present {
		return "absent"
	}
	return fmt.Sprintf("%d", l.idx)
}

// Levels are the resolved positions of the named levels in an organization.
type Levels struct {
	Channel       LevelIndex
	PseudoChannel LevelIndex
	BankGroup     LevelIndex
	Bank          LevelIndex
	Row           LevelIndex
	Column        LevelIndex
}

// ResolveLevels resolves the channel, bank, row and column levels, which
// must be present, and the optional pseudochannel and bankgroup levels.
func ResolveLevels(org *Organization) (Levels, error) {
	lv := Levels{
		Channel:       org.Resolve(dram.Channel),
		PseudoChannel: org.Resolve(dram.PseudoChannel),
		BankGroup:     org.Resolve(dram.BankGroup),
		Bank:          org.Resolve(dram.Bank),
		Row:           org.Resolve(dram.Row),
		Column:        org.Resolve(dram.Column),
	}

	for _, r := range []struct {
		name string
		idx  LevelIndex
	}{
		{dram.Channel, lv.Channel},
		{dram.Bank, lv.Bank},
		{dram.Row, lv.Row},
		{dram.Column, lv.Column},
	} {
		if !r.idx.Present() {
			return Levels{}, curated.Errorf(ConfigurationError, curated.Errorf(MissingLevel, r.name))
		}
	}

	return lv, nil
}
