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
	"strings"

	"github.com/hbmsim/addrmapper/curated"
	"github.com/hbmsim/addrmapper/dram"
)

// Level is one level of the DRAM hierarchy.
type Level struct {
	Name  string
	Count int

	// number of address bits for the level. for the innermost level this
	// excludes the bits absorbed by the prefetch
	Bits int
}

// Organization is a snapshot of the DRAM model taken when a mapper is
// created. It is never modified after creation.
type Organization struct {
	Levels []Level

	// number of low-order address bits covering a single transfer
	// (prefetch words x channel width)
	TxOffset int

	// number of column bits absorbed by the prefetch
	PrefetchBits int

	lookup map[string]int
}

// NewOrganization builds a snapshot of the DRAM model. Calling it again on
// an unchanged model gives an equal snapshot.
func NewOrganization(dev dram.Model) (*Organization, error) {
	if dev == nil {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(NoModel))
	}

	names := dev.Levels()
	count := dev.Counts()

	if len(count) == 0 {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(ModelNotReady))
	}
	if len(count) != len(names) {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(LevelCountMismatch, len(count), len(names)))
	}

	prefetch := dev.PrefetchSize()
	width := dev.ChannelWidth()
	txBytes := prefetch * width / 8
	if prefetch <= 0 || txBytes <= 0 {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(InvalidTransfer, prefetch, width))
	}

	org := &Organization{
		Levels: make([]Level, len(names)),
		lookup: make(map[string]int, len(names)),
	}

	for i, n := range names {
		if !powerOfTwo(count[i]) {
			return nil, curated.Errorf(ConfigurationError, curated.Errorf(InvalidLevelCount, n, count[i]))
		}
		if idx, ok := dev.Level(n); !ok || idx != i {
			return nil, curated.Errorf(ConfigurationError, curated.Errorf(InconsistentLevel, n))
		}
		org.Levels[i] = Level{
			Name:  n,
			Count: count[i],
			Bits:  Log2Ceil(count[i]),
		}
		org.lookup[n] = i
	}

	// bursts address several prefetch words at once. those words are
	// already covered by the transaction offset so the innermost level
	// loses the equivalent number of bits
	col := &org.Levels[len(org.Levels)-1]
	org.PrefetchBits = Log2Ceil(prefetch)
	col.Bits -= org.PrefetchBits
	if col.Bits < 0 {
		col.Bits = 0
	}

	org.TxOffset = Log2Ceil(txBytes)

	return org, nil
}

// Resolve the named level. The returned LevelIndex is not present if the
// level is not part of the organization.
func (org *Organization) Resolve(name string) LevelIndex {
	if idx, ok := org.lookup[name]; ok {
		return LevelIndex{idx: idx, present: true}
	}
	return LevelIndex{}
}

// Len returns the number of levels in the organization. This is the length
// of every coordinate vector produced with the organization.
func (org *Organization) Len() int {
	return len(org.Levels)
}

// AddressBits is the number of address bits consumed when every level is
// sliced, including the transaction offset.
func (org *Organization) AddressBits() int {
	n := org.TxOffset
	for _, l := range org.Levels {
		n += l.Bits
	}
	return n
}

// Summary returns a multi-line description of the organization. One line
// per level.
func (org *Organization) Summary() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("transaction offset: %d bits\n", org.TxOffset))
	for i, l := range org.Levels {
		s.WriteString(fmt.Sprintf("%d %-14s count=%-6d bits=%d\n", i, l.Name, l.Count, l.Bits))
	}
	return s.String()
}

func (org *Organization) String() string {
	s := strings.Builder{}
	for i, l := range org.Levels {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s:%d", l.Name, l.Bits))
	}
	s.WriteString(fmt.Sprintf(" tx:%d", org.TxOffset))
	return s.String()
}
