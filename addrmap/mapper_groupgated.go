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
	"github.com/hbmsim/addrmapper/curated"
	"github.com/hbmsim/addrmapper/dram"
	"github.com/hbmsim/addrmapper/logger"
)

// GroupGatedID is the registered name of the GroupGated mapper.
const GroupGatedID = "HBM4_GroupMapper"

// GatingConfig is the configuration of a GroupGated mapper. It is read once
// when the mapper is created.
type GatingConfig struct {
	// number of simultaneously enabled channels. clamped to the range 1 to
	// the number of channels in the DRAM model
	ActiveChannels int

	// bit of the byte address that selects the channel group
	GroupSelectBit int

	// number of requests between histogram snapshots
	SnapshotInterval uint64

	// number of requests at the start of the mapper's life for which the
	// mapping detail is logged
	TraceCount int

	// destination of histogram snapshots. nil disables snapshots
	Sink Sink
}

// Default values for GatingConfig.
const (
	DefaultActiveChannels   = 16
	DefaultGroupSelectBit   = 10
	DefaultSnapshotInterval = 5000
	DefaultTraceCount       = 32
)

// DefaultGatingConfig returns the default configuration. Snapshots are sent
// to the central logger.
func DefaultGatingConfig() GatingConfig {
	return GatingConfig{
		ActiveChannels:   DefaultActiveChannels,
		GroupSelectBit:   DefaultGroupSelectBit,
		SnapshotInterval: DefaultSnapshotInterval,
		TraceCount:       DefaultTraceCount,
		Sink:             LogSink{},
	}
}

// GroupGated is a channel-group aware mapper, modelling channel-select
// gating. Of the total channels C only A are enabled at once. The channels
// are divided into G = C/A groups of A channels:
//
//	channel = group x A + intra
//
// The group is selected by the bits starting at the group-select bit and the
// channel within the group by the low bits of the transaction address.
//
// The other levels are sliced after discarding the channel's share of the
// transaction address, column first and then every level from the one after
// channel down to row.
type GroupGated struct {
	org    *Organization
	row    int
	column int

	// gating derived from the configuration and the organization
	total          int
	active         int
	groups         int
	groupBits      int
	groupSelectPos int
	intraBits      int

	hist       *Histogram
	traceCount int
}

// NewGroupGated is the preferred method of initialisation for the GroupGated
// type.
func NewGroupGated(dev dram.Model, cfg GatingConfig) (*GroupGated, error) {
	org, err := NewOrganization(dev)
	if err != nil {
		logger.Log(logger.Allow, GroupGatedID, err)
		return nil, err
	}

	m, err := newGroupGated(org, cfg)
	if err != nil {
		logger.Log(logger.Allow, GroupGatedID, err)
		return nil, err
	}

	logger.Logf(logger.Allow, GroupGatedID, "ready: %s", org)
	logger.Logf(logger.Allow, GroupGatedID, "C=%d A=%d G=%d group bits=%d group select=%d intra bits=%d",
		m.total, m.active, m.groups, m.groupBits, m.groupSelectPos, m.intraBits)

	if m.Overlapping() {
		logger.Logf(logger.Allow, GroupGatedID, "group select bits [%d:%d) overlap intra-group bits [0:%d)",
			m.groupSelectPos, m.groupSelectPos+m.groupBits, m.intraBits)
	}

	return m, nil
}

func newGroupGated(org *Organization, cfg GatingConfig) (*GroupGated, error) {
	ch := org.Resolve(dram.Channel)
	if !ch.Present() {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(MissingLevel, dram.Channel))
	}
	if ch.Index() != 0 {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(MisplacedLevel, dram.Channel, 0))
	}

	last := len(org.Levels) - 1
	col := org.Resolve(dram.Column)
	if !col.Present() {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(MissingLevel, dram.Column))
	}
	if col.Index() != last {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(MisplacedLevel, dram.Column, last))
	}

	row := org.Resolve(dram.Row)
	if !row.Present() {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(MissingLevel, dram.Row))
	}

	m := &GroupGated{
		org:        org,
		row:        row.Index(),
		column:     last,
		total:      org.Levels[0].Count,
		traceCount: cfg.TraceCount,
	}

	m.active = cfg.ActiveChannels
	if m.active < 1 {
		m.active = 1
	}
	if m.active > m.total {
		m.active = m.total
	}
	m.groups = m.total / m.active

	// channel numbers are only unique and in range if the groups exactly
	// tile the channels and both group and intra-group ids are whole
	// bit fields
	if m.total%m.active != 0 || !powerOfTwo(m.active) || !powerOfTwo(m.groups) {
		return nil, curated.Errorf(ConfigurationError, curated.Errorf(InvalidGating, m.active, m.total))
	}

	if m.groups > 1 {
		m.groupBits = Log2Ceil(m.groups)
	}
	if m.active > 1 {
		m.intraBits = Log2Ceil(m.active)
	}

	m.groupSelectPos = cfg.GroupSelectBit - org.TxOffset
	if m.groupSelectPos < 0 {
		m.groupSelectPos = 0
	}

	m.hist = NewHistogram(GroupGatedID, m.total, cfg.SnapshotInterval, cfg.Sink)

	return m, nil
}

func powerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ID implements the Mapper interface.
func (m *GroupGated) ID() string {
	return GroupGatedID
}

// Organization implements the Mapper interface.
func (m *GroupGated) Organization() *Organization {
	return m.org
}

// Histogram returns the channel histogram of the mapper.
func (m *GroupGated) Histogram() *Histogram {
	return m.hist
}

// Groups returns the number of channel groups.
func (m *GroupGated) Groups() int {
	return m.groups
}

// ActiveChannels returns the number of active channels after clamping.
func (m *GroupGated) ActiveChannels() int {
	return m.active
}

// GroupSelectPos returns the position of the group-select bit in the
// transaction address.
func (m *GroupGated) GroupSelectPos() int {
	return m.groupSelectPos
}

// Overlapping returns true if the group-select bits overlap the intra-group
// bits. The mapping is still produced but the groups are no longer
// independent of the channel within the group.
func (m *GroupGated) Overlapping() bool {
	return m.groupBits > 0 && m.intraBits > 0 && m.groupSelectPos < m.intraBits
}

// Channel returns the channel for the transaction address.
func (m *GroupGated) Channel(a uint64) int {
	group, intra := m.Group(a)
	return group*m.active + intra
}

// Group returns the channel group and the channel within the group for the
// transaction address.
func (m *GroupGated) Group(a uint64) (group int, intra int) {
	if m.groupBits > 0 {
		group = int((a >> uint(m.groupSelectPos)) & (1<<uint(m.groupBits) - 1))
	}
	if m.intraBits > 0 {
		intra = int(a & (1<<uint(m.intraBits) - 1))
	}
	return group, intra
}

// Apply implements the Mapper interface.
func (m *GroupGated) Apply(req *Request) error {
	req.reset(len(m.org.Levels))

	a := req.Addr >> uint(m.org.TxOffset)

	group, intra := m.Group(a)
	ch := group*m.active + intra
	req.AddrVec[0] = ch

	if n := m.hist.Add(ch); n <= uint64(m.traceCount) {
		logger.Logf(logger.Allow, GroupGatedID, "addr=%#x a=%#x tx_off=%d grp_sel=%d grp_bits=%d intra_bits=%d grp=%d intra=%d ch=%d",
			req.Addr, a, m.org.TxOffset, m.groupSelectPos, m.groupBits, m.intraBits, group, intra, ch)
	}

	// the channel was not taken from the low bits as a contiguous field
	// but its share of the address is still consumed so that the other
	// fields stay aligned
	b := a
	Slice(&b, m.org.Levels[0].Bits)

	req.AddrVec[m.column] = Slice(&b, m.org.Levels[m.column].Bits)
	for lvl := 1; lvl <= m.row; lvl++ {
		req.AddrVec[lvl] = Slice(&b, m.org.Levels[lvl].Bits)
	}

	return nil
}
