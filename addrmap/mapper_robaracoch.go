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
	"github.com/hbmsim/addrmapper/dram"
	"github.com/hbmsim/addrmapper/logger"
)

// RoBaRaCoChID is the registered name of the RoBaRaCoCh mapper.
const RoBaRaCoChID = "HBM_PsBg_RoBaRaCoCh"

// RoBaRaCoCh slices the transaction address in the canonical order, channel
// bits lowest:
//
//	channel, row, bank, [bankgroup], [pseudochannel], column
//
// The bankgroup and pseudochannel levels are only sliced when the DRAM model
// has them.
type RoBaRaCoCh struct {
	org *Organization
	lv  Levels

	// extraction order with absent levels removed
	order []int
}

// NewRoBaRaCoCh is the preferred method of initialisation for the RoBaRaCoCh
// type.
func NewRoBaRaCoCh(dev dram.Model) (*RoBaRaCoCh, error) {
	org, err := NewOrganization(dev)
	if err != nil {
		logger.Log(logger.Allow, RoBaRaCoChID, err)
		return nil, err
	}

	lv, err := ResolveLevels(org)
	if err != nil {
		logger.Log(logger.Allow, RoBaRaCoChID, err)
		return nil, err
	}

	m := &RoBaRaCoCh{
		org: org,
		lv:  lv,
	}

	for _, l := range []LevelIndex{lv.Channel, lv.Row, lv.Bank, lv.BankGroup, lv.PseudoChannel, lv.Column} {
		if l.Present() {
			m.order = append(m.order, l.Index())
		}
	}

	logger.Logf(logger.Allow, RoBaRaCoChID, "ready: %s", org)

	return m, nil
}

// ID implements the Mapper interface.
func (m *RoBaRaCoCh) ID() string {
	return RoBaRaCoChID
}

// Organization implements the Mapper interface.
func (m *RoBaRaCoCh) Organization() *Organization {
	return m.org
}

// Levels returns the resolved level positions.
func (m *RoBaRaCoCh) Levels() Levels {
	return m.lv
}

// Apply implements the Mapper interface.
func (m *RoBaRaCoCh) Apply(req *Request) error {
	req.reset(len(m.org.Levels))

	a := req.Addr >> uint(m.org.TxOffset)
	for _, idx := range m.order {
		req.AddrVec[idx] = Slice(&a, m.org.Levels[idx].Bits)
	}

	return nil
}
