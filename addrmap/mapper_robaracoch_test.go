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

package addrmap_test

import (
	"math/rand"
	"testing"

	"github.com/hbmsim/addrmapper/addrmap"
	"github.com/hbmsim/addrmapper/curated"
	"github.com/hbmsim/addrmapper/dram"
	"github.com/hbmsim/addrmapper/test"
)

func TestRoBaRaCoCh(t *testing.T) {
	m, err := addrmap.NewRoBaRaCoCh(newCanonicalDevice())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.ID(), addrmap.RoBaRaCoChID)

	req := addrmap.NewRequest(0x12345678)
	test.DemandSuccess(t, m.Apply(req))
	test.DemandEquality(t, len(req.AddrVec), 4)

	// channel, bank, row, column
	test.ExpectEquality(t, req.AddrVec[0], 19)
	test.ExpectEquality(t, req.AddrVec[1], 4)
	test.ExpectEquality(t, req.AddrVec[2], 36117)
	test.ExpectEquality(t, req.AddrVec[3], 0)

	// column bits are the highest
	req = addrmap.NewRequest(0x7 << 29)
	test.DemandSuccess(t, m.Apply(req))
	test.ExpectEquality(t, req.AddrVec[3], 7)
	test.ExpectEquality(t, req.AddrVec[0], 0)
}

func TestRoBaRaCoChHBM4(t *testing.T) {
	dev, err := dram.Lookup("HBM4", "HBM4_8Gb")
	test.DemandSuccess(t, err)

	m, err := addrmap.NewRoBaRaCoCh(dev)
	test.DemandSuccess(t, err)

	req := addrmap.NewRequest(0x12345678)
	test.DemandSuccess(t, m.Apply(req))

	// channel, pseudochannel, bankgroup, bank, row, column
	for i, v := range []int{19, 1, 0, 2, 3349, 0} {
		test.ExpectEquality(t, req.AddrVec[i], v, dev.Levels()[i])
	}
}

func TestRoBaRaCoChOptionalLevels(t *testing.T) {
	// no bankgroup level
	dev := dram.NewDevice("TEST", "nobankgroup",
		[]string{dram.Channel, dram.PseudoChannel, dram.Bank, dram.Row, dram.Column},
		[]int{8, 2, 16, 1 << 14, 1 << 6}, 4, 64)
	dev.Init()

	m, err := addrmap.NewRoBaRaCoCh(dev)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, m.Levels().BankGroup.Present())
	test.ExpectSuccess(t, m.Levels().PseudoChannel.Present())

	req := addrmap.NewRequest(0xffffffff)
	test.DemandSuccess(t, m.Apply(req))
	for i, v := range req.AddrVec {
		test.ExpectInequality(t, v, addrmap.Unset, i)
	}

	// the rank level of a DDR4 device is not part of the mapping and is never
	// written
	dev, err = dram.Lookup("DDR4", "")
	test.DemandSuccess(t, err)

	m, err = addrmap.NewRoBaRaCoCh(dev)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, m.Levels().PseudoChannel.Present())

	rank, _ := dev.Level(dram.Rank)
	test.DemandSuccess(t, m.Apply(req))
	test.ExpectEquality(t, req.AddrVec[rank], addrmap.Unset)
}

func TestRoBaRaCoChMissingLevel(t *testing.T) {
	dev := dram.NewDevice("TEST", "nobank",
		[]string{dram.Channel, dram.Row, dram.Column},
		[]int{8, 1 << 14, 1 << 6}, 4, 64)
	dev.Init()

	_, err := addrmap.NewRoBaRaCoCh(dev)
	test.ExpectSuccess(t, curated.Is(err, addrmap.ConfigurationError))
	test.ExpectSuccess(t, curated.Has(err, addrmap.MissingLevel))
}

// reassembles the address from the coordinates, in the canonical slicing
// order. the bits below the transaction offset and above the sliced bits
// cannot be recovered from the coordinates
func reassemble(m *addrmap.RoBaRaCoCh, req *addrmap.Request) uint64 {
	org := m.Organization()
	lv := m.Levels()

	a := req.Addr & (1<<uint(org.TxOffset) - 1)
	shift := org.TxOffset
	for _, l := range []addrmap.LevelIndex{lv.Channel, lv.Row, lv.Bank, lv.BankGroup, lv.PseudoChannel, lv.Column} {
		if !l.Present() {
			continue
		}
		a |= uint64(req.AddrVec[l.Index()]) << uint(shift)
		shift += org.Levels[l.Index()].Bits
	}
	return a
}

func TestRoBaRaCoChRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, std := range dram.Standards() {
		dev, err := dram.Lookup(std, "")
		test.DemandSuccess(t, err)

		m, err := addrmap.NewRoBaRaCoCh(dev)
		test.DemandSuccess(t, err)

		mask := uint64(1)<<uint(m.Organization().AddressBits()) - 1

		req := &addrmap.Request{}
		for n := 0; n < 1000; n++ {
			req.Addr = rng.Uint64()
			test.DemandSuccess(t, m.Apply(req))
			test.ExpectEquality(t, reassemble(m, req), req.Addr&mask, std)
		}
	}
}
