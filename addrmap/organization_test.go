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
	"testing"

	"github.com/hbmsim/addrmapper/addrmap"
	"github.com/hbmsim/addrmapper/curated"
	"github.com/hbmsim/addrmapper/dram"
	"github.com/hbmsim/addrmapper/test"
)

// a device with only the levels required by every mapper. the transaction
// size is 32 bytes and the column loses two bits to the prefetch
func newCanonicalDevice() *dram.Device {
	dev := dram.NewDevice("TEST", "canonical",
		[]string{dram.Channel, dram.Bank, dram.Row, dram.Column},
		[]int{32, 8, 65536, 256}, 4, 64)
	dev.Init()
	return dev
}

func TestOrganization(t *testing.T) {
	org, err := addrmap.NewOrganization(newCanonicalDevice())
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, org.TxOffset, 5)
	test.ExpectEquality(t, org.PrefetchBits, 2)
	test.ExpectEquality(t, org.Len(), 4)

	for i, bits := range []int{5, 3, 16, 6} {
		test.ExpectEquality(t, org.Levels[i].Bits, bits, org.Levels[i].Name)
	}
	test.ExpectEquality(t, org.AddressBits(), 35)

	test.ExpectSuccess(t, org.Resolve(dram.Bank).Present())
	test.ExpectEquality(t, org.Resolve(dram.Bank).Index(), 1)
	test.ExpectFailure(t, org.Resolve(dram.BankGroup).Present())
	test.ExpectEquality(t, org.Resolve(dram.BankGroup).Index(), addrmap.Unset)

	test.ExpectEquality(t, org.String(), "channel:5 bank:3 row:16 column:6 tx:5")
}

func TestOrganizationSmallColumn(t *testing.T) {
	// a column narrower than the prefetch has no bits left
	dev := dram.NewDevice("TEST", "small",
		[]string{dram.Channel, dram.Bank, dram.Row, dram.Column},
		[]int{2, 2, 16, 2}, 8, 32)
	dev.Init()

	org, err := addrmap.NewOrganization(dev)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, org.Levels[3].Bits, 0)
}

func TestOrganizationErrors(t *testing.T) {
	_, err := addrmap.NewOrganization(nil)
	test.ExpectSuccess(t, curated.Has(err, addrmap.NoModel))

	// counts are not available until the device is initialised
	dev := dram.NewDevice("TEST", "notready",
		[]string{dram.Channel, dram.Bank, dram.Row, dram.Column},
		[]int{32, 8, 65536, 256}, 4, 64)
	_, err = addrmap.NewOrganization(dev)
	test.ExpectSuccess(t, curated.Is(err, addrmap.ConfigurationError))
	test.ExpectSuccess(t, curated.Has(err, addrmap.ModelNotReady))

	dev = dram.NewDevice("TEST", "mismatch",
		[]string{dram.Channel, dram.Bank, dram.Row, dram.Column},
		[]int{32, 8, 65536}, 4, 64)
	dev.Init()
	_, err = addrmap.NewOrganization(dev)
	test.ExpectSuccess(t, curated.Is(err, addrmap.ConfigurationError))
	test.ExpectSuccess(t, curated.Has(err, addrmap.LevelCountMismatch))

	dev = dram.NewDevice("TEST", "npot",
		[]string{dram.Channel, dram.Bank, dram.Row, dram.Column},
		[]int{32, 8, 3 << 14, 256}, 4, 64)
	dev.Init()
	_, err = addrmap.NewOrganization(dev)
	test.ExpectSuccess(t, curated.Has(err, addrmap.InvalidLevelCount))

	dev = dram.NewDevice("TEST", "notransfer",
		[]string{dram.Channel, dram.Bank, dram.Row, dram.Column},
		[]int{32, 8, 65536, 256}, 0, 64)
	dev.Init()
	_, err = addrmap.NewOrganization(dev)
	test.ExpectSuccess(t, curated.Has(err, addrmap.InvalidTransfer))
}

func TestOrganizationRepeatable(t *testing.T) {
	dev := newCanonicalDevice()

	a, err := addrmap.NewOrganization(dev)
	test.DemandSuccess(t, err)
	b, err := addrmap.NewOrganization(dev)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, a.Summary(), b.Summary())
}
