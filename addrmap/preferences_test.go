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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbmsim/addrmapper/addrmap"
	"github.com/hbmsim/addrmapper/dram"
	"github.com/hbmsim/addrmapper/prefs"
	"github.com/hbmsim/addrmapper/test"
)

func TestPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := addrmap.NewPreferencesFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Mapper.String(), addrmap.GroupGatedID)

	cfg := p.GatingConfig()
	test.ExpectEquality(t, cfg.ActiveChannels, addrmap.DefaultActiveChannels)
	test.ExpectEquality(t, cfg.GroupSelectBit, addrmap.DefaultGroupSelectBit)
	test.ExpectEquality(t, cfg.SnapshotInterval, uint64(addrmap.DefaultSnapshotInterval))

	test.ExpectSuccess(t, p.ActiveChannels.Set(8))
	test.ExpectSuccess(t, p.Mapper.Set(addrmap.RoBaRaCoChID))
	test.DemandSuccess(t, p.Save())

	q, err := addrmap.NewPreferencesFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.ActiveChannels.Get().(int), 8)
	test.ExpectEquality(t, q.Mapper.String(), addrmap.RoBaRaCoChID)
	test.ExpectEquality(t, q.GatingConfig().ActiveChannels, 8)

	// a negative interval disables snapshots
	test.ExpectSuccess(t, q.SnapshotInterval.Set(-1))
	test.ExpectEquality(t, q.GatingConfig().SnapshotInterval, uint64(0))
}

func TestPreferencesCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("addrmap.groupgated.activeChannels::4; addrmap.groupgated.groupSelectBit::12")
	p, err := addrmap.NewPreferencesFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	cfg := p.GatingConfig()
	test.ExpectEquality(t, cfg.ActiveChannels, 4)
	test.ExpectEquality(t, cfg.GroupSelectBit, 12)

	m, err := addrmap.NewGroupGated(newHBM4(t), cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Groups(), 8)
	test.ExpectEquality(t, m.GroupSelectPos(), 7)
}

func TestPreferencesStandardChange(t *testing.T) {
	p, err := addrmap.NewPreferencesFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Org.String(), "HBM4_8Gb")

	// an organization that belongs to the new standard is kept
	test.ExpectSuccess(t, p.Standard.Set("HBM4"))
	test.ExpectEquality(t, p.Org.String(), "HBM4_8Gb")

	// any other organization is cleared so that the default for the
	// standard is used
	test.ExpectSuccess(t, p.Standard.Set("DDR4"))
	test.ExpectEquality(t, p.Org.String(), "")

	dev, err := dram.Lookup(p.Standard.String(), p.Org.String())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.Org(), "DDR4_8Gb_x8")
}

func TestPreferencesStaleOrganization(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	// a file written by hand with an organization from another standard
	data := fmt.Sprintf("%s\naddrmap.dram.org :: HBM4_8Gb\naddrmap.dram.standard :: DDR4\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	p, err := addrmap.NewPreferencesFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Standard.String(), "DDR4")
	test.ExpectEquality(t, p.Org.String(), "")

	// standard from the command line
	prefs.PushCommandLineStack("addrmap.dram.standard::HBM3")
	p, err = addrmap.NewPreferencesFile(filepath.Join(t.TempDir(), "preferences"))
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Standard.String(), "HBM3")
	test.ExpectEquality(t, p.Org.String(), "")
}
