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
	"slices"

	"github.com/hbmsim/addrmapper/dram"
	"github.com/hbmsim/addrmapper/prefs"
	"github.com/hbmsim/addrmapper/resources"
)

// DefaultPrefsFile is the name of the preferences file in the resources
// directory.
const DefaultPrefsFile = "preferences"

// Preferences for address mapping.
type Preferences struct {
	dsk *prefs.Disk

	// name of the mapper to use. see Names()
	Mapper prefs.String

	// DRAM standard and organization preset. see the dram package. changing
	// the standard clears an organization that does not belong to it, which
	// selects the default organization of the new standard
	Standard prefs.String
	Org      prefs.String

	// echo the log as it is written
	Log prefs.Bool

	// gating configuration for the GroupGated mapper
	ActiveChannels   prefs.Int
	GroupSelectBit   prefs.Int
	SnapshotInterval prefs.Int
	TraceCount       prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences loads the preferences from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFile(pth)
}

// NewPreferencesFile loads the preferences from the named file. Values not in
// the file keep their default values.
func NewPreferencesFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()
	p.Standard.SetHookPost(p.checkOrg)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("addrmap.mapper", &p.Mapper)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("addrmap.dram.standard", &p.Standard)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("addrmap.dram.org", &p.Org)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("addrmap.log", &p.Log)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("addrmap.groupgated.activeChannels", &p.ActiveChannels)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("addrmap.groupgated.groupSelectBit", &p.GroupSelectBit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("addrmap.groupgated.snapshotInterval", &p.SnapshotInterval)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("addrmap.groupgated.traceCount", &p.TraceCount)
	if err != nil {
		return nil, err
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Mapper.Set(GroupGatedID)
	p.Standard.Set("HBM4")
	p.Org.Set("HBM4_8Gb")
	p.Log.Set(false)
	p.ActiveChannels.Set(DefaultActiveChannels)
	p.GroupSelectBit.Set(DefaultGroupSelectBit)
	p.SnapshotInterval.Set(DefaultSnapshotInterval)
	p.TraceCount.Set(DefaultTraceCount)
}

// the organization is only kept if it is one of the standard's presets. an
// unknown standard leaves the organization alone; the error is reported when
// the device is looked up
func (p *Preferences) checkOrg(v prefs.Value) error {
	orgs, err := dram.Organizations(v.(string))
	if err != nil {
		return nil
	}
	if !slices.Contains(orgs, p.Org.String()) {
		p.Org.Set("")
	}
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(); err != nil {
		return err
	}

	// values are loaded in no particular order so the organization may have
	// been loaded after the standard
	return p.checkOrg(p.Standard.Get())
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// GatingConfig returns the configuration for a GroupGated mapper. Histogram
// snapshots are sent to the central logger.
func (p *Preferences) GatingConfig() GatingConfig {
	interval := p.SnapshotInterval.Get().(int)
	if interval < 0 {
		interval = 0
	}
	return GatingConfig{
		ActiveChannels:   p.ActiveChannels.Get().(int),
		GroupSelectBit:   p.GroupSelectBit.Get().(int),
		SnapshotInterval: uint64(interval),
		TraceCount:       p.TraceCount.Get().(int),
		Sink:             LogSink{},
	}
}
