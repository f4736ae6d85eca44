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
	"sort"
	"strings"

	"github.com/hbmsim/addrmapper/curated"
	"github.com/hbmsim/addrmapper/dram"
)

type constructor func(dev dram.Model, prefs *Preferences) (Mapper, error)

// the mappers available to New(). the table is fixed at compile time
var registry = map[string]constructor{
	GroupGatedID: func(dev dram.Model, prefs *Preferences) (Mapper, error) {
		cfg := DefaultGatingConfig()
		if prefs != nil {
			cfg = prefs.GatingConfig()
		}
		m, err := NewGroupGated(dev, cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	},
	RoBaRaCoChID: func(dev dram.Model, _ *Preferences) (Mapper, error) {
		m, err := NewRoBaRaCoCh(dev)
		if err != nil {
			return nil, err
		}
		return m, nil
	},
}

// Names returns the sorted list of mapper names accepted by New().
func Names() []string {
	n := make([]string, 0, len(registry))
	for k := range registry {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// New creates the named mapper for the DRAM model. The name is case
// insensitive. A nil preferences value means the default configuration.
func New(name string, dev dram.Model, prefs *Preferences) (Mapper, error) {
	for k, c := range registry {
		if strings.EqualFold(k, name) {
			return c(dev, prefs)
		}
	}
	return nil, curated.Errorf(ConfigurationError, curated.Errorf(UnknownMapper, name))
}
