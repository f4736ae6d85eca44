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

import (
	"sort"
	"strings"

	"github.com/hbmsim/addrmapper/curated"
)

// Sentinal error patterns.
const (
	UnknownStandard     = "dram: unknown standard (%s)"
	UnknownOrganization = "dram: unknown organization (%s) for %s"
)

type standard struct {
	levels     []string
	prefetch   int
	width      int
	defaultOrg string
	orgs       map[string][]int
}

var hbmLevels = []string{Channel, PseudoChannel, BankGroup, Bank, Row, Column}

// the catalogue of standards. organization counts are in the same order as
// the standard's levels
var standards = map[string]standard{
	"HBM2": {
		levels:     hbmLevels,
		prefetch:   4,
		width:      64,
		defaultOrg: "HBM2_8Gb",
		orgs: map[string][]int{
			"HBM2_2Gb": {8, 2, 4, 4, 1 << 13, 1 << 6},
			"HBM2_4Gb": {8, 2, 4, 4, 1 << 14, 1 << 6},
			"HBM2_8Gb": {8, 2, 4, 4, 1 << 15, 1 << 6},
		},
	},
	"HBM3": {
		levels:     hbmLevels,
		prefetch:   8,
		width:      32,
		defaultOrg: "HBM3_16Gb",
		orgs: map[string][]int{
			"HBM3_4Gb":  {16, 2, 4, 4, 1 << 13, 1 << 6},
			"HBM3_8Gb":  {16, 2, 4, 4, 1 << 14, 1 << 6},
			"HBM3_16Gb": {16, 2, 4, 4, 1 << 15, 1 << 6},
		},
	},
	"HBM4": {
		levels:     hbmLevels,
		prefetch:   8,
		width:      32,
		defaultOrg: "HBM4_8Gb",
		orgs: map[string][]int{
			"HBM4_8Gb":  {32, 2, 4, 4, 1 << 14, 1 << 6},
			"HBM4_16Gb": {32, 2, 4, 4, 1 << 15, 1 << 6},
		},
	},
	"DDR4": {
		levels:     []string{Channel, Rank, BankGroup, Bank, Row, Column},
		prefetch:   8,
		width:      64,
		defaultOrg: "DDR4_8Gb_x8",
		orgs: map[string][]int{
			"DDR4_4Gb_x8":  {1, 1, 4, 4, 1 << 15, 1 << 10},
			"DDR4_8Gb_x8":  {1, 1, 4, 4, 1 << 16, 1 << 10},
			"DDR4_16Gb_x8": {1, 1, 4, 4, 1 << 17, 1 << 10},
		},
	},
}

// Standards returns the sorted names of the standards in the catalogue.
func Standards() []string {
	s := make([]string, 0, len(standards))
	for k := range standards {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// Organizations returns the sorted names of the organization presets for a
// standard.
func Organizations(name string) ([]string, error) {
	std, ok := standards[strings.ToUpper(name)]
	if !ok {
		return nil, curated.Errorf(UnknownStandard, name)
	}
	s := make([]string, 0, len(std.orgs))
	for k := range std.orgs {
		s = append(s, k)
	}
	sort.Strings(s)
	return s, nil
}

// Lookup returns an initialised device for the named standard and
// organization. The empty string selects the standard's default
// organization.
func Lookup(name string, org string) (*Device, error) {
	name = strings.ToUpper(name)

	std, ok := standards[name]
	if !ok {
		return nil, curated.Errorf(UnknownStandard, name)
	}

	if org == "" {
		org = std.defaultOrg
	}

	counts, ok := std.orgs[org]
	if !ok {
		return nil, curated.Errorf(UnknownOrganization, org, name)
	}

	dev := NewDevice(name, org, std.levels, counts, std.prefetch, std.width)
	dev.Init()
	return dev, nil
}
