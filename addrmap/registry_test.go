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
	"github.com/hbmsim/addrmapper/test"
)

func TestRegistry(t *testing.T) {
	names := addrmap.Names()
	test.DemandEquality(t, len(names), 2)
	test.ExpectEquality(t, names[0], addrmap.GroupGatedID)
	test.ExpectEquality(t, names[1], addrmap.RoBaRaCoChID)

	for _, n := range names {
		m, err := addrmap.New(n, newHBM4(t), nil)
		test.DemandSuccess(t, err, n)
		test.ExpectEquality(t, m.ID(), n)
	}

	// names are not case sensitive
	m, err := addrmap.New("hbm4_groupmapper", newHBM4(t), nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.ID(), addrmap.GroupGatedID)

	m, err = addrmap.New("RoCoBaRaCh", newHBM4(t), nil)
	test.ExpectSuccess(t, curated.Is(err, addrmap.ConfigurationError))
	test.ExpectSuccess(t, curated.Has(err, addrmap.UnknownMapper))
	test.ExpectSuccess(t, m == nil)

	// construction errors do not result in a non-nil Mapper
	m, err = addrmap.New(addrmap.RoBaRaCoChID, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, m == nil)
}
