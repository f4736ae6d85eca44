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

package performance_test

import (
	"strings"
	"testing"

	"github.com/hbmsim/addrmapper/addrmap"
	"github.com/hbmsim/addrmapper/dram"
	"github.com/hbmsim/addrmapper/performance"
	"github.com/hbmsim/addrmapper/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, MEM")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfile("none")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("all")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	test.ExpectApproximate(t, performance.CalcRate(1000, 2), 500, 0.001)
	test.ExpectEquality(t, performance.CalcRate(1000, 0), 0.0)
}

func TestCheck(t *testing.T) {
	dev, err := dram.Lookup("HBM4", "")
	test.DemandSuccess(t, err)

	m, err := addrmap.NewRoBaRaCoCh(dev)
	test.DemandSuccess(t, err)

	s := &strings.Builder{}
	test.DemandSuccess(t, performance.Check(s, performance.ProfileNone, m, "50ms"))
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), addrmap.RoBaRaCoChID))
	test.ExpectSuccess(t, strings.Contains(s.String(), "mappings/sec"))

	test.ExpectFailure(t, performance.Check(s, performance.ProfileNone, m, "soon"))
}
