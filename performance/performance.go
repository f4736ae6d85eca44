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

package performance

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/hbmsim/addrmapper/addrmap"
)

// number of mappings between checks of the timer. checking the timer channel
// is relatively expensive compared to a single mapping
const performanceBrake = 1024

// sentinal error returned by the mapping loop.
var timedOut = errors.New("performance timed out")

// Check the throughput of the mapper by mapping pseudo-random addresses for
// the specified duration.
//
// A cpu, memory profile, a trace (or a combination of those) is created as
// defined by the Profile argument.
func Check(output io.Writer, profile Profile, m addrmap.Mapper, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// same addresses for every run so that results are comparable
	rng := rand.New(rand.NewSource(0))
	req := &addrmap.Request{}

	var n uint64
	var elapsed time.Duration

	runner := func() error {
		// signals when duration has elapsed
		timerChan := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		brake := 0
		for {
			req.Addr = rng.Uint64()
			if err := m.Apply(req); err != nil {
				return err
			}
			n++

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return timedOut
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	rate := CalcRate(n, elapsed.Seconds())
	output.Write([]byte(fmt.Sprintf("%s: %.0f mappings/sec (%d mappings in %.2f seconds)\n", m.ID(), rate, n, elapsed.Seconds())))

	return nil
}

// CalcRate takes the number of mappings and duration (in seconds) and
// returns the mappings-per-second.
func CalcRate(n uint64, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(n) / duration
}
