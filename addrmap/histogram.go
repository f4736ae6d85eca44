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
	"sync/atomic"

	"github.com/hbmsim/addrmapper/logger"
)

// Sink receives periodic snapshots of a channel histogram. A Sink shared
// between several mappers can be used to aggregate their histograms.
type Sink interface {
	HistogramSnapshot(id string, seen uint64, counts []uint64)
}

// LogSink writes histogram snapshots to the central logger. Channels with a
// zero count are not logged.
type LogSink struct{}

// HistogramSnapshot implements the Sink interface.
func (LogSink) HistogramSnapshot(id string, seen uint64, counts []uint64) {
	logger.Logf(logger.Allow, "ch-hist", "%s after %d requests", id, seen)
	for ch, n := range counts {
		if n > 0 {
			logger.Logf(logger.Allow, "ch-hist", "%s ch%d=%d", id, ch, n)
		}
	}
}

// Histogram counts requests per channel. It is purely observational and has
// no influence on the mapping. Safe for concurrent use.
type Histogram struct {
	id       string
	counts   []atomic.Uint64
	seen     atomic.Uint64
	interval uint64
	sink     Sink
}

// NewHistogram is the preferred method of initialisation for the Histogram
// type. A snapshot is sent to the sink every interval requests. An interval
// of zero or a nil sink disables snapshots.
func NewHistogram(id string, channels int, interval uint64, sink Sink) *Histogram {
	return &Histogram{
		id:       id,
		counts:   make([]atomic.Uint64, channels),
		interval: interval,
		sink:     sink,
	}
}

// Add a request for the channel. Returns the number of requests seen,
// including this one. Out of range channels are counted as seen but are not
// added to any channel.
func (h *Histogram) Add(ch int) uint64 {
	if ch >= 0 && ch < len(h.counts) {
		h.counts[ch].Add(1)
	}

	n := h.seen.Add(1)
	if h.sink != nil && h.interval > 0 && n%h.interval == 0 {
		h.sink.HistogramSnapshot(h.id, n, h.Counts())
	}

	return n
}

// Counts returns a copy of the per-channel counts.
func (h *Histogram) Counts() []uint64 {
	c := make([]uint64, len(h.counts))
	for i := range h.counts {
		c[i] = h.counts[i].Load()
	}
	return c
}

// Seen returns the number of requests added to the histogram.
func (h *Histogram) Seen() uint64 {
	return h.seen.Load()
}
