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
	"fmt"
	"strings"
)

// Device is an implementation of the Model interface.
type Device struct {
	standard string
	org      string

	levels   []string
	lookup   map[string]int
	preset   []int
	count    []int
	prefetch int
	width    int
}

// NewDevice creates an uninitialised device. The counts are the number of
// units at each level and are not visible through Counts() until Init() has
// been called.
func NewDevice(standard string, org string, levels []string, counts []int, prefetch int, width int) *Device {
	dev := &Device{
		standard: standard,
		org:      org,
		levels:   append([]string{}, levels...),
		lookup:   make(map[string]int, len(levels)),
		preset:   append([]int{}, counts...),
		prefetch: prefetch,
		width:    width,
	}
	for i, l := range dev.levels {
		dev.lookup[l] = i
	}
	return dev
}

func (dev *Device) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (%s)", dev.standard, dev.org))
	for i, l := range dev.levels {
		if i < len(dev.count) {
			s.WriteString(fmt.Sprintf(" %s=%d", l, dev.count[i]))
		}
	}
	s.WriteString(fmt.Sprintf(" prefetch=%d width=%d", dev.prefetch, dev.width))
	return s.String()
}

// Init populates the organization counts.
func (dev *Device) Init() {
	dev.count = append(dev.count[:0], dev.preset...)
}

// Standard returns the name of the DRAM standard.
func (dev *Device) Standard() string {
	return dev.standard
}

// Org returns the name of the organization preset.
func (dev *Device) Org() string {
	return dev.org
}

// Levels implements the Model interface.
func (dev *Device) Levels() []string {
	return dev.levels
}

// Counts implements the Model interface.
func (dev *Device) Counts() []int {
	return dev.count
}

// Level implements the Model interface.
func (dev *Device) Level(name string) (int, bool) {
	idx, ok := dev.lookup[name]
	return idx, ok
}

// PrefetchSize implements the Model interface.
func (dev *Device) PrefetchSize() int {
	return dev.prefetch
}

// ChannelWidth implements the Model interface.
func (dev *Device) ChannelWidth() int {
	return dev.width
}
