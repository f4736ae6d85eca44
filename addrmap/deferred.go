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
	"sync"
	"sync/atomic"

	"github.com/hbmsim/addrmapper/dram"
)

// Deferred postpones the construction of a mapper until the first call to
// Apply(). This is for hosts that must wire the mapper before the DRAM model
// has been initialised.
//
// If construction fails the error is returned by that and every subsequent
// call to Apply(). Construction is never retried.
type Deferred struct {
	name  string
	dev   dram.Model
	prefs *Preferences

	once   sync.Once
	ready  atomic.Bool
	mapper Mapper
	err    error
}

// Defer returns a Deferred for the named mapper. The DRAM model and the
// preferences are not examined until the first call to Apply(). A nil
// preferences value means the default configuration.
func Defer(name string, dev dram.Model, prefs *Preferences) *Deferred {
	return &Deferred{
		name:  name,
		dev:   dev,
		prefs: prefs,
	}
}

func (d *Deferred) bind() {
	d.mapper, d.err = New(d.name, d.dev, d.prefs)
	d.ready.Store(d.err == nil)
}

// ID implements the Mapper interface. Until the mapper has been constructed
// this is the name given to Defer(), afterwards it is the registered name.
func (d *Deferred) ID() string {
	if d.ready.Load() {
		return d.mapper.ID()
	}
	return d.name
}

// Bind constructs the mapper if it has not been constructed already. Returns
// the construction error, which is also returned by every call to Apply().
func (d *Deferred) Bind() error {
	d.once.Do(d.bind)
	return d.err
}

// Organization implements the Mapper interface. Returns nil until the first
// successful Apply().
func (d *Deferred) Organization() *Organization {
	if !d.ready.Load() {
		return nil
	}
	return d.mapper.Organization()
}

// Ready returns true once the underlying mapper has been constructed.
func (d *Deferred) Ready() bool {
	return d.ready.Load()
}

// Mapper returns the underlying mapper or nil if it has not been
// constructed.
func (d *Deferred) Mapper() Mapper {
	if !d.ready.Load() {
		return nil
	}
	return d.mapper
}

// Apply implements the Mapper interface.
func (d *Deferred) Apply(req *Request) error {
	if err := d.Bind(); err != nil {
		return err
	}
	return d.mapper.Apply(req)
}
