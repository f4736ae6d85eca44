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

// ConfigurationError is the pattern for all errors caused by a DRAM model or
// mapper configuration that cannot produce a meaningful mapping. The
// placeholder is one of the detail errors below.
const ConfigurationError = "configuration error: %v"

// Detail error patterns. Use curated.Has() to test for these.
const (
	NoModel            = "no DRAM model"
	ModelNotReady      = "DRAM organization not ready (has the DRAM model been initialised?)"
	LevelCountMismatch = "organization count size mismatch (count=%d levels=%d)"
	InvalidLevelCount  = "count for %s level is not a power of two (%d)"
	InvalidTransfer    = "invalid transfer size (prefetch=%d width=%d)"
	InconsistentLevel  = "level lookup inconsistent for %s"
	MissingLevel       = "required level missing (%s)"
	MisplacedLevel     = "%s level must be at position %d"
	InvalidGating      = "invalid channel gating: %d active of %d channels"
	UnknownMapper      = "unknown address mapper (%s)"
)
