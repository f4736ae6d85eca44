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

// Package prefs facilitates the storage of preferences to disk.
//
// Preference values are typed (Bool, Int, String) and are added to a Disk
// instance with a key. The Disk instance saves and loads the values to the
// named file. The file format is a line per value:
//
//	addrmap.groupgated.activeChannels :: 16
//
// Keys in the file that are not known to a Disk instance are preserved when
// the Disk is saved. More than one Disk instance can therefore share the same
// file.
//
// Preferences can be overridden for a single run of the program with the
// command line stack. See PushCommandLineStack(). Overrides are applied
// during Load() and are never saved unless Save() is called explicitly.
package prefs
