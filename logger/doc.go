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

// Package logger is the central log for the application. Entries are tagged
// strings. The tag is usually the ID of the component making the entry, for
// example the name of an address mapper.
//
// The log is bounded and consecutive duplicate entries are folded into one
// entry with a repeat count. This is important for log entries made from the
// mapping hot path, which can be called many millions of times.
//
// Every log request is accompanied by a Permission. For most code the Allow
// value is sufficient.
package logger
