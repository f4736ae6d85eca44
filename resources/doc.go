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

// Package resources contains functions to prepare paths for addrmapper
// resources, such as the preferences file.
//
// For builds with the "release" build tag, the path returned by JoinPath()
// is rooted in the user's configuration directory. On modern Linux systems
// the full path would be something like:
//
//	/home/user/.config/addrmapper/
//
// For non-"release" builds, the path is rooted in the current working
// directory:
//
//	.addrmapper
package resources
