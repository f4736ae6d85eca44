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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are first given with NewArgs() and then parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MAP", "SWEEP", "DUMP")
//	_, _ = md.Parse()
//
// After Parse(), Mode() returns the selected sub-mode. The first sub-mode
// added is the default if no sub-mode is named on the command line. Sub-mode
// comparisons are case insensitive.
//
// Flags for the selected mode are added after a call to NewMode() and then
// parsed with a further call to Parse():
//
//	md.NewMode()
//	mapper := md.AddString("mapper", "", "address mapper")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseError:
//		return err
//	case modalflag.ParseHelp:
//		return nil
//	}
//
// Non-flag arguments remaining after a Parse() are available through
// RemainingArgs() and GetArg().
package modalflag
