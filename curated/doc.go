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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// string and placeholder values, in the same way as fmt.Errorf(), but the
// pattern is remembered so that the error can be identified later with the
// Is() function:
//
//	e := curated.Errorf("configuration error: %v", "row level missing")
//
//	if curated.Is(e, "configuration error: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain. Curated errors wrapped inside other curated
// errors, or inside errors created by fmt.Errorf() with the %w verb, are
// both found by Has().
//
// Patterns should be stored as const strings, suitably named and commented,
// in the package that creates them.
//
// The Error() function normalises the message by removing duplicate
// adjacent parts of the chain. Parts are separated by the sub-string ": ".
// So wrapping a configuration error inside another configuration error
// results in:
//
//	configuration error: row level missing
//
// and not:
//
//	configuration error: configuration error: row level missing
package curated
