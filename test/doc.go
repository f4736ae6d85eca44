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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions test for a condition and report failure with
// t.Errorf(), allowing the test to continue. The Demand*() functions are the
// same but stop the test with t.Fatalf(). Demands are useful when later
// parts of a test depend on the value being correct. For example, testing
// that the length of a coordinate vector is correct before indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret values in a way suitable for
// their type:
//
//	bool -> true is success
//	error -> nil is success
//
// The untyped nil is considered a success because that is how errors
// usually work.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison with expected strings.
package test
