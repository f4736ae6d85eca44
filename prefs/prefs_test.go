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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbmsim/addrmapper/prefs"
	"github.com/hbmsim/addrmapper/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "addrmapper_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	// failed Set() leaves the value unchanged
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("mapper", &s))
	test.ExpectSuccess(t, dsk.Add("channels", &n))

	// loading a file that doesn't exist is fine
	test.ExpectSuccess(t, dsk.Load())

	s.Set("HBM4_GroupMapper")
	n.Set(16)
	test.DemandSuccess(t, dsk.Save())

	s.Reset()
	n.Reset()
	test.ExpectEquality(t, s.String(), "")
	test.ExpectEquality(t, n.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "HBM4_GroupMapper")
	test.ExpectEquality(t, n.Get().(int), 16)
}

// write values from different prefs.Disk instances. tests that the second
// writing doesn't clobber the results of the first write.
func TestSharedFile(t *testing.T) {
	fn := getTmpPrefFile(t)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.Bool
	test.ExpectSuccess(t, dskA.Add("a", &a))
	a.Set(true)
	test.DemandSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.String
	test.ExpectSuccess(t, dskB.Add("b", &b))
	b.Set("bar")
	test.DemandSuccess(t, dskB.Save())

	cmpTmpFile(t, fn, "a :: true\nb :: bar\n")
}

func TestCommandLineOverride(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("channels", &n))
	n.Set(16)
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("channels::8")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, n.Get().(int), 8)

	// the override has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var a, b prefs.Int
	test.ExpectSuccess(t, dsk.Add("key", &a))
	test.ExpectFailure(t, dsk.Add("key", &b))
	test.ExpectFailure(t, dsk.Add("bad :: key", &b))
}

func TestHookPost(t *testing.T) {
	var b prefs.Bool
	var hookB bool
	b.SetHookPost(func(v prefs.Value) error {
		hookB = v.(bool)
		return nil
	})
	test.ExpectSuccess(t, b.Set("true"))
	test.ExpectSuccess(t, hookB)
	test.ExpectSuccess(t, b.Set(false))
	test.ExpectFailure(t, hookB)

	var s prefs.String
	var hookS string
	s.SetHookPost(func(v prefs.Value) error {
		hookS = v.(string)
		return nil
	})
	test.ExpectSuccess(t, s.Set(" foo "))
	test.ExpectEquality(t, hookS, "foo")

	// errors from the hook are returned by Set()
	s.SetHookPost(func(v prefs.Value) error {
		return fmt.Errorf("rejected %v", v)
	})
	test.ExpectFailure(t, s.Set("bar"))
	test.ExpectEquality(t, s.String(), "bar")
}
