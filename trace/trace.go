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

package trace

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/hbmsim/addrmapper/curated"
)

// Sentinal error patterns.
const (
	MalformedLine    = "trace: line %d: %v"
	UnknownOperation = "unknown operation (%s)"
	InvalidAddress   = "invalid address (%s)"
	TooManyFields    = "too many fields"
)

// Op is the type of memory operation in a trace entry.
type Op int

// List of valid Op values. Entries without an operation are Load.
const (
	Load Op = iota
	Store
)

func (op Op) String() string {
	switch op {
	case Load:
		return "LD"
	case Store:
		return "ST"
	}
	return "??"
}

// Entry is a single request from a trace.
type Entry struct {
	Op   Op
	Addr uint64

	// line number in the trace. counts from one
	Line int
}

func parseOp(s string) (Op, error) {
	switch strings.ToUpper(s) {
	case "LD", "R":
		return Load, nil
	case "ST", "W":
		return Store, nil
	}
	return Load, curated.Errorf(UnknownOperation, s)
}

func parseAddr(s string) (uint64, error) {
	var a uint64
	var err error

	if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		a, err = strconv.ParseUint(h, 16, 64)
	} else {
		a, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, curated.Errorf(InvalidAddress, s)
	}

	return a, nil
}

// Parse a single line of a trace. The line number is only used for the
// Entry and for errors. Returns false if the line contains no request.
func Parse(line string, num int) (Entry, bool, error) {
	s := strings.TrimSpace(line)
	if s == "" || strings.HasPrefix(s, "#") {
		return Entry{}, false, nil
	}

	e := Entry{Line: num}

	var err error

	f := strings.Fields(s)
	switch len(f) {
	case 1:
		e.Addr, err = parseAddr(f[0])
	case 2:
		e.Op, err = parseOp(f[0])
		if err == nil {
			e.Addr, err = parseAddr(f[1])
		}
	default:
		err = curated.Errorf(TooManyFields)
	}

	if err != nil {
		return Entry{}, false, curated.Errorf(MalformedLine, num, err)
	}

	return e, true, nil
}

// Read every request in the trace, calling f for each one in order. Reading
// stops at the first malformed line or the first error returned by f.
func Read(r io.Reader, f func(Entry) error) error {
	scanner := bufio.NewScanner(r)

	num := 0
	for scanner.Scan() {
		num++

		e, ok, err := Parse(scanner.Text(), num)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if err := f(e); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(MalformedLine, num+1, err)
	}

	return nil
}
