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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/hbmsim/addrmapper/addrmap"
	"github.com/hbmsim/addrmapper/curated"
	"github.com/hbmsim/addrmapper/dram"
	"github.com/hbmsim/addrmapper/logger"
	"github.com/hbmsim/addrmapper/modalflag"
	"github.com/hbmsim/addrmapper/performance"
	"github.com/hbmsim/addrmapper/prefs"
	"github.com/hbmsim/addrmapper/report"
	"github.com/hbmsim/addrmapper/statsview"
	"github.com/hbmsim/addrmapper/terminal"
	"github.com/hbmsim/addrmapper/trace"
	"github.com/hbmsim/addrmapper/version"
)

// exit values.
const (
	exitOK        = 0
	exitParse     = 10
	exitModeError = 20
)

// number of requests between checks for an interrupt during long running
// modes.
const interruptBrake = 4096

func main() {
	// #ctrlc cancels the context. modes that loop over many requests check
	// the context periodically
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	var errOut io.Writer = os.Stderr
	if terminal.IsTerminal(os.Stderr) {
		errOut = terminal.NewColorizer(os.Stderr, "red")
	}

	exitVal := launch(ctx, os.Args[1:], os.Stdout, errOut)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program.
func launch(ctx context.Context, args []string, output io.Writer, errOut io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MAP", "SWEEP", "DUMP", "PERFORMANCE", "LIST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(errOut, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "MAP":
		err = mapAddresses(ctx, md)

	case "SWEEP":
		err = sweep(ctx, md)

	case "DUMP":
		err = dump(md)

	case "PERFORMANCE":
		err = perform(md)

	case "LIST":
		err = list(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Fprintf(errOut, "* error in %s mode\n%v\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// the flags shared by all modes that create a mapper.
type mapperFlags struct {
	mapper    *string
	standard  *string
	org       *string
	prefs     *string
	prefsFile *string
	savePrefs *bool
	log       *bool
	stats     *bool
}

func addMapperFlags(md *modalflag.Modes) *mapperFlags {
	f := &mapperFlags{
		mapper:    md.AddString("mapper", "", fmt.Sprintf("address mapper: %s", strings.Join(addrmap.Names(), ", "))),
		standard:  md.AddString("dram", "", fmt.Sprintf("DRAM standard: %s", strings.Join(dram.Standards(), ", "))),
		org:       md.AddString("org", "", "DRAM organization preset (see LIST mode)"),
		prefs:     md.AddString("prefs", "", "preferences override, eg. \"addrmap.groupgated.activeChannels::8\""),
		prefsFile: md.AddString("prefsfile", "", "preferences file to use instead of the default"),
		savePrefs: md.AddBool("saveprefs", false, "save preferences (including overrides) before mapping"),
		log:       md.AddBool("log", false, "echo log to stdout"),
	}

	if statsview.Available() {
		f.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	return f
}

// build the mapper described by the flags and the preferences file. flag
// values take priority over the preferences.
func (f *mapperFlags) build(md *modalflag.Modes) (addrmap.Mapper, error) {
	if f.stats != nil && *f.stats {
		statsview.Launch(md.Output)
	}

	prefs.PushCommandLineStack(*f.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "addrmapper", "unused preferences: %s", unused)
		}
	}()

	var p *addrmap.Preferences
	var err error
	if *f.prefsFile != "" {
		p, err = addrmap.NewPreferencesFile(*f.prefsFile)
	} else {
		p, err = addrmap.NewPreferences()
	}
	if err != nil {
		return nil, err
	}

	// the -log flag turns echoing on but never turns off a log preference
	p.Log.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(md.Output)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})
	p.Log.Set(*f.log || p.Log.Get().(bool))

	if *f.mapper != "" {
		p.Mapper.Set(*f.mapper)
	}
	if *f.standard != "" {
		p.Standard.Set(*f.standard)
	}
	if *f.org != "" {
		p.Org.Set(*f.org)
	}

	if *f.savePrefs {
		if err := p.Save(); err != nil {
			return nil, err
		}
	}

	dev, err := dram.Lookup(p.Standard.String(), p.Org.String())
	if err != nil {
		return nil, curated.Errorf(addrmap.ConfigurationError, err)
	}
	logger.Logf(logger.Allow, "addrmapper", "%s", dev)

	// binding now rather than on the first request means configuration
	// errors are reported before any output is produced
	m := addrmap.Defer(p.Mapper.String(), dev, p)
	if err := m.Bind(); err != nil {
		return nil, err
	}

	return m, nil
}

// map the addresses given as arguments or in a trace file.
func mapAddresses(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Addresses are hex (with 0x prefix) or decimal. Trace files contain one\naddress per line, optionally preceded by LD or ST.")

	f := addMapperFlags(md)
	traceFile := md.AddString("trace", "", "trace file to map (- for stdin)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *traceFile == "" && len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("addresses or a trace file required for %s mode", md)
	}
	if *traceFile != "" && len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("addresses and a trace file cannot both be specified in %s mode", md)
	}

	m, err := f.build(md)
	if err != nil {
		return err
	}
	org := m.Organization()

	req := &addrmap.Request{}
	mapEntry := func(e trace.Entry) error {
		if e.Line%interruptBrake == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		req.Addr = e.Addr
		if err := m.Apply(req); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "%s %s\n", e.Op, report.Vector(req, org))
		return nil
	}

	if *traceFile == "" {
		for i, a := range md.RemainingArgs() {
			e, ok, err := trace.Parse(a, i+1)
			if err != nil {
				return err
			}
			if ok {
				if err := mapEntry(e); err != nil {
					return err
				}
			}
		}
		return nil
	}

	var r io.Reader
	if *traceFile == "-" {
		r = os.Stdin
	} else {
		tf, err := os.Open(*traceFile)
		if err != nil {
			return err
		}
		defer tf.Close()
		r = tf
	}

	return trace.Read(r, mapEntry)
}

// map a regular sequence of addresses and show the resulting channel
// histogram.
func sweep(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	f := addMapperFlags(md)
	count := md.AddInt("count", 1<<16, "number of addresses to map")
	start := md.AddUint64("start", 0, "first address")
	stride := md.AddUint64("stride", 64, "distance between addresses")
	chart := md.AddString("chart", "", "write channel histogram as HTML chart to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := f.build(md)
	if err != nil {
		return err
	}
	org := m.Organization()

	ch := org.Resolve(dram.Channel)
	if !ch.Present() {
		return curated.Errorf(addrmap.ConfigurationError, curated.Errorf(addrmap.MissingLevel, dram.Channel))
	}

	hist := addrmap.NewHistogram(md.Mode(), org.Levels[ch.Index()].Count, 0, nil)

	req := &addrmap.Request{Addr: *start}
	for i := 0; i < *count; i++ {
		if i%interruptBrake == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if err := m.Apply(req); err != nil {
			return err
		}
		hist.Add(req.AddrVec[ch.Index()])
		req.Addr += *stride
	}

	counts := hist.Counts()
	for c, n := range counts {
		fmt.Fprintf(md.Output, "ch%-3d %d\n", c, n)
	}

	if *chart != "" {
		cf, err := os.Create(*chart)
		if err != nil {
			return err
		}
		defer cf.Close()

		title := fmt.Sprintf("%s stride=%d", m.ID(), *stride)
		if err := report.Chart(cf, title, counts); err != nil {
			return err
		}
	}

	return nil
}

// write the organization snapshot of the mapper.
func dump(md *modalflag.Modes) error {
	md.NewMode()

	f := addMapperFlags(md)
	summary := md.AddBool("summary", false, "text summary instead of graphviz output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := f.build(md)
	if err != nil {
		return err
	}

	if *summary {
		fmt.Fprint(md.Output, m.Organization().Summary())
		return nil
	}

	report.Dump(md.Output, m.Organization())
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	f := addMapperFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "produce profiling reports: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := f.build(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *duration)
}

// list the mappers and DRAM standards.
func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, "mappers:")
	for _, n := range addrmap.Names() {
		fmt.Fprintf(md.Output, "  %s\n", n)
	}

	fmt.Fprintln(md.Output, "standards:")
	for _, s := range dram.Standards() {
		orgs, err := dram.Organizations(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "  %s: %s\n", s, strings.Join(orgs, ", "))
	}

	return nil
}
