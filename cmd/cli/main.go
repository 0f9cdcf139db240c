package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"monopoly-sim/internal/analysis"
	"monopoly-sim/internal/config"
	"monopoly-sim/internal/display"
	"monopoly-sim/internal/logging"
	"monopoly-sim/internal/outcome"
	"monopoly-sim/internal/strategy"
	"monopoly-sim/internal/sweep"
)

// errUsage marks bad invocations; they exit 2 instead of 1.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "compute":
		err = cmdCompute(args[1:], stdout)
	case "curves":
		err = cmdCurves(args[1:], stdout)
	case "sweep":
		err = cmdSweep(args[1:], stdout)
	case "compare":
		err = cmdCompare(args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		logging.New(stderr, os.Getenv("LOG_LEVEL"), os.Getenv("API_ENV")).Error(args[0]+" failed", "err", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  cli compute [--config examples/config.yaml] [--q-max 200 --p-max 120 --mc 40 --mode optimal --monopoly-q 66 --probe-q 100]")
	fmt.Fprintln(w, "  cli curves  [--config f.yaml] --out results/curves.csv [--points 300]")
	fmt.Fprintln(w, "  cli sweep   [--config f.yaml] --axis mc --from 0 --to 120 --steps 13 --out results/sweep.csv")
	fmt.Fprintln(w, "  cli compare --config a.yaml,b.yaml,...")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "notes:")
	fmt.Fprintln(w, "  - market flags override the config file; without either the textbook market (200, 120, 40) is used")
	fmt.Fprintln(w, "  - mode is optimal (MR = MC) or chosen (monopolist produces --monopoly-q, default Q_max/3)")
}

// marketFlags are shared by every subcommand that computes a single scenario.
type marketFlags struct {
	fs        *flag.FlagSet
	cfgPath   *string
	qMax      *float64
	pMax      *float64
	mc        *float64
	mode      *string
	monopolyQ *float64
	probeQ    *float64
}

func newMarketFlags(name string) *marketFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &marketFlags{
		fs:        fs,
		cfgPath:   fs.String("config", "", "Path to YAML scenario config"),
		qMax:      fs.Float64("q-max", 200, "Quantity demanded at P=0"),
		pMax:      fs.Float64("p-max", 120, "Price at which demand is zero"),
		mc:        fs.Float64("mc", 40, "Constant marginal cost"),
		mode:      fs.String("mode", "optimal", "Monopoly output mode: optimal or chosen"),
		monopolyQ: fs.Float64("monopoly-q", 0, "Monopoly quantity in chosen mode"),
		probeQ:    fs.Float64("probe-q", 0, "Optional demand probe quantity"),
	}
}

func (f *marketFlags) parse(args []string) error {
	if err := f.fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, f.fs.Name(), err)
	}
	if f.fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected argument %q", errUsage, f.fs.Name(), f.fs.Arg(0))
	}
	return nil
}

// config loads --config when given, otherwise the flag defaults, then applies
// every market flag set explicitly on the command line.
func (f *marketFlags) config() (*config.Config, error) {
	cfg := &config.Config{
		Market:   config.MarketConfig{QMax: *f.qMax, PMax: *f.pMax, MC: *f.mc},
		Monopoly: config.MonopolyConfig{Mode: *f.mode},
	}
	if *f.cfgPath != "" {
		loaded, err := config.LoadUnchecked(*f.cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "q-max":
			cfg.Market.QMax = *f.qMax
		case "p-max":
			cfg.Market.PMax = *f.pMax
		case "mc":
			cfg.Market.MC = *f.mc
		case "mode":
			cfg.Monopoly.Mode = *f.mode
		case "monopoly-q":
			q := *f.monopolyQ
			cfg.Monopoly.Quantity = &q
		case "probe-q":
			q := *f.probeQ
			cfg.ProbeQ = &q
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f *marketFlags) inputs() (outcome.Inputs, error) {
	cfg, err := f.config()
	if err != nil {
		return outcome.Inputs{}, err
	}
	return cfg.ToInputs()
}

func cmdCompute(args []string, stdout io.Writer) error {
	f := newMarketFlags("compute")
	if err := f.parse(args); err != nil {
		return err
	}
	in, err := f.inputs()
	if err != nil {
		return err
	}
	out, err := outcome.Compute(in)
	if err != nil {
		return err
	}

	m := out.Market
	fmt.Fprintf(stdout, "Market: Q_max=%g P_max=%g MC=%g slope=%.4f mode=%s\n", m.QMax, m.PMax, m.MC, out.Slope, out.Mode)
	for _, metric := range display.Metrics(out) {
		fmt.Fprintf(stdout, "  %-26s %s\n", metric.Label, metric.Value)
	}
	if out.Probe != nil {
		fmt.Fprintf(stdout, "  %-26s Q=%s P=%s\n", "Probe", display.Quantity(out.Probe.Q), display.Currency(out.Probe.P, 2))
	}
	if !out.MonopolyRestrictsOutput {
		fmt.Fprintln(stdout, "  monopoly output is not below the competitive output; no deadweight loss")
	}
	return nil
}

func cmdCurves(args []string, stdout io.Writer) error {
	f := newMarketFlags("curves")
	outPath := f.fs.String("out", "results/curves.csv", "Output CSV path")
	points := f.fs.Int("points", outcome.DefaultCurvePoints, "Number of curve samples")
	if err := f.parse(args); err != nil {
		return err
	}
	if *points < 1 || *points > outcome.MaxPoints {
		return fmt.Errorf("%w: curves: --points must be in [1, %d]", errUsage, outcome.MaxPoints)
	}
	in, err := f.inputs()
	if err != nil {
		return err
	}

	samples := in.Market.SampleCurves(*points)
	if err := sweep.WriteCurvesCSV(*outPath, samples); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d rows to %s\n", len(samples), *outPath)
	return nil
}

func cmdSweep(args []string, stdout io.Writer) error {
	f := newMarketFlags("sweep")
	axisName := f.fs.String("axis", "mc", "Parameter to vary: mc, p_max or q_max")
	from := f.fs.Float64("from", 0, "First value")
	to := f.fs.Float64("to", 120, "Last value")
	steps := f.fs.Int("steps", 13, "Number of evenly spaced values")
	outPath := f.fs.String("out", "results/sweep.csv", "Output CSV path")
	if err := f.parse(args); err != nil {
		return err
	}
	axis, err := sweep.ParseAxis(*axisName)
	if err != nil {
		return fmt.Errorf("%w: sweep: %v", errUsage, err)
	}
	in, err := f.inputs()
	if err != nil {
		return err
	}
	strat, err := strategy.FromMode(in.Mode, in.MonopolyQuantity, in.Market)
	if err != nil {
		return err
	}

	res, err := sweep.New().Run(in.Market, sweep.Params{Axis: axis, From: *from, To: *to, Steps: *steps}, strat)
	if err != nil {
		return err
	}
	if err := sweep.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		return err
	}

	peak := res.PeakDWL
	fmt.Fprintf(stdout, "Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	fmt.Fprintf(stdout, "Peak DWL=%s at %s=%g (Qm=%.2f Pm=%.2f)\n",
		display.Currency(peak.DeadweightLoss, 2), axis, peak.Value, peak.MonopolyQ, peak.MonopolyP)
	return nil
}

func cmdCompare(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPaths := fs.String("config", "", "Comma-separated YAML scenario configs or a directory")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: compare: %v", errUsage, err)
	}
	if *cfgPaths == "" {
		return fmt.Errorf("%w: compare: --config is required", errUsage)
	}

	paths, err := expandPaths(splitPaths(*cfgPaths))
	if err != nil {
		return err
	}
	scenarios := make([]analysis.Scenario, 0, len(paths))
	for _, p := range paths {
		cfg, err := config.Load(p)
		if err != nil {
			return err
		}
		in, err := cfg.ToInputs()
		if err != nil {
			return err
		}
		name := cfg.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		}
		scenarios = append(scenarios, analysis.Scenario{Name: name, Inputs: in})
	}

	ranked, skipped := analysis.RankByDeadweightLoss(scenarios)
	fmt.Fprintf(stdout, "%-4s %-36s %-8s %-10s %-10s %-12s %-12s %-8s\n", "rank", "scenario", "mode", "Qm", "Pm", "profit", "dwl", "dwl%")
	for i, r := range ranked {
		out := r.Outcomes
		fmt.Fprintf(stdout,
			"%-4d %-36s %-8s %-10.2f %-10.2f %-12.2f %-12.2f %-8.1f\n",
			i+1,
			r.Name,
			out.Mode,
			out.Monopoly.Q,
			out.Monopoly.P,
			out.Profit,
			out.DeadweightLoss,
			100*r.DWLShare,
		)
	}
	printSkipped(stdout, skipped)
	return nil
}

// printSkipped lists scenarios that failed to compute, sorted by name.
func printSkipped(w io.Writer, skipped map[string]error) {
	names := make([]string, 0, len(skipped))
	for name := range skipped {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "skipped %s: %v\n", name, skipped[name])
	}
}

func splitPaths(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandPaths replaces directories with the .yaml files they contain.
func expandPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
				continue
			}
			out = append(out, filepath.Join(p, e.Name()))
		}
	}
	return out, nil
}
