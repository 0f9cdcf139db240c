package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"monopoly-sim/internal/config"
	"monopoly-sim/internal/model"
	"monopoly-sim/internal/strategy"
	"monopoly-sim/internal/sweep"
)

// Demo:
// - Build a market (textbook defaults or --config)
// - Walk the monopolist's output from 0 to the competitive quantity
// - Show profit peaking where MR crosses MC, and DWL growing as output falls
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 12, "Number of output levels to try")
	outCSV := flag.String("out", "", "Optional path to write curve samples CSV (e.g. results/curves.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	m := model.MarketParameters{QMax: 200, PMax: 120, MC: 40}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		m = cfg.Market.ToModelParams()
	}
	if *n < 2 {
		*n = 2
	}

	comp := m.Competitive()
	best := strategy.ProfitMaximizing{}.Choose(m)

	fmt.Printf("Market: Q_max=%g P_max=%g MC=%g slope=%.4f\n", m.QMax, m.PMax, m.MC, m.Slope())
	fmt.Printf("Competitive: Q=%.2f P=%.2f\n", comp.Q, comp.P)
	fmt.Printf("Profit-maximising monopoly: Q=%.2f P=%.2f profit=%.2f\n\n", best.Q, best.P, m.Profit(best))

	fmt.Printf("%-10s %-10s %-10s %-12s %-12s\n", "Q", "P", "MR", "profit", "dwl")
	for _, q := range model.Linspace(0, comp.Q, *n) {
		mono := strategy.ChosenQuantity{Quantity: q}.Choose(m)
		marker := ""
		if math.Abs(mono.Q-best.Q) <= comp.Q/float64(2*(*n-1)) {
			marker = "  <- near MR = MC"
		}
		fmt.Printf("%-10.2f %-10.2f %-10.2f %-12.2f %-12.2f%s\n",
			mono.Q, mono.P, m.MarginalRevenue(mono.Q), m.Profit(mono), m.DeadweightLoss(comp, mono), marker)
	}

	if *outCSV != "" {
		samples := m.SampleCurves(300)
		if err := sweep.WriteCurvesCSV(*outCSV, samples); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %d curve samples to %s\n", len(samples), *outCSV)
	}
}
