package outcome

import (
	"fmt"

	"monopoly-sim/internal/model"
	"monopoly-sim/internal/strategy"
)

// Compute derives every outcome from scratch. It holds no state, so identical
// inputs always produce identical outcomes.
func Compute(in Inputs) (*Outcomes, error) {
	in = in.withDefaults()
	strat, err := strategy.FromMode(in.Mode, in.MonopolyQuantity, in.Market)
	if err != nil {
		return nil, err
	}
	return Run(in, strat)
}

// Run computes outcomes with an explicit monopoly strategy.
func Run(in Inputs, strat strategy.Strategy) (*Outcomes, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	in = in.withDefaults()
	m := in.Market

	comp := m.Competitive()
	mono := strat.Choose(m)

	out := &Outcomes{
		Market: m,
		Mode:   model.Mode(strat.Name()),
		Slope:  m.Slope(),

		Competitive: comp,
		Monopoly:    mono,

		Profit:                  m.Profit(mono),
		DeadweightLoss:          m.DeadweightLoss(comp, mono),
		CompetitiveSurplus:      m.Surplus(comp),
		MonopolySurplus:         m.Surplus(mono),
		MonopolyRestrictsOutput: comp.Q > mono.Q,

		CurveSamples:     m.SampleCurves(in.CurvePoints),
		DeadweightRegion: m.DeadweightRegion(comp, mono, in.RegionPoints),
	}
	if in.ProbeQuantity != nil {
		p := m.ProbeAt(*in.ProbeQuantity)
		out.Probe = &p
	}
	return out, nil
}
