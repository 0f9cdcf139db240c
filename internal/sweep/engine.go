package sweep

import (
	"fmt"
	"strings"

	"monopoly-sim/internal/model"
	"monopoly-sim/internal/strategy"
)

// Axis names the market parameter a sweep varies.
type Axis string

const (
	AxisMC   Axis = "mc"
	AxisPMax Axis = "p_max"
	AxisQMax Axis = "q_max"
)

// MaxSteps bounds a single sweep.
const MaxSteps = 1000

func ParseAxis(s string) (Axis, error) {
	switch a := Axis(strings.ToLower(strings.TrimSpace(s))); a {
	case AxisMC, AxisPMax, AxisQMax:
		return a, nil
	default:
		return "", fmt.Errorf("unknown sweep axis %q (want mc, p_max or q_max)", s)
	}
}

// Params describes an evenly spaced sweep over [From, To] in Steps points.
type Params struct {
	Axis  Axis
	From  float64
	To    float64
	Steps int
}

func (p Params) Validate() error {
	if _, err := ParseAxis(string(p.Axis)); err != nil {
		return err
	}
	if p.Steps < 1 || p.Steps > MaxSteps {
		return fmt.Errorf("steps must be in [1, %d]", MaxSteps)
	}
	if p.From < 0 || p.To < 0 {
		return fmt.Errorf("sweep bounds must be >= 0")
	}
	if p.Axis == AxisPMax && (p.From <= 0 || p.To <= 0) {
		return fmt.Errorf("p_max sweep bounds must be > 0")
	}
	return nil
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run recomputes both equilibria for every step, holding the other parameters at base.
func (e *Engine) Run(base model.MarketParameters, p Params, strat strategy.Strategy) (*Result, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	values := model.Linspace(p.From, p.To, p.Steps)
	ledger := make([]Row, 0, len(values))
	peak := 0

	for idx, v := range values {
		m := withAxis(base, p.Axis, v)
		comp := m.Competitive()
		mono := strat.Choose(m)

		row := Row{
			Index: idx,
			Axis:  p.Axis,
			Value: v,

			Market: m,

			CompetitiveQ: comp.Q,
			CompetitiveP: comp.P,
			MonopolyQ:    mono.Q,
			MonopolyP:    mono.P,

			Profit:         m.Profit(mono),
			DeadweightLoss: m.DeadweightLoss(comp, mono),
		}
		ledger = append(ledger, row)
		if row.DeadweightLoss > ledger[peak].DeadweightLoss {
			peak = idx
		}
	}

	return &Result{
		Strategy: strat.Name(),
		Ledger:   ledger,
		PeakDWL:  ledger[peak],
	}, nil
}

func withAxis(m model.MarketParameters, axis Axis, v float64) model.MarketParameters {
	switch axis {
	case AxisMC:
		m.MC = v
	case AxisPMax:
		m.PMax = v
	case AxisQMax:
		m.QMax = v
	}
	return m
}
