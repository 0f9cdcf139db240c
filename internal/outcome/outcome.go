package outcome

import (
	"monopoly-sim/internal/model"
)

const (
	// DefaultCurvePoints matches the chart resolution of the interactive page.
	DefaultCurvePoints = 300
	// DefaultRegionPoints samples the deadweight-loss fill.
	DefaultRegionPoints = 200
	// MaxPoints bounds any caller-supplied sample count.
	MaxPoints = 10000
)

// Inputs is the full snapshot of user-controlled values.
// Optional quantities are nil when the corresponding control is absent.
type Inputs struct {
	Market           model.MarketParameters
	Mode             model.Mode
	MonopolyQuantity *float64
	ProbeQuantity    *float64
	CurvePoints      int
	RegionPoints     int
}

// Outcomes is everything the presentation layer needs to draw and label one frame.
type Outcomes struct {
	Market model.MarketParameters
	Mode   model.Mode
	Slope  float64

	Competitive model.Equilibrium
	Monopoly    model.Equilibrium

	Profit                  float64
	DeadweightLoss          float64
	CompetitiveSurplus      model.Surplus
	MonopolySurplus         model.Surplus
	MonopolyRestrictsOutput bool

	CurveSamples     []model.CurveSample
	DeadweightRegion []model.RegionSample
	Probe            *model.Point
}

// withDefaults fills unset sample counts and caps oversized ones.
func (in Inputs) withDefaults() Inputs {
	in.CurvePoints = points(in.CurvePoints, DefaultCurvePoints)
	in.RegionPoints = points(in.RegionPoints, DefaultRegionPoints)
	if in.Mode == "" {
		in.Mode = model.ModeOptimal
	}
	return in
}

func points(n, def int) int {
	if n <= 0 {
		return def
	}
	if n > MaxPoints {
		return MaxPoints
	}
	return n
}
