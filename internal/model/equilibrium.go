package model

// Kind labels which market structure produced an equilibrium.
// Keep these values stable; they are part of the JSON and CSV output.
type Kind string

const (
	KindCompetitive Kind = "COMPETITIVE"
	KindMonopoly    Kind = "MONOPOLY"
)

// Equilibrium is a quantity/price pair.
type Equilibrium struct {
	Kind Kind
	Q    float64
	P    float64
}

// Point is a single (Q, P) location on the chart.
type Point struct {
	Q float64
	P float64
}

// Surplus is the welfare split for one market outcome.
type Surplus struct {
	Consumer float64
	Producer float64
	Total    float64
}

// Surplus splits welfare at an outcome priced on or below the demand curve.
// Consumer surplus is the triangle above the price; producer surplus is profit.
func (m MarketParameters) Surplus(e Equilibrium) Surplus {
	cs := 0.5 * (m.PMax - e.P) * e.Q
	if cs < 0 {
		cs = 0
	}
	ps := m.Profit(e)
	return Surplus{
		Consumer: cs,
		Producer: ps,
		Total:    cs + ps,
	}
}
