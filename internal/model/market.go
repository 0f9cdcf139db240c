package model

import (
	"errors"
	"math"
)

// MarketParameters defines a linear inverse demand curve and a constant marginal cost.
// Units:
// - QMax: quantity where demand reaches a zero price (Q-intercept)
// - PMax: choke price (P-intercept), $/unit
// - MC: constant marginal cost, $/unit
type MarketParameters struct {
	QMax float64
	PMax float64
	MC   float64
}

// Validate rejects parameters the boundary layers should never pass on.
// The model functions below stay total even for values that fail here.
func (m MarketParameters) Validate() error {
	for _, v := range []float64{m.QMax, m.PMax, m.MC} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("market parameters must be finite")
		}
	}
	if m.QMax < 0 {
		return errors.New("QMax must be >= 0")
	}
	if m.PMax <= 0 {
		return errors.New("PMax must be > 0")
	}
	if m.MC < 0 {
		return errors.New("MC must be >= 0")
	}
	return nil
}

// Slope returns b in P(Q) = PMax - b*Q. A zero QMax, or one small enough that
// the quotient overflows, degenerates demand to a constant.
func (m MarketParameters) Slope() float64 {
	if m.QMax <= 0 {
		return 0
	}
	b := m.PMax / m.QMax
	if math.IsInf(b, 0) || math.IsNaN(b) {
		return 0
	}
	return b
}

// Demand is the inverse demand curve. It is defined for any Q and goes negative past QMax.
func (m MarketParameters) Demand(q float64) float64 {
	return m.PMax - m.Slope()*q
}

// MarginalRevenue shares the demand intercept with twice the slope.
func (m MarketParameters) MarginalRevenue(q float64) float64 {
	return m.PMax - 2*m.Slope()*q
}

// Competitive solves Demand(Q) = MC.
func (m MarketParameters) Competitive() Equilibrium {
	b := m.Slope()
	q := 0.0
	if b > 0 {
		q = (m.PMax - m.MC) / b
	}
	return Equilibrium{
		Kind: KindCompetitive,
		Q:    m.ClampQuantity(q),
		P:    m.MC,
	}
}

// Monopoly solves MarginalRevenue(Q) = MC and prices off the demand curve.
func (m MarketParameters) Monopoly() Equilibrium {
	b := m.Slope()
	q := 0.0
	if b > 0 {
		q = (m.PMax - m.MC) / (2 * b)
	}
	return m.MonopolyAt(q)
}

// MonopolyAt prices an externally chosen monopoly quantity off the demand curve.
// The quantity is clamped to [0, QMax]; whether it maximises profit is not checked.
func (m MarketParameters) MonopolyAt(q float64) Equilibrium {
	q = m.ClampQuantity(q)
	return Equilibrium{
		Kind: KindMonopoly,
		Q:    q,
		P:    m.Demand(q),
	}
}

// Profit is (P - MC) * Q for the given outcome.
func (m MarketParameters) Profit(e Equilibrium) float64 {
	return (e.P - m.MC) * e.Q
}

// ProbeAt returns the demand-curve point at a probed quantity.
func (m MarketParameters) ProbeAt(q float64) Point {
	q = m.ClampQuantity(q)
	return Point{Q: q, P: m.Demand(q)}
}

// ClampQuantity bounds q to [0, QMax]. NaN collapses to 0.
func (m MarketParameters) ClampQuantity(q float64) float64 {
	qmax := m.QMax
	if qmax < 0 || math.IsNaN(qmax) {
		qmax = 0
	}
	return clamp(q, 0, qmax)
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
