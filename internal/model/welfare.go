package model

import "math"

// MinTrapezoidPoints is the smallest grid DeadweightLossTrapezoid will integrate over.
const MinTrapezoidPoints = 50

// DeadweightLoss is the closed-form triangle between demand and MC on [Qm, Qc].
// It is exact for linear demand and zero when the monopoly does not restrict output.
func (m MarketParameters) DeadweightLoss(comp, mono Equilibrium) float64 {
	return 0.5 * math.Max(mono.P-comp.P, 0) * math.Max(comp.Q-mono.Q, 0)
}

// DeadweightLossTrapezoid integrates Demand(Q) - MC over [Qm, Qc] with the
// trapezoidal rule on an evenly spaced grid. Grids smaller than
// MinTrapezoidPoints are widened. A reversed or empty interval yields 0.
//
// For linear demand the integrand is linear, so the result matches
// DeadweightLoss up to floating-point error.
func (m MarketParameters) DeadweightLossTrapezoid(comp, mono Equilibrium, points int) float64 {
	if comp.Q <= mono.Q {
		return 0
	}
	if points < MinTrapezoidPoints {
		points = MinTrapezoidPoints
	}
	qs := Linspace(mono.Q, comp.Q, points)
	area := 0.0
	for i := 1; i < len(qs); i++ {
		left := m.Demand(qs[i-1]) - comp.P
		right := m.Demand(qs[i]) - comp.P
		area += 0.5 * (left + right) * (qs[i] - qs[i-1])
	}
	if area < 0 {
		return 0
	}
	return area
}
