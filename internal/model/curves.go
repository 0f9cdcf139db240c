package model

// CurveSample is one rendered quantity with its demand and marginal-revenue prices.
type CurveSample struct {
	Q         float64
	PDemand   float64
	PMarginal float64
}

// RegionSample is one slice of the deadweight-loss fill: demand above, MC below.
type RegionSample struct {
	Q       float64
	PDemand float64
	MC      float64
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n <= 0 yields nil and n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint so accumulated rounding never overshoots QMax.
	out[n-1] = stop
	return out
}

// SampleCurves evaluates demand and MR at points evenly spaced quantities over [0, QMax].
func (m MarketParameters) SampleCurves(points int) []CurveSample {
	qs := Linspace(0, m.ClampQuantity(m.QMax), points)
	out := make([]CurveSample, len(qs))
	for i, q := range qs {
		out[i] = CurveSample{
			Q:         q,
			PDemand:   m.Demand(q),
			PMarginal: m.MarginalRevenue(q),
		}
	}
	return out
}

// DeadweightRegion samples the fill between demand and MC over [Qm, Qc].
// It is empty when the competitive quantity does not exceed the monopoly quantity.
func (m MarketParameters) DeadweightRegion(comp, mono Equilibrium, points int) []RegionSample {
	if comp.Q <= mono.Q {
		return []RegionSample{}
	}
	qs := Linspace(mono.Q, comp.Q, points)
	out := make([]RegionSample, len(qs))
	for i, q := range qs {
		out[i] = RegionSample{Q: q, PDemand: m.Demand(q), MC: comp.P}
	}
	return out
}
