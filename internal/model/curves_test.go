package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	assert.Nil(t, Linspace(0, 10, 0))
	assert.Equal(t, []float64{3}, Linspace(3, 10, 1))
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, Linspace(0, 10, 5))
}

func TestSampleCurves(t *testing.T) {
	m := MarketParameters{QMax: 200, PMax: 120, MC: 40}

	samples := m.SampleCurves(300)
	require.Len(t, samples, 300)

	first, last := samples[0], samples[len(samples)-1]
	assert.Equal(t, 0.0, first.Q)
	assert.Equal(t, 120.0, first.PDemand)
	assert.Equal(t, 120.0, first.PMarginal)
	assert.Equal(t, 200.0, last.Q)
	assert.InDelta(t, 0.0, last.PDemand, 1e-9)
	assert.InDelta(t, -120.0, last.PMarginal, 1e-9)

	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].Q, samples[i-1].Q)
	}
}

func TestSampleCurves_Deterministic(t *testing.T) {
	m := MarketParameters{QMax: 137, PMax: 93, MC: 11}
	assert.Equal(t, m.SampleCurves(100), m.SampleCurves(100))
}

func TestSampleCurves_Degenerate(t *testing.T) {
	m := MarketParameters{QMax: 0, PMax: 120, MC: 40}

	samples := m.SampleCurves(3)
	require.Len(t, samples, 3)
	for _, s := range samples {
		assert.Equal(t, 0.0, s.Q)
		assert.Equal(t, 120.0, s.PDemand)
	}
	assert.Empty(t, m.SampleCurves(0))
}

func TestDeadweightRegion(t *testing.T) {
	m := MarketParameters{QMax: 100, PMax: 100, MC: 20}
	comp, mono := m.Competitive(), m.Monopoly()

	region := m.DeadweightRegion(comp, mono, 200)
	require.Len(t, region, 200)
	assert.InDelta(t, 40.0, region[0].Q, 1e-9)
	assert.InDelta(t, 60.0, region[0].PDemand, 1e-9)
	assert.InDelta(t, 80.0, region[199].Q, 1e-9)
	assert.InDelta(t, 20.0, region[199].PDemand, 1e-9)
	for _, r := range region {
		assert.Equal(t, 20.0, r.MC)
		assert.GreaterOrEqual(t, r.PDemand, r.MC-1e-9)
	}
}

func TestProbeAt(t *testing.T) {
	m := MarketParameters{QMax: 200, PMax: 120, MC: 40}

	p := m.ProbeAt(100)
	assert.Equal(t, 100.0, p.Q)
	assert.InDelta(t, 60.0, p.P, 1e-9)

	p = m.ProbeAt(1000)
	assert.Equal(t, 200.0, p.Q)
	assert.InDelta(t, 0.0, p.P, 1e-9)
}
