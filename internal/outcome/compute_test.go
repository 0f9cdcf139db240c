package outcome

import (
	"testing"

	"monopoly-sim/internal/model"
	"monopoly-sim/internal/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestCompute_Optimal(t *testing.T) {
	out, err := Compute(Inputs{
		Market:        model.MarketParameters{QMax: 200, PMax: 120, MC: 40},
		ProbeQuantity: ptr(100),
	})
	require.NoError(t, err)

	assert.Equal(t, model.ModeOptimal, out.Mode)
	assert.InDelta(t, 0.6, out.Slope, 1e-12)
	assert.InDelta(t, 133.33, out.Competitive.Q, 0.01)
	assert.Equal(t, 40.0, out.Competitive.P)
	assert.InDelta(t, 66.67, out.Monopoly.Q, 0.01)
	assert.InDelta(t, 80.0, out.Monopoly.P, 1e-9)
	assert.InDelta(t, 1333.3, out.DeadweightLoss, 0.5)
	assert.InDelta(t, 40*200.0/3, out.Profit, 1e-6)
	assert.True(t, out.MonopolyRestrictsOutput)

	assert.Len(t, out.CurveSamples, DefaultCurvePoints)
	assert.Len(t, out.DeadweightRegion, DefaultRegionPoints)
	require.NotNil(t, out.Probe)
	assert.Equal(t, 100.0, out.Probe.Q)
	assert.InDelta(t, 60.0, out.Probe.P, 1e-9)
}

func TestCompute_Chosen(t *testing.T) {
	out, err := Compute(Inputs{
		Market:           model.MarketParameters{QMax: 100, PMax: 100, MC: 20},
		Mode:             model.ModeChosen,
		MonopolyQuantity: ptr(33),
		CurvePoints:      100,
		RegionPoints:     50,
	})
	require.NoError(t, err)

	assert.Equal(t, model.ModeChosen, out.Mode)
	assert.Equal(t, 33.0, out.Monopoly.Q)
	assert.InDelta(t, 67.0, out.Monopoly.P, 1e-9)
	assert.InDelta(t, 1551.0, out.Profit, 1e-9)
	assert.InDelta(t, 0.5*(67-20)*(80-33), out.DeadweightLoss, 1e-9)
	assert.Len(t, out.CurveSamples, 100)
	assert.Len(t, out.DeadweightRegion, 50)
	assert.Nil(t, out.Probe)
}

func TestCompute_UnknownMode(t *testing.T) {
	_, err := Compute(Inputs{
		Market: model.MarketParameters{QMax: 100, PMax: 100, MC: 20},
		Mode:   "cartel",
	})
	assert.Error(t, err)
}

func TestCompute_Deterministic(t *testing.T) {
	in := Inputs{
		Market:        model.MarketParameters{QMax: 321, PMax: 77, MC: 13},
		ProbeQuantity: ptr(12.5),
	}
	a, err := Compute(in)
	require.NoError(t, err)
	b, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompute_ZeroQMax(t *testing.T) {
	out, err := Compute(Inputs{
		Market:        model.MarketParameters{QMax: 0, PMax: 120, MC: 40},
		ProbeQuantity: ptr(50),
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, out.Competitive.Q)
	assert.Equal(t, 0.0, out.Monopoly.Q)
	assert.Equal(t, 0.0, out.DeadweightLoss)
	assert.Empty(t, out.DeadweightRegion)
	assert.Equal(t, 0.0, out.Probe.Q)
	assert.False(t, out.MonopolyRestrictsOutput)
}

func TestCompute_CapsPointCounts(t *testing.T) {
	out, err := Compute(Inputs{
		Market:      model.MarketParameters{QMax: 10, PMax: 10, MC: 1},
		CurvePoints: MaxPoints * 10,
	})
	require.NoError(t, err)
	assert.Len(t, out.CurveSamples, MaxPoints)
}

func TestRun_NilStrategy(t *testing.T) {
	_, err := Run(Inputs{Market: model.MarketParameters{QMax: 1, PMax: 1}}, nil)
	assert.Error(t, err)
}

func TestRun_ExplicitStrategy(t *testing.T) {
	out, err := Run(Inputs{Market: model.MarketParameters{QMax: 100, PMax: 100, MC: 20}},
		strategy.ChosenQuantity{Quantity: 40})
	require.NoError(t, err)
	assert.Equal(t, model.ModeChosen, out.Mode)
	assert.InDelta(t, 800.0, out.DeadweightLoss, 1e-9)
}
