package config

import (
	"os"
	"path/filepath"
	"testing"

	"monopoly-sim/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", `
name: chosen
market: {q_max: 100, p_max: 100, mc: 20}
monopoly: {mode: chosen, quantity: 33}
probe_q: 10
chart: {curve_points: 100}
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "chosen", c.Name)
	assert.Equal(t, model.MarketParameters{QMax: 100, PMax: 100, MC: 20}, c.Market.ToModelParams())

	in, err := c.ToInputs()
	require.NoError(t, err)
	assert.Equal(t, model.ModeChosen, in.Mode)
	require.NotNil(t, in.MonopolyQuantity)
	assert.Equal(t, 33.0, *in.MonopolyQuantity)
	require.NotNil(t, in.ProbeQuantity)
	assert.Equal(t, 10.0, *in.ProbeQuantity)
	assert.Equal(t, 100, in.CurvePoints)
	assert.Equal(t, 0, in.RegionPoints)
}

func TestLoad_ScenarioFileRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scenarios/base.yaml", `
name: base
market: {q_max: 200, p_max: 120, mc: 40}
probe_q: 100
`)
	path := writeFile(t, dir, "c.yaml", `
scenario_file: scenarios/base.yaml
market: {mc: 60}
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "base", c.Name)
	assert.Equal(t, "scenarios/base.yaml", c.ScenarioFile)
	assert.Equal(t, MarketConfig{QMax: 200, PMax: 120, MC: 60}, c.Market)
	require.NotNil(t, c.ProbeQ)
	assert.Equal(t, 100.0, *c.ProbeQ)
}

func TestLoad_ExampleConfig(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "examples", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, MarketConfig{QMax: 200, PMax: 120, MC: 60}, c.Market)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "neg.yaml", "market: {q_max: -1, p_max: 10, mc: 1}\n"))
	assert.ErrorContains(t, err, "market config invalid")

	_, err = Load(writeFile(t, dir, "mode.yaml", "market: {q_max: 1, p_max: 10}\nmonopoly: {mode: cartel}\n"))
	assert.ErrorContains(t, err, "monopoly config invalid")

	_, err = Load(writeFile(t, dir, "bad.yaml", "market: [\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "preset.yaml", "scenario_file: nope.yaml\n"))
	assert.Error(t, err)
}

func TestMergeScenario(t *testing.T) {
	q := 33.0
	base := Config{
		Name:   "base",
		Market: MarketConfig{QMax: 100, PMax: 100, MC: 20},
		Chart:  ChartConfig{CurvePoints: 300, RegionPoints: 200},
	}
	override := Config{
		Market:   MarketConfig{PMax: 150},
		Monopoly: MonopolyConfig{Mode: "chosen", Quantity: &q},
		Chart:    ChartConfig{RegionPoints: 20},
	}

	got := MergeScenario(base, override)
	assert.Equal(t, "base", got.Name)
	assert.Equal(t, MarketConfig{QMax: 100, PMax: 150, MC: 20}, got.Market)
	assert.Equal(t, "chosen", got.Monopoly.Mode)
	assert.Equal(t, &q, got.Monopoly.Quantity)
	assert.Equal(t, ChartConfig{CurvePoints: 300, RegionPoints: 20}, got.Chart)
}

func TestValidate_Nil(t *testing.T) {
	var c *Config
	assert.Error(t, c.Validate())
}
