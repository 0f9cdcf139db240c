package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"monopoly-sim/internal/model"
	"monopoly-sim/internal/outcome"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load a preset scenario (e.g. examples/scenarios/*.yaml) first.
	// Explicit fields in this file override the preset.
	ScenarioFile string         `yaml:"scenario_file"`
	Name         string         `yaml:"name"`
	Market       MarketConfig   `yaml:"market"`
	Monopoly     MonopolyConfig `yaml:"monopoly"`
	ProbeQ       *float64       `yaml:"probe_q"`
	Chart        ChartConfig    `yaml:"chart"`
}

type MarketConfig struct {
	QMax float64 `yaml:"q_max"`
	PMax float64 `yaml:"p_max"`
	MC   float64 `yaml:"mc"`
}

type MonopolyConfig struct {
	Mode     string   `yaml:"mode"`
	Quantity *float64 `yaml:"quantity"`
}

type ChartConfig struct {
	CurvePoints  int `yaml:"curve_points"`
	RegionPoints int `yaml:"region_points"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		base, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		merged := MergeScenario(*base, c)
		merged.ScenarioFile = c.ScenarioFile
		c = merged
	}
	return &c, nil
}

// LoadScenarioFile reads a preset without following its own scenario_file.
func LoadScenarioFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Market.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("market config invalid: %w", err)
	}
	if _, err := model.ParseMode(c.Monopoly.Mode); err != nil {
		return fmt.Errorf("monopoly config invalid: %w", err)
	}
	if c.Chart.CurvePoints < 0 || c.Chart.RegionPoints < 0 {
		return errors.New("chart point counts must be >= 0")
	}
	return nil
}

func (m MarketConfig) ToModelParams() model.MarketParameters {
	return model.MarketParameters{QMax: m.QMax, PMax: m.PMax, MC: m.MC}
}

// ToInputs converts a validated config into outcome inputs.
func (c *Config) ToInputs() (outcome.Inputs, error) {
	mode, err := model.ParseMode(c.Monopoly.Mode)
	if err != nil {
		return outcome.Inputs{}, err
	}
	return outcome.Inputs{
		Market:           c.Market.ToModelParams(),
		Mode:             mode,
		MonopolyQuantity: c.Monopoly.Quantity,
		ProbeQuantity:    c.ProbeQ,
		CurvePoints:      c.Chart.CurvePoints,
		RegionPoints:     c.Chart.RegionPoints,
	}, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// Used when loading a preset and then applying overrides from a file or request.
func MergeScenario(base, override Config) Config {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	out.Market = MergeMarket(base.Market, override.Market)
	if override.Monopoly.Mode != "" {
		out.Monopoly.Mode = override.Monopoly.Mode
	}
	if override.Monopoly.Quantity != nil {
		out.Monopoly.Quantity = override.Monopoly.Quantity
	}
	if override.ProbeQ != nil {
		out.ProbeQ = override.ProbeQ
	}
	if override.Chart.CurvePoints != 0 {
		out.Chart.CurvePoints = override.Chart.CurvePoints
	}
	if override.Chart.RegionPoints != 0 {
		out.Chart.RegionPoints = override.Chart.RegionPoints
	}
	return out
}

// MergeMarket overlays non-zero market fields.
// Note: a zero MC cannot override a preset's non-zero MC this way.
func MergeMarket(base, override MarketConfig) MarketConfig {
	out := base
	if override.QMax != 0 {
		out.QMax = override.QMax
	}
	if override.PMax != 0 {
		out.PMax = override.PMax
	}
	if override.MC != 0 {
		out.MC = override.MC
	}
	return out
}
