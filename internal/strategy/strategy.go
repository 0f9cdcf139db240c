package strategy

import "monopoly-sim/internal/model"

// Strategy decides the monopolist's output for a market.
type Strategy interface {
	Name() string
	Choose(m model.MarketParameters) model.Equilibrium
}
