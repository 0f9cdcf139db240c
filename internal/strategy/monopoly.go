package strategy

import (
	"fmt"
	"math"

	"monopoly-sim/internal/model"
)

// ProfitMaximizing is the textbook monopolist: it produces where MR = MC.
type ProfitMaximizing struct{}

func (ProfitMaximizing) Name() string { return string(model.ModeOptimal) }

func (ProfitMaximizing) Choose(m model.MarketParameters) model.Equilibrium {
	return m.Monopoly()
}

// ChosenQuantity lets a learner pick the monopoly output directly.
// Off-optimum choices are allowed; the quantity is only clamped to [0, QMax].
type ChosenQuantity struct {
	Quantity float64
}

func (s ChosenQuantity) Name() string { return string(model.ModeChosen) }

func (s ChosenQuantity) Choose(m model.MarketParameters) model.Equilibrium {
	return m.MonopolyAt(s.Quantity)
}

// DefaultChosenQuantity is the starting slider position: a third of QMax, rounded down.
func DefaultChosenQuantity(m model.MarketParameters) float64 {
	if m.QMax <= 0 {
		return 0
	}
	return math.Floor(m.QMax / 3)
}

// FromMode builds the strategy for a mode. A nil quantity in chosen mode
// falls back to DefaultChosenQuantity.
func FromMode(mode model.Mode, quantity *float64, m model.MarketParameters) (Strategy, error) {
	switch mode {
	case "", model.ModeOptimal:
		return ProfitMaximizing{}, nil
	case model.ModeChosen:
		q := DefaultChosenQuantity(m)
		if quantity != nil {
			q = *quantity
		}
		return ChosenQuantity{Quantity: q}, nil
	default:
		return nil, fmt.Errorf("unsupported mode: %q", mode)
	}
}
