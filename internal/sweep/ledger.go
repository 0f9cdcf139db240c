package sweep

import "monopoly-sim/internal/model"

// Row is one step of a sweep: the market at that step and both outcomes.
type Row struct {
	Index int

	Axis  Axis
	Value float64

	Market model.MarketParameters

	CompetitiveQ float64
	CompetitiveP float64
	MonopolyQ    float64
	MonopolyP    float64

	Profit         float64
	DeadweightLoss float64
}

type Result struct {
	Strategy string
	Ledger   []Row
	// PeakDWL is the first row with the largest deadweight loss.
	PeakDWL Row
}
