// Package display turns computed outcomes into the labelled metric tiles shown
// next to the chart. Rounding goes through decimal so that half-cent values
// round away from zero instead of following binary float artefacts.
package display

import (
	"strings"

	"monopoly-sim/internal/model"
	"monopoly-sim/internal/outcome"

	"github.com/shopspring/decimal"
)

// Metric is one labelled value tile.
type Metric struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Currency formats v as dollars with the given decimal places and thousands separators.
func Currency(v float64, places int32) string {
	d := decimal.NewFromFloat(v).Round(places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + group(d.StringFixed(places))
}

// Quantity formats v with two decimals.
func Quantity(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// group inserts thousands separators into the integer part of a fixed-point string.
func group(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Metrics lays out the tiles for a frame. Optimal mode shows both equilibria in
// full; chosen mode focuses on the monopolist's price and profit.
func Metrics(out *outcome.Outcomes) []Metric {
	if out == nil {
		return nil
	}
	if out.Mode == model.ModeChosen {
		return []Metric{
			{Key: "monopoly_q", Label: "Chosen Quantity", Value: Quantity(out.Monopoly.Q)},
			{Key: "monopoly_p", Label: "Monopoly Price", Value: Currency(out.Monopoly.P, 0)},
			{Key: "profit", Label: "Profit", Value: Currency(out.Profit, 0)},
			{Key: "competitive_p", Label: "Competitive Price", Value: Currency(out.Competitive.P, 0)},
			{Key: "deadweight_loss", Label: "Deadweight Loss", Value: Currency(out.DeadweightLoss, 0)},
		}
	}
	return []Metric{
		{Key: "monopoly_q", Label: "Monopoly Quantity Qm", Value: Quantity(out.Monopoly.Q)},
		{Key: "monopoly_p", Label: "Monopoly Price Pm", Value: Currency(out.Monopoly.P, 2)},
		{Key: "competitive_q", Label: "Competitive Quantity Qc", Value: Quantity(out.Competitive.Q)},
		{Key: "competitive_p", Label: "Competitive Price Pc", Value: Currency(out.Competitive.P, 2)},
		{Key: "profit", Label: "Profit", Value: Currency(out.Profit, 2)},
		{Key: "deadweight_loss", Label: "Deadweight Loss", Value: Currency(out.DeadweightLoss, 0)},
	}
}
