package analysis

import (
	"sort"

	"monopoly-sim/internal/outcome"
)

// Scenario is a named set of inputs to compare against others.
type Scenario struct {
	Name   string
	Inputs outcome.Inputs
}

type RankedScenario struct {
	Name     string
	Outcomes *outcome.Outcomes
	// DWLShare is DWL as a fraction of competitive total surplus (0 when that is 0).
	DWLShare float64
}

// RankByDeadweightLoss computes each scenario and sorts descending by deadweight loss.
// Ties keep input order. Scenarios whose inputs fail to compute are reported in skipped.
func RankByDeadweightLoss(scenarios []Scenario) (ranked []RankedScenario, skipped map[string]error) {
	ranked = make([]RankedScenario, 0, len(scenarios))
	skipped = map[string]error{}
	for _, s := range scenarios {
		out, err := outcome.Compute(s.Inputs)
		if err != nil {
			skipped[s.Name] = err
			continue
		}
		share := 0.0
		if total := out.CompetitiveSurplus.Total; total > 0 {
			share = out.DeadweightLoss / total
		}
		ranked = append(ranked, RankedScenario{Name: s.Name, Outcomes: out, DWLShare: share})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Outcomes.DeadweightLoss > ranked[j].Outcomes.DeadweightLoss
	})
	return ranked, skipped
}
