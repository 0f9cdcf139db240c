package models

import "monopoly-sim/internal/display"

// OutcomesResponse represents one fully computed frame
type OutcomesResponse struct {
	Status   string      `json:"status"`
	Scenario string      `json:"scenario,omitempty"`
	Mode     string      `json:"mode"`
	Market   MarketInput `json:"market"`
	Slope    float64     `json:"slope"`

	Competitive Equilibrium `json:"competitive"`
	Monopoly    Equilibrium `json:"monopoly"`

	Profit                  float64       `json:"profit"`
	DeadweightLoss          float64       `json:"deadweight_loss"`
	Surplus                 SurplusByKind `json:"surplus"`
	MonopolyRestrictsOutput bool          `json:"monopoly_restricts_output"`

	Probe            *Point         `json:"probe,omitempty"`
	CurveSamples     []CurveSample  `json:"curve_samples,omitempty"`
	DeadweightRegion []RegionSample `json:"deadweight_region,omitempty"`

	Metrics []display.Metric `json:"metrics"`
}

// Equilibrium is a quantity/price pair
type Equilibrium struct {
	Q float64 `json:"q"`
	P float64 `json:"p"`
}

// Point is a single chart location
type Point struct {
	Q float64 `json:"q"`
	P float64 `json:"p"`
}

type Surplus struct {
	Consumer float64 `json:"consumer"`
	Producer float64 `json:"producer"`
	Total    float64 `json:"total"`
}

type SurplusByKind struct {
	Competitive Surplus `json:"competitive"`
	Monopoly    Surplus `json:"monopoly"`
}

// CurveSample is one point on the demand and MR curves
type CurveSample struct {
	Q         float64 `json:"q"`
	PDemand   float64 `json:"p_demand"`
	PMarginal float64 `json:"p_mr"`
}

// RegionSample is one slice of the deadweight-loss fill
type RegionSample struct {
	Q       float64 `json:"q"`
	PDemand float64 `json:"p_demand"`
	MC      float64 `json:"mc"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Rankings []Ranking        `json:"rankings"`
	Skipped  []SkippedVariant `json:"skipped,omitempty"`
}

// Ranking represents one ranked variation
type Ranking struct {
	Rank           int         `json:"rank"`
	Name           string      `json:"name"`
	Mode           string      `json:"mode"`
	Market         MarketInput `json:"market"`
	MonopolyQ      float64     `json:"monopoly_q"`
	MonopolyP      float64     `json:"monopoly_p"`
	CompetitiveQ   float64     `json:"competitive_q"`
	Profit         float64     `json:"profit"`
	DeadweightLoss float64     `json:"deadweight_loss"`
	DWLShare       float64     `json:"dwl_share"`
}

type SkippedVariant struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// SweepResponse represents the rows of a parameter sweep
type SweepResponse struct {
	Axis     string     `json:"axis"`
	Mode     string     `json:"mode"`
	Rows     []SweepRow `json:"rows"`
	PeakStep int        `json:"peak_step"`
}

type SweepRow struct {
	Index          int         `json:"index"`
	Value          float64     `json:"value"`
	Market         MarketInput `json:"market"`
	CompetitiveQ   float64     `json:"competitive_q"`
	CompetitiveP   float64     `json:"competitive_p"`
	MonopolyQ      float64     `json:"monopoly_q"`
	MonopolyP      float64     `json:"monopoly_p"`
	Profit         float64     `json:"profit"`
	DeadweightLoss float64     `json:"deadweight_loss"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	File   string      `json:"file"`
	Mode   string      `json:"mode"`
	Market MarketInput `json:"market"`
}

// ControlInfo describes one input control of the chart page
type ControlInfo struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Type        string      `json:"type"` // "float", "int", "enum"
	Description string      `json:"description,omitempty"`
	Min         *float64    `json:"min,omitempty"`
	Max         *float64    `json:"max,omitempty"`
	MaxRef      string      `json:"max_ref,omitempty"` // bound tracks another control
	Step        float64     `json:"step,omitempty"`
	Options     []string    `json:"options,omitempty"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
