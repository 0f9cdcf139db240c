package models

// MarketInput carries the three demand/cost parameters.
type MarketInput struct {
	QMax float64 `json:"q_max"`
	PMax float64 `json:"p_max"`
	MC   float64 `json:"mc"`
}

// OutcomesRequest is the body of POST /api/v1/outcomes and of every live message.
type OutcomesRequest struct {
	Scenario         string      `json:"scenario,omitempty"` // preset id, e.g. "textbook"
	Market           MarketInput `json:"market"`
	Mode             string      `json:"mode,omitempty"`              // "optimal" (default) or "chosen"
	MonopolyQuantity *float64    `json:"monopoly_quantity,omitempty"` // chosen mode only
	ProbeQuantity    *float64    `json:"probe_quantity,omitempty"`
	CurvePoints      int         `json:"curve_points,omitempty" binding:"omitempty,min=0,max=10000"`
	RegionPoints     int         `json:"region_points,omitempty" binding:"omitempty,min=0,max=10000"`
	OmitSamples      bool        `json:"omit_samples,omitempty"` // skip curve/region arrays
}

// OutcomesQuery is the query-string form of OutcomesRequest for GET /api/v1/outcomes.
type OutcomesQuery struct {
	Scenario     string   `form:"scenario"`
	QMax         float64  `form:"q_max"`
	PMax         float64  `form:"p_max"`
	MC           float64  `form:"mc"`
	Mode         string   `form:"mode"`
	MonopolyQ    *float64 `form:"monopoly_q"`
	ProbeQ       *float64 `form:"probe_q"`
	CurvePoints  int      `form:"curve_points" binding:"omitempty,min=0,max=10000"`
	RegionPoints int      `form:"region_points" binding:"omitempty,min=0,max=10000"`
	OmitSamples  bool     `form:"omit_samples"`
}

func (q OutcomesQuery) ToRequest() OutcomesRequest {
	return OutcomesRequest{
		Scenario:         q.Scenario,
		Market:           MarketInput{QMax: q.QMax, PMax: q.PMax, MC: q.MC},
		Mode:             q.Mode,
		MonopolyQuantity: q.MonopolyQ,
		ProbeQuantity:    q.ProbeQ,
		CurvePoints:      q.CurvePoints,
		RegionPoints:     q.RegionPoints,
		OmitSamples:      q.OmitSamples,
	}
}

// CompareRequest represents a request to compare several variations of a base scenario
type CompareRequest struct {
	Base       OutcomesRequest `json:"base" binding:"required"`
	Variations []Variation     `json:"variations" binding:"required,min=1,max=50,dive"`
}

// Variation overrides non-zero fields of the base request
type Variation struct {
	Name    string          `json:"name" binding:"required"`
	Request OutcomesRequest `json:"request"`
}

// SweepQuery represents GET /api/v1/sweep
type SweepQuery struct {
	Scenario  string   `form:"scenario"`
	QMax      float64  `form:"q_max"`
	PMax      float64  `form:"p_max"`
	MC        float64  `form:"mc"`
	Mode      string   `form:"mode"`
	MonopolyQ *float64 `form:"monopoly_q"`
	Axis      string   `form:"axis" binding:"required"`
	From      float64  `form:"from"`
	To        float64  `form:"to" binding:"required"`
	Steps     int      `form:"steps" binding:"required,min=1,max=1000"`
}

func (q SweepQuery) ToRequest() OutcomesRequest {
	return OutcomesRequest{
		Scenario:         q.Scenario,
		Market:           MarketInput{QMax: q.QMax, PMax: q.PMax, MC: q.MC},
		Mode:             q.Mode,
		MonopolyQuantity: q.MonopolyQ,
		OmitSamples:      true,
	}
}
