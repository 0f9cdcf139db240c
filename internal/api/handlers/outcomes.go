package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"monopoly-sim/internal/analysis"
	"monopoly-sim/internal/api/models"
	"monopoly-sim/internal/config"
	"monopoly-sim/internal/display"
	"monopoly-sim/internal/model"
	"monopoly-sim/internal/observability"
	"monopoly-sim/internal/outcome"

	"github.com/gin-gonic/gin"
)

// OutcomesHandler computes equilibrium frames for the chart.
type OutcomesHandler struct {
	scenarios *ScenarioHandler
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewOutcomesHandler creates an outcomes handler. metrics may be nil.
func NewOutcomesHandler(scenarios *ScenarioHandler, metrics *observability.Metrics, logger *slog.Logger) *OutcomesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutcomesHandler{scenarios: scenarios, metrics: metrics, logger: logger}
}

// Compute handles POST /api/v1/outcomes
func (h *OutcomesHandler) Compute(c *gin.Context) {
	var req models.OutcomesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.metrics, badRequest(CodeInvalidRequest, err))
		return
	}
	h.respond(c, req)
}

// ComputeQuery handles GET /api/v1/outcomes
func (h *OutcomesHandler) ComputeQuery(c *gin.Context) {
	var q models.OutcomesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, h.metrics, badRequest(CodeInvalidRequest, err))
		return
	}
	h.respond(c, q.ToRequest())
}

func (h *OutcomesHandler) respond(c *gin.Context, req models.OutcomesRequest) {
	resp, apiErr := h.evaluate(req)
	if apiErr != nil {
		writeError(c, h.metrics, apiErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// evaluate resolves a request into inputs and computes one frame.
func (h *OutcomesHandler) evaluate(req models.OutcomesRequest) (*models.OutcomesResponse, *apiError) {
	in, apiErr := h.resolve(req.Scenario, req)
	if apiErr != nil {
		return nil, apiErr
	}
	out, apiErr := h.compute(in)
	if apiErr != nil {
		return nil, apiErr
	}
	return toOutcomesResponse(req.Scenario, out, req.OmitSamples), nil
}

// Compare handles POST /api/v1/outcomes/compare
func (h *OutcomesHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.metrics, badRequest(CodeInvalidRequest, err))
		return
	}

	scenarios := make([]analysis.Scenario, 0, len(req.Variations))
	resp := models.CompareResponse{Rankings: []models.Ranking{}}
	for _, v := range req.Variations {
		scenario := req.Base.Scenario
		if v.Request.Scenario != "" {
			scenario = v.Request.Scenario
		}
		in, apiErr := h.resolve(scenario, req.Base, v.Request)
		if apiErr != nil {
			resp.Skipped = append(resp.Skipped, models.SkippedVariant{Name: v.Name, Reason: apiErr.Message})
			continue
		}
		scenarios = append(scenarios, analysis.Scenario{Name: v.Name, Inputs: in})
	}

	start := time.Now()
	ranked, skipped := analysis.RankByDeadweightLoss(scenarios)
	elapsed := time.Since(start)
	for i, r := range ranked {
		h.metrics.ObserveCompute(string(r.Outcomes.Mode), elapsed/time.Duration(len(ranked)))
		out := r.Outcomes
		resp.Rankings = append(resp.Rankings, models.Ranking{
			Rank:           i + 1,
			Name:           r.Name,
			Mode:           string(out.Mode),
			Market:         toMarketInput(out.Market),
			MonopolyQ:      out.Monopoly.Q,
			MonopolyP:      out.Monopoly.P,
			CompetitiveQ:   out.Competitive.Q,
			Profit:         out.Profit,
			DeadweightLoss: out.DeadweightLoss,
			DWLShare:       r.DWLShare,
		})
	}

	names := make([]string, 0, len(skipped))
	for name := range skipped {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		resp.Skipped = append(resp.Skipped, models.SkippedVariant{Name: name, Reason: skipped[name].Error()})
	}

	c.JSON(http.StatusOK, resp)
}

// resolve layers the request(s) over an optional preset and validates the result.
// Later layers override earlier ones field by field.
func (h *OutcomesHandler) resolve(scenario string, layers ...models.OutcomesRequest) (outcome.Inputs, *apiError) {
	var cfg config.Config
	if scenario != "" {
		if h.scenarios == nil {
			return outcome.Inputs{}, scenarioError(ErrScenarioNotFound)
		}
		base, err := h.scenarios.Load(scenario)
		if err != nil {
			return outcome.Inputs{}, scenarioError(err)
		}
		cfg = *base
	}
	for _, l := range layers {
		cfg = config.MergeScenario(cfg, requestConfig(l))
	}

	if err := cfg.Market.ToModelParams().Validate(); err != nil {
		return outcome.Inputs{}, badRequest(CodeInvalidMarket, err)
	}
	in, err := cfg.ToInputs()
	if err != nil {
		return outcome.Inputs{}, badRequest(CodeInvalidMode, err)
	}
	return in, nil
}

func (h *OutcomesHandler) compute(in outcome.Inputs) (*outcome.Outcomes, *apiError) {
	start := time.Now()
	out, err := outcome.Compute(in)
	if err != nil {
		h.logger.Error("compute outcomes", "err", err)
		return nil, &apiError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: err.Error()}
	}
	h.metrics.ObserveCompute(string(out.Mode), time.Since(start))
	return out, nil
}

func requestConfig(r models.OutcomesRequest) config.Config {
	return config.Config{
		Market: config.MarketConfig{QMax: r.Market.QMax, PMax: r.Market.PMax, MC: r.Market.MC},
		Monopoly: config.MonopolyConfig{
			Mode:     r.Mode,
			Quantity: r.MonopolyQuantity,
		},
		ProbeQ: r.ProbeQuantity,
		Chart:  config.ChartConfig{CurvePoints: r.CurvePoints, RegionPoints: r.RegionPoints},
	}
}

func toMarketInput(m model.MarketParameters) models.MarketInput {
	return models.MarketInput{QMax: m.QMax, PMax: m.PMax, MC: m.MC}
}

func toSurplus(s model.Surplus) models.Surplus {
	return models.Surplus{Consumer: s.Consumer, Producer: s.Producer, Total: s.Total}
}

func toOutcomesResponse(scenario string, out *outcome.Outcomes, omitSamples bool) *models.OutcomesResponse {
	resp := &models.OutcomesResponse{
		Status:   "completed",
		Scenario: scenario,
		Mode:     string(out.Mode),
		Market:   toMarketInput(out.Market),
		Slope:    out.Slope,

		Competitive: models.Equilibrium{Q: out.Competitive.Q, P: out.Competitive.P},
		Monopoly:    models.Equilibrium{Q: out.Monopoly.Q, P: out.Monopoly.P},

		Profit:         out.Profit,
		DeadweightLoss: out.DeadweightLoss,
		Surplus: models.SurplusByKind{
			Competitive: toSurplus(out.CompetitiveSurplus),
			Monopoly:    toSurplus(out.MonopolySurplus),
		},
		MonopolyRestrictsOutput: out.MonopolyRestrictsOutput,

		Metrics: display.Metrics(out),
	}
	if out.Probe != nil {
		resp.Probe = &models.Point{Q: out.Probe.Q, P: out.Probe.P}
	}
	if omitSamples {
		return resp
	}

	resp.CurveSamples = make([]models.CurveSample, len(out.CurveSamples))
	for i, s := range out.CurveSamples {
		resp.CurveSamples[i] = models.CurveSample{Q: s.Q, PDemand: s.PDemand, PMarginal: s.PMarginal}
	}
	resp.DeadweightRegion = make([]models.RegionSample, len(out.DeadweightRegion))
	for i, s := range out.DeadweightRegion {
		resp.DeadweightRegion[i] = models.RegionSample{Q: s.Q, PDemand: s.PDemand, MC: s.MC}
	}
	return resp
}
