package handlers

import (
	"net/http"

	"monopoly-sim/internal/api/models"
	"monopoly-sim/internal/strategy"
	"monopoly-sim/internal/sweep"

	"github.com/gin-gonic/gin"
)

// Sweep handles GET /api/v1/sweep
func (h *OutcomesHandler) Sweep(c *gin.Context) {
	var q models.SweepQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, h.metrics, badRequest(CodeInvalidRequest, err))
		return
	}
	axis, err := sweep.ParseAxis(q.Axis)
	if err != nil {
		writeError(c, h.metrics, badRequest(CodeInvalidRequest, err))
		return
	}

	in, apiErr := h.resolve(q.Scenario, q.ToRequest())
	if apiErr != nil {
		writeError(c, h.metrics, apiErr)
		return
	}
	strat, err := strategy.FromMode(in.Mode, in.MonopolyQuantity, in.Market)
	if err != nil {
		writeError(c, h.metrics, badRequest(CodeInvalidMode, err))
		return
	}

	res, err := sweep.New().Run(in.Market, sweep.Params{Axis: axis, From: q.From, To: q.To, Steps: q.Steps}, strat)
	if err != nil {
		writeError(c, h.metrics, badRequest(CodeInvalidRequest, err))
		return
	}
	h.metrics.ObserveSweep(len(res.Ledger))

	resp := models.SweepResponse{
		Axis:     string(axis),
		Mode:     res.Strategy,
		Rows:     make([]models.SweepRow, len(res.Ledger)),
		PeakStep: res.PeakDWL.Index,
	}
	for i, r := range res.Ledger {
		resp.Rows[i] = models.SweepRow{
			Index:          r.Index,
			Value:          r.Value,
			Market:         toMarketInput(r.Market),
			CompetitiveQ:   r.CompetitiveQ,
			CompetitiveP:   r.CompetitiveP,
			MonopolyQ:      r.MonopolyQ,
			MonopolyP:      r.MonopolyP,
			Profit:         r.Profit,
			DeadweightLoss: r.DeadweightLoss,
		}
	}
	c.JSON(http.StatusOK, resp)
}
