package handlers

import (
	"net/http"

	"monopoly-sim/internal/api/models"
	"monopoly-sim/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidMarket    = "INVALID_MARKET"
	CodeInvalidMode      = "INVALID_MODE"
	CodeScenarioNotFound = "SCENARIO_NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

// apiError carries an HTTP status alongside the envelope code.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string { return e.Code + ": " + e.Message }

func badRequest(code string, err error) *apiError {
	return &apiError{Status: http.StatusBadRequest, Code: code, Message: err.Error()}
}

func (e *apiError) body() models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    e.Code,
			Message: e.Message,
		},
	}
}

func writeError(c *gin.Context, metrics *observability.Metrics, e *apiError) {
	metrics.RecordError(e.Code)
	_ = c.Error(e)
	c.JSON(e.Status, e.body())
}
