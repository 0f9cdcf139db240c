package handlers

import (
	"net/http"

	"monopoly-sim/internal/api/models"
	"monopoly-sim/internal/model"

	"github.com/gin-gonic/gin"
)

// ControlHandler describes the input controls of the chart page.
type ControlHandler struct{}

func NewControlHandler() *ControlHandler {
	return &ControlHandler{}
}

func bound(v float64) *float64 { return &v }

// Controls lists sliders in display order. Bounds that depend on Q_max are
// reported through MaxRef instead of a fixed Max.
var Controls = []models.ControlInfo{
	{
		Name:        "q_max",
		Label:       "Max Quantity (Q at P=0)",
		Type:        "float",
		Description: "Horizontal intercept of the demand curve",
		Min:         bound(50),
		Max:         bound(500),
		Step:        10,
		Default:     200.0,
	},
	{
		Name:        "p_max",
		Label:       "Max Price (P at Q=0)",
		Type:        "float",
		Description: "Vertical intercept of the demand curve",
		Min:         bound(50),
		Max:         bound(500),
		Step:        5,
		Default:     120.0,
	},
	{
		Name:        "mc",
		Label:       "Marginal Cost (MC)",
		Type:        "float",
		Description: "Constant per-unit cost, also the competitive price",
		Min:         bound(0),
		Max:         bound(300),
		Step:        1,
		Default:     40.0,
	},
	{
		Name:        "mode",
		Label:       "Monopoly Output",
		Type:        "enum",
		Description: "optimal sets MR = MC; chosen uses monopoly_q",
		Options:     []string{string(model.ModeOptimal), string(model.ModeChosen)},
		Default:     string(model.ModeOptimal),
	},
	{
		Name:        "monopoly_q",
		Label:       "Monopoly Quantity",
		Type:        "int",
		Description: "Quantity the monopolist produces in chosen mode (default Q_max/3)",
		Min:         bound(1),
		MaxRef:      "q_max",
		Step:        1,
	},
	{
		Name:        "probe_q",
		Label:       "Probe Quantity",
		Type:        "float",
		Description: "Marks the demand-curve price at this quantity (default Q_max/2)",
		Min:         bound(0),
		MaxRef:      "q_max",
		Step:        1,
	},
}

// ListControls handles GET /api/v1/controls
func (h *ControlHandler) ListControls(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"controls": Controls})
}
