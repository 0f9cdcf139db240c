package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"monopoly-sim/internal/api/models"
	"monopoly-sim/internal/config"
	"monopoly-sim/internal/model"

	"github.com/gin-gonic/gin"
)

var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioHandler serves the preset scenarios stored as YAML files in one directory.
type ScenarioHandler struct {
	dir    string
	logger *slog.Logger
}

// NewScenarioHandler creates a scenario handler rooted at dir.
// An empty dir falls back to SCENARIO_DIR, then ./examples/scenarios.
func NewScenarioHandler(dir string, logger *slog.Logger) *ScenarioHandler {
	if dir == "" {
		dir = os.Getenv("SCENARIO_DIR")
	}
	if dir == "" {
		dir = filepath.Join(".", "examples", "scenarios")
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScenarioHandler{dir: dir, logger: logger}
}

func (h *ScenarioHandler) Dir() string { return h.dir }

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.dir)
	if err != nil {
		h.logger.Warn("read scenario dir", "dir", h.dir, "err", err)
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")
		cfg, err := h.Load(id)
		if err != nil {
			h.logger.Warn("skip scenario", "id", id, "err", err)
			continue
		}
		scenarios = append(scenarios, h.info(id, cfg))
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

// GetScenario handles GET /api/v1/scenarios/:id
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	id := c.Param("id")
	cfg, err := h.Load(id)
	if err != nil {
		writeError(c, nil, scenarioError(err))
		return
	}
	c.JSON(http.StatusOK, h.info(id, cfg))
}

// Load reads the preset with the given id (file name without .yaml).
func (h *ScenarioHandler) Load(id string) (*config.Config, error) {
	if id == "" || filepath.Base(id) != id || strings.HasPrefix(id, ".") {
		return nil, fmt.Errorf("%w: %q", ErrScenarioNotFound, id)
	}
	cfg, err := config.LoadScenarioFile(filepath.Join(h.dir, id+".yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrScenarioNotFound, id)
		}
		return nil, fmt.Errorf("scenario %q: %w", id, err)
	}
	return cfg, nil
}

func (h *ScenarioHandler) info(id string, cfg *config.Config) models.ScenarioInfo {
	name := cfg.Name
	if name == "" {
		name = id
	}
	mode := cfg.Monopoly.Mode
	if mode == "" {
		mode = string(model.ModeOptimal)
	}
	return models.ScenarioInfo{
		ID:     id,
		Name:   name,
		File:   id + ".yaml",
		Mode:   mode,
		Market: models.MarketInput{QMax: cfg.Market.QMax, PMax: cfg.Market.PMax, MC: cfg.Market.MC},
	}
}

func scenarioError(err error) *apiError {
	if errors.Is(err, ErrScenarioNotFound) {
		return &apiError{Status: http.StatusNotFound, Code: CodeScenarioNotFound, Message: err.Error()}
	}
	return &apiError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: err.Error()}
}
