package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"monopoly-sim/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	liveReadLimit = 64 << 10
	liveWriteWait = 10 * time.Second
	liveIdle      = 5 * time.Minute
)

// LiveFrame is one server message on the live channel: either a frame or an error.
type LiveFrame struct {
	Session  string                   `json:"session"`
	Seq      int                      `json:"seq"`
	Outcomes *models.OutcomesResponse `json:"outcomes,omitempty"`
	Error    *models.ErrorDetail      `json:"error,omitempty"`
}

// LiveHandler recomputes the whole frame for every input snapshot a client sends.
type LiveHandler struct {
	outcomes *OutcomesHandler
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewLiveHandler(outcomes *OutcomesHandler, logger *slog.Logger) *LiveHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveHandler{
		outcomes: outcomes,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 16384,
			// Origin policy is enforced by the CORS middleware.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Serve handles GET /api/v1/live
func (h *LiveHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error.
		h.logger.Warn("live upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	metrics := h.outcomes.metrics
	metrics.LiveOpened()
	defer metrics.LiveClosed()
	log := h.logger.With("session", session)
	log.Info("live session opened")

	conn.SetReadLimit(liveReadLimit)
	for seq := 1; ; seq++ {
		_ = conn.SetReadDeadline(time.Now().Add(liveIdle))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !isTimeout(err) {
				log.Warn("live read", "err", err)
			}
			log.Info("live session closed", "messages", seq-1)
			return
		}
		metrics.LiveMessage()

		frame := LiveFrame{Session: session, Seq: seq}
		var apiErr *apiError
		var req models.OutcomesRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			apiErr = badRequest(CodeInvalidRequest, err)
		} else {
			frame.Outcomes, apiErr = h.outcomes.evaluate(req)
		}
		if apiErr != nil {
			metrics.RecordError(apiErr.Code)
			detail := apiErr.body().Error
			frame.Error = &detail
		}

		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := conn.WriteJSON(frame); err != nil {
			log.Warn("live write", "err", err)
			return
		}
	}
}

func isTimeout(err error) bool {
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
