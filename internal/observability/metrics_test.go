package observability

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_HandlerExposesCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ComputationsTotal.WithLabelValues("optimal").Inc()
	m.ComputationsTotal.WithLabelValues("optimal").Inc()
	m.RequestErrorsTotal.WithLabelValues("INVALID_MARKET").Inc()
	m.LiveSessions.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ComputationsTotal.WithLabelValues("optimal")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `monopoly_sim_model_computations_total{mode="optimal"} 2`)
	assert.Contains(t, string(body), `monopoly_sim_api_request_errors_total{code="INVALID_MARKET"} 1`)
	assert.Contains(t, string(body), "monopoly_sim_live_sessions 1")
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCompute("optimal", time.Millisecond)
		m.ObserveSweep(3)
		m.RecordError("X")
		m.LiveOpened()
		m.LiveMessage()
		m.LiveClosed()
	})
}

func TestMetrics_Recorders(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveCompute("chosen", 2*time.Millisecond)
	m.ObserveSweep(11)
	m.LiveOpened()
	m.LiveOpened()
	m.LiveClosed()
	m.LiveMessage()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComputationsTotal.WithLabelValues("chosen")))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.SweepStepsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LiveSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LiveMessagesTotal))
}
