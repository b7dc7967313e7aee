package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()

	m.Observe("authenticate", ResultOK, time.Now())
	m.Observe("authenticate", ResultNotFound, time.Now())
	m.Observe("authenticate", ResultNotFound, time.Now())
	m.Observe("recover", ResultRateLimited, time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("authenticate", ResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("authenticate", ResultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitedTotal))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe("register", ResultOK, time.Now())
		m.ObserveRecoverAttempts(3)
	})
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.Observe("register", ResultOK, time.Now())
	m.ObserveRecoverAttempts(4)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `keyplace_custodian_operations_total{operation="register",result="ok"} 1`)
	assert.Contains(t, string(body), "keyplace_custodian_recover_attempts_count 1")
	assert.Contains(t, string(body), "go_goroutines")
}
