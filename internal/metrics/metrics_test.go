package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ProbeFailed("cpu", "shell")
	m.ProbeFailed("cpu", "shell")
	m.ProbeFailed("uptime", "gopsutil")
	m.TemperatureRead(47.2)
	m.ObserveRequest("/api/system", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.probeFailures.WithLabelValues("cpu", "shell")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.probeFailures.WithLabelValues("uptime", "gopsutil")))
	assert.Equal(t, 47.2, testutil.ToFloat64(m.temperature))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/system", "200")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ProbeFailed("temperature", "shell")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `tempmon_probe_failures_total{probe="temperature",source="shell"} 1`)
}

func TestMetrics_Registry(t *testing.T) {
	m := New()
	m.TemperatureRead(51.3)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "tempmon_cpu_temperature_celsius")
	assert.Contains(t, names, "go_goroutines")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ProbeFailed("cpu", "shell")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.probeFailures.WithLabelValues("cpu", "shell")))
}
