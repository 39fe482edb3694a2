package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatBureau/pitemp-monitor/internal/system"
)

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2026, 10, 19, 14, 5, 9, 123456000, time.Local)

func fullSnapshot() system.Snapshot {
	return system.Snapshot{
		CPUPercent:    ptr(3.1),
		MemoryPercent: ptr(25.0),
		MemoryUsedMB:  ptr(int64(500)),
		MemoryTotalMB: ptr(int64(2000)),
		Uptime:        ptr("up 2 hours, 3 minutes"),
	}
}

func TestNewSystemInfo(t *testing.T) {
	info := NewSystemInfo(fullSnapshot())

	assert.Equal(t, SystemInfo{
		CPUUsage:    "3.1%",
		MemoryUsage: "25.0%",
		MemoryUsed:  "500MB",
		MemoryTotal: "2000MB",
		Uptime:      "up 2 hours, 3 minutes",
	}, info)
}

func TestNewSystemInfo_Empty(t *testing.T) {
	info := NewSystemInfo(system.Snapshot{})

	assert.Equal(t, SystemInfo{
		CPUUsage:    NotAvailable,
		MemoryUsage: NotAvailable,
		MemoryUsed:  NotAvailable,
		MemoryTotal: NotAvailable,
		Uptime:      NotAvailable,
	}, info)
}

func TestTemperatureJSON(t *testing.T) {
	tests := []struct {
		name string
		temp *float64
		want any
	}{
		{name: "reading", temp: ptr(42.8), want: 42.8},
		{name: "unavailable", temp: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(NewTemperature(tt.temp, fixedNow))
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, json.Unmarshal(b, &doc))
			assert.Len(t, doc, 3)
			assert.Contains(t, doc, "temperature")
			assert.Equal(t, tt.want, doc["temperature"])
			assert.Equal(t, "Celsius", doc["unit"])

			ts, err := time.Parse(time.RFC3339Nano, doc["timestamp"].(string))
			require.NoError(t, err)
			assert.True(t, ts.Equal(fixedNow))
		})
	}
}

func TestSystemJSON(t *testing.T) {
	b, err := json.Marshal(NewSystem(nil, fullSnapshot(), fixedNow))
	require.NoError(t, err)

	var doc struct {
		Temperature *float64          `json:"temperature"`
		SystemInfo  map[string]string `json:"system_info"`
		Timestamp   string            `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Nil(t, doc.Temperature)
	assert.Equal(t, "500MB", doc.SystemInfo["memory_used"])
	assert.Equal(t, "2000MB", doc.SystemInfo["memory_total"])
	assert.Equal(t, "25.0%", doc.SystemInfo["memory_usage"])
	assert.Len(t, doc.SystemInfo, 5)
	assert.NotEmpty(t, doc.Timestamp)
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, ptr(61.2), fullSnapshot(), fixedNow))

	html := buf.String()
	assert.Contains(t, html, "61.2°C")
	assert.Contains(t, html, `class="card temperature warm"`)
	assert.Contains(t, html, "3.1%")
	assert.Contains(t, html, "25.0%")
	assert.Contains(t, html, "500MB")
	assert.Contains(t, html, "2000MB")
	assert.Contains(t, html, "up 2 hours, 3 minutes")
	assert.Contains(t, html, "2026-10-19 14:05:09")
}

func TestRenderHTML_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, nil, system.Snapshot{}, fixedNow))

	html := buf.String()
	assert.Contains(t, html, `class="card temperature unknown"`)
	assert.Equal(t, 6, bytes.Count(buf.Bytes(), []byte("N/A")))
}

func TestTemperatureClass(t *testing.T) {
	assert.Equal(t, "unknown", temperatureClass(nil))
	assert.Equal(t, "cool", temperatureClass(ptr(49.9)))
	assert.Equal(t, "warm", temperatureClass(ptr(50.0)))
	assert.Equal(t, "hot", temperatureClass(ptr(70.0)))
}
