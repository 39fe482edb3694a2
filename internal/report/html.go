package report

import (
	"html/template"
	"io"
	"time"

	"github.com/MatBureau/pitemp-monitor/internal/system"
	"github.com/MatBureau/pitemp-monitor/web"
)

var page = template.Must(template.ParseFS(web.FS, "index.html"))

type pageData struct {
	Temperature      string
	TemperatureClass string
	System           SystemInfo
	CurrentTime      string
}

// RenderHTML writes the dashboard page.
func RenderHTML(w io.Writer, temp *float64, snap system.Snapshot, now time.Time) error {
	return page.Execute(w, pageData{
		Temperature:      format(temp, "%.1f°C"),
		TemperatureClass: temperatureClass(temp),
		System:           NewSystemInfo(snap),
		CurrentTime:      now.Local().Format(DisplayLayout),
	})
}

func temperatureClass(temp *float64) string {
	switch {
	case temp == nil:
		return "unknown"
	case *temp < 50:
		return "cool"
	case *temp < 70:
		return "warm"
	default:
		return "hot"
	}
}
