package handlers

import (
	"io/fs"
	"log/slog"
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/rs/cors"

	"github.com/MatBureau/pitemp-monitor/web"
)

type RouterOptions struct {
	// Metrics is served at /metrics when non-nil.
	Metrics http.Handler
	// Observer receives request outcomes; may be nil.
	Observer           RequestObserver
	CORSAllowedOrigins []string
}

// NewRouter wires the dashboard routes behind recovery, CORS and access
// logging.
func NewRouter(h *Handlers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	api := cors.New(cors.Options{
		AllowedOrigins: opts.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	})

	// --- API ---
	mux.Handle("GET /api/temperature", api.Handler(http.HandlerFunc(h.Temperature)))
	mux.Handle("GET /api/system", api.Handler(http.HandlerFunc(h.System)))
	mux.HandleFunc("GET /healthz", Health)
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics)
	}

	// --- UI ---
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	mux.HandleFunc("GET /{$}", h.Index)

	recovery := gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(slog.NewLogLogger(h.Logger.Handler(), slog.LevelError)),
	)
	return Instrument(h.Logger, opts.Observer, recovery(mux))
}
