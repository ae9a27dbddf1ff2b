package rest

import (
	"net/http"

	"github.com/ewilliams-labs/artistscope/internal/core/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc     *services.Analyzer // Dependency on the Core Service
	router  *http.ServeMux     // Standard library router
	handler http.Handler       // router wrapped in middleware
}

// NewHandler initializes the HTTP adapter and sets up routes. When staticDir
// is non-empty, unmatched GET requests are served from it.
func NewHandler(svc *services.Analyzer, staticDir string) *Handler {
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
	}

	// Register Routes
	h.routes(staticDir)
	h.handler = requestLogger(corsMiddleware(h.router))

	datasetRows.Set(float64(svc.Rows()))

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes(staticDir string) {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)
	h.router.Handle("GET /metrics", promhttp.Handler())

	// Artist queries
	h.router.Handle("GET /api/artist_features", instrument("artist_features", h.ArtistFeatures))
	h.router.Handle("GET /api/artist_top_tracks", instrument("artist_top_tracks", h.ArtistTopTracks))
	h.router.Handle("GET /api/artist_trends", instrument("artist_trends", h.ArtistTrends))
	h.router.Handle("GET /api/artist_timeline", instrument("artist_timeline", h.ArtistTimeline))
	h.router.Handle("GET /api/artist_year_summary", instrument("artist_year_summary", h.ArtistYearSummary))

	// Dashboard
	if staticDir != "" {
		h.router.Handle("GET /", http.FileServer(http.Dir(staticDir)))
	}
}

type healthResponse struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Rows: h.svc.Rows()})
}
