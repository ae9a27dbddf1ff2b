package rest

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
	"github.com/ewilliams-labs/artistscope/internal/core/services"
)

// Error bodies are part of the public contract; the dashboard shows them verbatim.
const (
	msgFeaturesNameRequired = "Artist name is required as query parameter `name`"
	msgNameParamMissing     = "Missing 'name' query parameter"
	msgTimelineNameRequired = "Artist name is required"
	msgArtistNotFound       = "Artist not found"
)

type featuresResponse struct {
	Artist   string                 `json:"artist"`
	Features domain.FeatureAverages `json:"features"`
}

type topTracksResponse struct {
	Artist string                `json:"artist"`
	Tracks []domain.TrackSummary `json:"tracks"`
}

type trendsResponse struct {
	Artist   string              `json:"artist"`
	Timeline []domain.TrendPoint `json:"timeline"`
}

type timelineResponse struct {
	Songs []domain.YearSong `json:"songs"`
}

type yearSummary struct {
	Year              int                     `json:"year"`
	Count             int                     `json:"count"`
	AveragePopularity float64                 `json:"average_popularity"`
	TopSongs          []domain.SongPopularity `json:"top_songs"`
}

type yearSummaryResponse struct {
	Artist string        `json:"artist"`
	Years  []yearSummary `json:"years"`
}

// ArtistFeatures handles GET /api/artist_features?name=
func (h *Handler) ArtistFeatures(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, msgFeaturesNameRequired)
		return
	}

	features, err := h.svc.AverageFeatures(name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("No data found for artist: %s", name))
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, featuresResponse{Artist: name, Features: features})
}

// ArtistTopTracks handles GET /api/artist_top_tracks?name=
func (h *Handler) ArtistTopTracks(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, msgNameParamMissing)
		return
	}

	tracks, err := h.svc.TopTracks(name, services.DefaultTopTracksLimit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("No data for artist: %s", name))
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, topTracksResponse{Artist: name, Tracks: tracks})
}

// ArtistTrends handles GET /api/artist_trends?name=
// An unknown artist is not an error here; the timeline is simply empty.
func (h *Handler) ArtistTrends(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, msgNameParamMissing)
		return
	}

	writeJSON(w, http.StatusOK, trendsResponse{Artist: name, Timeline: h.svc.TrendTimeline(name)})
}

// ArtistTimeline handles GET /api/artist_timeline?name=
func (h *Handler) ArtistTimeline(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, msgTimelineNameRequired)
		return
	}

	songs, err := h.svc.YearTimeline(name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgArtistNotFound)
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, timelineResponse{Songs: songs})
}

// ArtistYearSummary handles GET /api/artist_year_summary?name=
func (h *Handler) ArtistYearSummary(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, msgTimelineNameRequired)
		return
	}

	songs, err := h.svc.YearTimeline(name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgArtistNotFound)
			return
		}
		writeInternalError(w, err)
		return
	}

	// YearCounts and YearPopularity share ascending year order.
	counts := services.YearCounts(songs)
	popularity := services.YearPopularity(songs)
	years := make([]yearSummary, len(counts))
	for i, c := range counts {
		years[i] = yearSummary{
			Year:              c.Year,
			Count:             c.Count,
			AveragePopularity: popularity[i].AveragePopularity,
			TopSongs:          popularity[i].TopSongs,
		}
	}

	writeJSON(w, http.StatusOK, yearSummaryResponse{Artist: name, Years: years})
}

func writeInternalError(w http.ResponseWriter, err error) {
	log.Printf("WARN rest: %v", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}
