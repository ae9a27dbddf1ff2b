package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
	"github.com/ewilliams-labs/artistscope/internal/core/ports"
)

// DefaultTopTracksLimit is the number of tracks TopTracks returns when the
// caller does not ask for a specific count.
const DefaultTopTracksLimit = 5

// Analyzer answers artist queries over an immutable dataset snapshot.
type Analyzer struct {
	snapshot *domain.Snapshot
	links    ports.LinkBuilder
}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer(snapshot *domain.Snapshot, links ports.LinkBuilder) *Analyzer {
	if snapshot == nil {
		snapshot = domain.NewSnapshot(nil)
	}
	return &Analyzer{
		snapshot: snapshot,
		links:    links,
	}
}

// Rows reports the size of the underlying snapshot.
func (a *Analyzer) Rows() int {
	return a.snapshot.Len()
}

// AverageFeatures returns the mean of every tracked feature over the
// artist's tracks, rounded to three decimals. Loudness is averaged by
// magnitude.
func (a *Analyzer) AverageFeatures(name string) (domain.FeatureAverages, error) {
	tracks := a.snapshot.ByArtist(name)
	if len(tracks) == 0 {
		return domain.FeatureAverages{}, fmt.Errorf("service: features for %q: %w", name, domain.ErrNotFound)
	}

	sums := make([]float64, len(domain.Features))
	for _, t := range tracks {
		for i, f := range domain.Features {
			v := domain.ParseNumericOrZero(t.Field(f))
			if f == domain.ColLoudness {
				v = math.Abs(v)
			}
			sums[i] += v
		}
	}

	var avg domain.FeatureAverages
	n := float64(len(tracks))
	for i, f := range domain.Features {
		avg.Set(f, domain.Round(sums[i]/n, 3))
	}
	return avg, nil
}

// TopTracks returns up to limit of the artist's most popular tracks. Ties
// keep dataset order. A limit of zero or less uses DefaultTopTracksLimit.
func (a *Analyzer) TopTracks(name string, limit int) ([]domain.TrackSummary, error) {
	if limit <= 0 {
		limit = DefaultTopTracksLimit
	}

	tracks := a.snapshot.ByArtist(name)
	if len(tracks) == 0 {
		return nil, fmt.Errorf("service: top tracks for %q: %w", name, domain.ErrNotFound)
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		return domain.ParseIntOrZero(tracks[i].Popularity) > domain.ParseIntOrZero(tracks[j].Popularity)
	})
	if len(tracks) > limit {
		tracks = tracks[:limit]
	}

	out := make([]domain.TrackSummary, 0, len(tracks))
	for _, t := range tracks {
		query := t.TrackName + " " + name
		summary := domain.TrackSummary{
			TrackName:  t.TrackName,
			Album:      t.AlbumName,
			Popularity: t.Popularity,
		}
		if a.links != nil {
			summary.SpotifyURL = a.links.SpotifyURL(t.TrackID, query)
			summary.YouTubeURL = a.links.YouTubeURL(query)
		}
		out = append(out, summary)
	}
	return out, nil
}

// TrendTimeline returns one point per artist track in dataset order. An
// unknown artist yields an empty timeline.
func (a *Analyzer) TrendTimeline(name string) []domain.TrendPoint {
	tracks := a.snapshot.ByArtist(name)
	out := make([]domain.TrendPoint, 0, len(tracks))
	for i, t := range tracks {
		label := t.TrackName
		if label == "" {
			label = fmt.Sprintf("Track %d", i+1)
		}
		out = append(out, domain.TrendPoint{
			Label:        label,
			Mood:         domain.ParseNumericOrZero(t.Valence),
			Energy:       domain.ParseNumericOrZero(t.Energy),
			Popularity:   domain.ParseNumericOrZero(t.Popularity),
			Danceability: domain.ParseNumericOrZero(t.Danceability),
		})
	}
	return out
}

// YearTimeline returns the songs of every artist whose name contains name,
// keeping only those with a release year after 1900. ErrNotFound means no
// artist matched at all; a match without usable years gives an empty list.
func (a *Analyzer) YearTimeline(name string) ([]domain.YearSong, error) {
	tracks := a.snapshot.ByArtistSubstring(name)
	if len(tracks) == 0 {
		return nil, fmt.Errorf("service: timeline for %q: %w", name, domain.ErrNotFound)
	}

	out := make([]domain.YearSong, 0, len(tracks))
	for _, t := range tracks {
		year, ok := domain.ParseYear(t.ReleaseYear)
		if !ok {
			continue
		}
		out = append(out, domain.YearSong{
			TrackName:    t.TrackName,
			ReleaseYear:  year,
			Popularity:   domain.ParseNumericOrZero(t.Popularity),
			Energy:       domain.ParseNumericOrZero(t.Energy),
			Danceability: domain.ParseNumericOrZero(t.Danceability),
		})
	}
	return out, nil
}
