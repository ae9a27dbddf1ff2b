package domain

// Features lists the audio features averaged per artist, in response order.
var Features = []string{
	ColDanceability,
	ColEnergy,
	ColValence,
	ColPopularity,
	ColAcousticness,
	ColInstrumentalness,
	ColLiveness,
	ColLoudness,
	ColSpeechiness,
	ColTempo,
}

// FeatureAverages holds per-artist feature means.
type FeatureAverages struct {
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Valence          float64 `json:"valence"`
	Popularity       float64 `json:"popularity"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Loudness         float64 `json:"loudness"`
	Speechiness      float64 `json:"speechiness"`
	Tempo            float64 `json:"tempo"`
}

// Set assigns the value of the named feature. Unknown names are ignored.
func (f *FeatureAverages) Set(feature string, v float64) {
	switch feature {
	case ColDanceability:
		f.Danceability = v
	case ColEnergy:
		f.Energy = v
	case ColValence:
		f.Valence = v
	case ColPopularity:
		f.Popularity = v
	case ColAcousticness:
		f.Acousticness = v
	case ColInstrumentalness:
		f.Instrumentalness = v
	case ColLiveness:
		f.Liveness = v
	case ColLoudness:
		f.Loudness = v
	case ColSpeechiness:
		f.Speechiness = v
	case ColTempo:
		f.Tempo = v
	}
}

// TrackSummary is one entry of an artist's top tracks.
type TrackSummary struct {
	TrackName  string `json:"track_name"`
	Album      string `json:"album"`
	Popularity string `json:"popularity"` // raw dataset value
	SpotifyURL string `json:"spotify_url"`
	YouTubeURL string `json:"youtube_url"`
}

// TrendPoint is one track in an artist's per-track trend timeline.
type TrendPoint struct {
	Label        string  `json:"label"`
	Mood         float64 `json:"mood"`
	Energy       float64 `json:"energy"`
	Popularity   float64 `json:"popularity"`
	Danceability float64 `json:"danceability"`
}

// YearSong is a track with a valid release year.
type YearSong struct {
	TrackName    string  `json:"track_name"`
	ReleaseYear  int     `json:"release_year"`
	Popularity   float64 `json:"popularity"`
	Energy       float64 `json:"energy"`
	Danceability float64 `json:"danceability"`
}

// YearCount is the number of songs released in a year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// SongPopularity names a song and its popularity.
type SongPopularity struct {
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
}

// YearPopularity summarises popularity for one release year.
type YearPopularity struct {
	Year              int              `json:"year"`
	AveragePopularity float64          `json:"average_popularity"`
	SongCount         int              `json:"song_count"`
	TopSongs          []SongPopularity `json:"top_songs"`
}
