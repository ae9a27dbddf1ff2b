package domain

// TrackRow is one dataset record. Every column is kept as the raw string the
// source delivered; consumers parse what they need.
type TrackRow struct {
	ArtistName       string
	TrackName        string
	AlbumName        string // optional
	ReleaseYear      string
	Popularity       string
	Danceability     string
	Energy           string
	Valence          string
	Acousticness     string
	Instrumentalness string
	Liveness         string
	Loudness         string
	Speechiness      string
	Tempo            string
	TrackID          string // optional, Spotify track id
}

// Column names as they appear in the dataset header.
const (
	ColArtistName       = "artist_name"
	ColTrackName        = "track_name"
	ColAlbumName        = "album_name"
	ColReleaseYear      = "release_year"
	ColPopularity       = "popularity"
	ColDanceability     = "danceability"
	ColEnergy           = "energy"
	ColValence          = "valence"
	ColAcousticness     = "acousticness"
	ColInstrumentalness = "instrumentalness"
	ColLiveness         = "liveness"
	ColLoudness         = "loudness"
	ColSpeechiness      = "speechiness"
	ColTempo            = "tempo"
	ColTrackID          = "track_id"
)

// Columns lists every column a TrackRow carries, in storage order.
var Columns = []string{
	ColArtistName,
	ColTrackName,
	ColAlbumName,
	ColReleaseYear,
	ColPopularity,
	ColDanceability,
	ColEnergy,
	ColValence,
	ColAcousticness,
	ColInstrumentalness,
	ColLiveness,
	ColLoudness,
	ColSpeechiness,
	ColTempo,
	ColTrackID,
}

// RequiredColumns must be present in any tabular source.
var RequiredColumns = []string{ColArtistName, ColTrackName}

// Field returns the raw value of the named column, or "" for unknown names.
func (r TrackRow) Field(column string) string {
	switch column {
	case ColArtistName:
		return r.ArtistName
	case ColTrackName:
		return r.TrackName
	case ColAlbumName:
		return r.AlbumName
	case ColReleaseYear:
		return r.ReleaseYear
	case ColPopularity:
		return r.Popularity
	case ColDanceability:
		return r.Danceability
	case ColEnergy:
		return r.Energy
	case ColValence:
		return r.Valence
	case ColAcousticness:
		return r.Acousticness
	case ColInstrumentalness:
		return r.Instrumentalness
	case ColLiveness:
		return r.Liveness
	case ColLoudness:
		return r.Loudness
	case ColSpeechiness:
		return r.Speechiness
	case ColTempo:
		return r.Tempo
	case ColTrackID:
		return r.TrackID
	}
	return ""
}

// SetField assigns the named column. Unknown names are ignored.
func (r *TrackRow) SetField(column, value string) {
	switch column {
	case ColArtistName:
		r.ArtistName = value
	case ColTrackName:
		r.TrackName = value
	case ColAlbumName:
		r.AlbumName = value
	case ColReleaseYear:
		r.ReleaseYear = value
	case ColPopularity:
		r.Popularity = value
	case ColDanceability:
		r.Danceability = value
	case ColEnergy:
		r.Energy = value
	case ColValence:
		r.Valence = value
	case ColAcousticness:
		r.Acousticness = value
	case ColInstrumentalness:
		r.Instrumentalness = value
	case ColLiveness:
		r.Liveness = value
	case ColLoudness:
		r.Loudness = value
	case ColSpeechiness:
		r.Speechiness = value
	case ColTempo:
		r.Tempo = value
	case ColTrackID:
		r.TrackID = value
	}
}

// Values returns the row's fields in Columns order.
func (r TrackRow) Values() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = r.Field(c)
	}
	return out
}
