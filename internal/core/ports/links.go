package ports

// LinkBuilder builds outbound listening links for a track.
type LinkBuilder interface {
	// SpotifyURL returns the track page when trackID is set, otherwise a
	// search for query.
	SpotifyURL(trackID, query string) string
	YouTubeURL(query string) string
}
