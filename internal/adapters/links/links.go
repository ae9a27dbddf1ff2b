// Package links builds the outbound Spotify and YouTube URLs shown next to
// an artist's top tracks. Nothing here talks to either service.
package links

import (
	"net/url"
	"strings"

	"github.com/ewilliams-labs/artistscope/internal/core/ports"
)

const (
	defaultSpotifyTrackBase  = "https://open.spotify.com/track/"
	defaultSpotifySearchBase = "https://www.spotify.com/search/"
	defaultYouTubeSearchBase = "https://www.youtube.com/results?search_query="
)

// Builder implements ports.LinkBuilder.
type Builder struct {
	spotifyTrackBase  string
	spotifySearchBase string
	youtubeSearchBase string
}

// compile-time interface assertion
var _ ports.LinkBuilder = (*Builder)(nil)

// NewBuilder returns a Builder pointing at the public Spotify and YouTube sites.
func NewBuilder() *Builder {
	return &Builder{
		spotifyTrackBase:  defaultSpotifyTrackBase,
		spotifySearchBase: defaultSpotifySearchBase,
		youtubeSearchBase: defaultYouTubeSearchBase,
	}
}

// SpotifyURL links to the track page when trackID is known and falls back to
// a Spotify search for query.
func (b *Builder) SpotifyURL(trackID, query string) string {
	if trackID != "" {
		return b.spotifyTrackBase + trackID
	}
	return b.spotifySearchBase + EncodeComponent(query)
}

// YouTubeURL links to a YouTube search for query.
func (b *Builder) YouTubeURL(query string) string {
	return b.youtubeSearchBase + EncodeComponent(query)
}

// the browser's encodeURIComponent leaves these literal; url.QueryEscape does not
var componentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a single URI component:
// spaces become %20 and only A-Z a-z 0-9 - _ . ! ~ * ' ( ) stay literal.
func EncodeComponent(s string) string {
	return componentFixups.Replace(url.QueryEscape(s))
}
