package domain

import "strings"

// Snapshot is the read-only, in-memory copy of the dataset. It is safe for
// concurrent use because nothing mutates it after NewSnapshot returns.
type Snapshot struct {
	rows []TrackRow
}

// NewSnapshot copies rows into a new Snapshot.
func NewSnapshot(rows []TrackRow) *Snapshot {
	cp := make([]TrackRow, len(rows))
	copy(cp, rows)
	return &Snapshot{rows: cp}
}

// Len reports the number of rows.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Filter returns, in dataset order, the rows for which keep reports true.
// The returned slice is freshly allocated.
func (s *Snapshot) Filter(keep func(TrackRow) bool) []TrackRow {
	if s == nil {
		return nil
	}
	var out []TrackRow
	for _, r := range s.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByArtist returns rows whose artist equals name, ignoring case.
func (s *Snapshot) ByArtist(name string) []TrackRow {
	return s.Filter(func(r TrackRow) bool {
		return r.ArtistName != "" && strings.EqualFold(r.ArtistName, name)
	})
}

// ByArtistSubstring returns rows whose artist contains name, ignoring case.
func (s *Snapshot) ByArtistSubstring(name string) []TrackRow {
	needle := strings.ToLower(name)
	return s.Filter(func(r TrackRow) bool {
		return r.ArtistName != "" && strings.Contains(strings.ToLower(r.ArtistName), needle)
	})
}
