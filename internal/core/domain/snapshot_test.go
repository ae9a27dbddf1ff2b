package domain

import (
	"errors"
	"testing"
)

func sampleRows() []TrackRow {
	return []TrackRow{
		{ArtistName: "Adele", TrackName: "Hello"},
		{ArtistName: "Adele Adkins", TrackName: "Someone Like You"},
		{ArtistName: "ADELE", TrackName: "Skyfall"},
		{ArtistName: "", TrackName: "Orphan"},
		{ArtistName: "Drake", TrackName: "Hotline Bling"},
	}
}

func TestSnapshot_ByArtist(t *testing.T) {
	s := NewSnapshot(sampleRows())

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{name: "case-insensitive exact", query: "adele", wantNames: []string{"Hello", "Skyfall"}},
		{name: "no partial match", query: "adel", wantNames: nil},
		{name: "unknown artist", query: "Nobody", wantNames: nil},
		{name: "empty query skips blank artists", query: "", wantNames: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := s.ByArtist(tc.query)
			if len(got) != len(tc.wantNames) {
				t.Fatalf("expected %d rows, got %d", len(tc.wantNames), len(got))
			}
			for i, r := range got {
				if r.TrackName != tc.wantNames[i] {
					t.Fatalf("row %d: got %q, want %q", i, r.TrackName, tc.wantNames[i])
				}
			}
		})
	}
}

func TestSnapshot_ByArtistSubstring(t *testing.T) {
	s := NewSnapshot(sampleRows())

	got := s.ByArtistSubstring("ADEL")
	want := []string{"Hello", "Someone Like You", "Skyfall"}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i, r := range got {
		if r.TrackName != want[i] {
			t.Fatalf("row %d: got %q, want %q", i, r.TrackName, want[i])
		}
	}
}

func TestSnapshot_IsolatedFromCaller(t *testing.T) {
	rows := sampleRows()
	s := NewSnapshot(rows)
	rows[0].TrackName = "mutated"

	got := s.ByArtist("adele")
	if got[0].TrackName != "Hello" {
		t.Fatalf("snapshot changed after caller mutation: %q", got[0].TrackName)
	}

	got[0].TrackName = "mutated again"
	if again := s.ByArtist("adele"); again[0].TrackName != "Hello" {
		t.Fatalf("snapshot changed after result mutation: %q", again[0].TrackName)
	}
}

func TestSnapshot_NilLen(t *testing.T) {
	var s *Snapshot
	if s.Len() != 0 {
		t.Fatalf("nil snapshot should be empty")
	}
}

func TestTrackRow_FieldRoundTrip(t *testing.T) {
	var r TrackRow
	for i, c := range Columns {
		r.SetField(c, c+"-value")
		if got := r.Field(c); got != c+"-value" {
			t.Fatalf("column %d %q: got %q", i, c, got)
		}
	}
	if r.Field("unknown") != "" {
		t.Fatalf("unknown column should be empty")
	}
	if vals := r.Values(); len(vals) != len(Columns) || vals[0] != ColArtistName+"-value" {
		t.Fatalf("unexpected values: %v", vals)
	}
}

func TestLoadError(t *testing.T) {
	cause := errors.New("boom")
	err := NewLoadError("csv:missing.csv", cause)

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if got := err.Error(); got != "dataset load failed (csv:missing.csv): boom" {
		t.Fatalf("unexpected message %q", got)
	}
}
