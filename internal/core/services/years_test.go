package services

import (
	"reflect"
	"testing"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
)

func yearSongs() []domain.YearSong {
	return []domain.YearSong{
		{TrackName: "A", ReleaseYear: 2015, Popularity: 90},
		{TrackName: "B", ReleaseYear: 2012, Popularity: 40},
		{TrackName: "C", ReleaseYear: 2015, Popularity: 70},
		{TrackName: "D", ReleaseYear: 2015, Popularity: 95},
		{TrackName: "E", ReleaseYear: 2015, Popularity: 70},
		{TrackName: "F", ReleaseYear: 2012, Popularity: 45},
		{TrackName: "G", ReleaseYear: 2021, Popularity: 33},
	}
}

func TestYearCounts(t *testing.T) {
	got := YearCounts(yearSongs())
	want := []domain.YearCount{
		{Year: 2012, Count: 2},
		{Year: 2015, Count: 4},
		{Year: 2021, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if empty := YearCounts(nil); len(empty) != 0 {
		t.Fatalf("expected no groups, got %+v", empty)
	}
}

func TestYearPopularity(t *testing.T) {
	got := YearPopularity(yearSongs())
	want := []domain.YearPopularity{
		{
			Year:              2012,
			AveragePopularity: 42.5,
			SongCount:         2,
			TopSongs:          []domain.SongPopularity{{Name: "F", Popularity: 45}, {Name: "B", Popularity: 40}},
		},
		{
			Year:              2015,
			AveragePopularity: 81.25,
			SongCount:         4,
			TopSongs: []domain.SongPopularity{
				{Name: "D", Popularity: 95},
				{Name: "A", Popularity: 90},
				{Name: "C", Popularity: 70},
			},
		},
		{
			Year:              2021,
			AveragePopularity: 33,
			SongCount:         1,
			TopSongs:          []domain.SongPopularity{{Name: "G", Popularity: 33}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestYearPopularity_RoundsToTwoPlaces(t *testing.T) {
	got := YearPopularity([]domain.YearSong{
		{TrackName: "x", ReleaseYear: 2000, Popularity: 1},
		{TrackName: "y", ReleaseYear: 2000, Popularity: 1},
		{TrackName: "z", ReleaseYear: 2000, Popularity: 0},
	})
	if len(got) != 1 || got[0].AveragePopularity != 0.67 {
		t.Fatalf("expected 0.67, got %+v", got)
	}
}
