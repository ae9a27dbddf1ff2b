package services

import (
	"sort"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
)

const topSongsPerYear = 3

// YearCounts groups songs by release year, ascending.
func YearCounts(songs []domain.YearSong) []domain.YearCount {
	counts := make(map[int]int)
	for _, s := range songs {
		counts[s.ReleaseYear]++
	}

	out := make([]domain.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, domain.YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// YearPopularity groups songs by release year, ascending, with the mean
// popularity rounded to two decimals and the three most popular songs.
func YearPopularity(songs []domain.YearSong) []domain.YearPopularity {
	type bucket struct {
		total float64
		songs []domain.SongPopularity
	}
	buckets := make(map[int]*bucket)
	for _, s := range songs {
		b, ok := buckets[s.ReleaseYear]
		if !ok {
			b = &bucket{}
			buckets[s.ReleaseYear] = b
		}
		b.total += s.Popularity
		b.songs = append(b.songs, domain.SongPopularity{Name: s.TrackName, Popularity: s.Popularity})
	}

	out := make([]domain.YearPopularity, 0, len(buckets))
	for year, b := range buckets {
		top := b.songs
		sort.SliceStable(top, func(i, j int) bool { return top[i].Popularity > top[j].Popularity })
		count := len(b.songs)
		if len(top) > topSongsPerYear {
			top = top[:topSongsPerYear]
		}
		out = append(out, domain.YearPopularity{
			Year:              year,
			AveragePopularity: domain.Round(b.total/float64(count), 2),
			SongCount:         count,
			TopSongs:          top,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
