// Package insights derives mood statistics from journal entries. Nothing here
// is stored; every call recomputes from the entries it is given.
package insights

import (
	"math"
	"time"

	"github.com/idilsaglam/safespace/internal/model"
)

// Stat is the share of entries written under one mood.
type Stat struct {
	Mood    model.Mood
	Count   int
	Percent int
}

// Aggregate counts entries per mood and reports each mood's rounded
// percentage of the total, in valence order. Moods without entries are left
// out.
func Aggregate(entries []model.JournalEntry) []Stat {
	total := len(entries)
	if total == 0 {
		return nil
	}
	counts := make(map[model.Mood]int, 3)
	for _, e := range entries {
		counts[e.Mood]++
	}
	var out []Stat
	for _, m := range model.Moods() {
		c := counts[m]
		if c == 0 {
			continue
		}
		out = append(out, Stat{Mood: m, Count: c, Percent: percent(c, total)})
	}
	return out
}

func percent(count, total int) int {
	return int(math.Floor(float64(count)/float64(total)*100 + 0.5))
}

// Point is one sample of the mood trend.
type Point struct {
	Date  time.Time
	Mood  model.Mood
	Value int
}

// Trend turns newest-first entries into chronological chart points.
func Trend(entries []model.JournalEntry) []Point {
	out := make([]Point, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		out = append(out, Point{Date: e.CreatedAt, Mood: e.Mood, Value: e.Mood.Value()})
	}
	return out
}
