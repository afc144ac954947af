package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/safespace/internal/model"
)

func entries(moods ...model.Mood) []model.JournalEntry {
	out := make([]model.JournalEntry, len(moods))
	for i, m := range moods {
		out[i] = model.JournalEntry{ID: int64(i + 1), Text: "x", Mood: m}
	}
	return out
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestAggregate(t *testing.T) {
	got := Aggregate(entries(model.Hopeful, model.Hopeful, model.Neutral, model.Difficult))
	assert.Equal(t, []Stat{
		{Mood: model.Difficult, Count: 1, Percent: 25},
		{Mood: model.Neutral, Count: 1, Percent: 25},
		{Mood: model.Hopeful, Count: 2, Percent: 50},
	}, got)

	sum := 0
	for _, s := range got {
		sum += s.Percent
	}
	assert.Equal(t, 100, sum)
}

func TestAggregateSkipsEmptyMoods(t *testing.T) {
	got := Aggregate(entries(model.Neutral, model.Neutral, model.Neutral))
	require.Len(t, got, 1)
	assert.Equal(t, Stat{Mood: model.Neutral, Count: 3, Percent: 100}, got[0])
}

func TestAggregateRounding(t *testing.T) {
	cases := []struct {
		name  string
		moods []model.Mood
		want  map[model.Mood]int
	}{
		{"thirds", []model.Mood{model.Difficult, model.Neutral, model.Hopeful},
			map[model.Mood]int{model.Difficult: 33, model.Neutral: 33, model.Hopeful: 33}},
		{"two of three", []model.Mood{model.Hopeful, model.Hopeful, model.Neutral},
			map[model.Mood]int{model.Hopeful: 67, model.Neutral: 33}},
		{"one of eight rounds half up", []model.Mood{model.Difficult, model.Neutral, model.Neutral, model.Neutral,
			model.Neutral, model.Neutral, model.Neutral, model.Neutral},
			map[model.Mood]int{model.Difficult: 13, model.Neutral: 88}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := map[model.Mood]int{}
			for _, s := range Aggregate(entries(c.moods...)) {
				got[s.Mood] = s.Percent
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestTrendIsChronological(t *testing.T) {
	t0 := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	newestFirst := []model.JournalEntry{
		{ID: 3, Text: "c", Mood: model.Hopeful, CreatedAt: t0.Add(2 * time.Hour)},
		{ID: 2, Text: "b", Mood: model.Neutral, CreatedAt: t0.Add(time.Hour)},
		{ID: 1, Text: "a", Mood: model.Difficult, CreatedAt: t0},
	}
	pts := Trend(newestFirst)
	require.Len(t, pts, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{pts[0].Value, pts[1].Value, pts[2].Value})
	assert.Equal(t, t0, pts[0].Date)
	assert.Empty(t, Trend(nil))
}
