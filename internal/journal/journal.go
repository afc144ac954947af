// Package journal holds the append-only journal and gratitude stores.
package journal

import (
	"strings"
	"time"
)

// Clock returns the current time. Tests pass a fixed clock.
type Clock func() time.Time

// ids hands out creation-timestamp IDs that never repeat within one store,
// even when two records land on the same clock reading.
type ids struct {
	last int64
}

func (g *ids) next(now time.Time) int64 {
	id := now.UnixNano()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

func (g *ids) seen(id int64) {
	if id > g.last {
		g.last = id
	}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}
