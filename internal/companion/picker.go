// Package companion holds the canned content of the app (companion responses,
// quotes, coping strategies) and the random pickers over it.
package companion

import (
	"errors"
	"math/rand"
	"time"
)

var ErrEmptyList = errors.New("pick from empty list")

// Source is the randomness used for picks. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a time-seeded source.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Pick returns a uniformly random element of list.
func Pick[T any](src Source, list []T) (T, error) {
	var zero T
	if len(list) == 0 {
		return zero, ErrEmptyList
	}
	i := src.Intn(len(list))
	if i < 0 || i >= len(list) {
		i = 0
	}
	return list[i], nil
}
