// Package fib models rabbit population growth where every mature pair
// produces a litter of k pairs per generation.
package fib

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGeneration = errors.New("generation must be >= 1")
	ErrInvalidLitter     = errors.New("litter size must be >= 0")
)

// Rabbits returns the number of pairs alive after n generations:
// F(1) = F(2) = 1, F(n) = F(n-1) + k*F(n-2).
func Rabbits(n, k int) (uint64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidGeneration, n)
	}
	if k < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLitter, k)
	}
	t := table{litter: uint64(k), memo: make(map[int]uint64, n)}
	return t.at(n), nil
}

// table is the memo of generation -> pairs, filled on first use.
type table struct {
	litter uint64
	memo   map[int]uint64
}

func (t *table) at(n int) uint64 {
	if n == 1 || n == 2 {
		return 1
	}
	if v, ok := t.memo[n]; ok {
		return v
	}
	v := t.at(n-1) + t.at(n-2)*t.litter
	t.memo[n] = v
	return v
}
