// Package stats accumulates sequence length statistics for one group of
// inputs and across groups.
package stats

import "strings"

// LengthStats summarizes the lengths seen in a group.
// Max and Min are meaningful only when Count > 0.
type LengthStats struct {
	Max   int
	Min   int
	Avg   float64
	Count int
	Sum   int
}

// HasData reports whether any length was observed. When false the extrema
// are unset and the average is not applicable.
func (s LengthStats) HasData() bool { return s.Count > 0 }

// Accumulator tracks running extrema and the raw length sum of one group.
// The zero value is ready to use.
type Accumulator struct {
	max, min   int
	sum, count int
}

// Add records one sequence length.
func (a *Accumulator) Add(n int) {
	if a.count == 0 || n > a.max {
		a.max = n
	}
	if a.count == 0 || n < a.min {
		a.min = n
	}
	a.sum += n
	a.count++
}

// AddLine records the length of a line-delimited sequence, ignoring
// surrounding whitespace and terminators.
func (a *Accumulator) AddLine(line string) {
	a.Add(len(strings.TrimSpace(line)))
}

// Stats finalizes the group. The average is computed here, once.
func (a *Accumulator) Stats() LengthStats {
	s := LengthStats{Count: a.count, Sum: a.sum}
	if a.count == 0 {
		return s
	}
	s.Max, s.Min = a.max, a.min
	s.Avg = float64(a.sum) / float64(a.count)
	return s
}

// Accumulate is a convenience for a group whose lengths are already known.
func Accumulate(lengths []int) LengthStats {
	var a Accumulator
	for _, n := range lengths {
		a.Add(n)
	}
	return a.Stats()
}

// Combined aggregates finalized group statistics.
//
// Extrema are taken from each group's own Min/Max, while the average is the
// total raw sum over the total count. The two strategies differ on purpose;
// do not rescan raw lengths for the extrema.
type Combined struct {
	max, min   int
	sum, count int
	groups     int
}

// Merge folds one group into the combined statistics. Empty groups are
// counted as groups but contribute nothing else.
func (c *Combined) Merge(g LengthStats) {
	c.groups++
	if !g.HasData() {
		return
	}
	if c.count == 0 || g.Max > c.max {
		c.max = g.Max
	}
	if c.count == 0 || g.Min < c.min {
		c.min = g.Min
	}
	c.sum += g.Sum
	c.count += g.Count
}

// Groups returns how many groups were merged, including empty ones.
func (c *Combined) Groups() int { return c.groups }

// Stats finalizes the combined statistics. With no sequences across any group
// HasData is false.
func (c *Combined) Stats() LengthStats {
	s := LengthStats{Count: c.count, Sum: c.sum}
	if c.count == 0 {
		return s
	}
	s.Max, s.Min = c.max, c.min
	s.Avg = float64(c.sum) / float64(c.count)
	return s
}
