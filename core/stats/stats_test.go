package stats

import (
	"math"
	"testing"
)

func TestAccumulate(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		max     int
		min     int
		avg     float64
	}{
		{"single", []int{23}, 23, 23, 23.0},
		{"pair", []int{18, 20}, 20, 18, 19.0},
		{"large pair", []int{919, 967}, 967, 919, 943.0},
		{"zeros", []int{0, 0, 0}, 0, 0, 0},
		{"unsorted", []int{5, 1, 9, 3}, 9, 1, 4.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Accumulate(tc.lengths)
			if !s.HasData() || s.Count != len(tc.lengths) {
				t.Fatalf("count = %d, want %d", s.Count, len(tc.lengths))
			}
			if s.Max != tc.max || s.Min != tc.min {
				t.Errorf("max/min = %d/%d, want %d/%d", s.Max, s.Min, tc.max, tc.min)
			}
			if math.Abs(s.Avg-tc.avg) > 1e-9 {
				t.Errorf("avg = %v, want %v", s.Avg, tc.avg)
			}
			if float64(s.Min) > s.Avg || s.Avg > float64(s.Max) {
				t.Errorf("ordering violated: %+v", s)
			}
		})
	}
}

func TestAverageIsSumOverCount(t *testing.T) {
	lengths := []int{1, 2, 2, 7, 11, 13, 40, 3}
	s := Accumulate(lengths)
	sum := 0
	for _, n := range lengths {
		sum += n
	}
	if want := float64(sum) / float64(len(lengths)); s.Avg != want {
		t.Fatalf("avg = %v, want %v", s.Avg, want)
	}
	if s.Sum != sum {
		t.Fatalf("sum = %d, want %d", s.Sum, sum)
	}
}

func TestEmptyGroup(t *testing.T) {
	var a Accumulator
	s := a.Stats()
	if s.HasData() || s.Count != 0 || s.Avg != 0 {
		t.Fatalf("empty group should have no data: %+v", s)
	}
}

func TestAddLineTrims(t *testing.T) {
	var a Accumulator
	a.AddLine("ACGT\n")
	a.AddLine("  AC \r\n")
	a.AddLine("\n")
	s := a.Stats()
	if s.Max != 4 || s.Min != 0 || s.Count != 3 || s.Sum != 6 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestCombinedAcrossGroups(t *testing.T) {
	var c Combined
	for _, g := range [][]int{{23}, {18, 20}, {919, 967}} {
		c.Merge(Accumulate(g))
	}
	s := c.Stats()
	if s.Max != 967 || s.Min != 18 {
		t.Fatalf("max/min = %d/%d, want 967/18", s.Max, s.Min)
	}
	if math.Abs(s.Avg-389.4) > 1e-9 {
		t.Fatalf("avg = %v, want 389.4", s.Avg)
	}
	if s.Count != 5 || c.Groups() != 3 {
		t.Fatalf("count=%d groups=%d", s.Count, c.Groups())
	}
}

func TestCombinedSkipsEmptyGroups(t *testing.T) {
	var c Combined
	c.Merge(Accumulate(nil))
	c.Merge(Accumulate([]int{4, 6}))
	c.Merge(Accumulate(nil))
	s := c.Stats()
	if s.Max != 6 || s.Min != 4 || s.Count != 2 || s.Avg != 5 {
		t.Fatalf("unexpected combined %+v", s)
	}
	if c.Groups() != 3 {
		t.Fatalf("groups = %d, want 3", c.Groups())
	}
}

func TestCombinedNoData(t *testing.T) {
	var c Combined
	c.Merge(Accumulate(nil))
	if s := c.Stats(); s.HasData() {
		t.Fatalf("expected no data, got %+v", s)
	}
}

// Extrema come from each group's Min/Max summary.
func TestCombinedExtremaFromSummaries(t *testing.T) {
	var c Combined
	c.Merge(LengthStats{Max: 10, Min: 2, Count: 2, Sum: 12})
	c.Merge(LengthStats{Max: 8, Min: 1, Count: 3, Sum: 15})
	s := c.Stats()
	if s.Min != 1 || s.Max != 10 {
		t.Fatalf("max/min = %d/%d", s.Max, s.Min)
	}
	if s.Avg != 27.0/5.0 {
		t.Fatalf("avg = %v", s.Avg)
	}
}
