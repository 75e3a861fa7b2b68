// Package hamming computes pairwise Hamming distances between sequences.
package hamming

// Distance counts the positions at which a and b differ over the shorter
// length, plus one for every extra trailing byte of the longer string.
// Inputs of different length are accepted; the extra bytes are never
// compared, only counted.
func Distance(a, b string) int {
	n := len(a)
	d := len(b) - len(a)
	if d < 0 {
		n = len(b)
		d = -d
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// Matrix is an N×N distance table. Only cells with i < j are written;
// the diagonal and the lower triangle stay zero.
type Matrix [][]int

// Size returns N.
func (m Matrix) Size() int { return len(m) }

// Tracer observes the matrix as it is built. Row is called once per source
// sequence i (0..N-2), followed by Pair for each j > i.
type Tracer interface {
	Row(i int, seq string)
	Pair(j int, seq string, dist int)
}

// BuildMatrix computes Distance for every pair i < j of seqs, in order.
// tr may be nil.
func BuildMatrix(seqs []string, tr Tracer) Matrix {
	n := len(seqs)
	m := make(Matrix, n)
	cells := make([]int, n*n)
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}
	for i := 0; i < n-1; i++ {
		if tr != nil {
			tr.Row(i, seqs[i])
		}
		for j := i + 1; j < n; j++ {
			d := Distance(seqs[i], seqs[j])
			m[i][j] = d
			if tr != nil {
				tr.Pair(j, seqs[j], d)
			}
		}
	}
	return m
}
