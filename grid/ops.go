// SPDX-License-Identifier: MIT

package grid

// RowSums returns s where s[i] = Σ_j m[i][j].
// Complexity: O(r*c) time, O(r) space.
func RowSums(m *Dense) []int {
	out := make([]int, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[i] += m.data[base+j]
		}
	}

	return out
}

// ColSums returns s where s[j] = Σ_i m[i][j].
// Complexity: O(r*c) time, O(c) space.
func ColSums(m *Dense) []int {
	out := make([]int, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[j] += m.data[base+j]
		}
	}

	return out
}

// Sum returns the sum of all elements.
// Complexity: O(r*c).
func Sum(m *Dense) int {
	var total int
	for _, v := range m.data {
		total += v
	}

	return total
}

// HadamardSum returns Σ a[i][j]*b[i][j], the element-wise product reduced to
// a scalar. With a = allocation and b = unit costs it is the total shipping cost.
//
// Errors: ErrShapeMismatch (wrapped with both row counts) when shapes differ.
// Complexity: O(r*c).
func HadamardSum(a, b *Dense) (int, error) {
	if a.r != b.r || a.c != b.c {
		return 0, denseErrorf(ctxHadSum, a.r, b.r, ErrShapeMismatch)
	}
	var total int
	for i := range a.data {
		total += a.data[i] * b.data[i]
	}

	return total, nil
}

// CountNonZero returns how many elements differ from zero.
// Complexity: O(r*c).
func CountNonZero(m *Dense) int {
	var n int
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// Min returns the smallest element together with its coordinates.
// Ties resolve to the first occurrence in row-major order.
// Complexity: O(r*c).
func Min(m *Dense) (v, row, col int) {
	v = m.data[0]
	m.Do(func(i, j, x int) bool {
		if x < v {
			v, row, col = x, i, j
		}
		return true
	})

	return v, row, col
}
