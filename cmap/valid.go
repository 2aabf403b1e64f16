package cmap

import (
	"github.com/MaxQu/dcmap/dart"
	"github.com/pkg/errors"
)

// IsValid walks every live dart and checks the involution and commutation
// axioms of a generalized combinatorial map, generalizing a half-edge mesh's
// Verify() — which walks vertices/edges/faces checking twin/next/prev/face
// consistency — to arbitrary dimension. Like IsInsertableCell2InCell3, it
// returns an error instead of panicking: it is a postcondition check,
// not an operator, and callers legitimately want to inspect a map that
// failed validation rather than lose it to a panic.
func (m *Map[A]) IsValid() error {
	var firstErr error
	report := func(format string, args ...interface{}) {
		if firstErr == nil {
			firstErr = errors.Errorf(format, args...)
		}
	}

	m.store.Each(func(d dart.Handle) {
		for i := 0; i <= m.dim; i++ {
			if m.store.IsFree(d, i) {
				continue
			}
			n := m.store.Beta(d, i)
			if !m.store.IsAlive(n) {
				report("dart %v: beta(%d) points to a dead or unknown dart", d, i)
				return
			}
			if i >= 2 {
				// beta_i, i>=2, must be an involution: beta_i(beta_i(d)) == d.
				if back := m.store.Beta(n, i); back != d {
					report("dart %v: beta(%d) is not an involution (got %v back, want %v)", d, i, back, d)
					return
				}
			} else if i == 1 {
				// beta_0 and beta_1 must be partial inverses of each other.
				if back := m.store.Beta(n, 0); back != d {
					report("dart %v: beta(1)=%v but beta(0) of it is %v, not %v", d, n, back, d)
					return
				}
			}
		}

		// Commutation axiom: for i+2 <= j, beta_i . beta_j == beta_j . beta_i,
		// checked only among the true independent involutions beta_1..beta_d.
		// beta_0 is excluded: it is stored purely as beta_1's partial inverse,
		// not a generator in its own right (orbit.Cell excludes it for the
		// same reason), so "beta_0 commutes with beta_j" is already implied
		// by checking beta_1 vs beta_j from the neighboring dart. Including
		// i=0 here would reject maps with an ordinary boundary (e.g. a quad
		// with one interior diagonal, where the diagonal's beta_0 leads to a
		// boundary edge with no beta_2) as invalid even though they are
		// perfectly well-formed.
		for i := 1; i <= m.dim; i++ {
			for j := i + 2; j <= m.dim; j++ {
				if m.store.IsFree(d, i) || m.store.IsFree(d, j) {
					continue
				}
				lhs := m.store.Beta(m.store.Beta(d, i), j)
				rhs := m.store.Beta(m.store.Beta(d, j), i)
				if lhs != rhs {
					report("dart %v: beta(%d) and beta(%d) do not commute", d, i, j)
					return
				}
			}
		}
	})

	return firstErr
}
