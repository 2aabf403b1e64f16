package cmap

import (
	"github.com/MaxQu/dcmap/dart"
	"github.com/MaxQu/dcmap/orbit"
	"github.com/pkg/errors"
)

// IsRemovable reports whether the i-cell of d can be removed. An i-cell can
// always be removed if i equals the map's dimension or dimension-1; for
// i<dim-1 it additionally requires that, for every dart of the cell,
// beta_{i+2}(beta_{i+1}(d1)) == beta_{i+1}^{-1}(beta_{i+2}(d1)) — i.e. at
// most two (i+1)-cells are incident to it, so removal has an unambiguous
// merge target.
func (m *Map[A]) IsRemovable(i int, d dart.Handle) bool {
	m.checkHandle("IsRemovable", d)
	m.checkDim("IsRemovable", i)

	if i == m.dim || i == m.dim-1 {
		return true
	}
	for _, d1 := range orbit.Cell(m, d, i) {
		lhs := m.store.Beta(m.store.Beta(d1, i+1), i+2)
		rhs := m.store.Beta(m.store.Beta(d1, i+2), dart.BetaInvIndex(i+1))
		if lhs != rhs {
			return false
		}
	}
	return true
}

// IsContractible reports whether the i-cell of d can be contracted. A
// 0-cell is never contractible; a 1-cell (edge) always is; for 1<i<=dim it
// requires that, for every dart of the cell, at most two (i-1)-cells are
// incident to it — the mirror image of IsRemovable's condition one
// dimension down.
func (m *Map[A]) IsContractible(i int, d dart.Handle) bool {
	m.checkHandle("IsContractible", d)
	m.checkDim("IsContractible", i)

	if i == 0 {
		return false
	}
	if i == 1 {
		return true
	}
	for _, d1 := range orbit.Cell(m, d, i) {
		lhs := m.store.Beta(m.store.Beta(d1, i-2), i-1)
		rhs := m.store.Beta(m.store.Beta(d1, i-1), i-2)
		if lhs != rhs {
			return false
		}
	}
	return true
}

// IsInsertableCell1InCell2 reports whether a new edge can be inserted
// between adart1 and adart2 on the 2-cell they belong to: they must be
// distinct, and adart2 must lie on adart1's <beta1> orbit (the boundary
// walk of the facet). The distinctness check runs before the orbit walk,
// exactly in that order, not merely as an equivalent short-circuit.
func (m *Map[A]) IsInsertableCell1InCell2(adart1, adart2 dart.Handle) bool {
	m.checkHandle("IsInsertableCell1InCell2", adart1)
	m.checkHandle("IsInsertableCell1InCell2", adart2)

	if adart1 == adart2 {
		return false
	}
	for _, d := range orbit.Walk1Forward(m, adart1) {
		if d == adart2 {
			return true
		}
	}
	return false
}

// IsInsertableCell2InCell3 reports whether a new 2-cell can be inserted
// along path, a closed sequence of darts each belonging to an edge of the
// same 3-cell: every dart must be non-null, consecutive darts' edges must
// share a vertex of that volume (other_extremity(prec) and the next dart
// must belong to the same 0-cell of the same 2-cell... generalized here to
// the same vertex of the volume), and the path must close back onto its
// start. Returns a non-nil error describing which check failed instead of
// just false, so callers can log why a path was rejected.
func (m *Map[A]) IsInsertableCell2InCell3(path []dart.Handle) (bool, error) {
	assertf(m.dim >= 3, "IsInsertableCell2InCell3", "requires map dimension >= 3, got %d", m.dim)

	if len(path) == 0 {
		return false, errors.New("path must contain at least one dart")
	}
	var prec dart.Handle
	for idx, d := range path {
		if d.IsNull() {
			return false, errors.Errorf("path[%d] is the null dart", idx)
		}
		if !prec.IsNull() {
			od := m.store.OtherExtremity(prec)
			if od.IsNull() {
				return false, errors.Errorf("path[%d]: preceding dart has no other extremity", idx)
			}
			if !orbit.SameCell(m, od, d, 2) {
				return false, errors.Errorf("path[%d]: does not meet the preceding edge at a shared vertex of the volume", idx)
			}
		}
		prec = d
	}
	od := m.store.OtherExtremity(prec)
	if od.IsNull() {
		return false, errors.New("path: last dart has no other extremity")
	}
	if !orbit.SameCell(m, od, path[0], 2) {
		return false, errors.New("path: does not close back onto its start")
	}
	return true, nil
}
