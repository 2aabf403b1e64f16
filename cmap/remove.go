package cmap

import (
	"github.com/MaxQu/dcmap/dart"
	"github.com/MaxQu/dcmap/orbit"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/plan-systems/klog"
)

// RemoveCell removes the i-cell of adart, merging its incident (i+1)-cells
// where that makes sense for the dimension. Precondition: IsRemovable(i,
// adart). Dispatches to the three shapes the original source specializes on:
// a full d-cell, a vertex (0-cell), and the general 0<i<dim case.
func (m *Map[A]) RemoveCell(i int, adart dart.Handle) int {
	const op = "RemoveCell"
	assertf(m.IsRemovable(i, adart), op, "%d-cell at %v is not removable", i, adart)
	klog.V(2).Infof("%s: dim=%d at %v", op, i, adart)

	switch {
	case i == m.dim:
		return m.removeDCell(adart)
	case i == 0:
		return m.removeVertex(adart)
	default:
		return m.removeCellGeneral(i, adart)
	}
}

func (m *Map[A]) walkPastMarked(guard dart.Handle, mark dart.Mark, step func(dart.Handle) dart.Handle) dart.Handle {
	d := guard
	for !d.IsNull() && m.store.IsMarked(d, mark) {
		d = step(d)
		if d == guard {
			d = dart.Null
		}
	}
	return d
}

// removeCellGeneral handles 0<i<dim: erase the i-cell, stitching each pair
// of darts that used to be separated across it back together via beta_i,
// and merge the two (i+1)-cells incident to it if both exist.
func (m *Map[A]) removeCellGeneral(i int, adart dart.Handle) int {
	iinv := dart.BetaInvIndex(i)
	cellDarts := orbit.Cell(m, adart, i)

	mark := m.store.NewMark()
	markMod := m.store.NewMark()
	var dg1, dg2 dart.Handle
	for _, d := range cellDarts {
		if dg1.IsNull() && !m.store.IsFree(d, i+1) {
			dg1, dg2 = d, m.store.Beta(d, i+1)
		}
		m.store.Mark(d, mark)
	}

	if !dg1.IsNull() {
		m.groupAttribute(dg1, dg2, i+1)
	}

	modified := doublylinkedlist.New()
	for _, cur := range cellDarts {
		g1 := m.store.Beta(cur, iinv)
		d1 := m.walkPastMarked(g1, mark, func(x dart.Handle) dart.Handle {
			return m.store.Beta(m.store.Beta(x, i+1), iinv)
		})

		if !m.store.IsMarked(d1, markMod) {
			g2 := m.store.Beta(m.store.Beta(cur, i+1), i)
			d2 := m.walkPastMarked(g2, mark, func(x dart.Handle) dart.Handle {
				return m.store.Beta(m.store.Beta(x, i+1), i)
			})

			if !m.store.IsMarked(d2, markMod) {
				switch {
				case !d1.IsNull() && !d2.IsNull() && d1 != d2:
					if i == 1 {
						m.store.LinkBeta01(d1, d2)
					} else {
						m.store.LinkBeta(d1, i, d2)
					}
					m.groupAttribute(d1, d2, i)
					m.store.Mark(d1, markMod)
					m.store.Mark(d2, markMod)
					modified.Add(d1, d2)
				case !d1.IsNull():
					if !m.store.IsFree(d1, i) {
						m.store.UnlinkBeta(d1, i)
						m.store.Mark(d1, markMod)
						modified.Add(d1)
					}
				case !d2.IsNull():
					if !m.store.IsFree(d2, iinv) {
						m.store.UnlinkBeta(d2, iinv)
						m.store.Mark(d2, markMod)
						modified.Add(d2)
					}
				}
			}
		}

		if m.store.IsFree(cur, i+1) && !m.store.IsFree(cur, i) {
			before := m.store.Beta(cur, i)
			if !m.store.IsFree(before, iinv) {
				m.store.UnlinkBeta(before, iinv)
				if !m.store.IsMarked(before, markMod) {
					m.store.Mark(before, markMod)
					modified.Add(before)
				}
			}
		}
	}

	for _, d := range cellDarts {
		m.store.Unmark(d, mark)
	}
	m.store.FreeMark(mark)

	modified.Each(func(_ int, v interface{}) { m.store.Unmark(v.(dart.Handle), markMod) })
	m.store.FreeMark(markMod)

	for _, d := range cellDarts {
		m.store.EraseDart(d)
	}

	return len(cellDarts)
}

// removeDCell removes a top-dimensional cell wholesale: no (i+1)-cell
// exists above it to merge into, so the operation is just "unlink the
// beta_d partners, then erase".
func (m *Map[A]) removeDCell(adart dart.Handle) int {
	cellDarts := orbit.Cell(m, adart, m.dim)
	mark := m.store.NewMark()
	for _, d := range cellDarts {
		m.store.Mark(d, mark)
	}
	for _, d := range cellDarts {
		if !m.store.IsFree(d, m.dim) && !m.store.IsMarked(m.store.Beta(d, m.dim), mark) {
			m.store.UnlinkBeta(d, m.dim)
		}
	}
	for _, d := range cellDarts {
		m.store.Unmark(d, mark)
		m.store.EraseDart(d)
	}
	m.store.FreeMark(mark)
	return len(cellDarts)
}

// removeVertex removes a 0-cell, splicing together the (up to two) edges
// it used to separate.
func (m *Map[A]) removeVertex(adart dart.Handle) int {
	cellDarts := orbit.Cell(m, adart, 0)
	mark := m.store.NewMark()
	var dg1, dg2 dart.Handle
	for _, d := range cellDarts {
		if dg1.IsNull() && !m.store.IsFree(d, 0) {
			dg1, dg2 = d, m.store.Beta(d, 0)
		}
		m.store.Mark(d, mark)
	}
	if !dg1.IsNull() {
		m.groupAttribute(dg1, dg2, 1)
	}

	for _, cur := range cellDarts {
		if !m.store.IsFree(cur, 0) {
			pred := m.store.Beta(cur, 0)
			if !m.store.IsFree(cur, 1) && pred != cur {
				succ := m.store.Beta(cur, 1)
				m.store.LinkBeta01(pred, succ)
			} else {
				m.store.UnlinkBeta(pred, 1)
			}
			for j := 2; j <= m.dim; j++ {
				if !m.store.IsFree(cur, j) {
					m.store.LinkBeta(pred, j, m.store.Beta(cur, j))
				}
			}
		} else if !m.store.IsFree(cur, 1) {
			m.store.UnlinkBeta(m.store.Beta(cur, 1), 0)
			for j := 2; j <= m.dim; j++ {
				if !m.store.IsFree(cur, j) {
					m.store.UnlinkBeta(cur, j)
				}
			}
		}
	}

	for _, d := range cellDarts {
		m.store.Unmark(d, mark)
		m.store.EraseDart(d)
	}
	m.store.FreeMark(mark)
	return len(cellDarts)
}
