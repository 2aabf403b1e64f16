package cmap

import (
	"github.com/MaxQu/dcmap/dart"
	"github.com/MaxQu/dcmap/orbit"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/plan-systems/klog"
)

// ContractCell contracts the i-cell of adart to a point, merging its
// incident (i-1)-cells. Precondition: IsContractible(i, adart). i==1 (edge
// contraction, merging vertices) is its own shape, mirroring
// RemoveCell's vertex case one dimension up; 2<=i<=dim shares one
// general shape, the mirror image of removeCellGeneral.
func (m *Map[A]) ContractCell(i int, adart dart.Handle) int {
	const op = "ContractCell"
	assertf(m.IsContractible(i, adart), op, "%d-cell at %v is not contractible", i, adart)
	klog.V(2).Infof("%s: dim=%d at %v", op, i, adart)

	if i == 1 {
		return m.contractEdge(adart)
	}
	return m.contractCellGeneral(i, adart)
}

// contractCellGeneral handles 2<=i<=dim: erase the i-cell, stitching each
// pair of darts that used to be separated across it back together via
// beta_i, and merge the two (i-1)-cells incident to it if both exist.
func (m *Map[A]) contractCellGeneral(i int, adart dart.Handle) int {
	imuinv := dart.BetaInvIndex(i - 1)
	cellDarts := orbit.Cell(m, adart, i)

	mark := m.store.NewMark()
	markMod := m.store.NewMark()
	var dg1, dg2 dart.Handle
	for _, d := range cellDarts {
		if dg1.IsNull() && !m.store.IsFree(d, i-1) {
			dg1, dg2 = d, m.store.Beta(d, i-1)
		}
		m.store.Mark(d, mark)
	}
	if !dg1.IsNull() {
		m.groupAttribute(dg1, dg2, i-1)
	}

	modified := doublylinkedlist.New()
	for _, cur := range cellDarts {
		g1 := m.store.Beta(cur, i)
		d1 := m.walkPastMarked(g1, mark, func(x dart.Handle) dart.Handle {
			return m.store.Beta(m.store.Beta(x, imuinv), i)
		})

		if !m.store.IsMarked(d1, markMod) {
			g2 := m.store.Beta(m.store.Beta(cur, i-1), i)
			d2 := m.walkPastMarked(g2, mark, func(x dart.Handle) dart.Handle {
				return m.store.Beta(m.store.Beta(x, i-1), i)
			})

			if !m.store.IsMarked(d2, markMod) {
				switch {
				case !d1.IsNull() && !d2.IsNull() && d1 != d2:
					m.store.LinkBeta(d1, i, d2)
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
					if !m.store.IsFree(d2, i) {
						m.store.UnlinkBeta(d2, i)
						m.store.Mark(d2, markMod)
						modified.Add(d2)
					}
				}
			}
		}

		if m.store.IsFree(cur, i-1) && !m.store.IsFree(cur, i) {
			partner := m.store.Beta(cur, i)
			if !m.store.IsFree(partner, i) {
				m.store.UnlinkBeta(partner, i)
				if !m.store.IsMarked(partner, markMod) {
					m.store.Mark(partner, markMod)
					modified.Add(partner)
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

// contractEdge contracts a 1-cell, splicing together the (up to two)
// vertices it used to separate — the mirror image of removeVertex.
func (m *Map[A]) contractEdge(adart dart.Handle) int {
	cellDarts := orbit.Cell(m, adart, 1)
	mark := m.store.NewMark()
	var dg1, dg2 dart.Handle
	for _, d := range cellDarts {
		if dg1.IsNull() {
			if oe := m.store.OtherExtremity(d); !oe.IsNull() {
				dg1, dg2 = d, oe
			}
		}
		m.store.Mark(d, mark)
	}
	if !dg1.IsNull() {
		m.groupAttribute(dg1, dg2, 0)
	}

	for _, cur := range cellDarts {
		if !m.store.IsFree(cur, 0) {
			pred := m.store.Beta(cur, 0)
			if !m.store.IsFree(cur, 1) && pred != cur {
				m.store.LinkBeta01(pred, m.store.Beta(cur, 1))
			} else {
				m.store.UnlinkBeta(pred, 1)
			}
		} else if !m.store.IsFree(cur, 1) {
			m.store.UnlinkBeta(m.store.Beta(cur, 1), 0)
		}
	}

	for _, d := range cellDarts {
		m.store.Unmark(d, mark)
		m.store.EraseDart(d)
	}
	m.store.FreeMark(mark)
	return len(cellDarts)
}
