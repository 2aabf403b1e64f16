package cmap

import (
	"github.com/MaxQu/dcmap/dart"
	"github.com/MaxQu/dcmap/orbit"
	"github.com/plan-systems/klog"
)

// linkBeta0 sets beta_0(a)=b (and, since beta_0/beta_1 are partial
// inverses, beta_1(b)=a), the "link_beta_0" primitive of the original
// source. linkBeta1 is the symmetric "link_beta_1" primitive.
func (m *Map[A]) linkBeta0(a, b dart.Handle) { m.store.LinkBeta01(b, a) }
func (m *Map[A]) linkBeta1(a, b dart.Handle) { m.store.LinkBeta01(a, b) }

// InsertCell0InCell1 splits the edge (1-cell) containing d into two edges
// joined by a new vertex, replicated across every dimension >=2 facet
// sharing that edge. Returns a dart of the new vertex: d's successor.
func (m *Map[A]) InsertCell0InCell1(d dart.Handle) dart.Handle {
	const op = "InsertCell0InCell1"
	m.checkHandle(op, d)
	klog.V(2).Infof("%s: splitting edge at %v", op, d)

	cellDarts := orbit.Cell(m, d, 1)
	mark := m.store.NewMark()

	for _, w := range cellDarts {
		n1 := m.store.CreateDart()
		if !m.store.IsFree(w, 1) {
			m.store.LinkBeta01(n1, m.store.Beta(w, 1))
		}
		for k := 2; k <= m.dim; k++ {
			if m.store.IsFree(w, k) {
				continue
			}
			partner := m.store.Beta(w, k)
			if m.store.IsMarked(partner, mark) {
				m.store.LinkBeta(n1, k, partner)
				m.store.LinkBeta(w, k, m.store.Beta(partner, 1))
			}
		}
		m.store.BasicLinkBeta(w, 1, n1)
		m.store.BasicLinkBeta(n1, 0, w)
		m.updateDartOfAttribute(w, 1, w) // cell keeps w's existing attribute
		m.store.Mark(w, mark)
	}
	for _, w := range cellDarts {
		m.store.Unmark(w, mark)
	}
	m.store.FreeMark(mark)

	newVertexDart := m.store.Beta(d, 1)
	m.degroupAttribute(d, newVertexDart, 1)
	return newVertexDart
}

// InsertCell0InCell2 inserts a vertex in the interior of the 2-cell
// containing adart, triangulating it: one new edge runs from the new
// vertex to each vertex already on the facet's boundary. Returns a dart
// incident to the new vertex.
func (m *Map[A]) InsertCell0InCell2(adart dart.Handle) dart.Handle {
	const op = "InsertCell0InCell2"
	m.checkHandle(op, adart)

	first := orbit.RewindToOpenStart(m, adart)
	boundary := orbit.Walk1Forward(m, first)
	klog.V(2).Infof("%s: triangulating facet of %d boundary darts from %v", op, len(boundary), first)

	mark := m.store.NewMark()
	var tounmark []dart.Handle
	type pending struct{ a, b dart.Handle }
	var tosplit []pending

	var prev, newVertexDart dart.Handle
	for idx, cur := range boundary {
		m.store.Mark(cur, mark)
		tounmark = append(tounmark, cur)

		if cur != first {
			tosplit = append(tosplit, pending{first, cur})
		}

		var n1, n2 dart.Handle
		if !m.store.IsFree(cur, 0) {
			n1 = m.store.CreateDart()
			m.linkBeta0(cur, n1)
		}
		if !m.store.IsFree(cur, 1) {
			n2 = m.store.CreateDart()
			m.linkBeta1(cur, n2)
		}
		if !n1.IsNull() && !n2.IsNull() {
			m.linkBeta0(n1, n2)
		}
		if !n1.IsNull() && !prev.IsNull() {
			m.store.LinkBeta(prev, 2, n1)
		}

		for k := 3; k <= m.dim; k++ {
			if m.store.IsFree(adart, k) {
				continue
			}
			partner := m.store.Beta(cur, k)
			if partner.IsNull() {
				continue
			}
			if !m.store.IsMarked(partner, mark) {
				var nn1, nn2 dart.Handle
				if !n1.IsNull() {
					nn1 = m.store.CreateDart()
					m.linkBeta1(partner, nn1)
					m.store.LinkBeta(n1, k, nn1)
				}
				if !n2.IsNull() {
					nn2 = m.store.CreateDart()
					m.linkBeta0(partner, nn2)
					m.store.LinkBeta(n2, k, nn2)
				}
				if !nn1.IsNull() && !nn2.IsNull() {
					m.linkBeta1(nn1, nn2)
				}
				if !nn1.IsNull() && !prev.IsNull() {
					m.store.LinkBeta(nn1, 2, m.store.Beta(prev, k))
				}
				m.store.Mark(partner, mark)
				tounmark = append(tounmark, partner)
			} else {
				if !n1.IsNull() {
					m.store.LinkBeta(n1, k, m.store.Beta(partner, 1))
				}
				if !n2.IsNull() {
					m.store.LinkBeta(n2, k, m.store.Beta(partner, 0))
				}
			}
		}

		if idx == 0 {
			newVertexDart = n1
		}
		prev = n2
	}

	if !prev.IsNull() {
		closing := m.store.Beta(first, 0)
		m.store.LinkBeta(closing, 2, prev)
		for k := 3; k <= m.dim; k++ {
			if m.store.IsFree(adart, k) {
				continue
			}
			m.store.LinkBeta(m.store.Beta(closing, k), 2, m.store.Beta(prev, k))
		}
	}

	for _, d := range tounmark {
		m.store.Unmark(d, mark)
	}
	m.store.FreeMark(mark)

	for _, p := range tosplit {
		m.degroupAttribute(p.a, p.b, 2)
	}

	if newVertexDart.IsNull() {
		newVertexDart = first
	}
	return newVertexDart
}

// InsertDanglingCell1InCell2 inserts a dangling edge — one vertex coincides
// with adart1's vertex, the other end is new and free — into the 2-cell
// containing adart1. Returns a dart of the new edge not incident to
// adart1's vertex.
func (m *Map[A]) InsertDanglingCell1InCell2(adart1 dart.Handle) dart.Handle {
	const op = "InsertDanglingCell1InCell2"
	m.checkHandle(op, adart1)
	klog.V(2).Infof("%s: at %v", op, adart1)

	d1 := m.store.CreateDart()
	d2 := m.store.CreateDart()
	m.store.LinkBeta(d1, 2, d2)
	m.store.BasicLinkBeta(d1, 1, d2)
	m.store.BasicLinkBeta(d2, 0, d1)

	if !m.store.IsFree(adart1, 0) {
		pred := m.store.Beta(adart1, 0)
		m.store.BasicLinkBeta(pred, 1, d1)
		m.store.BasicLinkBeta(d1, 0, pred)
	}
	m.store.BasicLinkBeta(d2, 1, adart1)
	m.store.BasicLinkBeta(adart1, 0, d2)

	for k := 3; k <= m.dim; k++ {
		if m.store.IsFree(adart1, k) {
			continue
		}
		partner := m.store.Beta(adart1, k)
		pd1 := m.store.CreateDart()
		pd2 := m.store.CreateDart()
		m.store.LinkBeta(pd1, 2, pd2)
		m.store.BasicLinkBeta(pd1, 1, pd2)
		m.store.BasicLinkBeta(pd2, 0, pd1)
		m.store.BasicLinkBeta(pd2, 1, partner)
		m.store.BasicLinkBeta(partner, 0, pd2)
		m.store.LinkBeta(d1, k, pd1)
		m.store.LinkBeta(d2, k, pd2)
	}

	return d2
}

// InsertCell1InCell2 splices a new edge into the 2-cell containing both
// adart1 and adart2, joining them. Precondition: IsInsertableCell1InCell2.
// A null adart2 inserts a dangling edge at adart1 instead, via
// InsertDanglingCell1InCell2.
func (m *Map[A]) InsertCell1InCell2(adart1, adart2 dart.Handle) dart.Handle {
	const op = "InsertCell1InCell2"
	if adart2.IsNull() {
		return m.InsertDanglingCell1InCell2(adart1)
	}
	assertf(m.IsInsertableCell1InCell2(adart1, adart2), op, "dart %v cannot see %v on its facet boundary", adart1, adart2)
	klog.V(2).Infof("%s: %v -> %v", op, adart1, adart2)

	d1 := m.store.CreateDart()
	d2 := m.store.CreateDart()
	m.store.LinkBeta(d1, 2, d2)

	pred1 := m.store.Beta(adart1, 0)
	pred2 := m.store.Beta(adart2, 0)

	m.store.BasicLinkBeta(d1, 1, adart2)
	m.store.BasicLinkBeta(adart2, 0, d1)
	if !pred1.IsNull() {
		m.store.BasicLinkBeta(pred1, 1, d1)
		m.store.BasicLinkBeta(d1, 0, pred1)
	}

	m.store.BasicLinkBeta(d2, 1, adart1)
	m.store.BasicLinkBeta(adart1, 0, d2)
	if !pred2.IsNull() {
		m.store.BasicLinkBeta(pred2, 1, d2)
		m.store.BasicLinkBeta(d2, 0, pred2)
	}

	m1 := m.markInvolutionOrbit1(adart1)
	m2 := m.markInvolutionOrbit1(adart2)
	for _, d := range orbit.Walk01From(m, adart1) {
		m.store.Unmark(d, m1)
	}
	for _, d := range orbit.Walk01From(m, adart2) {
		m.store.Unmark(d, m2)
	}
	m.store.FreeMark(m1)
	m.store.FreeMark(m2)

	m.degroupAttribute(adart1, adart2, 2)
	return d1
}

// InsertCell2InCell3 inserts a new 2-cell along the closed path of darts,
// splitting the 3-cell(s) it bounds into two. Precondition:
// IsInsertableCell2InCell3(path).
func (m *Map[A]) InsertCell2InCell3(path []dart.Handle) dart.Handle {
	const op = "InsertCell2InCell3"
	ok, err := m.IsInsertableCell2InCell3(path)
	if !ok {
		panic(wrapf(err, op, "path is not insertable"))
	}
	klog.V(2).Infof("%s: along a %d-dart path", op, len(path))

	// Every dimension >=4 cell adjacent to the path gets its own mirrored
	// copy of the new facet, chained across path steps exactly like the
	// base d1/d2 chain below and closed into its own ring once the path is
	// done. ring tracks that per-k chain.
	type ring struct{ first, firstOpp, prev, prevOpp dart.Handle }
	rings := map[int]*ring{}

	var first, firstOpp, prev, prevOpp dart.Handle
	for _, cur := range path {
		d1 := m.store.CreateDart()
		d2 := m.store.CreateDart()

		m.store.LinkBeta01(d1, cur)
		// d1 takes over cur's own beta2 slot (the facet now bounds one side
		// of the split at cur); d2 takes over whatever cur's old beta2
		// partner was (the facet's other side, bounding the volume on the
		// far side of the split). d1 and d2 are not linked to each other.
		var partner dart.Handle
		if !m.store.IsFree(cur, 2) {
			partner = m.store.Beta(cur, 2)
		}
		m.store.LinkBeta(cur, 2, d1)
		if !partner.IsNull() {
			m.store.LinkBeta(partner, 2, d2)
		}

		if first.IsNull() {
			first = d1
			firstOpp = d2
		} else {
			m.store.BasicLinkBeta(prev, 0, d1)
			m.store.BasicLinkBeta(d1, 1, prev)
			m.store.BasicLinkBeta(prevOpp, 1, d2)
			m.store.BasicLinkBeta(d2, 0, prevOpp)
		}
		prev, prevOpp = d1, d2

		for k := 4; k <= m.dim; k++ {
			if m.store.IsFree(cur, k) {
				continue
			}
			rd1 := m.store.CreateDart()
			rd2 := m.store.CreateDart()
			m.store.LinkBeta(rd1, 2, rd2)
			m.store.LinkBeta(d1, k, rd1)
			m.store.LinkBeta(d2, k, rd2)

			rk := rings[k]
			if rk == nil {
				rk = &ring{first: rd1, firstOpp: rd2}
				rings[k] = rk
			} else {
				m.store.BasicLinkBeta(rk.prev, 0, rd1)
				m.store.BasicLinkBeta(rd1, 1, rk.prev)
				m.store.BasicLinkBeta(rk.prevOpp, 1, rd2)
				m.store.BasicLinkBeta(rd2, 0, rk.prevOpp)
			}
			rk.prev, rk.prevOpp = rd1, rd2
		}
	}

	m.store.BasicLinkBeta(first, 0, prev)
	m.store.BasicLinkBeta(prev, 1, first)
	m.store.BasicLinkBeta(firstOpp, 1, prevOpp)
	m.store.BasicLinkBeta(prevOpp, 0, firstOpp)

	for _, rk := range rings {
		m.store.BasicLinkBeta(rk.first, 0, rk.prev)
		m.store.BasicLinkBeta(rk.prev, 1, rk.first)
		m.store.BasicLinkBeta(rk.firstOpp, 1, rk.prevOpp)
		m.store.BasicLinkBeta(rk.prevOpp, 0, rk.firstOpp)
	}

	m.degroupAttribute(path[0], firstOpp, 3)
	return first
}
