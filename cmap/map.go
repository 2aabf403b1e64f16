// Package cmap implements the modification algebra over a d-dimensional
// generalized combinatorial map: the insert/remove/contract operators and
// their precondition predicates. It generalizes a fixed half-edge
// structure — three flat arenas and a handful of hardcoded ETwin/ENext/
// EPrev/FFace operations — into an arbitrary-dimension dart store plus an
// orbit/attribute algebra on top of it.
package cmap

import (
	"fmt"

	"github.com/MaxQu/dcmap/attribute"
	"github.com/MaxQu/dcmap/dart"
	"github.com/MaxQu/dcmap/orbit"
	"github.com/plan-systems/klog"
)

// Map is a d-dimensional generalized combinatorial map over darts carrying
// an attribute payload of type A. All enabled dimensions share the same
// payload type — a deliberate simplification over CGAL's per-dimension
// attribute item types, recorded in DESIGN.md.
type Map[A any] struct {
	store *dart.Store
	attrs []*attribute.Manager[A] // len dim+1; nil entry = attributes disabled for that dimension
	dim   int
}

// NewMap constructs an empty map of the given dimension (>=0).
func NewMap[A any](dimension int, opts ...Option) *Map[A] {
	if dimension < 0 {
		panic("cmap: dimension must be >= 0")
	}
	cfg := defaultConfig(dimension)
	for _, o := range opts {
		o(cfg)
	}
	m := &Map[A]{
		store: dart.NewStore(dimension, cfg.capacityHint),
		attrs: make([]*attribute.Manager[A], dimension+1),
		dim:   dimension,
	}
	for k := 0; k <= dimension; k++ {
		if cfg.allAttrsEnabled || cfg.enabledAttrDims[k] {
			m.attrs[k] = attribute.NewManager[A]()
		}
	}
	klog.V(3).Infof("cmap: new map dim=%d attrs=%v", dimension, cfg.enabledAttrDims)
	return m
}

// Dim returns the map's dimension d. Satisfies orbit.Reader.
func (m *Map[A]) Dim() int { return m.dim }

// Beta returns β_i(h). Satisfies orbit.Reader.
func (m *Map[A]) Beta(h dart.Handle, i int) dart.Handle { return m.store.Beta(h, i) }

// IsFree reports whether β_i(h) is undefined.
func (m *Map[A]) IsFree(h dart.Handle, i int) bool { return m.store.IsFree(h, i) }

// BetaInv returns β_i^{-1}(h).
func (m *Map[A]) BetaInv(h dart.Handle, i int) dart.Handle { return m.store.BetaInv(h, i) }

// OtherExtremity returns the dart at the opposite end of h's edge.
func (m *Map[A]) OtherExtremity(h dart.Handle) dart.Handle { return m.store.OtherExtremity(h) }

// CreateDart allocates a fresh, fully free dart.
func (m *Map[A]) CreateDart() dart.Handle { return m.store.CreateDart() }

// NumberOfDarts returns the number of live darts in the map.
func (m *Map[A]) NumberOfDarts() int { return m.store.Len() }

func (m *Map[A]) checkDim(op string, i int) {
	assertf(i >= 0 && i <= m.dim, op, "dimension %d out of range [0,%d]", i, m.dim)
}

func (m *Map[A]) checkHandle(op string, h dart.Handle) {
	assertf(!h.IsNull(), op, "dart handle must not be null")
}

func (m *Map[A]) attrManager(i int) *attribute.Manager[A] {
	am := m.attrs[i]
	if am == nil {
		panic(fmt.Sprintf("cmap: attributes disabled for dimension %d", i))
	}
	return am
}

// Attribute returns the attribute value currently associated with h's
// i-cell, and false if none is attached.
func (m *Map[A]) Attribute(h dart.Handle, i int) (A, bool) {
	id := m.store.Attr(h, i)
	if id == dart.AttrID(attribute.None) {
		var zero A
		return zero, false
	}
	return m.attrManager(i).Value(attribute.ID(id)), true
}

// SetAttribute creates (or overwrites) the attribute of h's i-cell with v,
// sharing it across every dart of the orbit the way group_attribute does
// for a cell that does not yet have one.
func (m *Map[A]) SetAttribute(h dart.Handle, i int, v A) {
	am := m.attrManager(i)
	id := m.store.Attr(h, i)
	if id == dart.AttrID(attribute.None) {
		newID := am.New(h, v)
		for _, d := range orbit.Cell(m, h, i) {
			m.store.SetAttr(d, i, dart.AttrID(newID))
		}
		return
	}
	am.SetValue(attribute.ID(id), v)
}

// groupAttribute merges the i-cell attributes of d1 and d2 into one,
// rewriting the losing orbit's attribute slots, mirroring
// Map::group_attribute. A no-op if either side has no attribute or they
// already share one.
func (m *Map[A]) groupAttribute(d1, d2 dart.Handle, i int) {
	am := m.attrs[i]
	if am == nil {
		return
	}
	id1 := m.store.Attr(d1, i)
	id2 := m.store.Attr(d2, i)
	if id1 == id2 {
		return
	}
	switch {
	case id1 == dart.AttrID(attribute.None) && id2 == dart.AttrID(attribute.None):
		return
	case id1 == dart.AttrID(attribute.None):
		for _, d := range orbit.Cell(m, d1, i) {
			m.store.SetAttr(d, i, id2)
		}
	case id2 == dart.AttrID(attribute.None):
		for _, d := range orbit.Cell(m, d2, i) {
			m.store.SetAttr(d, i, id1)
		}
	default:
		for _, d := range orbit.Cell(m, d2, i) {
			m.store.SetAttr(d, i, id1)
		}
		am.Group(attribute.ID(id1), attribute.ID(id2))
	}
}

// degroupAttribute splits the shared i-cell attribute of d1 and d2 in two
// if, after some structural change, they no longer belong to the same
// i-cell: d2's orbit gets a freshly cloned attribute, d1's keeps the
// original. Calling degroupAttribute on a pair that still share a cell is
// a safe no-op, so callers can invoke it speculatively right after a
// structural change rather than having to pre-decide whether a split
// actually happened.
func (m *Map[A]) degroupAttribute(d1, d2 dart.Handle, i int) {
	am := m.attrs[i]
	if am == nil {
		return
	}
	if orbit.SameCell(m, d1, d2, i) {
		return
	}
	id := m.store.Attr(d1, i)
	if id == dart.AttrID(attribute.None) {
		return
	}
	newID := am.Split(attribute.ID(id), d2)
	for _, d := range orbit.Cell(m, d2, i) {
		m.store.SetAttr(d, i, dart.AttrID(newID))
	}
	am.SetRep(attribute.ID(id), d1)
}

// updateDartOfAttribute rewrites the representative dart of h's i-cell
// attribute to newRep, the way update_dart_of_attribute does after the
// current representative is about to be erased or contracted away.
func (m *Map[A]) updateDartOfAttribute(h dart.Handle, i int, newRep dart.Handle) {
	am := m.attrs[i]
	if am == nil {
		return
	}
	id := m.store.Attr(h, i)
	if id == dart.AttrID(attribute.None) {
		return
	}
	am.SetRep(attribute.ID(id), newRep)
}

// markInvolutionOrbit1 acquires a fresh mark from the store and sets it on
// every dart of the 1-involution orbit <β0,β1> rooted at start, returning
// the mark for the caller to use and eventually free. Grounds
// InsertCell1InCell2's negate_mark dance: that function marks adart1's
// orbit with one mark and adart2's with another, then clears and frees both
// marks before it returns, so no mark stays set for its own caller.
func (m *Map[A]) markInvolutionOrbit1(start dart.Handle) dart.Mark {
	mk := m.store.NewMark()
	for _, d := range orbit.Walk01From(m, start) {
		m.store.Mark(d, mk)
	}
	return mk
}
