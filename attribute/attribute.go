// Package attribute stores per-cell payload values and their representative
// darts, and provides the group/degroup/split primitives the operators use
// to keep attribute ownership consistent as cells merge and split.
//
// It generalizes a half-edge mesh's embedded-value style — a vertex or face
// record carrying its own geometry fields directly inline — into a detached
// arena keyed by a handle: a topological map has no fixed notion of "the"
// payload type, so the payload is generic and the arena only tracks which
// dart currently represents which stored value.
package attribute

import "github.com/MaxQu/dcmap/dart"

// ID identifies a stored attribute value. The zero ID, None, means "no
// attribute attached".
type ID uint32

// None is the sentinel "no attribute" ID.
const None ID = 0

type record struct {
	alive bool
	rep   dart.Handle
	value interface{}
}

// Manager owns every attribute value for one dimension k of one map: the
// arena of values plus, for each, which dart is currently its representative
// (the dart update_dart_of_attribute/group_attribute/degroup_attribute use
// to decide what to rewrite).
type Manager[T any] struct {
	records []record
	free    []ID
}

// NewManager returns an empty attribute manager.
func NewManager[T any]() *Manager[T] {
	return &Manager[T]{records: make([]record, 1)} // ID(0) reserved as None
}

// New allocates a fresh attribute holding value, represented by rep, and
// returns its ID.
func (m *Manager[T]) New(rep dart.Handle, value T) ID {
	rec := record{alive: true, rep: rep, value: value}
	if n := len(m.free); n > 0 {
		id := m.free[n-1]
		m.free = m.free[:n-1]
		m.records[id] = rec
		return id
	}
	id := ID(len(m.records))
	m.records = append(m.records, rec)
	return id
}

func (m *Manager[T]) check(id ID) *record {
	if id == None || int(id) >= len(m.records) || !m.records[id].alive {
		panic("attribute: invalid or erased attribute ID")
	}
	return &m.records[id]
}

// Rep returns the current representative dart of attribute id.
func (m *Manager[T]) Rep(id ID) dart.Handle { return m.check(id).rep }

// SetRep changes the representative dart of attribute id, the way
// update_dart_of_attribute rewrites it when the old representative dart is
// removed or contracted away.
func (m *Manager[T]) SetRep(id ID, rep dart.Handle) { m.check(id).rep = rep }

// Value returns the stored payload for id.
func (m *Manager[T]) Value(id ID) T { return m.check(id).value.(T) }

// SetValue overwrites the stored payload for id.
func (m *Manager[T]) SetValue(id ID, v T) { m.check(id).value = v }

// Erase destroys attribute id. Precondition: no live dart still references
// id (the caller, Map, clears dart slots before erasing).
func (m *Manager[T]) Erase(id ID) {
	r := m.check(id)
	r.alive = false
	r.value = nil
	m.free = append(m.free, id)
}

// Group merges b into a: a survives as the single attribute both darts'
// cells will reference afterward, b is erased. Matches
// Map::group_attribute — the caller decides which representative policy
// (here: always keep a) and has already verified a != b and a != None,
// b != None.
func (m *Manager[T]) Group(a, b ID) {
	if a == b {
		return
	}
	m.check(a)
	m.check(b)
	m.Erase(b)
}

// Split allocates a new attribute for the cell led by newRep, cloning the
// current value of id as its starting payload (the degroup step: the two
// post-split cells start out with identical attribute values, which the
// caller may then overwrite). Returns None if id is None (nothing to
// split), matching degroup_attribute's own no-op on a null attribute.
func (m *Manager[T]) Split(id ID, newRep dart.Handle) ID {
	if id == None {
		return None
	}
	v := m.Value(id)
	return m.New(newRep, v)
}
