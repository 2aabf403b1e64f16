package attribute

import (
	"testing"

	"github.com/MaxQu/dcmap/dart"
	"github.com/stretchr/testify/require"
)

func TestNewAndValue(t *testing.T) {
	m := NewManager[string]()
	id := m.New(dart.Handle{}, "hello")
	require.Equal(t, "hello", m.Value(id))
}

func TestSetRepAndRep(t *testing.T) {
	m := NewManager[int]()
	s := dart.NewStore(0, 2)
	rep := s.CreateDart()
	id := m.New(rep, 42)
	require.Equal(t, rep, m.Rep(id))

	newRep := s.CreateDart()
	m.SetRep(id, newRep)
	require.Equal(t, newRep, m.Rep(id))
}

func TestGroupErasesTheLoser(t *testing.T) {
	m := NewManager[int]()
	a := m.New(dart.Handle{}, 1)
	b := m.New(dart.Handle{}, 2)

	m.Group(a, b)
	require.Equal(t, 1, m.Value(a))
	require.Panics(t, func() { m.Value(b) })
}

func TestSplitClonesValueUnderNewID(t *testing.T) {
	m := NewManager[int]()
	s := dart.NewStore(0, 2)
	rep := s.CreateDart()
	id := m.New(rep, 7)

	newRep := s.CreateDart()
	newID := m.Split(id, newRep)

	require.NotEqual(t, id, newID)
	require.Equal(t, 7, m.Value(newID))
	require.Equal(t, 7, m.Value(id))
}

func TestSplitOnNoneIsNoOp(t *testing.T) {
	m := NewManager[int]()
	require.Equal(t, None, m.Split(None, dart.Handle{}))
}

func TestEraseThenReuseID(t *testing.T) {
	m := NewManager[int]()
	a := m.New(dart.Handle{}, 1)
	m.Erase(a)
	require.Panics(t, func() { m.Value(a) })

	b := m.New(dart.Handle{}, 2)
	require.Equal(t, 2, m.Value(b))
}
