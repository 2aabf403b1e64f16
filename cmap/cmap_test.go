package cmap

import (
	"testing"

	"github.com/MaxQu/dcmap/dart"
	"github.com/stretchr/testify/require"
)

func TestNewMapStartsEmpty(t *testing.T) {
	m := NewMap[int](2)
	require.Equal(t, 2, m.Dim())
	require.Equal(t, 0, m.NumberOfDarts())
}

func TestBetaRoundTripsThroughLink(t *testing.T) {
	m := NewMap[int](2)
	a := m.CreateDart()
	b := m.CreateDart()
	m.store.LinkBeta(a, 2, b)

	require.Equal(t, b, m.Beta(a, 2))
	require.Equal(t, a, m.Beta(b, 2))
	require.True(t, m.IsFree(a, 0))
}

func TestIsRemovableTopTwoDimensionsAlwaysTrue(t *testing.T) {
	m := NewMap[int](2)
	a := m.CreateDart()
	require.True(t, m.IsRemovable(2, a))
	require.True(t, m.IsRemovable(1, a))
}

func TestIsContractibleEdgeAlwaysTrueVertexNever(t *testing.T) {
	m := NewMap[int](2)
	a := m.CreateDart()
	require.True(t, m.IsContractible(1, a))
	require.False(t, m.IsContractible(0, a))
}

// closedSquare builds a single closed 2D facet: four darts cycling via
// beta1/beta0, no beta2 — an isolated boundary polygon.
func closedSquare(m *Map[int]) [4]dart.Handle {
	var ds [4]dart.Handle
	for i := range ds {
		ds[i] = m.CreateDart()
	}
	for i := 0; i < 4; i++ {
		m.store.LinkBeta01(ds[i], ds[(i+1)%4])
	}
	return ds
}

func TestIsInsertableCell1InCell2RejectsSameDart(t *testing.T) {
	m := NewMap[int](2)
	ds := closedSquare(m)
	require.False(t, m.IsInsertableCell1InCell2(ds[0], ds[0]))
}

func TestIsInsertableCell1InCell2AcceptsDartOnSameFacetBoundary(t *testing.T) {
	m := NewMap[int](2)
	ds := closedSquare(m)
	require.True(t, m.IsInsertableCell1InCell2(ds[0], ds[2]))
}

func TestInsertCell1InCell2AddsAnEdgeAndStaysValid(t *testing.T) {
	m := NewMap[int](2)
	ds := closedSquare(m)
	before := m.NumberOfDarts()

	d := m.InsertCell1InCell2(ds[0], ds[2])
	require.False(t, d.IsNull())
	require.Equal(t, before+2, m.NumberOfDarts())
	require.NoError(t, m.IsValid())
}

func TestInsertCell1InCell2PanicsWhenNotInsertable(t *testing.T) {
	m := NewMap[int](2)
	ds := closedSquare(m)
	require.Panics(t, func() { m.InsertCell1InCell2(ds[0], ds[0]) })
}

func TestInsertDanglingCell1InCell2AddsTwoDarts(t *testing.T) {
	m := NewMap[int](2)
	ds := closedSquare(m)
	before := m.NumberOfDarts()

	d := m.InsertDanglingCell1InCell2(ds[0])
	require.False(t, d.IsNull())
	require.Equal(t, before+2, m.NumberOfDarts())
}

func TestInsertCell0InCell1SplitsAnIsolatedEdge(t *testing.T) {
	m := NewMap[int](1)
	a := m.CreateDart()
	before := m.NumberOfDarts()

	mid := m.InsertCell0InCell1(a)
	require.False(t, mid.IsNull())
	require.Equal(t, before+1, m.NumberOfDarts())
	require.Equal(t, mid, m.Beta(a, 1))
}

func TestInsertCell0InCell1OnAFacetEdgeStaysValid(t *testing.T) {
	m := NewMap[int](2)
	ds := closedSquare(m)
	before := m.NumberOfDarts()

	mid := m.InsertCell0InCell1(ds[0])
	require.False(t, mid.IsNull())
	require.Equal(t, before+1, m.NumberOfDarts())
	require.NoError(t, m.IsValid())
}

func TestRemoveDCellErasesAllItsDarts(t *testing.T) {
	m := NewMap[int](2)
	ds := closedSquare(m)
	n := m.RemoveCell(2, ds[0])
	require.Equal(t, 4, n)
	require.Equal(t, 0, m.NumberOfDarts())
}

func TestRemoveCellPanicsOnInvalidDimension(t *testing.T) {
	m := NewMap[int](2)
	a := m.CreateDart()
	require.Panics(t, func() { m.RemoveCell(7, a) })
}

func TestAttributeSetAndGet(t *testing.T) {
	m := NewMap[string](1, WithAllAttributesEnabled())
	a := m.CreateDart()
	_, ok := m.Attribute(a, 0)
	require.False(t, ok)

	m.SetAttribute(a, 0, "vertex-A")
	v, ok := m.Attribute(a, 0)
	require.True(t, ok)
	require.Equal(t, "vertex-A", v)
}

func TestAttributeAccessPanicsWhenDisabled(t *testing.T) {
	m := NewMap[string](1)
	a := m.CreateDart()
	require.Panics(t, func() { m.SetAttribute(a, 0, "x") })
}

func TestIsValidOnEmptyMap(t *testing.T) {
	m := NewMap[int](2)
	require.NoError(t, m.IsValid())
}

func TestIsInsertableCell2InCell3RequiresDimensionAtLeastThree(t *testing.T) {
	m := NewMap[int](2)
	a := m.CreateDart()
	require.Panics(t, func() { m.IsInsertableCell2InCell3([]dart.Handle{a}) })
}

func TestIsInsertableCell2InCell3RejectsEmptyPath(t *testing.T) {
	m := NewMap[int](3)
	ok, err := m.IsInsertableCell2InCell3(nil)
	require.False(t, ok)
	require.Error(t, err)
}

func TestInsertCell0InCell1SplitsBothSidesOfADanglingEdge(t *testing.T) {
	m := NewMap[int](2)
	base := m.CreateDart()
	tip := m.InsertDanglingCell1InCell2(base)
	before := m.NumberOfDarts()

	mid := m.InsertCell0InCell1(tip)
	require.False(t, mid.IsNull())
	// tip's beta2 partner lies on the same edge and must be split too, not
	// just tip's own side, or the two halves would disagree about where the
	// new vertex sits.
	require.Equal(t, before+2, m.NumberOfDarts())
	require.NoError(t, m.IsValid())
}

func TestRemoveCellErasesBothSidesOfABeta2LinkedEdge(t *testing.T) {
	m := NewMap[int](2)
	p, q := m.CreateDart(), m.CreateDart()
	m.store.LinkBeta(p, 2, q)

	n := m.RemoveCell(1, p)
	require.Equal(t, 2, n)
	require.Equal(t, 0, m.NumberOfDarts())
}

func TestContractCellErasesBothSidesOfABeta2LinkedEdge(t *testing.T) {
	m := NewMap[int](2)
	p, q := m.CreateDart(), m.CreateDart()
	m.store.LinkBeta(p, 2, q)

	n := m.ContractCell(1, p)
	require.Equal(t, 2, n)
	require.Equal(t, 0, m.NumberOfDarts())
}

// crossLinkedPair builds two darts in a dim>=3 map joined by both beta2 and
// beta3, so a 1-cell orbit (which excludes only beta1) has to walk both
// generators to find its full membership.
func crossLinkedPair(m *Map[int]) (dart.Handle, dart.Handle) {
	a, b := m.CreateDart(), m.CreateDart()
	m.store.LinkBeta(a, 2, b)
	m.store.LinkBeta(a, 3, b)
	return a, b
}

func TestRemoveCellGeneralBranchSpansMultipleGenerators(t *testing.T) {
	m := NewMap[int](3)
	a, _ := crossLinkedPair(m)

	n := m.RemoveCell(1, a)
	require.Equal(t, 2, n)
	require.Equal(t, 0, m.NumberOfDarts())
}

func TestContractCellGeneralBranchErasesAClosedFacet(t *testing.T) {
	m := NewMap[int](3)
	ds := closedSquare(m)

	n := m.ContractCell(2, ds[0])
	require.Equal(t, 4, n)
	require.Equal(t, 0, m.NumberOfDarts())
}
