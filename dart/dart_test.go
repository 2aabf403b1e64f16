package dart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateDartReusesFreedSlotWithNewGeneration(t *testing.T) {
	s := NewStore(2, 0)
	a := s.CreateDart()
	s.EraseDart(a)
	b := s.CreateDart()

	require.False(t, s.IsAlive(a))
	require.True(t, s.IsAlive(b))
	require.Panics(t, func() { s.Beta(a, 0) }, "stale handle must panic, not alias the reused slot")
}

func TestLinkBetaInvolutionSetsBothSides(t *testing.T) {
	s := NewStore(2, 0)
	a, b := s.CreateDart(), s.CreateDart()
	s.LinkBeta(a, 2, b)

	require.Equal(t, b, s.Beta(a, 2))
	require.Equal(t, a, s.Beta(b, 2))
}

func TestLinkBeta01SetsPartialInverses(t *testing.T) {
	s := NewStore(1, 0)
	a, b := s.CreateDart(), s.CreateDart()
	s.LinkBeta01(a, b)

	require.Equal(t, b, s.Beta(a, 1))
	require.Equal(t, a, s.Beta(b, 0))
	require.True(t, s.IsFree(b, 1))
}

func TestUnlinkBetaClearsSymmetricSlotForInvolutions(t *testing.T) {
	s := NewStore(2, 0)
	a, b := s.CreateDart(), s.CreateDart()
	s.LinkBeta(a, 2, b)
	s.UnlinkBeta(a, 2)

	require.True(t, s.IsFree(a, 2))
	require.True(t, s.IsFree(b, 2))
}

func TestUnlinkBetaClearsPartialInverseSlotToo(t *testing.T) {
	s := NewStore(1, 0)
	a, b := s.CreateDart(), s.CreateDart()
	s.LinkBeta01(a, b)
	s.UnlinkBeta(a, 1)

	require.True(t, s.IsFree(a, 1))
	require.True(t, s.IsFree(b, 0), "unlinking beta_1(a) must also clear beta_0(b)")
}

func TestEraseDartPanicsIfStillMarked(t *testing.T) {
	s := NewStore(0, 0)
	a := s.CreateDart()
	m := s.NewMark()
	s.Mark(a, m)

	require.Panics(t, func() { s.EraseDart(a) })

	s.Unmark(a, m)
	s.FreeMark(m)
	require.NotPanics(t, func() { s.EraseDart(a) })
}

func TestFreeMarkPanicsIfStillSetSomewhere(t *testing.T) {
	s := NewStore(0, 0)
	a := s.CreateDart()
	m := s.NewMark()
	s.Mark(a, m)

	require.Panics(t, func() { s.FreeMark(m) })
}

func TestOtherExtremityPrefersBeta1ThenBeta0(t *testing.T) {
	s := NewStore(1, 0)
	a, b := s.CreateDart(), s.CreateDart()
	require.True(t, s.OtherExtremity(a).IsNull())

	s.LinkBeta01(a, b)
	require.Equal(t, b, s.OtherExtremity(a))
	require.Equal(t, a, s.OtherExtremity(b))
}

func TestBetaInvIndex(t *testing.T) {
	require.Equal(t, 1, BetaInvIndex(0))
	require.Equal(t, 0, BetaInvIndex(1))
	require.Equal(t, 2, BetaInvIndex(2))
	require.Equal(t, 5, BetaInvIndex(5))
}
