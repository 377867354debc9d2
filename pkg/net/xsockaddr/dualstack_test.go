package xsockaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDualMode4To6(t *testing.T) {
	t.Run("maps address and preserves port", func(t *testing.T) {
		a := FromInet4([4]byte{1, 2, 3, 4}, 80)
		require.NoError(t, a.MapDualMode4To6())

		assert.Equal(t, FamilyInet6, a.Family())
		assert.Equal(t, "::ffff:1.2.3.4", a.FormatAddress())
		assert.Equal(t, uint16(80), a.Port())
		assert.Equal(t, uint32(0), a.FlowInfo())
		assert.Equal(t, uint32(0), a.ScopeID())
		assert.True(t, a.IsV4Mapped())
	})

	t.Run("rejects non-IPv4", func(t *testing.T) {
		v6 := FromInet6([16]byte{15: 1}, 443, 0, 0)
		before := v6
		assert.ErrorIs(t, v6.MapDualMode4To6(), ErrFamilyMismatch)
		assert.True(t, v6.Equal(before))

		unspec := New(FamilyUnspec)
		assert.ErrorIs(t, unspec.MapDualMode4To6(), ErrFamilyMismatch)
	})
}

func TestUnmapDualMode6To4(t *testing.T) {
	t.Run("round-trips through map", func(t *testing.T) {
		orig := FromInet4([4]byte{192, 168, 1, 1}, 8080)
		a := orig
		require.NoError(t, a.MapDualMode4To6())
		require.NoError(t, a.UnmapDualMode6To4())
		assert.True(t, a.Equal(orig))
	})

	t.Run("rejects non-mapped IPv6", func(t *testing.T) {
		a := FromInet6([16]byte{0: 0x20, 1: 0x01, 15: 1}, 443, 0, 0)
		before := a
		assert.ErrorIs(t, a.UnmapDualMode6To4(), ErrFamilyMismatch)
		assert.True(t, a.Equal(before))
	})

	t.Run("rejects IPv4", func(t *testing.T) {
		a := FromInet4([4]byte{1, 2, 3, 4}, 80)
		assert.ErrorIs(t, a.UnmapDualMode6To4(), ErrFamilyMismatch)
	})
}

func TestIsV4Mapped(t *testing.T) {
	assert.False(t, FromInet4([4]byte{1, 2, 3, 4}, 0).IsV4Mapped())
	assert.False(t, FromInet6([16]byte{15: 1}, 0, 0, 0).IsV4Mapped())
	assert.False(t, New(FamilyUnspec).IsV4Mapped())

	mapped := MustParse("::ffff:1.2.3.4")
	assert.True(t, mapped.IsV4Mapped())
}
