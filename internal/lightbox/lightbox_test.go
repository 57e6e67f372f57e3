package lightbox

import (
	"math/rand"
	"testing"

	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextWrapsAround(t *testing.T) {
	lb := New(3, nil)
	require.NoError(t, lb.Open(0))

	lb.Next()
	lb.Next()
	assert.Equal(t, 2, lb.Index())

	lb.Next()
	assert.Equal(t, 0, lb.Index())
}

func TestPrevWrapsAround(t *testing.T) {
	lb := New(4, nil)
	require.NoError(t, lb.Open(0))

	lb.Prev()

	assert.Equal(t, 3, lb.Index())
}

func TestIndexStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 1; n <= 6; n++ {
		lb := New(n, nil)
		require.NoError(t, lb.Open(0))
		for step := 0; step < 200; step++ {
			before := lb.Index()
			if r.Intn(2) == 0 {
				lb.Next()
				assert.GreaterOrEqual(t, lb.Index(), 0)
				assert.Less(t, lb.Index(), n)
				lb.Prev()
			} else {
				lb.Prev()
				assert.GreaterOrEqual(t, lb.Index(), 0)
				assert.Less(t, lb.Index(), n)
				lb.Next()
			}
			assert.Equal(t, before, lb.Index())
			lb.Next()
		}
	}
}

func TestOpenRejectsBadIndex(t *testing.T) {
	assert.ErrorIs(t, New(0, nil).Open(0), errcodes.ErrGalleryEmpty)
	assert.ErrorIs(t, New(2, nil).Open(2), errcodes.ErrIndexOutOfRange)
	assert.ErrorIs(t, New(2, nil).Open(-1), errcodes.ErrIndexOutOfRange)
}

func TestScrollLockFollowsOpenClose(t *testing.T) {
	var calls []bool
	lb := New(2, func(locked bool) { calls = append(calls, locked) })

	require.NoError(t, lb.Open(1))
	require.NoError(t, lb.Open(0))
	lb.Close()
	lb.Close()

	assert.Equal(t, []bool{true, false}, calls)
}

func TestInfoVisiblePersistsUntilReopen(t *testing.T) {
	lb := New(3, nil)
	require.NoError(t, lb.Open(0))
	assert.True(t, lb.InfoVisible())

	lb.ToggleInfo()
	lb.Next()
	lb.Prev()
	assert.False(t, lb.InfoVisible())

	lb.Close()
	require.NoError(t, lb.Open(1))
	assert.True(t, lb.InfoVisible())
}

func TestSingleItemCannotNavigate(t *testing.T) {
	lb := New(1, nil)
	require.NoError(t, lb.Open(0))

	assert.False(t, lb.CanNavigate())
	lb.Next()
	lb.Prev()
	assert.Equal(t, 0, lb.Index())
}

func TestHandleKey(t *testing.T) {
	lb := New(3, nil)
	assert.False(t, lb.HandleKey(KeyRight), "closed lightbox ignores keys")

	require.NoError(t, lb.Open(0))
	assert.True(t, lb.HandleKey(KeyRight))
	assert.Equal(t, 1, lb.Index())
	assert.True(t, lb.HandleKey(KeyLeft))
	assert.Equal(t, 0, lb.Index())
	assert.True(t, lb.HandleKey(KeyInfo))
	assert.False(t, lb.InfoVisible())
	assert.False(t, lb.HandleKey(Key("x")))
	assert.True(t, lb.HandleKey(KeyEscape))
	assert.False(t, lb.IsOpen())
}

func TestSetGalleryClosesOpenLightbox(t *testing.T) {
	locked := false
	lb := New(5, func(l bool) { locked = l })
	require.NoError(t, lb.Open(4))

	lb.SetGallery(2)

	assert.False(t, lb.IsOpen())
	assert.False(t, locked)
	assert.Equal(t, 2, lb.Len())
	assert.ErrorIs(t, lb.Open(4), errcodes.ErrIndexOutOfRange)
}

func TestNeighbours(t *testing.T) {
	prev, next := Neighbours(0, 3)
	assert.Equal(t, 2, prev)
	assert.Equal(t, 1, next)

	prev, next = Neighbours(0, 1)
	assert.Equal(t, 0, prev)
	assert.Equal(t, 0, next)
}
