package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func images(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("img-%d.jpg", i)
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	v := New(images(3))
	assert.Equal(t, 0, v.Index())
	assert.False(t, v.IsOpen())
	assert.Equal(t, StateClosed, v.State())
	assert.Equal(t, 3, v.Len())
}

func TestNew_CopiesInput(t *testing.T) {
	in := images(2)
	v := New(in)
	in[0] = "changed"

	cur, ok := v.Current()
	require.True(t, ok)
	assert.Equal(t, "img-0.jpg", cur)

	out := v.Images()
	out[1] = "changed"
	assert.Equal(t, []string{"img-0.jpg", "img-1.jpg"}, v.Images())
}

func TestOpenAt(t *testing.T) {
	v := New(images(4))

	require.NoError(t, v.OpenAt(2))
	assert.True(t, v.IsOpen())
	assert.Equal(t, 2, v.Index())

	require.NoError(t, v.OpenAt(0))
	assert.Equal(t, 0, v.Index())
}

func TestOpenAt_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "negative", index: -1},
		{name: "length", index: 4},
		{name: "far past end", index: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(images(4))
			v.Next()

			err := v.OpenAt(tt.index)
			require.ErrorIs(t, err, ErrInvalidIndex)

			var idxErr *InvalidIndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, tt.index, idxErr.Index)
			assert.Equal(t, 4, idxErr.Len)

			assert.False(t, v.IsOpen(), "rejected open must not change state")
			assert.Equal(t, 1, v.Index())
		})
	}
}

func TestEmptySet_IsNoOp(t *testing.T) {
	v := New(nil)

	require.NoError(t, v.OpenAt(0))
	assert.False(t, v.IsOpen())

	v.Next()
	v.Previous()
	v.Reopen()
	v.Close()

	assert.False(t, v.IsOpen())
	assert.Equal(t, 0, v.Index())
	assert.Equal(t, 0, v.OverflowCount())

	_, ok := v.Current()
	assert.False(t, ok)

	cur, total := v.Position()
	assert.Equal(t, 0, cur)
	assert.Equal(t, 0, total)
}

func TestZeroValueViewer(t *testing.T) {
	var v Viewer
	require.NoError(t, v.OpenAt(3))
	v.Next()
	assert.False(t, v.IsOpen())
	assert.True(t, v.Layout().Empty())
}

func TestClose_PreservesIndex(t *testing.T) {
	v := New(images(6))
	require.NoError(t, v.OpenAt(4))

	v.Close()
	assert.False(t, v.IsOpen())
	assert.Equal(t, 4, v.Index())

	v.Close()
	assert.False(t, v.IsOpen())
	assert.Equal(t, 4, v.Index())

	v.Reopen()
	assert.True(t, v.IsOpen())
	assert.Equal(t, 4, v.Index())
}

func TestOpenAt_OverridesPriorState(t *testing.T) {
	for k := range 5 {
		v := New(images(5))
		require.NoError(t, v.OpenAt(3))
		v.Next()
		v.Close()

		require.NoError(t, v.OpenAt(k))
		assert.Equal(t, k, v.Index())
		assert.True(t, v.IsOpen())
	}
}

func TestNext_CycleClosure(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for start := range n {
			v := New(images(n))
			require.NoError(t, v.OpenAt(start))

			for range n {
				v.Next()
			}
			assert.Equal(t, start, v.Index(), "n=%d start=%d", n, start)
		}
	}
}

func TestNextPrevious_AreInverse(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := range n {
			v := New(images(n))
			require.NoError(t, v.OpenAt(start))

			v.Next()
			v.Previous()
			assert.Equal(t, start, v.Index())

			v.Previous()
			v.Next()
			assert.Equal(t, start, v.Index())
		}
	}
}

func TestPrevious_WrapsToLast(t *testing.T) {
	v := New(images(3))
	v.Previous()
	assert.Equal(t, 2, v.Index())
}

func TestNavigationWhileClosed_PreseedsIndex(t *testing.T) {
	v := New(images(4))
	v.Next()
	v.Next()
	assert.False(t, v.IsOpen())

	v.Reopen()
	cur, ok := v.Current()
	require.True(t, ok)
	assert.Equal(t, "img-2.jpg", cur)
}

func TestOverflowCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 0},
		{n: 1, want: 0},
		{n: 4, want: 0},
		{n: 5, want: 0},
		{n: 6, want: 1},
		{n: 12, want: 7},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, New(images(tt.n)).OverflowCount())
			assert.Equal(t, tt.want, OverflowCount(tt.n))
		})
	}
}

func TestScenarioA_SevenImages(t *testing.T) {
	v := New(images(7))

	layout := v.Layout()
	require.NotNil(t, layout.Primary)
	assert.Equal(t, 0, layout.Primary.Index)
	require.Len(t, layout.Secondary, 4)
	for k, tile := range layout.Secondary {
		assert.Equal(t, k+1, tile.Index)
	}
	assert.Equal(t, 2, layout.Secondary[3].Overflow)

	require.NoError(t, v.OpenAt(layout.Secondary[3].Index))
	assert.Equal(t, 4, v.Index())
	assert.Equal(t, "5 / 7", v.PositionLabel())

	v.Next()
	assert.Equal(t, "6 / 7", v.PositionLabel())

	v.Next()
	v.Next()
	assert.Equal(t, "1 / 7", v.PositionLabel())
	assert.Equal(t, 0, v.Index())
}

func TestScenarioB_SingleImage(t *testing.T) {
	v := New(images(1))

	layout := v.Layout()
	require.NotNil(t, layout.Primary)
	assert.Empty(t, layout.Secondary)

	require.NoError(t, v.OpenAt(layout.Primary.Index))
	assert.Equal(t, "1 / 1", v.PositionLabel())

	v.Next()
	assert.Equal(t, "1 / 1", v.PositionLabel())
	v.Previous()
	assert.Equal(t, "1 / 1", v.PositionLabel())
}

func TestScenarioC_Empty(t *testing.T) {
	v := New([]string{})
	assert.True(t, v.Layout().Empty())
	assert.Empty(t, v.Layout().Tiles())
	assert.Equal(t, 0, v.OverflowCount())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
}

func TestSeek(t *testing.T) {
	v := New(images(4))

	require.NoError(t, v.Seek(2))
	assert.Equal(t, 2, v.Index())
	assert.False(t, v.IsOpen())

	err := v.Seek(4)
	require.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, 2, v.Index())

	v.Reopen()
	assert.True(t, v.IsOpen())
	assert.Equal(t, 2, v.Index())

	empty := New(nil)
	assert.NoError(t, empty.Seek(3))
	assert.Equal(t, 0, empty.Index())
}
