package hashtable_test

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/hashtable"
)

func newTable(t *testing.T, opts ...hashtable.Option[string]) *hashtable.Table[string, int] {
	t.Helper()
	tbl, err := hashtable.New[string, int](opts...)
	require.NoError(t, err)

	return tbl
}

func TestSetGetUpdate(t *testing.T) {
	tbl := newTable(t)
	tbl.Set("a", 1)
	tbl.Set("b", 2)
	tbl.Set("a", 10)

	v, err := tbl.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, tbl.Len())
	assert.True(t, tbl.Has("b"))
	assert.False(t, tbl.Has("c"))

	_, err = tbl.Get("c")
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)
}

func TestDelete(t *testing.T) {
	tbl := newTable(t)
	tbl.Set("x", 1)
	tbl.Set("y", 2)

	require.NoError(t, tbl.Delete("x"))
	assert.False(t, tbl.Has("x"))
	assert.Equal(t, 1, tbl.Len())

	assert.ErrorIs(t, tbl.Delete("x"), hashtable.ErrKeyNotFound)
	assert.ErrorIs(t, tbl.Delete("missing"), hashtable.ErrKeyNotFound)
}

func TestInvalidCapacity(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := hashtable.New[string, int](hashtable.WithCapacity[string](n))
		assert.ErrorIs(t, err, hashtable.ErrInvalidCapacity)
	}
}

func TestResizeKeepsEntries(t *testing.T) {
	tbl := newTable(t)
	assert.Equal(t, 16, tbl.Cap())

	for i := 0; i < 12; i++ {
		tbl.Set(fmt.Sprint(i), i)
	}
	assert.Equal(t, 16, tbl.Cap())

	tbl.Set("12", 12)
	assert.Equal(t, 32, tbl.Cap())

	for i := 13; i < 1000; i++ {
		tbl.Set(fmt.Sprint(i), i)
	}
	assert.Equal(t, 1000, tbl.Len())
	for i := 0; i < 1000; i++ {
		v, err := tbl.Get(fmt.Sprint(i))
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestCollisions(t *testing.T) {
	// every key lands in the same bucket
	constant := func(string) uint64 { return 7 }
	tbl := newTable(t, hashtable.WithCapacity[string](4), hashtable.WithHasher[string](constant))

	for _, k := range []string{"a", "b", "c", "d", "e"} {
		tbl.Set(k, len(k))
	}
	require.NoError(t, tbl.Delete("c"))

	got := slices.Sorted(tbl.Keys())
	assert.Equal(t, []string{"a", "b", "d", "e"}, got)
}

func TestFromMapAndAll(t *testing.T) {
	src := map[string]int{"one": 1, "two": 2, "three": 3}
	tbl, err := hashtable.FromMap(src)
	require.NoError(t, err)

	assert.Equal(t, src, maps.Collect(tbl.All()))
}

func TestAllStopsEarly(t *testing.T) {
	tbl := newTable(t)
	for i := 0; i < 10; i++ {
		tbl.Set(fmt.Sprint(i), i)
	}
	n := 0
	for range tbl.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

type point struct{ X, Y int }

func TestDefaultHasher(t *testing.T) {
	assert.Equal(t, hashtable.DefaultHasher("k"), hashtable.DefaultHasher("k"))
	assert.NotEqual(t, hashtable.DefaultHasher(1), hashtable.DefaultHasher(2))
	assert.Equal(t, hashtable.DefaultHasher(point{1, 2}), hashtable.DefaultHasher(point{1, 2}))

	tbl, err := hashtable.New[point, string]()
	require.NoError(t, err)
	tbl.Set(point{1, 2}, "a")
	v, err := tbl.Get(point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestSignedZeroKeysAreOneKey(t *testing.T) {
	negZero := math.Copysign(0, -1)
	assert.Equal(t, hashtable.DefaultHasher(0.0), hashtable.DefaultHasher(negZero))
	assert.Equal(t, hashtable.DefaultHasher(float32(0)), hashtable.DefaultHasher(float32(negZero)))

	tbl, err := hashtable.New[float64, string]()
	require.NoError(t, err)
	tbl.Set(0.0, "pos")
	tbl.Set(negZero, "neg")
	assert.Equal(t, 1, tbl.Len())
	v, err := tbl.Get(0.0)
	require.NoError(t, err)
	assert.Equal(t, "neg", v)

	type cell struct{ X float64 }
	cells, err := hashtable.New[cell, int]()
	require.NoError(t, err)
	cells.Set(cell{0}, 1)
	cells.Set(cell{negZero}, 2)
	assert.Equal(t, 1, cells.Len())
}
