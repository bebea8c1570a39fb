package treap_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/treap"
)

// collectKeys drains Keys into a slice.
func collectKeys[K int | string | float64, V any](t *treap.Treap[K, V]) []K {
	return slices.Collect(t.Keys())
}

func TestSetGet_VariousKeys(t *testing.T) {
	ints := treap.New[int, string](treap.WithSeed(1))
	for k, v := range map[int]string{-5: "negative key", 0: "zero", 1: "one", 99999: "large number"} {
		ints.Set(k, v)
		got, err := ints.Get(k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	floats := treap.New[float64, string](treap.WithSeed(2))
	floats.Set(0.123456789, "float key")
	got, err := floats.Get(0.123456789)
	require.NoError(t, err)
	assert.Equal(t, "float key", got)

	strs := treap.New[string, string](treap.WithSeed(3))
	strs.Set("apple", "fruit")
	strs.Set("key", "value")
	got, err = strs.Get("apple")
	require.NoError(t, err)
	assert.Equal(t, "fruit", got)
}

func TestGet_Missing(t *testing.T) {
	tr := treap.New[int, int](treap.WithSeed(1))
	_, err := tr.Get(42)
	assert.ErrorIs(t, err, treap.ErrKeyNotFound)
}

func TestDelete(t *testing.T) {
	tr := treap.New[int, string](treap.WithSeed(7))
	tr.Set(10, "ten")
	require.NoError(t, tr.Delete(10))

	_, err := tr.Get(10)
	assert.ErrorIs(t, err, treap.ErrKeyNotFound)
	assert.Equal(t, 0, tr.Len())
	assert.ErrorIs(t, tr.Delete(10), treap.ErrKeyNotFound)
}

func TestDelete_KeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	tr := treap.New[int, int](treap.WithSeed(5))
	ref := map[int]int{}
	for i := 0; i < 500; i++ {
		k := rng.IntN(200)
		tr.Set(k, i)
		ref[k] = i
	}
	for i := 0; i < 300; i++ {
		k := rng.IntN(200)
		_, present := ref[k]
		err := tr.Delete(k)
		if present {
			require.NoError(t, err)
			delete(ref, k)
		} else {
			require.ErrorIs(t, err, treap.ErrKeyNotFound)
		}
		require.NoError(t, tr.Validate())
	}

	assert.Equal(t, len(ref), tr.Len())
	for k, v := range ref {
		got, err := tr.Get(k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestInorderTraversal(t *testing.T) {
	cases := [][]int{
		{1, 2, 3, 4, 5},
		{10, 100, 1000, 10000, 100000},
		{-3, -1, 0, 2},
		{5, 1, 4, 2, 3},
	}
	for _, keys := range cases {
		tr := treap.New[int, int](treap.WithSeed(9))
		for _, k := range keys {
			tr.Set(k, k*2)
		}
		want := slices.Sorted(slices.Values(keys))
		assert.Equal(t, want, collectKeys(tr))

		var back []int
		for k, v := range tr.Backward() {
			assert.Equal(t, k*2, v)
			back = append(back, k)
		}
		slices.Reverse(want)
		assert.Equal(t, want, back)
	}
}

func TestAll_EarlyBreak(t *testing.T) {
	tr := treap.New[int, int](treap.WithSeed(3))
	for i := 0; i < 10; i++ {
		tr.Set(i, i)
	}
	var seen []int
	for k := range tr.All() {
		if k == 3 {
			break
		}
		seen = append(seen, k)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestHas(t *testing.T) {
	tr := treap.New[int, string](treap.WithSeed(4))
	tr.Set(-10, "negative value")
	assert.True(t, tr.Has(-10))
	assert.False(t, tr.Has(-9))
}

func TestUpdateExisting_KeepsSize(t *testing.T) {
	tr := treap.New[string, string](treap.WithSeed(4))
	tr.Set("hello", "world")
	tr.Set("hello", "updated world")

	got, err := tr.Get("hello")
	require.NoError(t, err)
	assert.Equal(t, "updated world", got)
	assert.Equal(t, 1, tr.Len())
}

func TestLen(t *testing.T) {
	tr := treap.New[int, int](treap.WithSeed(4))
	for _, k := range []int{1, 5, 3, 7, 2} {
		tr.Set(k, k*10)
	}
	assert.Equal(t, 5, tr.Len())
}

func TestMinMax(t *testing.T) {
	tr := treap.New[int, string](treap.WithSeed(4))
	_, _, ok := tr.Min()
	assert.False(t, ok)

	tr.Set(3, "c")
	tr.Set(1, "a")
	tr.Set(9, "z")
	k, v, ok := tr.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, "a", v)
	k, _, ok = tr.Max()
	assert.True(t, ok)
	assert.Equal(t, 9, k)
}

func TestSplitMerge(t *testing.T) {
	tr := treap.New[int, int](treap.WithSeed(21))
	for i := 1; i <= 20; i++ {
		tr.Set(i, i)
	}

	right := tr.Split(12)
	assert.Equal(t, 12, tr.Len())
	assert.Equal(t, 8, right.Len())
	require.NoError(t, tr.Validate())
	require.NoError(t, right.Validate())
	assert.Equal(t, []int{13, 14, 15, 16, 17, 18, 19, 20}, collectKeys(right))

	assert.ErrorIs(t, right.Merge(tr), treap.ErrMergeOrder)

	require.NoError(t, tr.Merge(right))
	assert.Equal(t, 20, tr.Len())
	assert.Equal(t, 0, right.Len())
	require.NoError(t, tr.Validate())
}

func TestHeight_StaysLogarithmic(t *testing.T) {
	tr := treap.New[int, struct{}](treap.WithSeed(99))
	const n = 1 << 14
	for i := 0; i < n; i++ {
		tr.Set(i, struct{}{}) // sorted input degenerates a plain BST
	}
	require.NoError(t, tr.Validate())
	// Expected height is about 3·log2(n); allow generous slack.
	assert.Less(t, tr.Height(), 6*14)
}
