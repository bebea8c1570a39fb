package cartesian_test

import (
	"context"
	"slices"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drills/cartesian"
)

func TestProduct_Order(t *testing.T) {
	var got [][]int
	for tuple := range cartesian.Product([]int{1, 2}, []int{3, 4}) {
		got = append(got, slices.Clone(tuple))
	}
	want := [][]int{{1, 3}, {1, 4}, {2, 3}, {2, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Product mismatch (-want +got):\n%s", diff)
	}
}

func TestProduct_EmptyInputs(t *testing.T) {
	count := func(seq func(func([]int) bool)) int {
		n := 0
		seq(func([]int) bool { n++; return true })
		return n
	}
	assert.Zero(t, count(cartesian.Product()))
	assert.Zero(t, count(cartesian.Product([]int{1, 2}, nil)))
	assert.Equal(t, 3, count(cartesian.Product([]int{1, 2, 3})))
}

func TestSum_MatchesClosedForm(t *testing.T) {
	cases := [][][]int{
		{{1, 2}, {3, 4}},
		{{1, 2, 3}},
		{{-1, 5}, {0}, {7, 8, 9}},
		{{1, 2}, {3, 4}, {5, 6}, {7, 8, 9, 10}},
	}
	for _, sets := range cases {
		got, err := cartesian.Sum(context.Background(), sets, cartesian.WithWorkers(2))
		require.NoError(t, err)
		assert.Equal(t, cartesian.ClosedFormSum(sets), got)
	}
}

func TestSum_KnownValue(t *testing.T) {
	// (1+3)+(1+4)+(2+3)+(2+4) = 20
	got, err := cartesian.Sum(context.Background(), [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestSum_EmptyAndInvalid(t *testing.T) {
	got, err := cartesian.Sum(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = cartesian.Sum(context.Background(), [][]int{{1}, {}})
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = cartesian.Sum(context.Background(), [][]int{{1}}, cartesian.WithWorkers(0))
	assert.ErrorIs(t, err, cartesian.ErrInvalidWorkers)
}

func TestSum_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	big := make([]int, 200)
	_, err := cartesian.Sum(ctx, [][]int{{1, 2}, big, big})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSumSets(t *testing.T) {
	sets := []mapset.Set[int]{
		mapset.NewSet(1, 2, 2), // duplicates collapse
		mapset.NewSet(3, 4),
	}
	got, err := cartesian.SumSets(context.Background(), sets)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestPairSum(t *testing.T) {
	got, err := cartesian.PairSum(context.Background(), []int{1, 2, 3})
	require.NoError(t, err)
	// each number appears 2·n times across the n² pairs: 6·2·3
	assert.Equal(t, 36, got)

	got, err = cartesian.PairSum(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}
