package arr

import (
	"strconv"
	"testing"

	"github.com/amp-labs/amp-fp/tuple"
	"github.com/stretchr/testify/assert"
)

func TestZip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []tuple.Tuple2[int, string]{
		tuple.NewTuple2(1, "a"),
		tuple.NewTuple2(2, "b"),
	}, Zip([]int{1, 2, 3}, []string{"a", "b"}))

	assert.Empty(t, Zip([]int{}, []string{"a"}))

	sums := ZipWith([]int{1, 2}, []int{10, 20, 30}, func(a, b int) int { return a + b })
	assert.Equal(t, []int{11, 22}, sums)
}

func TestZip3(t *testing.T) {
	t.Parallel()

	rows := Zip3([]int{1, 2}, []string{"a", "b", "c"}, []bool{true, false})
	assert.Equal(t, []tuple.Tuple3[int, string, bool]{
		tuple.NewTuple3(1, "a", true),
		tuple.NewTuple3(2, "b", false),
	}, rows)

	labels := ZipWith3([]int{1}, []string{"x"}, []int{16}, func(a int, s string, base int) string {
		return s + strconv.FormatInt(int64(a), base)
	})
	assert.Equal(t, []string{"x1"}, labels)
}

func TestZipN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [][]int{}, ZipN[int]())
	assert.Equal(t, [][]int{{1}, {2}}, ZipN([]int{1, 2}))
	assert.Equal(t, [][]int{{1, 3, 5}, {2, 4, 6}}, ZipN([]int{1, 2}, []int{3, 4, 9}, []int{5, 6}))
	assert.Equal(t, [][]int{}, ZipN([]int{1, 2}, nil))
}

func TestCross(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []tuple.Tuple2[int, string]{
		tuple.NewTuple2(1, "a"),
		tuple.NewTuple2(1, "b"),
		tuple.NewTuple2(2, "a"),
		tuple.NewTuple2(2, "b"),
	}, Cross([]int{1, 2}, []string{"a", "b"}))

	assert.Empty(t, Cross([]int{1}, []string{}))

	products := CrossWith([]int{1, 2}, []int{3, 4}, func(a, b int) int { return a * b })
	assert.Equal(t, []int{3, 4, 6, 8}, products)

	triples := Cross3([]int{1, 2}, []string{"x"}, []bool{true, false})
	assert.Len(t, triples, 4)
	assert.Equal(t, tuple.NewTuple3(1, "x", false), triples[1])
	assert.Equal(t, tuple.NewTuple3(2, "x", true), triples[2])
}
