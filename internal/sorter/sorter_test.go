package sorter

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sortFunc func([]int, Direction)

var algorithms = map[string]sortFunc{
	"exchange": ExchangeSort,
	"merge":    MergeSort,
}

func expected(values []int, dir Direction) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	if dir == Descending {
		slices.Reverse(out)
	}
	return out
}

func TestSortExamples(t *testing.T) {
	tests := []struct {
		name  string
		sort  sortFunc
		input []int
		dir   Direction
		want  []int
	}{
		{
			name:  "exchange ascending",
			sort:  ExchangeSort,
			input: []int{5, 3, 8, 1},
			dir:   Ascending,
			want:  []int{1, 3, 5, 8},
		},
		{
			name:  "merge descending",
			sort:  MergeSort,
			input: []int{5, 3, 8, 1},
			dir:   Descending,
			want:  []int{8, 5, 3, 1},
		},
		{
			name:  "exchange descending with duplicates",
			sort:  ExchangeSort,
			input: []int{2, 7, 2, 9, 7},
			dir:   Descending,
			want:  []int{9, 7, 7, 2, 2},
		},
		{
			name:  "merge ascending odd length",
			sort:  MergeSort,
			input: []int{4, 1, 3, 9, 7},
			dir:   Ascending,
			want:  []int{1, 3, 4, 7, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := slices.Clone(tt.input)
			tt.sort(values, tt.dir)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestSortBoundaries(t *testing.T) {
	for name, sort := range algorithms {
		for _, dir := range []Direction{Ascending, Descending} {
			t.Run(name+"/"+dir.String(), func(t *testing.T) {
				empty := []int{}
				sort(empty, dir)
				assert.Empty(t, empty)

				single := []int{42}
				sort(single, dir)
				assert.Equal(t, []int{42}, single)

				pair := []int{1, 2}
				sort(pair, dir)
				assert.Equal(t, expected([]int{1, 2}, dir), pair)

				pair = []int{2, 1}
				sort(pair, dir)
				assert.Equal(t, expected([]int{2, 1}, dir), pair)
			})
		}
	}
}

func TestSortRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 50; round++ {
		input := make([]int, rng.IntN(200))
		for i := range input {
			input[i] = rng.IntN(1000) + 1
		}

		for _, dir := range []Direction{Ascending, Descending} {
			want := expected(input, dir)

			byExchange := slices.Clone(input)
			ExchangeSort(byExchange, dir)
			byMerge := slices.Clone(input)
			MergeSort(byMerge, dir)

			assert.Equal(t, want, byExchange, "exchange sort, %s, round %d", dir, round)
			assert.Equal(t, want, byMerge, "merge sort, %s, round %d", dir, round)
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	for name, sort := range algorithms {
		t.Run(name, func(t *testing.T) {
			values := []int{10, 4, 4, 900, 37, 1, 1000}
			sort(values, Descending)
			once := slices.Clone(values)
			sort(values, Descending)
			assert.Equal(t, once, values)
		})
	}
}

func TestSortReverseOfOppositeDirection(t *testing.T) {
	values := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	asc := slices.Clone(values)
	MergeSort(asc, Ascending)
	desc := slices.Clone(asc)
	ExchangeSort(desc, Descending)

	slices.Reverse(asc)
	assert.Equal(t, asc, desc)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "descending", Descending.String())
}
