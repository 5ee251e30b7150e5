// Package sorter implements the two in-place sorting algorithms offered by the menu.
package sorter

// Direction is the ordering requested for a single sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the lower-case name used in session log entries.
func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// before reports whether a must be placed strictly before b.
func (d Direction) before(a, b int) bool {
	if d == Descending {
		return a > b
	}
	return a < b
}

// ExchangeSort sorts values in place by adjacent comparison and swap (bubble sort).
// Every pass runs to completion, so the comparison count is always quadratic.
func ExchangeSort(values []int, dir Direction) {
	size := len(values)
	for i := 0; i < size; i++ {
		for j := 0; j < size-i-1; j++ {
			if dir.before(values[j+1], values[j]) {
				values[j], values[j+1] = values[j+1], values[j]
			}
		}
	}
}

// MergeSort sorts values in place with a recursive top-down merge sort.
// A single scratch buffer covering the whole slice is allocated per call and
// indexed by absolute position.
func MergeSort(values []int, dir Direction) {
	if len(values) < 2 {
		return
	}
	scratch := make([]int, len(values))
	mergeSort(values, scratch, dir, 0, len(values)-1)
}

func mergeSort(values, scratch []int, dir Direction, low, high int) {
	if low >= high {
		return
	}
	mid := (low + high) / 2
	mergeSort(values, scratch, dir, low, mid)
	mergeSort(values, scratch, dir, mid+1, high)
	merge(values, scratch, dir, low, mid, high)
}

// merge combines the sorted runs [low,mid] and [mid+1,high]. Equal keys are
// taken from the left run first.
func merge(values, scratch []int, dir Direction, low, mid, high int) {
	i, j, k := low, mid+1, low
	for i <= mid && j <= high {
		if dir.before(values[j], values[i]) {
			scratch[k] = values[j]
			j++
		} else {
			scratch[k] = values[i]
			i++
		}
		k++
	}
	k += copy(scratch[k:], values[i:mid+1])
	copy(scratch[k:], values[j:high+1])
	copy(values[low:high+1], scratch[low:high+1])
}
