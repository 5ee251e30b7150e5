// Package sequence holds the list of random integers the user sorts and views.
package sequence

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	// MinSize and MaxSize bound the size accepted by Regenerate.
	MinSize = 10
	MaxSize = 999

	// MaxValue is the largest generated value; the smallest is 1.
	MaxValue = 1000

	// DefaultSize is the size of the sequence generated at start-up.
	DefaultSize = 50
)

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG source seeded from seed, or from the clock when seed is zero.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ValidSize reports whether n may be passed to Regenerate.
func ValidSize(n int) bool {
	return n >= MinSize && n <= MaxSize
}

// Sequence is an ordered, resizable list of integers. It is replaced as a
// whole by Regenerate and reordered in place by the sorters.
type Sequence struct {
	values []int
	src    Source
}

// New returns an empty sequence drawing from src.
func New(src Source) *Sequence {
	return &Sequence{src: src}
}

// FromValues wraps existing values without copying them.
func FromValues(values []int) *Sequence {
	return &Sequence{values: values}
}

// Regenerate discards the current contents and draws size fresh values in [1, MaxValue].
func (s *Sequence) Regenerate(size int) error {
	if !ValidSize(size) {
		return fmt.Errorf("sequence size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	if s.src == nil {
		return fmt.Errorf("sequence has no random source")
	}

	values := make([]int, size)
	for i := range values {
		values[i] = s.src.IntN(MaxValue) + 1
	}
	s.values = values
	return nil
}

// Len returns the number of values.
func (s *Sequence) Len() int {
	return len(s.values)
}

// Values exposes the backing slice so sorters can reorder it in place.
func (s *Sequence) Values() []int {
	return s.values
}

// All yields the current values in order. The iterator can be ranged over repeatedly.
func (s *Sequence) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Join renders the values separated by sep.
func (s *Sequence) Join(sep string) string {
	var b strings.Builder
	first := true
	for v := range s.All() {
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(strconv.Itoa(v))
		first = false
	}
	return b.String()
}

// String renders the values comma separated, as shown by the view command.
func (s *Sequence) String() string {
	return s.Join(", ")
}
