package set

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type (
	// EqualFn reports whether two elements are equivalent. It must be a
	// pure binary predicate; it defines uniqueness and membership for
	// every Set it is given to.
	EqualFn[T any] func(a, b T) bool

	// AllocFn allocates a buffer of n slots. The default allocator never
	// fails; a custom one may, which is how callers exercise the
	// allocation-failure paths of Add, Clone and friends.
	AllocFn[T any] func(n int) ([]T, error)

	Option[T any] func(s *Set[T])

	// Set is a duplicate-free collection backed by a contiguous buffer.
	// Elements occupy slots [0, count) with no gaps; the buffer doubles
	// when full and is halved when occupancy drops to a quarter.
	//
	// A Set is not safe for concurrent use.
	Set[T any] struct {
		eq    EqualFn[T]
		alloc AllocFn[T]
		buf   []T // len(buf) is the capacity
		count int
		gen   uint64
	}
)

func WithAllocator[T any](alloc AllocFn[T]) Option[T] {
	return func(s *Set[T]) {
		s.alloc = alloc
	}
}

func defaultAlloc[T any](n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// New creates an empty, unallocated Set with the given equality predicate.
// No buffer is allocated until the first insertion.
func New[T any](eq EqualFn[T], options ...Option[T]) *Set[T] {
	if eq == nil {
		panic("set: nil equality predicate")
	}

	s := &Set[T]{eq: eq, alloc: defaultAlloc[T]}
	for _, o := range options {
		o(s)
	}
	return s
}

// NewComparable creates an empty Set that compares elements with ==.
func NewComparable[T comparable](options ...Option[T]) *Set[T] {
	return New(func(a, b T) bool { return a == b }, options...)
}

// Collect builds a Set by adding every element produced by seq, keeping
// Add's dedup and append-order semantics. If any insertion fails the
// partially built Set is cleared before the error is returned.
func Collect[T any](eq EqualFn[T], seq iter.Seq[T], options ...Option[T]) (*Set[T], error) {
	s := New(eq, options...)
	for v := range seq {
		if _, err := s.Add(v); err != nil {
			s.Clear()
			return nil, errors.Wrap(err, "collecting into set")
		}
	}
	return s, nil
}

func FromSlice[T any](eq EqualFn[T], items []T, options ...Option[T]) (*Set[T], error) {
	return Collect(eq, slices.Values(items), options...)
}

// resize moves the occupied elements into a freshly allocated buffer of
// newCap slots. On allocation failure the Set is left untouched.
func (s *Set[T]) resize(newCap int) error {
	buf, err := s.alloc(newCap)
	if err != nil {
		return errors.Wrapf(ErrAllocFailure, "resizing to %d slots: %s", newCap, err)
	}

	copy(buf, s.buf[:s.count])
	s.buf = buf
	return nil
}

// Add inserts value unless an equivalent element is already present.
// It reports whether the Set was modified. If growing the buffer fails
// the Set is left completely unchanged and the insertion is not applied.
func (s *Set[T]) Add(value T) (bool, error) {
	if s.Contains(value) {
		return false, nil
	}

	if s.count == len(s.buf) {
		newCap := 1
		if len(s.buf) > 0 {
			newCap = len(s.buf) * 2
		}
		if err := s.resize(newCap); err != nil {
			return false, err
		}
	}

	s.buf[s.count] = value
	s.count++
	s.gen++
	return true, nil
}

// Remove deletes the first element equivalent to value, backfilling its
// slot with the last occupied element rather than shifting. Relative
// order of the survivors is therefore not preserved. When occupancy
// drops to a quarter of capacity the buffer is halved; if that halving
// cannot be allocated the removal still stands and the over-provisioned
// buffer is kept.
func (s *Set[T]) Remove(value T) bool {
	for i := 0; i < s.count; i++ {
		if !s.eq(s.buf[i], value) {
			continue
		}

		var zero T
		s.buf[i] = s.buf[s.count-1]
		s.buf[s.count-1] = zero
		s.count--
		s.gen++

		if s.count <= len(s.buf)/4 {
			_ = s.resize(len(s.buf) / 2) // shrink is an optimization only
		}
		return true
	}
	return false
}

// Contains scans the occupied slots for an element equivalent to value.
func (s *Set[T]) Contains(value T) bool {
	for i := 0; i < s.count; i++ {
		if s.eq(s.buf[i], value) {
			return true
		}
	}
	return false
}

// At returns the element at index i, valid for 0 <= i < Len().
func (s *Set[T]) At(i int) (T, error) {
	if i < 0 || i >= s.count {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d with %d elements", i, s.count)
	}
	return s.buf[i], nil
}

func (s *Set[T]) Len() int {
	return s.count
}

// Cap returns the current capacity of the backing buffer.
func (s *Set[T]) Cap() int {
	return len(s.buf)
}

// Equal reports whether both Sets hold equivalent elements, regardless
// of order. It uses the receiver's equality predicate; comparing Sets
// configured with semantically different predicates is undefined.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if other == nil || s.count != other.count {
		return false
	}
	for i := 0; i < other.count; i++ {
		if !s.Contains(other.buf[i]) {
			return false
		}
	}
	return true
}

// Clear releases the buffer and resets the Set to the empty,
// unallocated state of a fresh instance.
func (s *Set[T]) Clear() {
	s.buf = nil
	s.count = 0
	s.gen++
}

// Swap exchanges the whole state of two Sets without copying elements.
// It never fails.
func (s *Set[T]) Swap(other *Set[T]) {
	s.buf, other.buf = other.buf, s.buf
	s.count, other.count = other.count, s.count
	s.eq, other.eq = other.eq, s.eq
	s.alloc, other.alloc = other.alloc, s.alloc
	s.gen++
	other.gen++
}

// Clone deep-copies the Set into a freshly allocated buffer of the same
// capacity. Capacity is copied verbatim, not renormalized to Len().
func (s *Set[T]) Clone() (*Set[T], error) {
	c := &Set[T]{eq: s.eq, alloc: s.alloc}
	if len(s.buf) > 0 {
		buf, err := c.alloc(len(s.buf))
		if err != nil {
			return nil, errors.Wrapf(ErrAllocFailure, "cloning %d slots: %s", len(s.buf), err)
		}
		copy(buf, s.buf[:s.count])
		c.buf = buf
		c.count = s.count
	}
	return c, nil
}

// CopyFrom replaces the receiver's contents with a deep copy of other,
// adopting other's equality predicate. The copy is built first and
// swapped in only if it succeeds, so the receiver is untouched on
// failure.
func (s *Set[T]) CopyFrom(other *Set[T]) error {
	if s == other {
		return nil
	}

	tmp, err := other.Clone()
	if err != nil {
		return err
	}
	s.Swap(tmp) // the clone carries other's predicate and allocator along
	return nil
}

// Items returns the elements in iteration order as a fresh slice.
func (s *Set[T]) Items() []T {
	items := make([]T, s.count)
	copy(items, s.buf[:s.count])
	return items
}

// String renders the canonical textual form: the element count followed
// by each element's textual form in iteration order, parenthesized,
// e.g. "3 (a) (b) (c)". An empty Set renders as "0".
func (s *Set[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", s.count)
	for i := 0; i < s.count; i++ {
		fmt.Fprintf(&sb, " (%v)", s.buf[i])
	}
	return sb.String()
}
