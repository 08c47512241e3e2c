package set

import "iter"

// Iterator is a forward-only, read-only cursor over a live Set. It
// borrows the Set for its whole lifetime: any structural mutation of
// the Set (Add, Remove, Clear, Swap, CopyFrom) performed after the
// cursor was obtained invalidates it, and continued use panics.
type Iterator[T any] struct {
	s   *Set[T]
	idx int
	n   int
	gen uint64
}

// Iter returns a cursor positioned before the first element. The
// produced sequence is bounded by Len() at the time of the call.
func (s *Set[T]) Iter() *Iterator[T] {
	return &Iterator[T]{s: s, idx: -1, n: s.count, gen: s.gen}
}

// Next advances the cursor and reports whether an element is available.
func (it *Iterator[T]) Next() bool {
	it.check()
	if it.idx+1 >= it.n {
		return false
	}
	it.idx++
	return true
}

// Value returns the current element. It must only be called after a
// Next that returned true.
func (it *Iterator[T]) Value() T {
	it.check()
	if it.idx < 0 || it.idx >= it.n {
		panic("set: Value outside iteration")
	}
	return it.s.buf[it.idx]
}

// Equal reports whether two cursors refer to the same slot of the same
// Set generation.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.s == other.s && it.gen == other.gen && it.idx == other.idx
}

func (it *Iterator[T]) check() {
	if it.gen != it.s.gen {
		panic("set: iterator invalidated by mutation")
	}
}

// Values returns a range-over-func view of the Set in iteration order,
// subject to the same invalidation rule as Iter.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen, n := s.gen, s.count
		for i := 0; i < n; i++ {
			if s.gen != gen {
				panic("set: iteration source mutated")
			}
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}
