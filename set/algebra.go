package set

import "github.com/pkg/errors"

// The algebra functions build a brand-new Set and never mutate their
// inputs: the sources are consumed only through Add, Contains and
// iteration, while the result inherits the source's comparator and
// allocator. If building the result fails the partial Set is cleared
// before the error is propagated.

// Filter returns a new Set with the elements of s satisfying pred, in
// s's iteration order.
func Filter[T any](s *Set[T], pred func(T) bool) (*Set[T], error) {
	out := New(s.eq, WithAllocator(s.alloc))
	for it := s.Iter(); it.Next(); {
		v := it.Value()
		if !pred(v) {
			continue
		}
		if _, err := out.Add(v); err != nil {
			out.Clear()
			return nil, errors.Wrap(err, "filtering set")
		}
	}
	return out, nil
}

// Union returns a new Set with every element of a followed by the
// elements of b not already present, in their respective iteration
// orders.
func Union[T any](a, b *Set[T]) (*Set[T], error) {
	out, err := a.Clone()
	if err != nil {
		return nil, errors.Wrap(err, "union of sets")
	}
	for it := b.Iter(); it.Next(); {
		if _, err := out.Add(it.Value()); err != nil {
			out.Clear()
			return nil, errors.Wrap(err, "union of sets")
		}
	}
	return out, nil
}

// Intersect returns a new Set with the elements of a that b contains,
// in a's iteration order. Membership is decided by b's equality
// predicate, the result inherits a's.
func Intersect[T any](a, b *Set[T]) (*Set[T], error) {
	out := New(a.eq, WithAllocator(a.alloc))
	for it := a.Iter(); it.Next(); {
		v := it.Value()
		if !b.Contains(v) {
			continue
		}
		if _, err := out.Add(v); err != nil {
			out.Clear()
			return nil, errors.Wrap(err, "intersection of sets")
		}
	}
	return out, nil
}
