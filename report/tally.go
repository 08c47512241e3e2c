package report

import (
	"iter"

	"github.com/denismitr/dll"
	"github.com/denismitr/gs"
	"golang.org/x/exp/constraints"
)

// Tally counts occurrences of keys, remembering the order in which
// keys were first seen.
type Tally[K constraints.Ordered] struct {
	m    map[K]*dll.Element[gs.Pair[K, int]]
	list *dll.DoublyLinkedList[gs.Pair[K, int]]
}

func NewTally[K constraints.Ordered]() *Tally[K] {
	return &Tally[K]{
		m:    make(map[K]*dll.Element[gs.Pair[K, int]]),
		list: dll.New[gs.Pair[K, int]](),
	}
}

func (t *Tally[K]) Inc(key K) {
	el, found := t.m[key]
	if !found {
		newEl := dll.NewElement(gs.Pair[K, int]{Key: key, Value: 1})
		t.m[key] = newEl
		t.list.PushTail(newEl)
		return
	}

	el.ReplaceValue(gs.Pair[K, int]{Key: key, Value: el.Value().Value + 1})
}

func (t *Tally[K]) Get(key K) int {
	el, found := t.m[key]
	if !found {
		return 0
	}
	return el.Value().Value
}

func (t *Tally[K]) Len() int {
	return len(t.m)
}

// Counts returns key/count pairs in first-seen order.
func (t *Tally[K]) Counts() []gs.Pair[K, int] {
	pairs := make([]gs.Pair[K, int], 0, len(t.m))
	curr := t.list.Head()
	for curr != nil {
		pairs = append(pairs, curr.Value())
		curr = curr.Next()
	}
	return pairs
}

// CountBy tallies the key of every element produced by seq.
func CountBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) *Tally[K] {
	t := NewTally[K]()
	for v := range seq {
		t.Inc(key(v))
	}
	return t
}
