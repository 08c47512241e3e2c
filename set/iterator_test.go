package set_test

import (
	"testing"

	"github.com/lorypota/setflow/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("visits elements in iteration order", func(t *testing.T) {
		s, err := set.FromSlice(func(a, b string) bool { return a == b }, []string{"foo", "bar", "baz"})
		require.NoError(t, err)

		var got []string
		for it := s.Iter(); it.Next(); {
			got = append(got, it.Value())
		}
		assert.Equal(t, []string{"foo", "bar", "baz"}, got)
	})

	t.Run("empty set yields nothing", func(t *testing.T) {
		it := set.NewComparable[int]().Iter()
		assert.False(t, it.Next())
	})

	t.Run("restartable with a fresh cursor", func(t *testing.T) {
		s, err := set.FromSlice(func(a, b int) bool { return a == b }, []int{1, 2})
		require.NoError(t, err)

		first := s.Iter()
		for first.Next() {
		}

		var got []int
		for it := s.Iter(); it.Next(); {
			got = append(got, it.Value())
		}
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("value before next panics", func(t *testing.T) {
		s := set.NewComparable[int]()
		_, err := s.Add(1)
		require.NoError(t, err)

		assert.Panics(t, func() {
			s.Iter().Value()
		})
	})

	t.Run("mutation invalidates the cursor", func(t *testing.T) {
		s := set.NewComparable[int]()
		_, err := s.Add(1)
		require.NoError(t, err)

		it := s.Iter()
		_, err = s.Add(2)
		require.NoError(t, err)

		assert.Panics(t, func() {
			it.Next()
		})
	})

	t.Run("cursor equality", func(t *testing.T) {
		s, err := set.FromSlice(func(a, b int) bool { return a == b }, []int{1, 2})
		require.NoError(t, err)

		a, b := s.Iter(), s.Iter()
		assert.True(t, a.Equal(b))

		require.True(t, a.Next())
		assert.False(t, a.Equal(b))

		require.True(t, b.Next())
		assert.True(t, a.Equal(b))
	})
}

func TestSet_Values(t *testing.T) {
	t.Run("range over the set", func(t *testing.T) {
		s, err := set.FromSlice(func(a, b int) bool { return a == b }, []int{3, 1, 2})
		require.NoError(t, err)

		var got []int
		for v := range s.Values() {
			got = append(got, v)
		}
		assert.Equal(t, []int{3, 1, 2}, got)
	})

	t.Run("mutation during the range panics", func(t *testing.T) {
		s, err := set.FromSlice(func(a, b int) bool { return a == b }, []int{1, 2})
		require.NoError(t, err)

		assert.Panics(t, func() {
			for v := range s.Values() {
				if v == 1 {
					_, _ = s.Add(3)
				}
			}
		})
	})

	t.Run("early break", func(t *testing.T) {
		s, err := set.FromSlice(func(a, b int) bool { return a == b }, []int{3, 1, 2})
		require.NoError(t, err)

		for v := range s.Values() {
			assert.Equal(t, 3, v)
			break
		}
	})
}
