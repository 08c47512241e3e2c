package set_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/lorypota/setflow/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	t.Run("round trip through a file", func(t *testing.T) {
		s, err := set.FromSlice(func(a, b string) bool { return a == b }, []string{"a", "b", "c"})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "out.txt")
		set.Save(s, path)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "3 (a) (b) (c)", string(raw))
		assert.Equal(t, s.String(), string(raw))
	})

	t.Run("empty set", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		set.Save(set.NewComparable[string](), path)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "0", string(raw))
	})

	t.Run("open failure is reported, not returned", func(t *testing.T) {
		var buf bytes.Buffer
		prev := set.Diagnostic
		set.Diagnostic = log.New(&buf, "", 0)
		defer func() { set.Diagnostic = prev }()

		s, err := set.FromSlice(func(a, b string) bool { return a == b }, []string{"a"})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
		set.Save(s, path)

		assert.Contains(t, buf.String(), "failed to open")
		assert.NoFileExists(t, path)
	})
}
