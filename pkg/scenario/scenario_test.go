package scenario_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	quickmath "aabb.theprimeagen.com/pkg/quick-math"
	"aabb.theprimeagen.com/pkg/scenario"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := scenario.Load("testdata/pairs.yaml")
	require.NoError(t, err)
	require.Len(t, s.Pairs, 6)

	shipped := s.Pairs[0]
	require.Equal(t, "shipped-example", shipped.Name)
	require.Equal(t, quickmath.NewRect(0, 0, 16, 16), shipped.A)
	require.Equal(t, quickmath.NewRect(17, 17, 16, 16), shipped.B)
	require.NotNil(t, shipped.Expect)
	require.False(t, *shipped.Expect)

	require.True(t, *s.Pairs[1].Expect)

	unnamed := s.Pairs[5]
	require.Equal(t, "pair-5", unnamed.Name)
	require.Nil(t, unnamed.Expect)
	require.Equal(t, quickmath.NewRect(-4, -4, 8, 8), unnamed.A)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrors(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		_, err := scenario.Parse([]byte("pairs: [this is: not, valid"))
		require.Error(t, err)
	})

	t.Run("missing rect", func(t *testing.T) {
		_, err := scenario.Parse([]byte(`
pairs:
  - name: lonely
    a: {x: 0, y: 0, width: 1, height: 1}
`))
		require.ErrorIs(t, err, scenario.ErrMissingRect)
		require.Contains(t, err.Error(), "lonely")
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := scenario.Parse([]byte(`
pairs:
  - name: twice
    a: {x: 0, y: 0, width: 1, height: 1}
    b: {x: 0, y: 0, width: 1, height: 1}
  - name: twice
    a: {x: 0, y: 0, width: 1, height: 1}
    b: {x: 0, y: 0, width: 1, height: 1}
`))
		require.ErrorIs(t, err, scenario.ErrDuplicateName)
	})

	t.Run("empty document", func(t *testing.T) {
		s, err := scenario.Parse([]byte(""))
		require.NoError(t, err)
		require.Empty(t, s.Pairs)
	})
}

func TestParseRect(t *testing.T) {
	r, err := scenario.ParseRect("0,0,16,16")
	require.NoError(t, err)
	require.Equal(t, quickmath.NewRect(0, 0, 16, 16), r)

	r, err = scenario.ParseRect(" -3, 4 ,0, -1 ")
	require.NoError(t, err)
	require.Equal(t, quickmath.NewRect(-3, 4, 0, -1), r)

	_, err = scenario.ParseRect("1,2,3")
	require.Error(t, err)

	_, err = scenario.ParseRect("1,2,three,4")
	require.Error(t, err)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pairs: []\n"), 0644))

	w, err := scenario.NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("pairs: []\n# edited\n"), 0644))

	select {
	case changed := <-w.Events:
		require.Equal(t, path, changed)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %s", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
