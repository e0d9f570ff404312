package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherForwardsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boss.yaml"), []byte("name: boss\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Drain()...)
		return slices.Contains(got, "boss.yaml")
	}, 2*time.Second, 10*time.Millisecond)
	assert.NotContains(t, got, "notes.txt")
	assert.Empty(t, w.DrainErrors())
}

func TestWatcherDrainErrors(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	defer w.Close()

	boom := errors.New("queue overflow")
	w.Errors <- boom
	assert.Equal(t, []error{boom}, w.DrainErrors())
	assert.Empty(t, w.DrainErrors())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
