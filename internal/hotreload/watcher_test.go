package hotreload_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/gokgl/internal/hotreload"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\n"), 0o644))

	w, err := hotreload.New(path, nil)
	require.NoError(t, err)
	defer w.Close()

	_, pending := w.Poll()
	assert.False(t, pending)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.shader"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("#shader fragment\n"), 0o644))

	select {
	case got := <-w.Changes():
		want, _ := filepath.Abs(path)
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for the watched file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.shader")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := hotreload.New(path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.shader"), []byte("x"), 0o644))

	select {
	case got := <-w.Changes():
		t.Fatalf("unexpected change for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := hotreload.New(filepath.Join(t.TempDir(), "nope", "basic.shader"), nil)
	assert.Error(t, err)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := hotreload.New(filepath.Join(t.TempDir(), "basic.shader"), nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
