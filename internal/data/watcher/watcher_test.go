package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lanes: []\n"), 0644))

	dw, err := New(path)
	require.NoError(t, err)
	defer dw.Close()

	require.NoError(t, os.WriteFile(path, []byte("lanes:\n  - id: work\n"), 0644))

	select {
	case ev := <-dw.Events():
		require.Equal(t, path, ev.Path)
	case <-time.After(3 * time.Second):
		t.Fatal("no event received for dataset write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lanes: []\n"), 0644))

	dw, err := New(path)
	require.NoError(t, err)
	defer dw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	select {
	case ev := <-dw.Events():
		t.Fatalf("unexpected event for sibling file: %+v", ev)
	case <-time.After(500 * time.Millisecond):
	}
}
