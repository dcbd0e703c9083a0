package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads/")
	require.NoError(t, err)

	stored, err := store.Save("receipt.PDF", strings.NewReader("file-content"))
	require.NoError(t, err)

	// Names are generated, only the extension survives (lowercased)
	assert.NotEqual(t, "receipt.PDF", stored.ID)
	assert.True(t, strings.HasSuffix(stored.ID, ".pdf"))
	assert.Equal(t, "pdf", stored.Format)
	assert.Equal(t, "/uploads/"+stored.ID, stored.URL)
	assert.EqualValues(t, len("file-content"), stored.Size)

	data, err := os.ReadFile(filepath.Join(store.Dir(), stored.ID))
	require.NoError(t, err)
	assert.Equal(t, "file-content", string(data))

	require.NoError(t, store.Delete(stored.ID))
	_, err = os.Stat(filepath.Join(store.Dir(), stored.ID))
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing file is not an error
	assert.NoError(t, store.Delete("missing.png"))
}

func TestDeleteStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(filepath.Join(dir, "uploads"), "/uploads")
	require.NoError(t, err)

	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	// A traversal id only ever touches the upload directory
	require.NoError(t, store.Delete("../secret.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
