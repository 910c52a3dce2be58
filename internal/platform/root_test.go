package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".zett"), 0755))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRootConfigIndicator(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "zett.toml"), []byte(""), 0644))

	got, err := FindRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRootNotFound(t *testing.T) {
	_, err := FindRoot(t.TempDir())
	assert.Error(t, err)
}
