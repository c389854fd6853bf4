package infrastructure

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScratchHTMLCleanupRemovesDirectory(t *testing.T) {
	pageURL, cleanup, err := writeScratchHTML("<html><body>ok</body></html>")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(pageURL, "file://"))

	path := strings.TrimPrefix(pageURL, "file://")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html><body>ok</body></html>", string(b))

	dir := filepath.Dir(path)
	cleanup()
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "scratch directory must be gone after cleanup")
}

func TestWriteScratchHTMLCleanupIsIdempotent(t *testing.T) {
	_, cleanup, err := writeScratchHTML("x")
	require.NoError(t, err)
	cleanup()
	cleanup()
}
