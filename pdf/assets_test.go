package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoLogoAlwaysErrors(t *testing.T) {
	_, _, err := NoLogo.Logo(context.Background())
	assert.ErrorIs(t, err, ErrNoLogo)
}

func TestFileAssetProviderEmptyPath(t *testing.T) {
	p := &FileAssetProvider{}
	_, _, err := p.Logo(context.Background())
	assert.ErrorIs(t, err, ErrNoLogo)
}

func TestFileAssetProviderMissingFile(t *testing.T) {
	p := &FileAssetProvider{Path: filepath.Join(t.TempDir(), "missing.jpg")}
	_, _, err := p.Logo(context.Background())
	assert.Error(t, err)
}

func TestFileAssetProviderReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	content := []byte("fake image bytes")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	p := &FileAssetProvider{Path: path}
	data, imageType, err := p.Logo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, "PNG", imageType)
}

func TestImageTypeFromPath(t *testing.T) {
	assert.Equal(t, "PNG", imageTypeFromPath("/images/logo.PNG"))
	assert.Equal(t, "JPG", imageTypeFromPath("/images/logo-rs.jpg"))
	assert.Equal(t, "JPG", imageTypeFromPath("/images/logo.jpeg"))
}
