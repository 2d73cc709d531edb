package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundledTitle(t *testing.T) {
	img, err := LoadTitle("")
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 360, img.Bounds().Dy())
}

func TestLoadTitleMissing(t *testing.T) {
	_, err := LoadTitle(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTitleImage)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTitleGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadTitle(path)
	assert.ErrorIs(t, err, ErrTitleImage)
}

func TestLoadTitleFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), TitleName)
	require.NoError(t, os.WriteFile(path, titlePNG, 0o644))

	img, err := LoadTitle(path)
	require.NoError(t, err)
	assert.False(t, img.Bounds().Empty())
}
