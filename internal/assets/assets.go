// Package assets bundles the title image.
package assets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
)

//go:embed title.png
var titlePNG []byte

// TitleName is the name of the bundled title image.
const TitleName = "title.png"

// ErrTitleImage is wrapped by every LoadTitle failure.
var ErrTitleImage = errors.New("title image unavailable")

// LoadTitle decodes the title image. An empty path selects the bundled one,
// anything else is read from disk.
func LoadTitle(path string) (image.Image, error) {
	if path == "" {
		return decode(TitleName, bytes.NewReader(titlePNG))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTitleImage, err)
	}
	defer f.Close()
	return decode(path, f)
}

func decode(name string, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrTitleImage, name, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%w: %s is empty", ErrTitleImage, name)
	}
	return img, nil
}
