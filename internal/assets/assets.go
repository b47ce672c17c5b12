// Package assets holds the bundled image shown under the header.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"sync"
)

//go:embed dire-wolf.png
var direWolfPNG []byte

var (
	decodeOnce sync.Once
	decoded    image.Image
	decodeErr  error
)

// NewsImage returns the decoded news image. The asset is decoded once.
func NewsImage() (image.Image, error) {
	decodeOnce.Do(func() {
		decoded, decodeErr = Decode(direWolfPNG)
	})
	return decoded, decodeErr
}

// Decode parses PNG data.
func Decode(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode news image: %w", err)
	}
	return img, nil
}
