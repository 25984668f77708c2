package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Shop gallery images are downscaled to this width before upload.
	maxImageWidth = 1600

	webpQuality = 80
)

// NormalizeImage decodes an uploaded JPEG/PNG, downscales it when wider than
// maxImageWidth, and re-encodes it as WebP. Returns the encoded bytes.
func NormalizeImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxImageWidth {
		height := bounds.Dy() * maxImageWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
