// Package imaging recompresses uploaded images before they are sent to a
// model provider: large photos are scaled down and re-encoded as JPEG to
// keep request payloads small.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"invotab/internal/config"
)

// Recompressor scales images to fit within a bounding square and re-encodes
// them as JPEG.
type Recompressor struct {
	maxDimension int
	jpegQuality  int
}

// NewRecompressor creates a Recompressor from image settings.
func NewRecompressor(cfg *config.ImageConfig) *Recompressor {
	maxDim := cfg.MaxDimension
	if maxDim <= 0 {
		maxDim = 1024
	}
	quality := cfg.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &Recompressor{maxDimension: maxDim, jpegQuality: quality}
}

// Recompress decodes the image, scales it to fit inside the bounding square
// without enlarging, and re-encodes it as JPEG. HEIC/HEIF images have no Go
// decoder and are passed through unmodified with their original MIME type.
func (r *Recompressor) Recompress(data []byte, mimeType string) ([]byte, string, error) {
	if mimeType == "image/heic" || mimeType == "image/heif" {
		return data, mimeType, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > r.maxDimension || height > r.maxDimension {
		scale := float64(r.maxDimension) / float64(width)
		if height > width {
			scale = float64(r.maxDimension) / float64(height)
		}
		dstW := int(float64(width) * scale)
		dstH := int(float64(height) * scale)
		if dstW < 1 {
			dstW = 1
		}
		if dstH < 1 {
			dstH = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: r.jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encoding JPEG: %w", err)
	}

	return buf.Bytes(), "image/jpeg", nil
}
