package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
)

// EncodePNG encodes img in memory. Fully opaque RGBA canvases come out as
// 8-bit RGB truecolor.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img and overwrites path with it in a single write.
// Nothing is created when encoding fails.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("png write: %w", err)
	}
	return nil
}
