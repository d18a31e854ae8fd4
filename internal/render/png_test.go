package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNG(t *testing.T) {
	img, err := NewBannerRenderer(DefaultBanner()).Render(DefaultFontSet())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	path := filepath.Join(t.TempDir(), "banner.png")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// IHDR: bit depth 8, color type 2 (truecolor, no alpha).
	if len(data) < 26 || data[24] != 8 || data[25] != 2 {
		t.Fatalf("IHDR depth/color type = %v, want 8-bit RGB", data[24:26])
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != CanvasWidth || cfg.Height != CanvasHeight {
		t.Errorf("decoded size %dx%d, want %dx%d", cfg.Width, cfg.Height, CanvasWidth, CanvasHeight)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got, want := color.RGBAModel.Convert(decoded.At(0, 0)), color.Color(img.RGBAAt(0, 0)); got != want {
		t.Errorf("decoded pixel (0,0) = %v, want %v", got, want)
	}
}

func TestWritePNGMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "banner.png")
	err := WritePNG(path, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("WritePNG error = %v, want fs.ErrNotExist", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("file exists after failed write: %v", statErr)
	}
}

func TestEncodePNGRejectsEmptyImage(t *testing.T) {
	if _, err := EncodePNG(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("EncodePNG of an empty image succeeded, want error")
	}
}
