package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Faces are rasterized at 72 DPI so a size in points is also a size in pixels.
const fontDPI = 72

// FontSizes holds the pixel size of each text role.
type FontSizes struct {
	Title    float64
	Subtitle float64
	Body     float64
}

// FontSet is the resolved face for each text role.
type FontSet struct {
	Title    font.Face
	Subtitle font.Face
	Body     font.Face
}

// Close releases the faces. The same face may back several roles.
func (fs FontSet) Close() error {
	var errs []error
	seen := map[font.Face]bool{}
	for _, face := range []font.Face{fs.Title, fs.Subtitle, fs.Body} {
		if face == nil || seen[face] {
			continue
		}
		seen[face] = true
		if err := face.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FontLoader is one candidate in the fallback chain.
type FontLoader struct {
	Name string
	Load func(sizes FontSizes) (FontSet, error)
}

// FontFiles loads the title role from boldPath and the subtitle and body roles
// from regularPath. The candidate fails unless all three faces load.
func FontFiles(name, boldPath, regularPath string) FontLoader {
	return FontLoader{
		Name: name,
		Load: func(sizes FontSizes) (FontSet, error) {
			var opened []font.Face
			fail := func(err error) (FontSet, error) {
				for _, face := range opened {
					_ = face.Close()
				}
				return FontSet{}, err
			}
			cache := map[string][]byte{}
			load := func(path string, size float64) error {
				data, ok := cache[path]
				if !ok {
					var err error
					data, err = os.ReadFile(path)
					if err != nil {
						return err
					}
					cache[path] = data
				}
				face, err := parseFace(path, data, size)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				opened = append(opened, face)
				return nil
			}
			if err := load(boldPath, sizes.Title); err != nil {
				return fail(err)
			}
			if err := load(regularPath, sizes.Subtitle); err != nil {
				return fail(err)
			}
			if err := load(regularPath, sizes.Body); err != nil {
				return fail(err)
			}
			return FontSet{Title: opened[0], Subtitle: opened[1], Body: opened[2]}, nil
		},
	}
}

// parseFace uses freetype for .ttf files and the sfnt-based opentype package
// for everything else (.otf, .ttc).
func parseFace(path string, data []byte, size float64) (font.Face, error) {
	if strings.EqualFold(filepath.Ext(path), ".ttf") {
		tt, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("truetype parse: %w", err)
		}
		return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: fontDPI, Hinting: font.HintingFull}), nil
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("opentype parse: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: fontDPI, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("opentype face: %w", err)
	}
	return face, nil
}

// SystemFontLoaders returns the filesystem candidates in priority order:
// DejaVu on Linux, then Arial on macOS.
func SystemFontLoaders() []FontLoader {
	return []FontLoader{
		FontFiles("dejavu",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),
		FontFiles("arial",
			"/System/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/Arial.ttf"),
	}
}

// DefaultFontSet is the built-in bitmap font for every role. It cannot fail.
func DefaultFontSet() FontSet {
	return FontSet{Title: basicfont.Face7x13, Subtitle: basicfont.Face7x13, Body: basicfont.Face7x13}
}

// ResolveFonts returns the first candidate that loads, or DefaultFontSet.
// Load errors are logged and never returned.
func ResolveFonts(logger Logger, sizes FontSizes, loaders ...FontLoader) FontSet {
	for _, loader := range loaders {
		if loader.Load == nil {
			continue
		}
		fonts, err := loader.Load(sizes)
		if err != nil {
			if logger != nil {
				logger.Infof("fonts", "candidate %s unavailable: %v", loader.Name, err)
			}
			continue
		}
		if logger != nil {
			logger.Infof("fonts", "using %s at %.0f/%.0f/%.0f px", loader.Name, sizes.Title, sizes.Subtitle, sizes.Body)
		}
		return fonts
	}
	if logger != nil {
		logger.Infof("fonts", "no font candidate loaded, using basicfont")
	}
	return DefaultFontSet()
}
