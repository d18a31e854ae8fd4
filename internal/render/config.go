package render

import (
	"image"
	"image/color"
)

// Canvas size of the banner, in pixels.
const (
	CanvasWidth  = 1584
	CanvasHeight = 396
)

// Banner describes everything drawn on the banner. DefaultBanner returns a
// fresh copy on every call; nothing here is shared between renders.
type Banner struct {
	Width      int
	Height     int
	Background color.RGBA
	Gradient   Gradient
	Fonts      FontSizes

	// LeftDivisor splits the canvas: the blog region is Width/LeftDivisor wide.
	LeftDivisor int

	Blog      BlogBlock
	Branding  BrandingBlock
	Separator Separator
	Dots      DotGrid
}

// BlogBlock is the two-line label in the left region.
type BlogBlock struct {
	Origin      image.Point
	LineSpacing int
	Label       string
	URL         string
	LabelColor  color.RGBA
	URLColor    color.RGBA

	// QRSize > 0 adds a QR code of URL below the text.
	QRSize   int
	QROrigin image.Point
}

// BrandingBlock is the centered title stack in the right region.
type BrandingBlock struct {
	// InsetLeft narrows the right region from the left before centering.
	InsetLeft     int
	Title         Line
	Subtitles     []Line
	TitleColor    color.RGBA
	SubtitleColor color.RGBA
}

// Line is a string at a fixed top y.
type Line struct {
	Text string
	Y    int
}

// Separator is the vertical rule on the region boundary.
type Separator struct {
	Margin int
	Width  int
	Color  color.RGBA
}

// DotGrid is the decorative circle pattern. Columns run over [ColFrom, ColTo)
// and rows over [RowFrom, RowTo); the x anchor is measured back from the
// right end of the branding region.
type DotGrid struct {
	ColFrom, ColTo int
	RowFrom, RowTo int
	Stride         int
	RightOffset    int
	AnchorY        int
	Size           int
	// EdgeMargin is the band along the right and bottom canvas edges no dot may enter.
	EdgeMargin int
	Color      color.RGBA
}

// DefaultBanner returns the blog banner.
func DefaultBanner() Banner {
	return Banner{
		Width:      CanvasWidth,
		Height:     CanvasHeight,
		Background: color.RGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xFF}, // #1a202c
		Gradient: Gradient{
			From: color.RGBA{R: 26, G: 32, B: 44, A: 0xFF},
			To:   color.RGBA{R: 46, G: 57, B: 74, A: 0xFF},
		},
		Fonts:       FontSizes{Title: 48, Subtitle: 24, Body: 20},
		LeftDivisor: 4,
		Blog: BlogBlock{
			Origin:      image.Pt(20, 60),
			LineSpacing: 30,
			Label:       "visit my blog",
			URL:         "owais.io",
			LabelColor:  color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xFF}, // #e2e8f0
			URLColor:    color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xFF}, // #60a5fa
			QROrigin:    image.Pt(20, 130),
		},
		Branding: BrandingBlock{
			InsetLeft: 40,
			Title:     Line{Text: "AIOps Engineer", Y: 80},
			Subtitles: []Line{
				{Text: "DevSecOps Engineer", Y: 150},
				{Text: "Cloud Engineer", Y: 190},
			},
			TitleColor:    color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			SubtitleColor: color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xFF}, // #94a3b8
		},
		Separator: Separator{
			Margin: 40,
			Width:  2,
			Color:  color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF}, // #374151
		},
		Dots: DotGrid{
			ColFrom: 5, ColTo: 15,
			RowFrom: 2, RowTo: 8,
			Stride:      8,
			RightOffset: 100,
			AnchorY:     250,
			Size:        4,
			EdgeMargin:  20,
			Color:       color.RGBA{R: 0x4a, G: 0x55, B: 0x68, A: 0xFF}, // #4a5568
		},
	}
}
