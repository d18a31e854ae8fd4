package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Canvas is an offscreen opaque RGB raster. It is owned by a single render
// call and handed to the encoder at the end.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a width x height canvas filled with background.
func NewCanvas(width, height int, background color.Color) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	c.FillBackground(background)
	return c
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) FillBackground(background color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)
}

// FillVerticalGradient paints every row full width with g.At(row).
func (c *Canvas) FillVerticalGradient(g Gradient) {
	bounds := c.img.Bounds()
	height := bounds.Dy()
	for y := 0; y < height; y++ {
		row := image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Max.X, bounds.Min.Y+y+1)
		draw.Draw(c.img, row, &image.Uniform{C: g.At(y, height)}, image.Point{}, draw.Src)
	}
}

// FillRect paints rect (clipped to the canvas) with a solid color.
func (c *Canvas) FillRect(rect image.Rectangle, col color.Color) {
	draw.Draw(c.img, rect, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// FillEllipse draws an anti-aliased ellipse inscribed in box. Parts of box
// outside the canvas are clipped.
func (c *Canvas) FillEllipse(box image.Rectangle, col color.Color) {
	clip := box.Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}
	rx, ry := float32(box.Dx())/2, float32(box.Dy())/2
	cx, cy := rx, ry
	z := vector.NewRasterizer(box.Dx(), box.Dy())
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+kappa*ry, cx+kappa*rx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kappa*rx, cy+ry, cx-rx, cy+kappa*ry, cx-rx, cy)
	z.CubeTo(cx-rx, cy-kappa*ry, cx-kappa*rx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kappa*rx, cy-ry, cx+rx, cy-kappa*ry, cx+rx, cy)
	z.ClosePath()

	// The rasterizer does not clip to dst, so it fills a box-sized mask first.
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.img, clip, image.NewUniform(col), image.Point{}, mask, clip.Min.Sub(box.Min), draw.Over)
}

// DrawImageInRect scales img into rect with nearest-neighbor sampling.
func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil || rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, rect, img, img.Bounds(), xdraw.Over, nil)
}

// MeasureText reports the size text would occupy when drawn with face.
func (c *Canvas) MeasureText(text string, face font.Face) TextMetrics {
	return measureText(text, face)
}

// DrawText draws text with its line box top-left at (x, y).
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	face := faceOrDefault(style.Face)
	metrics := measureText(text, face)
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: style.Color},
		Face: face,
		Dot:  fixed.P(x, y+metrics.Ascent),
	}
	drawer.DrawString(text)
	return metrics
}

func faceOrDefault(face font.Face) font.Face {
	if face == nil {
		return basicfont.Face7x13
	}
	return face
}

func measureText(text string, face font.Face) TextMetrics {
	face = faceOrDefault(face)
	bounds, advance := font.BoundString(face, text)
	m := face.Metrics()
	return TextMetrics{
		Width:      (bounds.Max.X - bounds.Min.X).Ceil(),
		Advance:    advance.Ceil(),
		Height:     (m.Ascent + m.Descent).Ceil(),
		Ascent:     m.Ascent.Ceil(),
		Descent:    m.Descent.Ceil(),
		LineHeight: m.Height.Ceil(),
	}
}
