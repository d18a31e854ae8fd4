package render

import (
	"fmt"
	"image"

	"github.com/owais-io/siawo-banner/internal/render/layout"
)

// BannerRenderer draws a Banner onto a fresh canvas.
type BannerRenderer struct {
	Banner Banner
	Logger Logger
}

func NewBannerRenderer(banner Banner) *BannerRenderer {
	return &BannerRenderer{Banner: banner}
}

// Render runs every drawing step in order and returns the finished canvas.
// fonts must be resolved beforehand; see ResolveFonts.
func (r *BannerRenderer) Render(fonts FontSet) (*image.RGBA, error) {
	b := r.Banner
	canvas := NewCanvas(b.Width, b.Height, b.Background)
	canvas.FillVerticalGradient(b.Gradient)

	left, _ := b.Regions()
	b.drawBlog(canvas, fonts)
	if err := b.drawQRCode(canvas, left); err != nil {
		return nil, err
	}
	b.drawBranding(canvas, fonts)
	canvas.FillRect(b.SeparatorRect(), b.Separator.Color)

	boxes := b.DotBoxes()
	for _, box := range boxes {
		canvas.FillEllipse(box, b.Dots.Color)
	}
	if r.Logger != nil {
		total := (b.Dots.ColTo - b.Dots.ColFrom) * (b.Dots.RowTo - b.Dots.RowFrom)
		r.Logger.Infof("render", "banner %dx%d drawn, %d of %d dots inside edge margin", b.Width, b.Height, len(boxes), total)
	}
	return canvas.Image(), nil
}

// Regions splits the canvas into the blog region and the branding region.
func (b Banner) Regions() (left, right image.Rectangle) {
	divisor := b.LeftDivisor
	if divisor <= 0 {
		divisor = 1
	}
	return layout.SplitVertical(image.Rect(0, 0, b.Width, b.Height), b.Width/divisor)
}

// BrandingRegion is the span the title and subtitles are centered in.
func (b Banner) BrandingRegion() image.Rectangle {
	_, right := b.Regions()
	return layout.InsetLeft(right, b.Branding.InsetLeft)
}

// CenteredX returns the left x of text centered in the branding region.
func (b Banner) CenteredX(text string, style TextStyle) int {
	width := measureText(text, style.Face).Width
	return layout.CenterX(b.BrandingRegion(), width)
}

// SeparatorRect covers the separator: Width columns straddling the region
// boundary, from Margin down to Height-Margin inclusive.
func (b Banner) SeparatorRect() image.Rectangle {
	left, _ := b.Regions()
	s := b.Separator
	x0 := left.Max.X - s.Width/2
	return image.Rect(x0, s.Margin, x0+s.Width, b.Height-s.Margin+1)
}

// DotBoxes lists the bounding boxes of the dots that pass the clipping guard.
// A dot is kept only when its whole box stays above and left of the
// EdgeMargin band along the bottom and right canvas edges.
func (b Banner) DotBoxes() []image.Rectangle {
	d := b.Dots
	_, right := b.Regions()
	anchorX := b.BrandingRegion().Min.X + right.Dx() - d.RightOffset
	allowed := image.Rect(0, 0, b.Width-d.EdgeMargin, b.Height-d.EdgeMargin)

	var boxes []image.Rectangle
	for i := d.ColFrom; i < d.ColTo; i++ {
		for j := d.RowFrom; j < d.RowTo; j++ {
			x := anchorX + i*d.Stride
			y := d.AnchorY + j*d.Stride
			box := image.Rect(x, y, x+d.Size, y+d.Size)
			if !layout.Contains(allowed, box) {
				continue
			}
			boxes = append(boxes, box)
		}
	}
	return boxes
}

func (b Banner) drawBlog(canvas *Canvas, fonts FontSet) {
	blog := b.Blog
	canvas.DrawText(blog.Label, blog.Origin.X, blog.Origin.Y, TextStyle{Color: blog.LabelColor, Face: fonts.Body})
	canvas.DrawText(blog.URL, blog.Origin.X, blog.Origin.Y+blog.LineSpacing, TextStyle{Color: blog.URLColor, Face: fonts.Body})
}

func (b Banner) drawQRCode(canvas *Canvas, left image.Rectangle) error {
	blog := b.Blog
	if blog.QRSize <= 0 {
		return nil
	}
	qr, err := GenerateQRCodeImage(blog.URL, blog.QRSize)
	if err != nil {
		return fmt.Errorf("qr code for %q: %w", blog.URL, err)
	}
	area := image.Rectangle{Min: blog.QROrigin, Max: left.Max}
	canvas.DrawImageInRect(qr, layout.AnchorTopLeft(area, blog.QRSize, blog.QRSize))
	return nil
}

func (b Banner) drawBranding(canvas *Canvas, fonts FontSet) {
	br := b.Branding
	title := TextStyle{Color: br.TitleColor, Face: fonts.Title}
	canvas.DrawText(br.Title.Text, b.CenteredX(br.Title.Text, title), br.Title.Y, title)

	sub := TextStyle{Color: br.SubtitleColor, Face: fonts.Subtitle}
	for _, line := range br.Subtitles {
		canvas.DrawText(line.Text, b.CenteredX(line.Text, sub), line.Y, sub)
	}
}
