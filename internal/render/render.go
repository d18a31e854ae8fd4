package render

import (
	"image/color"

	"golang.org/x/image/font"
)

// Logger is satisfied by the app's component logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor: y is the top of the line box
// and the baseline sits one ascent below it.
type TextStyle struct {
	Color color.Color
	Face  font.Face
}

// TextMetrics reports the rendered size of a string.
// Width is the ink width, Advance the pen movement.
type TextMetrics struct {
	Width      int
	Advance    int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// Gradient is a vertical two-stop gradient.
type Gradient struct {
	From color.RGBA
	To   color.RGBA
}

// At returns the color of row y in a gradient spanning height rows.
// Channels move by trunc(y/height * (To-From)), so row 0 is exactly From and
// the last row stops within one step of To.
func (g Gradient) At(y, height int) color.RGBA {
	if height <= 0 {
		return g.From
	}
	t := float64(y) / float64(height)
	return color.RGBA{
		R: lerpChannel(g.From.R, g.To.R, t),
		G: lerpChannel(g.From.G, g.To.G, t),
		B: lerpChannel(g.From.B, g.To.B, t),
		A: 0xFF,
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	return uint8(int(from) + int(t*float64(int(to)-int(from))))
}
