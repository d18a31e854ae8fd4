package layout

import "image"

// InsetLeft moves the left edge of rect right by paddingPx, never past the right edge.
func InsetLeft(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	if paddingPx > rect.Dx() {
		paddingPx = rect.Dx()
	}
	rect.Min.X += paddingPx
	return rect
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitVertical splits rect into left and right parts.
// leftWidthPx is clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left image.Rectangle, right image.Rectangle) {
	rect = Normalize(rect)
	width := rect.Dx()
	if leftWidthPx < 0 {
		leftWidthPx = 0
	}
	if leftWidthPx > width {
		leftWidthPx = width
	}
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// CenterX returns the x coordinate that centers an item of widthPx inside rect.
// Items wider than rect are pinned to the left edge.
func CenterX(rect image.Rectangle, widthPx int) int {
	rect = Normalize(rect)
	slack := rect.Dx() - widthPx
	if slack < 0 {
		slack = 0
	}
	return rect.Min.X + slack/2
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed in the top-left of rect.
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxW := rect.Dx()
	maxH := rect.Dy()
	if widthPx > maxW {
		widthPx = maxW
	}
	if heightPx > maxH {
		heightPx = maxH
	}
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// Contains reports whether inner lies entirely within outer.
// An empty inner is never contained.
func Contains(outer, inner image.Rectangle) bool {
	outer = Normalize(outer)
	inner = Normalize(inner)
	if inner.Empty() {
		return false
	}
	return inner.Min.X >= outer.Min.X && inner.Min.Y >= outer.Min.Y &&
		inner.Max.X <= outer.Max.X && inner.Max.Y <= outer.Max.Y
}
