package viewer

// Pure geometry for design-mode drag and resize. Kept free of any event or
// rendering concerns so the arithmetic is testable on its own.

// Rect is a hotspot rectangle in canvas pixel coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Corner identifies one of the four resize handles.
type Corner string

const (
	CornerNW Corner = "nw"
	CornerNE Corner = "ne"
	CornerSW Corner = "sw"
	CornerSE Corner = "se"
)

// Minimum dimensions while resizing, to avoid degenerate rectangles.
const (
	MinWidth  = 30
	MinHeight = 20
)

// MoveRect returns the rectangle translated by the pointer delta.
func MoveRect(start Rect, dx, dy float64) Rect {
	return Rect{
		X:      start.X + dx,
		Y:      start.Y + dy,
		Width:  start.Width,
		Height: start.Height,
	}
}

// ResizeRect returns the rectangle resized by dragging the given corner by
// the pointer delta. East/south edges grow with the pointer; west/north
// edges move the origin while keeping the opposite edge fixed. Width and
// height are floored at the minimums.
func ResizeRect(start Rect, dx, dy float64, corner Corner) Rect {
	r := start

	switch corner {
	case CornerNE, CornerSE:
		r.Width = max(MinWidth, start.Width+dx)
	case CornerNW, CornerSW:
		r.Width = max(MinWidth, start.Width-dx)
		r.X = start.X + (start.Width - r.Width)
	}

	switch corner {
	case CornerSW, CornerSE:
		r.Height = max(MinHeight, start.Height+dy)
	case CornerNW, CornerNE:
		r.Height = max(MinHeight, start.Height-dy)
		r.Y = start.Y + (start.Height - r.Height)
	}

	return r
}
