package viewer

// Viewport is the capability surface the application needs from the pan-zoom
// layer. The concrete pan-zoom library stays behind this interface so it can
// be swapped without touching navigation or design-mode logic.
type Viewport interface {
	// ZoomTo zooms to the given scale centered on the given canvas point.
	ZoomTo(x, y, scale float64)
	// MoveTo pans the canvas so its origin sits at the given point.
	MoveTo(x, y float64)
	// Pause suspends pan-zoom input handling (design mode).
	Pause()
	// Resume re-enables pan-zoom input handling.
	Resume()
}

// NopViewport is a Viewport that does nothing. Useful for headless use and
// as a default before the real pan-zoom adapter is attached.
type NopViewport struct{}

func (NopViewport) ZoomTo(x, y, scale float64) {}
func (NopViewport) MoveTo(x, y float64)        {}
func (NopViewport) Pause()                     {}
func (NopViewport) Resume()                    {}
