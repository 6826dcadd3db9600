package raster

// Viewport records the active drawing window. It is bookkeeping only:
// coordinates are never remapped and clipping always uses the framebuffer
// bounds.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// DefaultViewport matches the window size scenes were authored against.
var DefaultViewport = Viewport{Width: 1000, Height: 1000}
