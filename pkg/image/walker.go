package image

// pixelWalker yields pixel coordinates in row-major scan order, x varying
// fastest. Hiding and recovery share it so both directions visit channels in
// exactly the same sequence, including the row-wrap at the right edge.
type pixelWalker struct {
	width, height int
	x, y          int
}

func newPixelWalker(width, height int) *pixelWalker {
	return &pixelWalker{
		width:  width,
		height: height,
	}
}

// Next returns the next pixel coordinate, or ok=false once every pixel has
// been visited.
func (w *pixelWalker) Next() (x, y int, ok bool) {
	if w.y >= w.height || w.width <= 0 {
		return 0, 0, false
	}
	x, y = w.x, w.y
	w.x++
	if w.x >= w.width {
		w.x = 0
		w.y++
	}
	return x, y, true
}
