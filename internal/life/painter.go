package life

// Surface is a 2D drawing target such as a browser canvas.
type Surface interface {
	Clear(width, height float64)
	StrokeRect(x, y, w, h float64)
}

// Paint clears the surface and outlines every live cell.
func Paint(s Surface, g *Grid, cellSize float64) {
	s.Clear(float64(g.cols)*cellSize, float64(g.rows)*cellSize)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cur[y][x] {
				s.StrokeRect(float64(x)*cellSize, float64(y)*cellSize, cellSize, cellSize)
			}
		}
	}
}
