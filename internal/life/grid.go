// Package life implements the Game of Life that animates the site background.
package life

import (
	"math"
	"math/rand"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a double-buffered toroidal cell grid.
type Grid struct {
	cols, rows int
	cur, next  [][]bool
	generation int
}

// NewGrid returns a grid of dead cells. Non-positive dimensions clamp to 1.
func NewGrid(cols, rows int) *Grid {
	cols, rows = max(cols, 1), max(rows, 1)
	return &Grid{
		cols: cols,
		rows: rows,
		cur:  makeCells(cols, rows),
		next: makeCells(cols, rows),
	}
}

// ForViewport sizes a grid so that cells of cellSize cover width x height.
func ForViewport(width, height, cellSize float64) *Grid {
	cols, rows := Dimensions(width, height, cellSize)
	return NewGrid(cols, rows)
}

// Dimensions returns the number of columns and rows needed to cover a viewport.
func Dimensions(width, height, cellSize float64) (int, int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	return int(math.Ceil(width / cellSize)), int(math.Ceil(height / cellSize))
}

func makeCells(cols, rows int) [][]bool {
	cells := make([][]bool, rows)
	for y := range cells {
		cells[y] = make([]bool, cols)
	}
	return cells
}

func (g *Grid) Cols() int       { return g.cols }
func (g *Grid) Rows() int       { return g.rows }
func (g *Grid) Generation() int { return g.generation }

func (g *Grid) wrap(x, y int) (int, int) {
	return ((x % g.cols) + g.cols) % g.cols, ((y % g.rows) + g.rows) % g.rows
}

// Alive reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g *Grid) Alive(x, y int) bool {
	x, y = g.wrap(x, y)
	return g.cur[y][x]
}

// Set changes the state of a cell. Coordinates wrap.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.wrap(x, y)
	g.cur[y][x] = alive
}

// Toggle flips a cell. Coordinates wrap.
func (g *Grid) Toggle(x, y int) {
	x, y = g.wrap(x, y)
	g.cur[y][x] = !g.cur[y][x]
}

// Neighbors counts live cells among the eight toroidal neighbours of (x, y).
func (g *Grid) Neighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// Step advances one generation and swaps the buffers.
func (g *Grid) Step() {
	for y := 0; y < g.rows; y++ {
		up, down := g.cur[(y+g.rows-1)%g.rows], g.cur[(y+1)%g.rows]
		row := g.cur[y]
		for x := 0; x < g.cols; x++ {
			left, right := (x+g.cols-1)%g.cols, (x+1)%g.cols
			n := 0
			for _, alive := range [8]bool{
				up[left], up[x], up[right],
				row[left], row[right],
				down[left], down[x], down[right],
			} {
				if alive {
					n++
				}
			}
			if row[x] {
				g.next[y][x] = n == 2 || n == 3
			} else {
				g.next[y][x] = n == 3
			}
		}
	}
	g.cur, g.next = g.next, g.cur
	g.generation++
}

// Seed fills the grid randomly; each cell is alive with probability density.
func (g *Grid) Seed(rnd *rand.Rand, density float64) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			g.cur[y][x] = rnd.Float64() < density
		}
	}
	g.generation = 0
}

// LiveCells lists live cells in row-major order.
func (g *Grid) LiveCells() []Point {
	var cells []Point
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cur[y][x] {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// Population is the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cur[y][x] {
				n++
			}
		}
	}
	return n
}
