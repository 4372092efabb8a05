package life

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func gridFrom(rows ...string) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				g.Set(x, y, true)
			}
		}
	}
	return g
}

func (g *Grid) String() string {
	out := ""
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cur[y][x] {
				out += "#"
			} else {
				out += "."
			}
		}
		out += "\n"
	}
	return out
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -4)
	assert.Equal(t, 1, g.Cols())
	assert.Equal(t, 1, g.Rows())
}

func TestDimensionsMatchViewport(t *testing.T) {
	cols, rows := Dimensions(1920, 1080, 12)
	assert.Equal(t, 160, cols)
	assert.Equal(t, 90, rows)

	cols, rows = Dimensions(1000, 101, 10)
	assert.Equal(t, 100, cols)
	assert.Equal(t, 11, rows)

	g := ForViewport(25, 5, 10)
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 1, g.Rows())
}

func TestToggleAndWrap(t *testing.T) {
	g := NewGrid(4, 3)
	g.Toggle(-1, -1)
	assert.True(t, g.Alive(3, 2))
	assert.True(t, g.Alive(7, 5))
	g.Toggle(3, 2)
	assert.False(t, g.Alive(3, 2))
}

func TestNeighborsWrapAround(t *testing.T) {
	g := gridFrom(
		"#...#",
		".....",
		".....",
		"#...#",
	)
	assert.Equal(t, 3, g.Neighbors(0, 0))
	assert.Equal(t, 3, g.Neighbors(4, 0))
	assert.Equal(t, 0, g.Neighbors(2, 0))
}

func TestStepRules(t *testing.T) {
	t.Run("lone cell dies", func(t *testing.T) {
		g := gridFrom(".....", "..#..", ".....")
		g.Step()
		assert.Zero(t, g.Population())
	})

	t.Run("live cell with three neighbours survives", func(t *testing.T) {
		g := gridFrom(
			"......",
			".##...",
			".##...",
			"......",
		)
		assert.Equal(t, 3, g.Neighbors(1, 1))
		g.Step()
		assert.True(t, g.Alive(1, 1))
		assert.Equal(t, 4, g.Population())
	})

	t.Run("dead cell with exactly three neighbours is born", func(t *testing.T) {
		g := gridFrom(
			".....",
			".#.#.",
			".....",
			"..#..",
			".....",
		)
		g.Step()
		assert.True(t, g.Alive(2, 2))
	})

	t.Run("overcrowded cell dies", func(t *testing.T) {
		g := gridFrom(
			".....",
			".###.",
			".###.",
			".....",
		)
		g.Step()
		assert.False(t, g.Alive(2, 1))
	})
}

func TestBlinkerOscillates(t *testing.T) {
	g := gridFrom(
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	start := g.String()

	g.Step()
	want := gridFrom(
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
	if diff := cmp.Diff(want.String(), g.String()); diff != "" {
		t.Fatalf("after one step (-want +got):\n%s", diff)
	}

	g.Step()
	assert.Equal(t, start, g.String())
	assert.Equal(t, 2, g.Generation())
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	g := gridFrom(
		".#......",
		"..#.....",
		"###.....",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	start := g.String()

	// A glider moves one cell diagonally every four generations; 8x8 needs 32.
	for i := 0; i < 32; i++ {
		g.Step()
	}
	if diff := cmp.Diff(start, g.String()); diff != "" {
		t.Fatalf("glider did not return (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, g.Population())
}

func TestStepUsesOnlyCurrentGeneration(t *testing.T) {
	// If Step read cells it had already written, the vertical line would not
	// turn into a horizontal one.
	g := gridFrom(
		"...",
		".#.",
		".#.",
		".#.",
		"...",
	)
	g.Step()
	assert.Equal(t, []Point{{0, 2}, {1, 2}, {2, 2}}, g.LiveCells())
}

func TestSeedDensity(t *testing.T) {
	g := NewGrid(100, 100)
	g.Seed(rand.New(rand.NewSource(1)), 0.25)

	pop := g.Population()
	assert.InDelta(t, 2500, pop, 300)
	assert.Len(t, g.LiveCells(), pop)

	g.Seed(rand.New(rand.NewSource(1)), 0)
	assert.Zero(t, g.Population())
}

func TestStepMatchesNeighborCounts(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 3}, {7, 5}, {16, 9}} {
		g := NewGrid(size[0], size[1])
		g.Seed(rand.New(rand.NewSource(int64(size[0]*31+size[1]))), 0.4)

		want := NewGrid(size[0], size[1])
		for y := 0; y < g.Rows(); y++ {
			for x := 0; x < g.Cols(); x++ {
				n := g.Neighbors(x, y)
				want.Set(x, y, n == 3 || (n == 2 && g.Alive(x, y)))
			}
		}

		g.Step()
		if diff := cmp.Diff(want.String(), g.String()); diff != "" {
			t.Errorf("%dx%d step mismatch (-want +got):\n%s", size[0], size[1], diff)
		}
	}
}
