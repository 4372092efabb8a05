package httpserver

import (
	"bytes"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"personal-site/internal/life"
)

const (
	defaultSnapshotWidth  = 1280
	defaultSnapshotHeight = 720
	maxSnapshotSide       = 4096
	maxSnapshotSteps      = 100
	snapshotDensity       = 0.2
	// cells times generations a single request may compute
	maxSnapshotWork = 5_000_000
)

// handleLifeSVG renders a background snapshot for visitors without WebAssembly.
func (s *Server) handleLifeSVG(c echo.Context) error {
	width := queryInt(c, "width", defaultSnapshotWidth, 1, maxSnapshotSide)
	height := queryInt(c, "height", defaultSnapshotHeight, 1, maxSnapshotSide)
	generations := queryInt(c, "generations", 0, 0, maxSnapshotSteps)

	seed := time.Now().UnixNano()
	if raw := c.QueryParam("seed"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seed = v
		}
	}

	cellSize := float64(s.config.LifeCellSize)
	grid := life.ForViewport(float64(width), float64(height), cellSize)
	grid.Seed(rand.New(rand.NewSource(seed)), snapshotDensity)
	generations = snapshotGenerations(grid.Cols(), grid.Rows(), generations)
	for i := 0; i < generations; i++ {
		grid.Step()
	}

	surface := life.NewSVGSurface()
	life.Paint(surface, grid, cellSize)

	var buf bytes.Buffer
	if _, err := surface.WriteTo(&buf); err != nil {
		return c.String(http.StatusInternalServerError, "Failed to render background")
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// snapshotGenerations bounds the requested generations so a snapshot never
// computes more than maxSnapshotWork cell updates.
func snapshotGenerations(cols, rows, requested int) int {
	budget := maxSnapshotWork / max(cols*rows, 1)
	return max(min(requested, budget), 0)
}

func queryInt(c echo.Context, name string, fallback, lo, hi int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return min(max(v, lo), hi)
}
