package life

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	defaultInterval = 100 * time.Millisecond
	defaultDensity  = 0.2
)

// AnimatorConfig tunes the background animation.
type AnimatorConfig struct {
	CellSize float64
	Interval time.Duration
	Density  float64
	Seed     int64
}

// Animator steps and paints a grid on a timer. Each tick finishes before the
// next one is scheduled, so ticks never overlap.
type Animator struct {
	surface  Surface
	clock    clockwork.Clock
	cellSize float64
	interval time.Duration
	density  float64
	rnd      *rand.Rand

	mu      sync.Mutex
	grid    *Grid
	timer   clockwork.Timer
	running bool
	epoch   uint64
	stopped chan struct{}
}

// NewAnimator creates an animator for a viewport of width x height.
func NewAnimator(surface Surface, clock clockwork.Clock, cfg AnimatorConfig, width, height float64) *Animator {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 10
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Density <= 0 || cfg.Density > 1 {
		cfg.Density = defaultDensity
	}
	if cfg.Seed == 0 {
		cfg.Seed = clock.Now().UnixNano()
	}
	return &Animator{
		surface:  surface,
		clock:    clock,
		cellSize: cfg.CellSize,
		interval: cfg.Interval,
		density:  cfg.Density,
		rnd:      rand.New(rand.NewSource(cfg.Seed)),
		grid:     ForViewport(width, height, cfg.CellSize),
	}
}

// Start seeds the grid, paints it and schedules the first tick. The animator
// stops when ctx is done or Stop is called.
func (a *Animator) Start(ctx context.Context) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return
	}
	a.running = true
	a.epoch++
	epoch := a.epoch
	a.stopped = make(chan struct{})
	stopped := a.stopped
	a.grid.Seed(a.rnd, a.density)
	Paint(a.surface, a.grid, a.cellSize)
	a.schedule(epoch)
	a.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				a.Stop()
			case <-stopped:
			}
		}()
	}
}

// schedule arms the next tick for the run started as epoch. Callers hold mu.
func (a *Animator) schedule(epoch uint64) {
	a.timer = a.clock.AfterFunc(a.interval, func() { a.tick(epoch) })
}

// tick is a no-op for timers left over from an earlier Start.
func (a *Animator) tick(epoch uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running || epoch != a.epoch {
		return
	}
	a.grid.Step()
	Paint(a.surface, a.grid, a.cellSize)
	a.schedule(epoch)
}

// Resize rebuilds the grid for a new viewport and repaints it.
func (a *Animator) Resize(width, height float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.grid = ForViewport(width, height, a.cellSize)
	a.grid.Seed(a.rnd, a.density)
	Paint(a.surface, a.grid, a.cellSize)
}

// Stop cancels the pending tick. It is safe to call more than once.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.running = false
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	close(a.stopped)
}

// Running reports whether ticks are scheduled.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Generation returns the generation of the current grid.
func (a *Animator) Generation() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.grid.Generation()
}

// Dimensions returns the current grid size.
func (a *Animator) Dimensions() (cols, rows int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.grid.Cols(), a.grid.Rows()
}
