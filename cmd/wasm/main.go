//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/jonboulle/clockwork"

	"personal-site/internal/life"
)

const defaultCellSize = 12

// canvasSurface draws onto a CanvasRenderingContext2D.
type canvasSurface struct {
	ctx2d js.Value
}

func (s canvasSurface) Clear(width, height float64) {
	s.ctx2d.Call("clearRect", 0, 0, width, height)
}

func (s canvasSurface) StrokeRect(x, y, w, h float64) {
	s.ctx2d.Call("strokeRect", x, y, w, h)
}

// background owns one running animation and the listeners attached for it.
type background struct {
	canvas   js.Value
	animator *life.Animator
	onResize js.Func
	cancel   context.CancelFunc
}

var current *background

func viewport() (float64, float64) {
	win := js.Global()
	return win.Get("innerWidth").Float(), win.Get("innerHeight").Float()
}

func startBackground(canvasID string, cellSize float64) {
	stopBackground()

	canvas := js.Global().Get("document").Call("getElementById", canvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		println("life: canvas not found:", canvasID)
		return
	}
	ctx2d := canvas.Call("getContext", "2d")
	ctx2d.Set("strokeStyle", "rgba(128, 128, 128, 0.35)")
	ctx2d.Set("lineWidth", 1)

	width, height := viewport()
	canvas.Set("width", width)
	canvas.Set("height", height)

	bg := &background{canvas: canvas}
	bg.animator = life.NewAnimator(canvasSurface{ctx2d: ctx2d}, clockwork.NewRealClock(),
		life.AnimatorConfig{CellSize: cellSize}, width, height)

	bg.onResize = js.FuncOf(func(js.Value, []js.Value) any {
		w, h := viewport()
		// Resizing the canvas resets its 2D state.
		canvas.Set("width", w)
		canvas.Set("height", h)
		ctx2d.Set("strokeStyle", "rgba(128, 128, 128, 0.35)")
		ctx2d.Set("lineWidth", 1)
		bg.animator.Resize(w, h)
		return nil
	})
	js.Global().Call("addEventListener", "resize", bg.onResize)

	ctx, cancel := context.WithCancel(context.Background())
	bg.cancel = cancel
	bg.animator.Start(ctx)
	current = bg
}

func stopBackground() {
	if current == nil {
		return
	}
	js.Global().Call("removeEventListener", "resize", current.onResize)
	current.onResize.Release()
	current.animator.Stop()
	current.cancel()
	current = nil
}

func startWrapper(_ js.Value, args []js.Value) any {
	canvasID := "life-background"
	cellSize := float64(defaultCellSize)
	if len(args) >= 1 && args[0].Type() == js.TypeString {
		canvasID = args[0].String()
	}
	if len(args) >= 2 && args[1].Type() == js.TypeNumber && args[1].Float() > 0 {
		cellSize = args[1].Float()
	}
	startBackground(canvasID, cellSize)
	return nil
}

func stopWrapper(js.Value, []js.Value) any {
	stopBackground()
	return nil
}

func main() {
	js.Global().Set("goStartBackground", js.FuncOf(startWrapper))
	js.Global().Set("goStopBackground", js.FuncOf(stopWrapper))

	println("life background ready")
	select {}
}
