package neogui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int // initial window width; defaults to 1024
	Height    int // initial window height; defaults to 768
	Resizable bool

	// ClearColor fills the window before each frame is painted.
	ClearColor Color

	// ShowFPS draws the current FPS/TPS in the top-left corner.
	ShowFPS bool

	// ExitOnEscape ends Run when Escape is pressed.
	ExitOnEscape bool

	// ToggleFullscreen switches between windowed and fullscreen when F is
	// pressed.
	ToggleFullscreen bool

	// Update, if set, is called once per tick after the keyboard has been
	// captured. Input edges (Input against PreviousInput) and time-based
	// state belong here: draws can run more or less often than ticks. A
	// non-nil error ends Run.
	Update func(ui *UI) error
}

// FrameFunc is called once per drawn frame, between BeginFrame and
// EndFrame, to describe the tree. It must create the root.
type FrameFunc func(ui *UI)

// Run opens a window and drives ui with an ebiten game loop: each tick
// captures the keyboard into a fresh input buffer and calls cfg.Update, and
// each draw rebuilds the tree with build and paints it at the window size.
// Run blocks until the window is closed.
func Run(ui *UI, build FrameFunc, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 768
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := &game{ui: ui, build: build, cfg: cfg, toggleFullscreen: func() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}}
	ui.SetPainter(&g.painter)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("neogui: run: %w", err)
	}
	return nil
}

// game adapts a UI to ebiten.Game.
type game struct {
	ui      *UI
	build   FrameFunc
	cfg     RunConfig
	painter EbitenPainter

	toggleFullscreen func()
}

func (g *game) Update() error {
	CaptureKeys(g.ui.FlipInput())
	return g.tick()
}

// tick runs one update after the active input buffer has been filled.
func (g *game) tick() error {
	ui := g.ui
	if ui.runner != nil {
		ui.runner.step(ui)
	}
	if g.cfg.ExitOnEscape && ui.Input().Down(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.cfg.ToggleFullscreen && pressedThisTick(ui, ebiten.KeyF) {
		g.toggleFullscreen()
	}
	if g.cfg.Update != nil {
		return g.cfg.Update(ui)
	}
	return nil
}

// pressedThisTick reports whether key went down since the previous flip.
func pressedThisTick(ui *UI, key ebiten.Key) bool {
	return ui.Input().Down(key) && !ui.PreviousInput().Down(key)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	g.painter.Target = screen

	b := screen.Bounds()
	g.ui.BeginFrame()
	g.build(g.ui)
	g.ui.EndFrame(float64(b.Dx()), float64(b.Dy()))

	if g.cfg.ShowFPS {
		drawFPS(screen)
	}
	g.ui.flushScreenshots(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// drawFPS prints the current FPS and TPS in the top-left corner.
func drawFPS(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
