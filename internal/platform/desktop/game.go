// Package desktop is the windowed front end for the flyer, built on Ebitengine.
// It draws the world at its native pixel size, so the pointer is a real mouse.
package desktop

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
	"github.com/vovakirdan/wasteland-flyer/internal/core"
	"github.com/vovakirdan/wasteland-flyer/internal/game"
	"github.com/vovakirdan/wasteland-flyer/internal/storage"
)

// Debug font cell size used for centering text.
const (
	charWidth  = 6
	charHeight = 16
)

var (
	skyColor      = color.RGBA{12, 18, 10, 255}
	pipeColor     = color.RGBA{60, 140, 40, 255}
	pipeEdgeColor = color.RGBA{20, 60, 15, 255}
	groundColor   = color.RGBA{70, 55, 30, 255}
	groundEdge    = color.RGBA{110, 90, 50, 255}
	bodyColor     = color.RGBA{170, 255, 90, 255}
	panelColor    = color.RGBA{0, 0, 0, 200}
	panelBorder   = color.RGBA{120, 220, 60, 255}
)

// Options configures a Game.
type Options struct {
	Config   config.FlyerConfig
	TickRate int
	Seed     int64
	Store    *storage.Store // Optional
	Logger   *log.Logger
}

// Game implements ebiten.Game. Ebitengine calls Update at a fixed TPS,
// which serves as the tick driver.
type Game struct {
	engine     *game.Engine
	cfg        config.FlyerConfig
	store      *storage.Store
	logger     *log.Logger
	showReward bool
}

// New creates a Game with a fresh engine in the Menu state.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engineOpts := []game.Option{game.WithLogger(logger)}
	if opts.Seed != 0 {
		engineOpts = append(engineOpts, game.WithSeed(opts.Seed))
	}
	if opts.Store != nil {
		engineOpts = append(engineOpts, game.WithStore(opts.Store))
	}

	return &Game{
		engine: game.New(opts.Config, engineOpts...),
		cfg:    opts.Config,
		store:  opts.Store,
		logger: logger,
	}
}

// Update reads input and advances the engine by one tick.
func (g *Game) Update() error {
	for _, a := range pressedActions() {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		g.apply(a, core.SourceKey)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.engine.State() == game.StateMenu {
			g.apply(core.ActionStart, core.SourcePointer)
		} else {
			g.apply(core.ActionFlap, core.SourcePointer)
		}
	}

	res := g.engine.Tick()
	if res.Milestone {
		g.showReward = true
	}
	if res.Over != nil {
		g.saveRound(*res.Over)
	}
	return nil
}

// pressedActions returns the actions whose keys went down this frame.
func pressedActions() []core.Action {
	bindings := []struct {
		keys   []ebiten.Key
		action core.Action
	}{
		{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionFlap},
		{[]ebiten.Key{ebiten.KeyEnter}, core.ActionStart},
		{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
		{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}, core.ActionBack},
		{[]ebiten.Key{ebiten.KeyX}, core.ActionDismiss},
		{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
	}

	var actions []core.Action
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}

func (g *Game) apply(a core.Action, src core.InputSource) {
	switch a {
	case core.ActionFlap:
		g.engine.RequestImpulse(src)
	case core.ActionStart:
		if g.engine.Start() || g.engine.Restart() {
			g.showReward = false
		}
	case core.ActionRestart:
		if g.engine.Restart() {
			g.showReward = false
		}
	case core.ActionBack:
		if g.showReward {
			g.showReward = false
			return
		}
		g.engine.Return()
	case core.ActionDismiss:
		g.showReward = false
	}
}

// saveRound writes the round to the history without stalling the frame.
func (g *Game) saveRound(summary game.RoundSummary) {
	if g.store == nil {
		return
	}
	store, logger := g.store, g.logger
	go func() {
		_, err := store.SaveRound(storage.RoundRecord{
			Score:     summary.Score,
			Ticks:     summary.Ticks,
			Milestone: summary.Milestone,
			Player:    "desktop",
		})
		if err != nil {
			logger.Warn("could not save round", "round", summary.Round, "error", err)
		}
	}()
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.engine.Snapshot()
	cfg := g.cfg
	w := float32(cfg.World.Width)
	ground := float32(cfg.GroundLine())

	screen.Fill(skyColor)

	ow := float32(cfg.Obstacles.Width)
	for _, o := range s.Obstacles {
		x := float32(o.X)
		top := float32(o.GapTop)
		bottom := top + float32(cfg.Obstacles.GapHeight)
		vector.FillRect(screen, x, 0, ow, top, pipeColor, false)
		vector.StrokeRect(screen, x, 0, ow, top, 2, pipeEdgeColor, false)
		vector.FillRect(screen, x, bottom, ow, ground-bottom, pipeColor, false)
		vector.StrokeRect(screen, x, bottom, ow, ground-bottom, 2, pipeEdgeColor, false)
	}

	vector.FillRect(screen, 0, ground, w, float32(cfg.World.GroundHeight), groundColor, false)
	vector.FillRect(screen, 0, ground, w, 3, groundEdge, false)

	box := core.CenteredBox(cfg.Body.AnchorX, s.BodyY, cfg.Body.Size)
	vector.FillRect(screen, float32(box.Left), float32(box.Top), float32(box.Width), float32(box.Height), bodyColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", s.Score), 10, 10)
	best := fmt.Sprintf("HIGH SCORE %d", s.Best)
	ebitenutil.DebugPrintAt(screen, best, int(w)-10-len(best)*charWidth, 10)

	switch s.State {
	case game.StateMenu:
		g.drawPanel(screen,
			"WASTELAND FLYER",
			"",
			"Navigate through the radioactive wasteland!",
			"Click or press SPACE to fly",
			"Avoid obstacles and the ground",
			"Each obstacle passed: +1 point",
			"",
			"Click or ENTER to start   Q to quit",
		)
	case game.StateGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("FINAL SCORE: %d", s.Score)}
		if s.NewBest && s.Score > 0 {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "R play again   B back to menu")
		g.drawPanel(screen, lines...)
	}

	if g.showReward {
		g.drawReward(screen)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l))
	}
	pw := float32(width*charWidth + 40)
	ph := float32(len(lines)*charHeight + 30)
	px := (float32(g.cfg.World.Width) - pw) / 2
	py := (float32(g.cfg.World.Height) - ph) / 2

	vector.FillRect(screen, px, py, pw, ph, panelColor, false)
	vector.StrokeRect(screen, px, py, pw, ph, 2, panelBorder, false)
	for i, l := range lines {
		x := int(px) + (int(pw)-len(l)*charWidth)/2
		ebitenutil.DebugPrintAt(screen, l, x, int(py)+15+i*charHeight)
	}
}

func (g *Game) drawReward(screen *ebiten.Image) {
	lines := []string{
		">>> ACHIEVEMENT UNLOCKED <<<",
		"Secret code revealed: " + g.cfg.Scoring.RewardCode,
		"X to close",
	}
	pw := float32(260)
	ph := float32(len(lines)*charHeight + 20)
	px := (float32(g.cfg.World.Width) - pw) / 2
	py := float32(g.cfg.World.Height) - ph

	vector.FillRect(screen, px, py, pw, ph, panelColor, false)
	vector.StrokeRect(screen, px, py, pw, ph, 2, panelBorder, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(px)+12, int(py)+10+i*charHeight)
	}
}

// Layout keeps the logical screen at world size; the window scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.World.Width), int(g.cfg.World.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	tps := core.RuntimeConfig{TickRate: opts.TickRate}.Normalized().TickRate

	g := New(opts)
	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowTitle("Wasteland Flyer")
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
