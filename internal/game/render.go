package game

import (
	"fmt"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
	"github.com/vovakirdan/wasteland-flyer/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '█'
	BodyEyeChar   = '▪'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▓'
	GroundEdge    = '═'
)

// RenderOptions carries front-end state that is not part of the simulation.
type RenderOptions struct {
	ShowReward bool // Reward panel is open
}

// viewport maps world pixels onto screen cells. Row 0 is kept for the HUD.
type viewport struct {
	cols, rows int
	worldW     float64
	worldH     float64
}

func (v viewport) col(x float64) int {
	return int(x * float64(v.cols) / v.worldW)
}

func (v viewport) row(y float64) int {
	return 1 + int(y*float64(v.rows-1)/v.worldH)
}

// Render draws a snapshot into dst. It reads nothing but its arguments.
func Render(dst *core.Screen, s Snapshot, cfg config.FlyerConfig, opts RenderOptions) {
	dst.Clear()
	if dst.Width() < 10 || dst.Height() < 6 {
		dst.DrawText(0, 0, "too small")
		return
	}

	vp := viewport{
		cols:   dst.Width(),
		rows:   dst.Height(),
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
	}

	for _, o := range s.Obstacles {
		drawObstacle(dst, vp, o, cfg)
	}
	drawGround(dst, vp, cfg)
	drawBody(dst, vp, s.BodyY, cfg)
	drawHUD(dst, s)

	switch s.State {
	case StateMenu:
		drawPanel(dst, core.ColorBrightGreen,
			"WASTELAND FLYER",
			"Navigate through the radioactive wasteland!",
			"",
			"Click or press SPACE to fly",
			"Avoid obstacles and the ground",
			"Each obstacle passed: +1 point",
			"",
			"ENTER start   TAB scores   Q quit",
		)
	case StateGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("FINAL SCORE: %d", s.Score)}
		if s.NewBest && s.Score > 0 {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "R play again   B back to menu")
		drawPanel(dst, core.ColorYellow, lines...)
	}

	if opts.ShowReward {
		drawReward(dst, cfg.Scoring.RewardCode)
	}
}

func drawObstacle(dst *core.Screen, vp viewport, o ObstacleView, cfg config.FlyerConfig) {
	left := vp.col(o.X)
	right := vp.col(o.X + cfg.Obstacles.Width)
	if right <= left {
		right = left + 1
	}
	gapStart := vp.row(o.GapTop)
	gapEnd := vp.row(o.GapTop + cfg.Obstacles.GapHeight)
	ground := vp.row(cfg.GroundLine())

	dst.SetPen(core.ColorGreen)
	for x := left; x < right; x++ {
		for y := 1; y < gapStart; y++ {
			dst.Set(x, y, PipeChar)
		}
		dst.Set(x, gapStart-1, PipeCapTop)

		for y := gapEnd; y < ground; y++ {
			dst.Set(x, y, PipeChar)
		}
		if gapEnd < ground {
			dst.Set(x, gapEnd, PipeCapBottom)
		}
	}
}

func drawGround(dst *core.Screen, vp viewport, cfg config.FlyerConfig) {
	top := vp.row(cfg.GroundLine())
	dst.SetPen(core.ColorDimGreen)
	dst.DrawHLine(0, top, dst.Width(), GroundEdge)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar)
	}
}

func drawBody(dst *core.Screen, vp viewport, bodyY float64, cfg config.FlyerConfig) {
	box := core.CenteredBox(cfg.Body.AnchorX, bodyY, cfg.Body.Size)
	left, right := vp.col(box.Left), vp.col(box.Right())
	top, bottom := vp.row(box.Top), vp.row(box.Bottom())
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}

	dst.SetPen(core.ColorBrightGreen)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			dst.Set(x, y, BodyChar)
		}
	}
	dst.Set(right-1, top, BodyEyeChar)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.SetPen(core.ColorYellow)
	dst.DrawText(1, 0, fmt.Sprintf(" SCORE %d ", s.Score))
	best := fmt.Sprintf(" HIGH SCORE %d ", s.Best)
	dst.DrawText(dst.Width()-len(best)-1, 0, best)
}

// drawPanel draws a bordered message box centered on the screen.
func drawPanel(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := core.Clamp(width+4, 0, dst.Width())
	boxH := core.Clamp(len(lines)+2, 0, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.SetPen(color)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}

// drawReward draws the milestone reward drawer along the bottom edge.
func drawReward(dst *core.Screen, code string) {
	lines := []string{
		">>> ACHIEVEMENT UNLOCKED <<<",
		"Secret code revealed: " + code,
		"X to close",
	}
	boxW := core.Clamp(34, 0, dst.Width())
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, dst.Height()-boxH, boxW, boxH)

	dst.SetPen(core.ColorBrightGreen)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+2, box.Y+1+i, l)
	}
}
