package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerGlyph     = '▲'
	ProjectileGlyph = '│'
	HazardGlyph     = '█'
	PickupGlyph     = '◆'
	HeartFull       = '♥'
	HeartEmpty      = '·'
)

// Minimum terminal size the arena can be drawn in.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	Draw(dst, &snap)
}

// Draw renders a snapshot. The arena is scaled to fill the screen inside a
// border; the HUD sits on the top border and key hints on the bottom one.
func Draw(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorGray)

	if snap.Phase != PhaseMenu {
		vp := newViewport(dst, snap.Arena)
		for _, e := range snap.Pickups {
			vp.fill(dst, e, PickupGlyph)
		}
		for _, e := range snap.Hazards {
			vp.fill(dst, e, HazardGlyph)
		}
		for _, e := range snap.Projectiles {
			vp.fill(dst, e, ProjectileGlyph)
		}
		vp.fill(dst, snap.Player, PlayerGlyph)
		drawHUD(dst, snap)
	}

	switch snap.Phase {
	case PhaseMenu:
		drawMenu(dst, snap)
	case PhasePaused:
		drawPanel(dst, core.ColorYellow, []string{"PAUSED"})
	case PhaseGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score)}
		if snap.NewRecord {
			lines = append(lines, "New record!")
		} else {
			lines = append(lines, fmt.Sprintf("Best: %d", snap.HighScore))
		}
		drawPanel(dst, core.ColorBrightRed, lines)
	}

	drawHints(dst, snap.Phase)
}

// viewport maps world units onto the cells inside the border.
type viewport struct {
	sx, sy float64
	inner  core.Rect
}

func newViewport(dst *core.Screen, arena Arena) viewport {
	inner := core.NewRect(1, 1, dst.Width()-2, dst.Height()-2)
	return viewport{
		sx:    float64(inner.W) / arena.W,
		sy:    float64(inner.H) / arena.H,
		inner: inner,
	}
}

// fill covers the cells an entity's box overlaps, at least one cell,
// clipped to the border.
func (v viewport) fill(dst *core.Screen, e EntityView, glyph rune) {
	x0 := int(math.Floor((e.X - e.W/2) * v.sx))
	x1 := int(math.Ceil((e.X + e.W/2) * v.sx))
	y0 := int(math.Floor((e.Y - e.H/2) * v.sy))
	y1 := int(math.Ceil((e.Y + e.H/2) * v.sy))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0 = core.Clamp(x0+v.inner.X, v.inner.X, v.inner.Right())
	x1 = core.Clamp(x1+v.inner.X, v.inner.X, v.inner.Right())
	y0 = core.Clamp(y0+v.inner.Y, v.inner.Y, v.inner.Bottom())
	y1 = core.Clamp(y1+v.inner.Y, v.inner.Y, v.inner.Bottom())
	if x0 >= x1 || y0 >= y1 {
		return
	}
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), glyph, e.Color)
}

// drawHUD writes score, level, health and best score on the top border.
func drawHUD(dst *core.Screen, snap *Snapshot) {
	score := fmt.Sprintf(" Score %d ", snap.Score)
	dst.DrawTextColor(2, 0, score, core.ColorWhite)

	level := fmt.Sprintf(" Level %d ", snap.Level)
	dst.DrawTextColor(2+len(score)+1, 0, level, core.ColorCyan)

	hearts := " " + strings.Repeat(string(HeartFull), snap.Health) +
		strings.Repeat(string(HeartEmpty), max(0, snap.MaxHealth-snap.Health)) + " "
	dst.DrawTextCentered(0, hearts, core.ColorBrightRed)

	best := fmt.Sprintf(" Best %d ", max(snap.HighScore, snap.Score))
	dst.DrawTextColor(dst.Width()-len(best)-2, 0, best, core.ColorYellow)
}

// drawMenu draws the title screen and the optional high score panel.
func drawMenu(dst *core.Screen, snap *Snapshot) {
	lines := []string{
		"TERMINAL SHOOTER",
		"",
		"1  Start",
		"2  High score",
		"3  Quit",
	}
	if snap.ShowBest {
		lines = append(lines, "", fmt.Sprintf("High score: %d", snap.HighScore))
	}
	drawPanel(dst, core.ColorBrightBlue, lines)
}

// drawPanel draws a bordered, cleared box with centered lines. The first
// line is the title and takes the panel color.
func drawPanel(dst *core.Screen, c core.Color, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w := min(width+6, dst.Width()-2)
	h := min(len(lines)+2, dst.Height()-2)
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	for i, l := range lines {
		y := r.Y + 1 + i
		if y >= r.Bottom()-1 {
			break
		}
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(y, l, color)
	}
}

// drawHints writes the key hints for the phase on the bottom border.
func drawHints(dst *core.Screen, phase Phase) {
	var hint string
	switch phase {
	case PhaseMenu:
		hint = " 1 start  2 high score  3/Esc quit "
	case PhasePlaying:
		hint = " WASD/arrows move  Space/click fire  P pause  Esc menu "
	case PhasePaused:
		hint = " P resume  Esc menu "
	case PhaseGameOver:
		hint = " 1 play again  Esc quit "
	}
	if len([]rune(hint)) > dst.Width()-4 {
		return
	}
	dst.DrawTextCentered(dst.Height()-1, hint, core.ColorGray)
}
