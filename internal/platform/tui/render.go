package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/galaxy-raid/internal/core"
	"github.com/vovakirdan/galaxy-raid/internal/game"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Glyphs used for the down-sampled sprites.
const (
	glyphShip  = '▲'
	glyphShot  = '|'
	glyphEnemy = 'W'
	glyphStar  = '·'
)

// ScreenRenderer draws frames into a character Screen. The pixel field is
// scaled onto the cell grid; a cell is lit when any solid mask pixel of a
// sprite falls inside it.
type ScreenRenderer struct {
	screen *core.Screen
	atlas  *sprite.Atlas
	fieldW int
	fieldH int
}

// NewScreenRenderer creates a renderer for a field of fieldW×fieldH pixels.
func NewScreenRenderer(screen *core.Screen, atlas *sprite.Atlas, fieldW, fieldH int) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		atlas:  atlas,
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// RenderFrame draws one tick of the running game.
func (r *ScreenRenderer) RenderFrame(f game.Frame) {
	r.screen.Clear()
	r.drawStars()

	for _, e := range f.Enemies {
		r.drawSprite(sprite.KindEnemy, e.X, e.Y, glyphEnemy, core.ColorBrightGreen)
	}
	if f.Projectile.Visible {
		y := int(math.RoundToEven(f.Projectile.Y))
		r.drawSprite(sprite.KindShot, f.Projectile.X, y, glyphShot, core.ColorBrightYellow)
	}
	r.drawSprite(sprite.KindShip, f.Ship.X, f.Ship.Y, glyphShip, core.ColorBrightCyan)

	r.screen.DrawTextRight(0, 1, scoreText(f.Score), core.ColorBrightWhite)
}

// RenderEndScreen draws the final score.
func (r *ScreenRenderer) RenderEndScreen(score int) {
	r.screen.Clear()
	mid := r.screen.Height() / 2
	r.screen.DrawTextCentered(mid-1, scoreText(score), core.ColorBrightWhite)
	r.screen.DrawTextCentered(mid+1, "Click to Exit", core.ColorGray)
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// drawStars scatters a fixed backdrop so motion is readable on a blank
// terminal.
func (r *ScreenRenderer) drawStars() {
	w, h := r.screen.Width(), r.screen.Height()
	for y := 1; y < h; y += 3 {
		for x := (y * 7) % 11; x < w; x += 11 {
			r.screen.SetColored(x, y, glyphStar, core.ColorGray)
		}
	}
}

// cellSpan returns the range of cells [lo, hi] covering pixels [p, p+size).
func cellSpan(p, size, cells, field int) (int, int) {
	lo := p * cells / field
	hi := (p + size - 1) * cells / field
	return core.Max(lo, 0), core.Min(hi, cells-1)
}

// cellRect returns the field pixels covered by cell (cx, cy).
func (r *ScreenRenderer) cellRect(cx, cy int) core.Rect {
	w, h := r.screen.Width(), r.screen.Height()
	x0 := cx * r.fieldW / w
	y0 := cy * r.fieldH / h
	x1 := (cx + 1) * r.fieldW / w
	y1 := (cy + 1) * r.fieldH / h
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (r *ScreenRenderer) drawSprite(k sprite.Kind, x, y int, glyph rune, c core.Color) {
	w, h := r.screen.Width(), r.screen.Height()
	if w == 0 || h == 0 || r.fieldW == 0 || r.fieldH == 0 {
		return
	}

	mask := r.atlas.Mask(k)
	cx0, cx1 := cellSpan(x, mask.Width(), w, r.fieldW)
	cy0, cy1 := cellSpan(y, mask.Height(), h, r.fieldH)

	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			cell := r.cellRect(cx, cy)
			local := core.NewRect(cell.X-x, cell.Y-y, cell.W, cell.H)
			if mask.Region(local) {
				r.screen.SetColored(cx, cy, glyph, c)
			}
		}
	}
}
