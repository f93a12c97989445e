// Package window is the pixel presentation adapter. It runs a game session in
// an Ebitengine window, where real key press and release events drive the
// ship.
package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/core"
	"github.com/vovakirdan/galaxy-raid/internal/game"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

var (
	backgroundColor = color.RGBA{R: 8, G: 8, B: 24, A: 255}
	textColor       = color.White
	hintColor       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// Bindings maps keys to the press commands they produce. A binding's
// release command is derived with releaseOf.
var Bindings = map[ebiten.Key]core.Command{
	ebiten.KeyArrowLeft:  core.CommandMoveLeftPressed,
	ebiten.KeyA:          core.CommandMoveLeftPressed,
	ebiten.KeyArrowRight: core.CommandMoveRightPressed,
	ebiten.KeyD:          core.CommandMoveRightPressed,
	ebiten.KeySpace:      core.CommandFirePressed,
	ebiten.KeyEscape:     core.CommandQuitRequested,
	ebiten.KeyQ:          core.CommandQuitRequested,
}

func releaseOf(c core.Command) core.Command {
	switch c {
	case core.CommandMoveLeftPressed:
		return core.CommandMoveLeftReleased
	case core.CommandMoveRightPressed:
		return core.CommandMoveRightReleased
	default:
		return core.CommandNone
	}
}

// Events is the raw input observed during one Update.
type Events struct {
	Pressed  []ebiten.Key
	Released []ebiten.Key
	Click    bool
	Closing  bool
}

// Translate turns raw input into commands. Releases come first so a key
// released and pressed again within one frame stays held.
func Translate(ev Events) []core.Command {
	var out []core.Command
	if ev.Closing {
		out = append(out, core.CommandQuitRequested)
	}
	for _, k := range ev.Released {
		if c := releaseOf(Bindings[k]); c != core.CommandNone {
			out = append(out, c)
		}
	}
	for _, k := range ev.Pressed {
		if c, ok := Bindings[k]; ok {
			out = append(out, c)
		}
	}
	if ev.Click {
		out = append(out, core.CommandDismiss)
	}
	return out
}

// Renderer keeps the latest frame for Draw. It implements game.Renderer.
type Renderer struct {
	frame    game.Frame
	ended    bool
	endScore int
}

// RenderFrame stores the frame to draw.
func (r *Renderer) RenderFrame(f game.Frame) {
	r.frame = f
	r.ended = false
}

// RenderEndScreen switches Draw to the end screen.
func (r *Renderer) RenderEndScreen(score int) {
	r.ended = true
	r.endScore = score
}

// Game implements ebiten.Game around a session.
type Game struct {
	session  *game.Session
	atlas    *sprite.Atlas
	images   map[sprite.Kind]*ebiten.Image
	renderer *Renderer
	face     font.Face
	fieldW   int
	fieldH   int
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewGame creates a window game with a fresh session.
func NewGame(cfg config.GalaxyConfig, atlas *sprite.Atlas, logger *log.Logger) *Game {
	g := &Game{
		session:  game.NewSession(cfg, atlas, logger),
		atlas:    atlas,
		renderer: &Renderer{},
		face:     basicfont.Face7x13,
		fieldW:   cfg.Field.Width,
		fieldH:   cfg.Field.Height,
	}
	g.renderer.RenderFrame(g.session.Frame())
	return g
}

// Update gathers input and advances the session by one tick.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])

	return g.Step(Translate(Events{
		Pressed:  g.pressed,
		Released: g.released,
		Click:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Closing:  ebiten.IsWindowBeingClosed(),
	}))
}

// Step applies one tick of commands. It returns ebiten.Termination once the
// game is over: right away on quit, or on a dismiss of the end screen.
func (g *Game) Step(cmds []core.Command) error {
	if g.renderer.ended {
		for _, c := range cmds {
			if c == core.CommandDismiss || c == core.CommandQuitRequested {
				return ebiten.Termination
			}
		}
		return nil
	}

	res := g.session.Step(cmds)
	if res.Reason == game.EndQuit {
		return ebiten.Termination
	}

	g.renderer.RenderFrame(g.session.Frame())
	if res.Phase == game.PhaseEnded {
		g.renderer.RenderEndScreen(res.Score)
	}
	return nil
}

// Draw renders the stored frame or the end screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.renderer.ended {
		g.drawEndScreen(screen, g.renderer.endScore)
		return
	}

	f := g.renderer.frame
	for _, e := range f.Enemies {
		g.drawSprite(screen, sprite.KindEnemy, float64(e.X), float64(e.Y))
	}
	if f.Projectile.Visible {
		g.drawSprite(screen, sprite.KindShot, float64(f.Projectile.X), math.RoundToEven(f.Projectile.Y))
	}
	g.drawSprite(screen, sprite.KindShip, float64(f.Ship.X), float64(f.Ship.Y))

	score := fmt.Sprintf("Score: %d", f.Score)
	w := text.BoundString(g.face, score).Dx()
	text.Draw(screen, score, g.face, g.fieldW-w-10, 20, textColor)
}

func (g *Game) drawEndScreen(screen *ebiten.Image, score int) {
	g.drawCentered(screen, fmt.Sprintf("Score: %d", score), g.fieldH/2-10, textColor)
	g.drawCentered(screen, "Click to Exit", g.fieldH/2+20, hintColor)
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	w := text.BoundString(g.face, s).Dx()
	text.Draw(screen, s, g.face, (g.fieldW-w)/2, y, c)
}

func (g *Game) drawSprite(screen *ebiten.Image, k sprite.Kind, x, y float64) {
	if g.images == nil {
		g.images = make(map[sprite.Kind]*ebiten.Image, 3)
	}
	img, ok := g.images[k]
	if !ok {
		img = ebiten.NewImageFromImage(g.atlas.Sprite(k).Image)
		g.images[k] = img
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	screen.DrawImage(img, opts)
}

// Layout fixes the logical screen to the field size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.fieldW, g.fieldH
}

// Session returns the running session.
func (g *Game) Session() *game.Session {
	return g.session
}

// Run opens the window and blocks until the game ends. It returns the final
// score.
func Run(cfg config.GalaxyConfig, atlas *sprite.Atlas, logger *log.Logger) (int, error) {
	g := NewGame(cfg, atlas, logger)

	ebiten.SetWindowSize(cfg.Field.Width, cfg.Field.Height)
	ebiten.SetWindowTitle("Galaxy Raid")
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return g.session.Score(), fmt.Errorf("window: %w", err)
	}
	return g.session.Score(), nil
}
