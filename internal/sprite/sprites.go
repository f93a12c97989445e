package sprite

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/galaxy-raid/internal/config"
)

// Kind identifies one of the game's sprites.
type Kind int

const (
	KindShip Kind = iota
	KindShot
	KindEnemy
)

// String returns the sprite name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindShot:
		return "shot"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Pixel art, one rune per pixel; '.' is transparent.
var patterns = map[Kind][]string{
	KindShip: {
		".......WW.......",
		".......WW.......",
		"......WCCW......",
		"......WCCW......",
		".....WWCCWW.....",
		".....WWWWWW.....",
		"....WWWWWWWW....",
		"...WWWWRRWWWW...",
		"..WWW.WRRW.WWW..",
		".WWWW.WWWW.WWWW.",
		"WWWWWWWWWWWWWWWW",
		"WWWWWWWWWWWWWWWW",
		"WWW.WWWWWWWW.WWW",
		"WW...WWWWWW...WW",
		"W.....YYYY.....W",
		".......YY.......",
	},
	KindShot: {
		"................",
		".......YY.......",
		"......YWWY......",
		"......YWWY......",
		"......YWWY......",
		".......WW.......",
		".......WW.......",
		".......YY.......",
		".......YY.......",
		".......YY.......",
		".......RR.......",
		".......RR.......",
		"................",
		"................",
		"................",
		"................",
	},
	KindEnemy: {
		"................",
		"...G........G...",
		"....G......G....",
		"...GGGGGGGGGG...",
		"..GGGRGGGGRGGG..",
		".GGGGRGGGGRGGGG.",
		".GGGGGGGGGGGGGG.",
		".G.GGGGGGGGGG.G.",
		".G.GGGGGGGGGG.G.",
		".G.G........G.G.",
		"....GGG..GGG....",
		"................",
		"................",
		"................",
		"................",
		"................",
	},
}

var palette = map[rune]color.NRGBA{
	'W': {R: 235, G: 235, B: 245, A: 255},
	'C': {R: 80, G: 220, B: 255, A: 255},
	'R': {R: 240, G: 70, B: 70, A: 255},
	'Y': {R: 255, G: 220, B: 60, A: 255},
	'G': {R: 90, G: 230, B: 90, A: 255},
}

// decode renders a pattern at its native resolution.
func decode(k Kind, rows []string) (*image.NRGBA, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sprite: %s pattern is empty", k)
	}
	w := utf8.RuneCountInString(rows[0])
	img := image.NewNRGBA(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("sprite: %s pattern row %d has width %d, expected %d", k, y, n, w)
		}
		x := 0
		for _, r := range row {
			if r != '.' {
				c, ok := palette[r]
				if !ok {
					return nil, fmt.Errorf("sprite: %s pattern has unknown color %q", k, r)
				}
				img.SetNRGBA(x, y, c)
			}
			x++
		}
	}
	return img, nil
}

// render decodes a pattern and scales it to size×size pixels with
// nearest-neighbour sampling so edges stay crisp and masks stay exact.
func render(k Kind, size int) (*image.NRGBA, error) {
	src, err := decode(k, patterns[k])
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Sprite pairs an image with its collision mask.
type Sprite struct {
	Image *image.NRGBA
	Mask  *Mask
}

// Atlas holds every sprite, built once at load time. Sprites are static, so
// masks are computed here and never recomputed per tick.
type Atlas struct {
	sprites map[Kind]Sprite
}

// NewAtlas renders all sprites at the configured sizes.
func NewAtlas(cfg config.SpriteConfig) (*Atlas, error) {
	sizes := map[Kind]int{
		KindShip:  cfg.ShipSize,
		KindShot:  cfg.ShotSize,
		KindEnemy: cfg.EnemySize,
	}

	a := &Atlas{sprites: make(map[Kind]Sprite, len(sizes))}
	for k, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("sprite: %s size must be positive, got %d", k, size)
		}
		img, err := render(k, size)
		if err != nil {
			return nil, err
		}
		a.sprites[k] = Sprite{
			Image: img,
			Mask:  FromImage(img, uint8(cfg.AlphaThreshold)),
		}
	}
	return a, nil
}

// Sprite returns the sprite of the given kind.
func (a *Atlas) Sprite(k Kind) Sprite {
	return a.sprites[k]
}

// Mask returns the collision mask of the given kind.
func (a *Atlas) Mask(k Kind) *Mask {
	return a.sprites[k].Mask
}
