package stroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/stroids/internal/core"
	"github.com/vovakirdan/stroids/internal/games/stroids/engine"
)

// Glyphs used on the character screen.
const (
	LaserChar    = '•'
	AsteroidChar = '#'
	WreckChar    = 'X'
)

// shipGlyphs is indexed by rotation in 45° steps, starting facing up and
// turning clockwise.
var shipGlyphs = [8]rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

// hudRows is the number of screen rows reserved above the field.
const hudRows = 1

// projection maps world units onto screen cells below the HUD.
type projection struct {
	sx, sy float64
	top    int
}

func newProjection(dst *core.Screen, field core.Vector) projection {
	rows := dst.Height() - hudRows
	return projection{
		sx:  float64(dst.Width()) / field.X,
		sy:  float64(rows) / field.Y,
		top: hudRows,
	}
}

func (p projection) cell(v core.Vector) (int, int) {
	return int(math.Floor(v.X * p.sx)), p.top + int(math.Floor(v.Y*p.sy))
}

// world returns the world position of a cell's center.
func (p projection) world(x, y int) core.Vector {
	return core.V((float64(x)+0.5)/p.sx, (float64(y-p.top)+0.5)/p.sy)
}

// Render draws the current world state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		msg := "no world"
		if g.err != nil {
			msg = g.err.Error()
		}
		drawCenteredMessage(dst, "CONFIG ERROR", msg)
		return
	}

	snap := g.world.Snapshot()
	if dst.Height() <= hudRows || dst.Width() == 0 {
		return
	}
	proj := newProjection(dst, snap.Field)

	for _, a := range snap.Asteroids {
		drawAsteroid(dst, proj, a)
	}
	for _, l := range snap.Lasers {
		x, y := proj.cell(l.Position)
		if y >= hudRows {
			dst.SetColored(x, y, LaserChar, core.ColorBrightYellow)
		}
	}
	drawShip(dst, proj, snap.Ship)

	hud := fmt.Sprintf("Targets Remaining: %d  Score: %d  Level: %d", snap.AsteroidCount(), snap.Score, snap.Level)
	dst.DrawText(1, 0, hud, core.ColorBrightWhite)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawAsteroid fills every cell whose center lies inside the asteroid.
// An asteroid smaller than a cell still occupies the cell under its center.
func drawAsteroid(dst *core.Screen, p projection, a engine.EntityView) {
	r := a.Diameter / 2
	x0, y0 := p.cell(a.Position.Sub(core.Splat(r)))
	x1, y1 := p.cell(a.Position.Add(core.Splat(r)))
	for y := max(y0, hudRows); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if core.WithinRadius(p.world(x, y), a.Position, r) {
				dst.SetColored(x, y, AsteroidChar, core.ColorOrange)
			}
		}
	}
	cx, cy := p.cell(a.Position)
	if cy >= hudRows {
		dst.SetColored(cx, cy, AsteroidChar, core.ColorOrange)
	}
}

func drawShip(dst *core.Screen, p projection, s engine.ShipView) {
	x, y := p.cell(s.Position)
	if y < hudRows {
		return
	}
	if !s.Alive {
		dst.SetColored(x, y, WreckChar, core.ColorRed)
		return
	}
	color := core.ColorBrightWhite
	if s.Tinted {
		color = core.ColorBrightRed
	}
	dst.SetColored(x, y, ShipGlyph(s.Rotation), color)
}

// ShipGlyph picks the arrow closest to the ship's rotation.
func ShipGlyph(rotation float64) rune {
	deg := math.Mod(rotation, 360)
	if deg < 0 {
		deg += 360
	}
	i := int(math.Round(deg/45)) % len(shipGlyphs)
	return shipGlyphs[i]
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorWhite)
}
