package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"geom2"
	"geom2/internal/blip"
	"geom2/internal/grid"
)

const (
	sampleRate  = 48000
	dt          = 1.0 / 60.0             // Ebiten Update is 60 FPS logic
	rotSpeed    = 90.0 * math.Pi / 180.0 // radians per second
	accel       = 120.0                  // px/s^2
	hoverRadius = 10.0
)

// Game holds the entire app state.
type Game struct {
	size    geom2.Vec2i
	field   *grid.Field
	heading float64 // radians
	speed   float64 // pixels per second magnitude

	hoverIdx int // -1 if none hovered

	audioCtx *audio.Context
	blipPCM  []byte
}

func NewGame() *Game {
	size := geom2.New(960, 640)
	dims := geom2.New(float64(size.X), float64(size.Y))
	center := geom2.DivScalar(dims, 2)

	families := []grid.Family{
		grid.NewFamily(geom2.New(1.0, 0.0), 60, 2, color.RGBA{0x66, 0x66, 0xFF, 0xFF}),
		grid.NewFamily(geom2.New(0.0, 1.0), 60, 2, color.RGBA{0x66, 0xFF, 0x66, 0xFF}),
		grid.NewFamily(geom2.New(1.0, 1.0), 85, 2, color.RGBA{0xFF, 0x66, 0x66, 0xFF}),
	}
	points := []geom2.Vec2d{
		dims.Mul(geom2.New(0.25, 0.5)),
		center,
		dims.Mul(geom2.New(0.75, 0.5)),
		dims.Mul(geom2.New(0.5, 0.25)),
		dims.Mul(geom2.New(0.5, 0.75)),
	}

	return &Game{
		size:     size,
		field:    grid.NewField(center, families, points),
		heading:  grid.Angle(geom2.New(1.0, 0.3)),
		speed:    120,
		hoverIdx: -1,
		audioCtx: audio.NewContext(sampleRate),
		blipPCM:  blip.Default.PCM(sampleRate),
	}
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	mouse := geom2.New(float64(mx), float64(my))

	g.hoverIdx = g.field.Nearest(mouse, hoverRadius)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.hoverIdx >= 0 {
			g.field.RemovePoint(g.hoverIdx)
			g.hoverIdx = -1
		} else {
			g.field.AddPoint(mouse)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.heading -= rotSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.heading += rotSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.speed += accel * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.speed = max(0, g.speed-accel*dt)
	}

	step := geom2.MulScalar(grid.FromAngle(g.heading), g.speed*dt)
	for hits := g.field.Step(step); hits > 0; hits-- {
		g.playBlip()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0D, 0x0D, 0x10, 0xFF})

	diag := geom2.Mag(geom2.New(float64(g.size.X), float64(g.size.Y)))
	for _, fam := range g.field.Families {
		for _, s := range fam.Segments(g.field.Center, diag) {
			vector.StrokeLine(screen, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), 1.5, fam.Color, true)
		}
	}

	for i, p := range g.field.Points {
		if i == g.hoverIdx {
			drawCross(screen, p, 8, color.RGBA{0xFF, 0xFF, 0x66, 0xFF})
		} else {
			drawCross(screen, p, 6, color.RGBA{0xFF, 0xEE, 0xAA, 0xFF})
		}
	}

	dir := grid.FromAngle(g.heading)
	msg := "Mouse: Left click add/remove point. Hover to highlight.  "
	msg += "Arrows: Left/Right rotate, Up/Down speed +/-\n"
	msg += fmt.Sprintf("Speed: %.1f px/s  Dir:(%.2f, %.2f)  Cardinal: %v", g.speed, dir.X, dir.Y, geom2.Cardinal(dir))
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.size.XY()
}

func drawCross(dst *ebiten.Image, p geom2.Vec2d, size float64, col color.Color) {
	h := geom2.New(size, 0.0)
	v := geom2.New(0.0, size)
	for _, arm := range []geom2.Vec2d{h, v} {
		a, b := p.Sub(arm), p.Add(arm)
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, col, true)
	}
}

// playBlip starts a new player each time so blips can overlap. Ebiten stops
// a player once it reaches the end of its buffer.
func (g *Game) playBlip() {
	pl := g.audioCtx.NewPlayerFromBytes(g.blipPCM)
	pl.Play()
}

func main() {
	game := NewGame()
	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle("Grythm - Grid Rhythm Visualizer")
	if err := ebiten.RunGame(game); err != nil {
		logrus.WithError(err).Fatal("Game stopped")
	}
}
