package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/arcengine/arc"
	"github.com/arcengine/arc/ecs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Game adapts an ecs.World and its script runtime to ebiten.Game.
type Game struct {
	world   *ecs.World
	runtime *arc.Runtime
	cfg     RunConfig

	overlay *overlay
}

var _ ebiten.Game = (*Game)(nil)

// NewGame returns a Game that drives world and rt with cfg.
func NewGame(world *ecs.World, rt *arc.Runtime, cfg RunConfig) *Game {
	g := &Game{world: world, runtime: rt, cfg: cfg.withDefaults()}
	if g.cfg.ShowFPS || g.cfg.Debug {
		g.overlay = newOverlay(g.cfg.ShowFPS)
	}
	if g.cfg.Debug {
		ecs.LogEventType.Subscribe(world.Donburi(), func(_ donburi.World, e ecs.LogEvent) {
			g.overlay.addLog(fmt.Sprintf("[%s] %s", e.Level, e.Message))
		})
	}
	return g
}

// Update feeds input into the world, runs every script with a fixed
// timestep of 1/TPS, then steps the world. Input comes from the configured
// replay while it runs and from the keyboard and mouse otherwise.
func (g *Game) Update() error {
	if r := g.cfg.Replay; r != nil && !r.Done() {
		r.Step(g.world)
	} else if r != nil && g.cfg.ExitOnReplayDone {
		return ebiten.Termination
	} else {
		pollInput(g.world)
	}
	dt := 1 / float32(g.cfg.TPS)
	g.runtime.Update(dt)
	g.world.Step(dt)
	if g.overlay != nil {
		g.overlay.update(float64(dt))
	}
	return nil
}

// Draw clears the screen and draws every sprite as a tinted quad.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.RGBA())
	pixel := ensureWhitePixel()
	var op ebiten.DrawImageOptions
	for _, s := range g.world.Sprites() {
		op.GeoM = spriteGeoM(s.Transform, g.cfg)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(s.Renderer.Color.RGBA())
		screen.DrawImage(pixel, &op)
	}
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs world and rt until the window is closed.
// Scripts still attached when the loop exits are destroyed.
func Run(world *ecs.World, rt *arc.Runtime, cfg RunConfig) error {
	g := NewGame(world, rt, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetTPS(g.cfg.TPS)

	arc.Logger().Info("starting game loop",
		zap.String("title", g.cfg.Title),
		zap.Int("width", g.cfg.Width),
		zap.Int("height", g.cfg.Height),
		zap.Int("tps", g.cfg.TPS))

	err := ebiten.RunGame(g)
	rt.DestroyAll()
	if err != nil {
		return fmt.Errorf("arc/ebitenhost: run: %w", err)
	}
	return nil
}

// WorldToScreen maps a world position to screen pixels. The world origin is
// the screen center and world Y points up.
func WorldToScreen(p arc.Vector2, cfg RunConfig) (float64, float64) {
	cfg = cfg.withDefaults()
	ppu := float64(cfg.PixelsPerUnit)
	x := float64(cfg.Width)/2 + float64(p.X())*ppu
	y := float64(cfg.Height)/2 - float64(p.Y())*ppu
	return x, y
}

// spriteGeoM places a 1x1 pixel as a unit quad centered on the transform's
// translation, scaled by its X/Y scale and rotated by its Z rotation.
func spriteGeoM(t arc.Transform, cfg RunConfig) ebiten.GeoM {
	ppu := float64(cfg.PixelsPerUnit)
	var m ebiten.GeoM
	m.Translate(-0.5, -0.5)
	m.Scale(float64(t.Scale.X())*ppu, float64(t.Scale.Y())*ppu)
	// Screen Y points down, so a counter-clockwise world rotation is
	// clockwise on screen.
	m.Rotate(-float64(t.Rotation.Z()))
	x, y := WorldToScreen(t.Translation.XY(), cfg)
	m.Translate(x, y)
	return m
}

// --- White pixel singleton (single-threaded, like the game loop) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
