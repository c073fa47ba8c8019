package ebitenhost

import (
	"github.com/arcengine/arc"
	"github.com/arcengine/arc/ecs"
)

// RunConfig configures Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window and logical screen size in pixels.
	// Zero uses 1280x720.
	Width, Height int
	// TPS is the fixed update rate. Zero uses 60. Scripts receive 1/TPS as
	// their timestep.
	TPS int
	// ClearColor fills the screen before sprites are drawn.
	ClearColor arc.Color
	// PixelsPerUnit scales world units to screen pixels. Zero uses 32.
	PixelsPerUnit float32
	// ShowFPS draws the FPS/TPS overlay.
	ShowFPS bool
	// Debug shows the most recent script log lines on screen.
	Debug bool
	// Replay, when set, supplies input instead of the keyboard and mouse
	// until it is done.
	Replay *ecs.InputReplay
	// ExitOnReplayDone ends the game loop once Replay is done.
	ExitOnReplayDone bool
}

const (
	defaultWidth         = 1280
	defaultHeight        = 720
	defaultTPS           = 60
	defaultPixelsPerUnit = 32
)

// DefaultClearColor is the dark grey the engine clears to.
var DefaultClearColor = arc.NewColor(0.1, 0.1, 0.1, 1)

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.TPS <= 0 {
		c.TPS = defaultTPS
	}
	if c.PixelsPerUnit <= 0 {
		c.PixelsPerUnit = defaultPixelsPerUnit
	}
	if c.ClearColor == (arc.Color{}) {
		c.ClearColor = DefaultClearColor
	}
	return c
}

// Timestep returns the fixed update step in seconds.
func (c RunConfig) Timestep() float32 {
	return 1 / float32(c.withDefaults().TPS)
}
