package ebitenhost

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const maxOverlayLogs = 8

// overlay draws FPS/TPS and recent script log lines in the top-left corner.
// The FPS text refreshes every ~0.5 seconds.
type overlay struct {
	showFPS    bool
	fpsText    string
	lastUpdate float64
	logs       []string
}

func newOverlay(showFPS bool) *overlay {
	return &overlay{showFPS: showFPS}
}

func (o *overlay) addLog(line string) {
	o.logs = append(o.logs, line)
	if n := len(o.logs); n > maxOverlayLogs {
		o.logs = o.logs[n-maxOverlayLogs:]
	}
}

func (o *overlay) update(dt float64) {
	if !o.showFPS {
		return
	}
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 && o.fpsText != "" {
		return
	}
	o.lastUpdate = 0
	o.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *overlay) text() string {
	var b strings.Builder
	if o.showFPS {
		b.WriteString(o.fpsText)
		b.WriteByte('\n')
	}
	for _, l := range o.logs {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func (o *overlay) draw(screen *ebiten.Image) {
	txt := o.text()
	if txt == "" {
		return
	}
	lines := strings.Count(txt, "\n")
	// ebitenutil's debug font is 6x16.
	w, h := 0, lines*16+4
	for _, l := range strings.Split(txt, "\n") {
		w = max(w, len(l)*6+4)
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 128})
	screen.DrawImage(ensureWhitePixel(), &op)
	ebitenutil.DebugPrint(screen, txt)
}
