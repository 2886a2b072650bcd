package chase

import (
	"fmt"
	"math"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Visual characters for rendering
const (
	AvatarChar  = 'C'
	PursuerChar = 'M'
	PickupChar  = '•'
	WallChar    = '█'
)

const (
	hudHeight = 2 // Status line plus separator
	minViewW  = 20
	minViewH  = 6
)

// ScreenSink draws frames into a character screen, scaling world units to cells.
type ScreenSink struct {
	dst    *core.Screen
	Paused bool // Overlay the pause message
}

// NewScreenSink creates a sink drawing into dst.
func NewScreenSink(dst *core.Screen) *ScreenSink {
	return &ScreenSink{dst: dst}
}

// viewport maps world coordinates onto the playfield area below the HUD.
type viewport struct {
	top        int
	cols, rows int
	sx, sy     float64
}

func newViewport(dst *core.Screen, b Bounds) viewport {
	v := viewport{
		top:  hudHeight,
		cols: dst.Width(),
		rows: dst.Height() - hudHeight,
	}
	if b.W > 0 && b.H > 0 {
		v.sx = float64(v.cols) / b.W
		v.sy = float64(v.rows) / b.H
	}
	return v
}

// cell returns the screen cell containing world point p.
func (v viewport) cell(p core.Vec) (int, int) {
	x := core.Clamp(int(p.X*v.sx), 0, v.cols-1)
	y := core.Clamp(int(p.Y*v.sy), 0, v.rows-1)
	return x, v.top + y
}

// rect returns the cells covered by box b, at least one cell in each direction.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left() * v.sx))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := int(math.Floor(b.Top() * v.sy))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0, x1 = max(x0, 0), min(x1, v.cols)
	y0, y1 = max(y0, 0), min(y1, v.rows)
	return core.NewRect(x0, v.top+y0, x1-x0, y1-y0)
}

// Draw renders the frame: HUD, walls, pickups, pursuers, avatar, overlays.
func (s *ScreenSink) Draw(f Frame) {
	dst := s.dst
	dst.Clear()

	s.drawHUD(f)

	view := newViewport(dst, f.Bounds)
	if view.cols < minViewW || view.rows < minViewH {
		s.drawCenteredMessage("Window too small", "Resize to continue")
		return
	}

	for _, o := range f.Obstacles {
		dst.DrawRectColored(view.rect(o), WallChar, core.ColorGray)
	}
	for _, p := range f.Pickups {
		x, y := view.cell(p.Center)
		dst.SetColored(x, y, PickupChar, core.ColorBrightWhite)
	}
	for _, p := range f.Pursuers {
		x, y := view.cell(p.Center)
		dst.SetColored(x, y, PursuerChar, core.ColorRed)
	}
	x, y := view.cell(f.Avatar.Center)
	dst.SetColored(x, y, AvatarChar, core.ColorYellow)

	switch {
	case f.Terminal == Won:
		s.drawCenteredMessage("You Win!", fmt.Sprintf("Collected %d/%d  |  R restart  Q quit", f.Collected, f.Total))
	case f.Terminal == Lost:
		s.drawCenteredMessage("Caught!", fmt.Sprintf("Collected %d/%d", f.Collected, f.Total))
	case s.Paused:
		s.drawCenteredMessage("PAUSED", "Press P to resume")
	}
}

func (s *ScreenSink) drawHUD(f Frame) {
	hud := fmt.Sprintf(" Maze Chase  Pickups: %d/%d  Frame: %d", f.Collected, f.Total, f.Number)
	s.dst.DrawTextColored(0, 0, hud, core.ColorCyan)
	for x, w := 0, s.dst.Width(); x < w; x++ {
		s.dst.Set(x, 1, '─')
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (s *ScreenSink) drawCenteredMessage(title, subtitle string) {
	dst := s.dst
	titleLen, subLen := len([]rune(title)), len([]rune(subtitle))

	boxW := max(titleLen, subLen) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
