// Package terminal provides an interactive preview of a routed map in
// the terminal, with arrow-key panning and corner-smoothing toggles.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"octoline/fillet"
	"octoline/line"
	"octoline/render"
)

// cellColors maps map-file color names onto terminal colors.
var cellColors = map[string]tcell.Color{
	"red":    tcell.ColorRed,
	"green":  tcell.ColorGreen,
	"blue":   tcell.ColorBlue,
	"yellow": tcell.ColorYellow,
	"purple": tcell.ColorPurple,
	"orange": tcell.ColorOrange,
}

// radiusSteps are the corner radii the r key cycles through. Zero
// renders sharp corner runes.
var radiusSteps = []float64{0, 0.25, 0.5, 0.75, 1}

// view is the mutable state of one preview session.
type view struct {
	offsetX, offsetY int
	corners          fillet.Options
}

// handleKey applies one key event to the view. It reports whether the
// session should end and whether the canvas needs re-rendering.
func (v *view) handleKey(ev *tcell.EventKey) (quit, rerender bool) {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return true, false
	case ev.Rune() == 'q':
		return true, false
	case ev.Rune() == 'r':
		v.corners.Radius = nextRadius(v.corners.Radius)
		return false, true
	case ev.Rune() == 'c':
		if v.corners.Mode == fillet.ModeCubic {
			v.corners.Mode = fillet.ModeArc
		} else {
			v.corners.Mode = fillet.ModeCubic
		}
		return false, true
	case ev.Key() == tcell.KeyLeft:
		v.offsetX -= 2
	case ev.Key() == tcell.KeyRight:
		v.offsetX += 2
	case ev.Key() == tcell.KeyUp:
		v.offsetY--
	case ev.Key() == tcell.KeyDown:
		v.offsetY++
	}
	return false, false
}

// nextRadius returns the step after the current radius, wrapping
// around. An off-grid radius restarts the cycle.
func nextRadius(cur float64) float64 {
	for i, r := range radiusSteps {
		if r == cur {
			return radiusSteps[(i+1)%len(radiusSteps)]
		}
	}
	return radiusSteps[0]
}

// status returns the key-help line with the current corner state.
func (v *view) status() string {
	return fmt.Sprintf("arrows: pan   r: radius (%.2f)   c: corners (%s)   q: quit",
		v.corners.Radius, v.corners.Mode)
}

// Run renders the routed map to the terminal and blocks until the
// user quits with q, Esc or Ctrl-C. Arrow keys pan the view; r cycles
// the corner radius and c flips the corner mode.
func Run(m *line.Map) error {
	routed, err := line.RouteAll(m)
	if err != nil {
		return err
	}

	v := &view{corners: fillet.DefaultOptions()}
	renderCanvas := func() *render.Canvas {
		renderer := render.NewPathRenderer()
		renderer.Rounded = v.corners.Radius > 0
		return renderer.RenderMap(m, routed)
	}
	canvas := renderCanvas()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	for {
		draw(screen, canvas, v)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			quit, rerender := v.handleKey(ev)
			if quit {
				return nil
			}
			if rerender {
				canvas = renderCanvas()
			}
		}
	}
}

func draw(screen tcell.Screen, canvas *render.Canvas, v *view) {
	screen.Clear()
	sw, sh := screen.Size()
	cw, ch := canvas.Size()

	for y := 0; y < sh-1; y++ {
		for x := 0; x < sw; x++ {
			cx, cy := x+v.offsetX, y+v.offsetY
			if cx < 0 || cx >= cw || cy < 0 || cy >= ch {
				continue
			}
			cell := canvas.Get(cx, cy)
			if cell.Rune == ' ' {
				continue
			}
			style := tcell.StyleDefault
			if c, ok := cellColors[cell.Color]; ok {
				style = style.Foreground(c)
			}
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}

	for i, r := range v.status() {
		screen.SetContent(i, sh-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}
