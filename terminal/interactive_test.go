package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"octoline/fillet"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewRadiusCycle(t *testing.T) {
	v := &view{corners: fillet.DefaultOptions()}

	seen := []float64{v.corners.Radius}
	for i := 0; i < len(radiusSteps); i++ {
		quit, rerender := v.handleKey(key('r'))
		if quit {
			t.Fatal("r must not quit")
		}
		if !rerender {
			t.Fatal("radius change must re-render")
		}
		seen = append(seen, v.corners.Radius)
	}

	// A full cycle returns to the starting radius.
	if seen[0] != seen[len(seen)-1] {
		t.Errorf("radius cycle %v did not wrap around", seen)
	}
	if seen[1] == seen[0] {
		t.Error("first press must change the radius")
	}
}

func TestViewCornerModeToggle(t *testing.T) {
	v := &view{corners: fillet.DefaultOptions()}

	if _, rerender := v.handleKey(key('c')); !rerender {
		t.Fatal("mode change must re-render")
	}
	if v.corners.Mode != fillet.ModeArc {
		t.Errorf("Mode = %v after one press, want arc", v.corners.Mode)
	}
	v.handleKey(key('c'))
	if v.corners.Mode != fillet.ModeCubic {
		t.Errorf("Mode = %v after two presses, want cubic", v.corners.Mode)
	}
}

func TestViewQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		v := &view{}
		if quit, _ := v.handleKey(ev); !quit {
			t.Errorf("event %v must quit", ev.Key())
		}
	}
}

func TestViewPan(t *testing.T) {
	v := &view{}
	v.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	v.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if v.offsetX != 2 || v.offsetY != 1 {
		t.Errorf("offsets = (%d, %d), want (2, 1)", v.offsetX, v.offsetY)
	}
}

func TestViewStatus(t *testing.T) {
	v := &view{corners: fillet.Options{Radius: 0.25, Mode: fillet.ModeArc}}
	s := v.status()
	if !strings.Contains(s, "0.25") || !strings.Contains(s, "arc") {
		t.Errorf("status %q missing corner state", s)
	}
}
