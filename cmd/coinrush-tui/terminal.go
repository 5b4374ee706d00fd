package main

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/plus3/coinrush/arcade"
)

// defaultHold is how long a key counts as held after its last press event.
// Terminals report presses and auto-repeats but never releases.
const defaultHold = 150 * time.Millisecond

var glyphs = map[arcade.RoleKind]string{
	arcade.RolePlayer:  "@",
	arcade.RoleCoin:    "🪙",
	arcade.RoleEnemy:   "👾",
	arcade.RolePowerUp: "✚",
}

var speedGlyph = "⚡"

// terminal is an arcade.Frontend drawing onto a tcell screen. The bottom row
// holds the HUD; the rest maps the simulation area onto character cells.
type terminal struct {
	screen tcell.Screen
	width  float64
	height float64
	hold   time.Duration
	now    func() time.Time

	mu      sync.Mutex
	pressed map[arcade.Key]time.Time
	quit    atomic.Bool
}

func newTerminal(screen tcell.Screen, cfg arcade.Config) *terminal {
	return &terminal{
		screen:  screen,
		width:   cfg.ScreenWidth,
		height:  cfg.ScreenHeight,
		hold:    defaultHold,
		now:     time.Now,
		pressed: make(map[arcade.Key]time.Time),
	}
}

// pollEvents feeds screen events into the key state until the screen is finalized.
func (t *terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.handleEvent(ev)
	}
}

func (t *terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if key, ok := keyOf(ev); ok {
			t.mu.Lock()
			t.pressed[key] = t.now()
			t.mu.Unlock()
			return
		}
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			t.quit.Store(true)
		}
	}
}

func keyOf(ev *tcell.EventKey) (arcade.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return arcade.KeyUp, true
	case tcell.KeyDown:
		return arcade.KeyDown, true
	case tcell.KeyLeft:
		return arcade.KeyLeft, true
	case tcell.KeyRight:
		return arcade.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return arcade.KeyUp, true
		case 's', 'S':
			return arcade.KeyDown, true
		case 'a', 'A':
			return arcade.KeyLeft, true
		case 'd', 'D':
			return arcade.KeyRight, true
		}
	}
	return 0, false
}

// Keys returns the keys pressed within the hold window.
func (t *terminal) Keys() arcade.KeySet {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	var keys arcade.KeySet
	for key, at := range t.pressed {
		if now.Sub(at) > t.hold {
			delete(t.pressed, key)
			continue
		}
		keys = keys.With(key)
	}
	return keys
}

func (t *terminal) ShouldQuit() bool {
	return t.quit.Load()
}

func (t *terminal) Render(sprites []arcade.Sprite, status arcade.PlayerStatus) {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	field := rows - 1

	if field > 0 && cols > 0 {
		for _, sprite := range sprites {
			x, y := t.cell(sprite.Position, cols, field)
			glyph := glyphs[sprite.Kind]
			if sprite.Kind == arcade.RolePowerUp && sprite.PowerUp == arcade.PowerUpSpeed {
				glyph = speedGlyph
			}
			c := sprite.Color()
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			putGlyph(t.screen, x, y, glyph, style)
		}
	}

	if rows > 0 {
		putText(t.screen, 0, rows-1, status.String(), tcell.StyleDefault.Reverse(true))
	}
	t.screen.Show()
}

// cell maps a simulation position onto the playfield grid, clamping to its edges.
func (t *terminal) cell(pos arcade.Position, cols, rows int) (int, int) {
	x := int(pos.X / t.width * float64(cols))
	y := int(pos.Y / t.height * float64(rows))
	return min(max(x, 0), cols-1), min(max(y, 0), rows-1)
}

// putGlyph draws glyph at (x, y), padding the second column of wide glyphs.
func putGlyph(scr tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	scr.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		scr.SetContent(x+1, y, ' ', nil, style)
	}
}

// putText writes s starting at (x, y), advancing by each rune's cell width,
// and stops at the right edge of the screen.
func putText(scr tcell.Screen, x, y int, s string, style tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x+w > sw {
			break
		}
		scr.SetContent(x, y, r, nil, style)
		x += max(w, 1)
	}
}
