package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/coinrush/arcade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 25)
	t.Cleanup(ss.Fini)
	return ss
}

func newTestTerminal(t *testing.T) (*terminal, *time.Time) {
	t.Helper()
	term := newTerminal(newSimScreen(t), arcade.DefaultConfig())
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	term.now = func() time.Time { return clock }
	return term, &clock
}

func rowText(ss tcell.SimulationScreen, y, width int) string {
	var out []rune
	for x := 0; x < width; x++ {
		r, _, _, _ := ss.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestTerminalKeys(t *testing.T) {
	term, clock := newTestTerminal(t)

	term.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	assert.Equal(t, arcade.NewKeySet(arcade.KeyUp, arcade.KeyRight), term.Keys())

	*clock = clock.Add(100 * time.Millisecond)
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	*clock = clock.Add(100 * time.Millisecond)
	assert.Equal(t, arcade.NewKeySet(arcade.KeyRight), term.Keys(), "up expired, right was repeated")

	*clock = clock.Add(time.Second)
	assert.Equal(t, arcade.KeySet(0), term.Keys())
	assert.False(t, term.ShouldQuit())
}

func TestTerminalQuit(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		term, _ := newTestTerminal(t)
		term.handleEvent(ev)
		assert.True(t, term.ShouldQuit(), ev.Name())
	}
}

func TestTerminalRender(t *testing.T) {
	term, _ := newTestTerminal(t)
	ss := term.screen.(tcell.SimulationScreen)

	sprites := []arcade.Sprite{
		{Position: arcade.Position{X: 400, Y: 300}, Kind: arcade.RolePlayer},
		{Position: arcade.Position{X: -50, Y: 9999}, Kind: arcade.RoleEnemy},
	}
	term.Render(sprites, arcade.PlayerStatus{Found: true, Score: 20, Health: 90})

	// 800x600 onto 80 columns and 24 playfield rows
	r, _, _, _ := ss.GetContent(40, 12)
	assert.Equal(t, '@', r)

	r, _, _, _ = ss.GetContent(0, 23)
	assert.Equal(t, '👾', r, "clamped to the playfield")

	assert.Contains(t, rowText(ss, 24, 80), "Score: 20  Health: 90")
}

func TestTerminalCell(t *testing.T) {
	term, _ := newTestTerminal(t)

	x, y := term.cell(arcade.Position{X: 0, Y: 0}, 80, 24)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})

	x, y = term.cell(arcade.Position{X: 800, Y: 600}, 80, 24)
	assert.Equal(t, [2]int{79, 23}, [2]int{x, y})

	x, y = term.cell(arcade.Position{X: 215, Y: 150}, 80, 24)
	assert.Equal(t, [2]int{21, 6}, [2]int{x, y})
}

func TestPutTextStopsAtEdge(t *testing.T) {
	ss := newSimScreen(t)
	ss.SetSize(5, 1)

	putText(ss, 0, 0, "abcdefgh", tcell.StyleDefault)
	assert.Equal(t, "abcde", rowText(ss, 0, 5))
}
