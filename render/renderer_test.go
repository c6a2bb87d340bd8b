package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ChrisBuilds/termgame/core"
	"github.com/ChrisBuilds/termgame/engine"
)

// mockScreen captures SetContent writes; the embedded interface covers
// the methods the renderer never touches
type mockScreen struct {
	tcell.Screen
	cells map[[2]int]rune // keyed (col, row)
	shown int
}

func newMockScreen() *mockScreen {
	return &mockScreen{cells: make(map[[2]int]rune)}
}

func (m *mockScreen) Clear() {
	m.cells = make(map[[2]int]rune)
}

func (m *mockScreen) Show() {
	m.shown++
}

func (m *mockScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = primary
}

// rowString reads back a horizontal span as a string, with spaces for
// unset cells
func (m *mockScreen) rowString(row, fromCol, toCol int) string {
	var b strings.Builder
	for col := fromCol; col <= toCol; col++ {
		ch, ok := m.cells[[2]int{col, row}]
		if !ok {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

type glyph struct {
	sprite string
	layer  int
}

func (b *glyph) Start(obj *engine.Object) {
	obj.Profile = engine.CollisionProfile{Collider: true, Layer: b.layer}
	obj.Sprites = map[string][]string{"idle": {b.sprite}}
	obj.SpriteKey = "idle"
}

func (b *glyph) Update(obj *engine.Object) {}

func newRenderGame() *engine.Game {
	return engine.NewGame(core.Area{MaxRow: 23, MaxCol: 79}, engine.NewMockClock(time.Unix(0, 0)))
}

func spawnGlyph(t *testing.T, g *engine.Game, sprite string, layer int, pos core.Position) {
	t.Helper()
	g.RegisterFactory("glyph", func(*engine.Game) engine.Behavior {
		return &glyph{sprite: sprite, layer: layer}
	})
	if g.SpawnAt("glyph", pos, nil) == nil {
		t.Fatalf("failed to spawn glyph %q", sprite)
	}
}

func TestDrawFrameRendersObjects(t *testing.T) {
	g := newRenderGame()
	g.Debug = false
	spawnGlyph(t, g, "@", 0, core.Position{Row: 3, Col: 4})

	screen := newMockScreen()
	r := New(screen)
	r.DrawFrame(g)

	if got := screen.cells[[2]int{4, 3}]; got != '@' {
		t.Errorf("cell (4,3) = %q, want @", got)
	}
	if screen.shown != 1 {
		t.Errorf("Show called %d times, want 1", screen.shown)
	}
}

func TestDrawFrameSkipsOutOfBounds(t *testing.T) {
	g := newRenderGame()
	g.Debug = false
	spawnGlyph(t, g, "@", 0, core.Position{Row: g.Bounds.MaxRow + 5, Col: 0})

	screen := newMockScreen()
	New(screen).DrawFrame(g)

	if len(screen.cells) != 0 {
		t.Errorf("out-of-bounds object drawn: %v", screen.cells)
	}
}

func TestDrawFrameClipsAtRightEdge(t *testing.T) {
	g := newRenderGame()
	g.Debug = false
	spawnGlyph(t, g, "#####", 0, core.Position{Row: 0, Col: g.Bounds.MaxCol - 1})

	screen := newMockScreen()
	New(screen).DrawFrame(g)

	if got := screen.rowString(0, g.Bounds.MaxCol-1, g.Bounds.MaxCol); got != "##" {
		t.Errorf("edge span = %q, want the clipped sprite", got)
	}
	if _, drawn := screen.cells[[2]int{g.Bounds.MaxCol + 1, 0}]; drawn {
		t.Errorf("sprite drawn past the grid edge")
	}
}

func TestDrawFrameStatusBanner(t *testing.T) {
	g := newRenderGame()
	g.Debug = false
	g.StatusMessage = "paused"

	screen := newMockScreen()
	New(screen).DrawFrame(g)

	banner := "[paused]"
	if got := screen.rowString(0, statusCol, statusCol+len(banner)-1); got != banner {
		t.Errorf("banner = %q, want %q", got, banner)
	}
}

func TestDrawFrameDebugConsole(t *testing.T) {
	g := newRenderGame()
	g.Debug = true
	g.Logf("test", "hello console")

	screen := newMockScreen()
	New(screen).DrawFrame(g)

	row := g.Bounds.MaxRow - 1
	if got := screen.rowString(row, 0, g.Bounds.MaxCol); !strings.Contains(got, "hello console") {
		t.Errorf("console row = %q, want the log entry", got)
	}

	// Console hidden when debug is off
	g.Debug = false
	screen = newMockScreen()
	New(screen).DrawFrame(g)
	if got := screen.rowString(row, 0, g.Bounds.MaxCol); strings.Contains(got, "hello console") {
		t.Errorf("console drawn with debug off")
	}
}

func TestLayerStylesApplied(t *testing.T) {
	g := newRenderGame()
	g.Debug = false
	spawnGlyph(t, g, "x", 2, core.Position{Row: 1, Col: 1})

	screen := newMockScreen()
	r := New(screen)
	r.SetLayerStyle(2, tcell.StyleDefault.Foreground(tcell.ColorRed))
	r.DrawFrame(g)

	if got := screen.cells[[2]int{1, 1}]; got != 'x' {
		t.Errorf("styled layer object not drawn, cell = %q", got)
	}
}
