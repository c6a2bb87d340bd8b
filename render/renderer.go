// Package render draws game frames to a tcell screen: renderable
// objects, the status banner, and the in-frame debug console.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ChrisBuilds/termgame/core"
	"github.com/ChrisBuilds/termgame/engine"
)

// statusCol is where the status banner is anchored on the top row
const statusCol = 30

// ScreenRenderer implements engine.Renderer on a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
	styles map[int]tcell.Style // per-layer styles
	debug  tcell.Style
	status tcell.Style
}

// New creates a renderer for the given screen
func New(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		styles: make(map[int]tcell.Style),
		debug:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		status: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// SetLayerStyle assigns a drawing style to all objects on a layer
func (r *ScreenRenderer) SetLayerStyle(layer int, style tcell.Style) {
	r.styles[layer] = style
}

// DrawFrame erases the screen, draws every renderable object within
// bounds, overlays the debug console and status banner, and flushes
func (r *ScreenRenderer) DrawFrame(g *engine.Game) {
	r.screen.Clear()

	g.EachObject(func(obj *engine.Object) {
		pos, positioned := obj.Position()
		sprite, visible := obj.CurrentSprite()
		if !positioned || !visible || !g.Bounds.Contains(pos) {
			return
		}
		style, ok := r.styles[obj.Profile.Layer]
		if !ok {
			style = tcell.StyleDefault
		}
		r.drawString(pos, sprite, style, g.Bounds)
	})

	if g.Debug {
		r.drawDebugConsole(g)
	}
	if g.StatusMessage != "" {
		r.drawString(core.Position{Row: 0, Col: statusCol}, "["+g.StatusMessage+"]", r.status, g.Bounds)
	}

	r.screen.Show()
}

// drawDebugConsole renders the newest log entries over the bottom rows,
// capped to roughly a third of the grid height
func (r *ScreenRenderer) drawDebugConsole(g *engine.Game) {
	consoleRows := (g.Bounds.MaxRow * 3) / 10
	entries := g.LogEntries()
	if len(entries) > consoleRows {
		entries = entries[:consoleRows]
	}
	for i, entry := range entries {
		row := g.Bounds.MaxRow - (i + 1)
		if row < 0 {
			break
		}
		r.drawString(core.Position{Row: row, Col: 0}, entry, r.debug, g.Bounds)
	}
}

// drawString writes runes left to right from pos, clipped to bounds
func (r *ScreenRenderer) drawString(pos core.Position, s string, style tcell.Style, bounds core.Area) {
	col := pos.Col
	for _, ch := range s {
		if col > bounds.MaxCol {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, pos.Row, ch, nil, style)
		}
		col++
	}
}
