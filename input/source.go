// Package input pumps tcell terminal events on a dedicated goroutine
// and decodes them into core.Key values for the tick loop.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ChrisBuilds/termgame/core"
)

// Source adapts a tcell screen into the scheduler's InputSource.
// A pump goroutine forwards events into a buffered channel so the tick
// loop never blocks on terminal reads
type Source struct {
	screen tcell.Screen
	events chan tcell.Event
}

// NewSource starts the event pump for the given screen
func NewSource(screen tcell.Screen) *Source {
	s := &Source{
		screen: screen,
		events: make(chan tcell.Event, 64),
	}
	go s.pump()
	return s
}

// pump forwards screen events until the screen is finalized
func (s *Source) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			close(s.events)
			return
		}
		s.events <- ev
	}
}

// Poll returns the next decoded keypress without blocking
func (s *Source) Poll() (core.Key, bool) {
	for {
		select {
		case ev, open := <-s.events:
			if !open {
				return core.KeyInterrupt, true
			}
			if key := s.decode(ev); key != core.KeyNone {
				return key, true
			}
			// Non-key event consumed, keep draining
		default:
			return core.KeyNone, false
		}
	}
}

// Wait blocks until a keypress arrives. Used by the pause state
func (s *Source) Wait() core.Key {
	for ev := range s.events {
		if key := s.decode(ev); key != core.KeyNone {
			return key
		}
	}
	return core.KeyInterrupt
}

// decode translates a tcell event to a core.Key; KeyNone for events the
// loop has no use for
func (s *Source) decode(ev tcell.Event) core.Key {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return core.Key(ev.Rune())
		case tcell.KeyUp:
			return core.KeyUp
		case tcell.KeyDown:
			return core.KeyDown
		case tcell.KeyLeft:
			return core.KeyLeft
		case tcell.KeyRight:
			return core.KeyRight
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return core.KeyInterrupt
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return core.KeyNone
}
