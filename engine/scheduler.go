package engine

import (
	"time"

	"github.com/ChrisBuilds/termgame/core"
)

// InputSource delivers decoded keypresses to the scheduler
type InputSource interface {
	// Poll returns the next pending key without blocking;
	// ok is false when no input is waiting
	Poll() (key core.Key, ok bool)
	// Wait blocks until a key arrives. Used only while paused
	Wait() core.Key
}

// Renderer draws one frame of the current game state
type Renderer interface {
	DrawFrame(g *Game)
}

// FrameScheduler runs the cooperative tick loop: input, update,
// move-resolution, draw. Input and logic execute every iteration;
// drawing is throttled to the configured minimum frame interval, so
// logic may run faster than the visible frame rate. Ticks never
// overlap: each phase completes before the next begins, all on the
// calling goroutine
type FrameScheduler struct {
	game       *Game
	input      InputSource
	renderer   Renderer
	frameDelay time.Duration

	lastFrameTime time.Time
	hasDrawn      bool

	// Control keys. PauseKey suspends the loop; while paused only
	// ResumeKey and QuitKey are honored
	PauseKey  core.Key
	ResumeKey core.Key
	QuitKey   core.Key
	DebugKey  core.Key
}

// NewFrameScheduler creates a scheduler with the given minimum interval
// between drawn frames
func NewFrameScheduler(g *Game, input InputSource, renderer Renderer, frameDelay time.Duration) *FrameScheduler {
	return &FrameScheduler{
		game:       g,
		input:      input,
		renderer:   renderer,
		frameDelay: frameDelay,
		PauseKey:   core.Key('q'),
		ResumeKey:  core.Key('r'),
		QuitKey:    core.Key('q'),
		DebugKey:   core.Key(':'),
	}
}

// Run executes tick iterations until quit. Returns only on an
// operator-issued quit
func (s *FrameScheduler) Run() {
	for {
		s.game.now = s.game.clock.Now()
		if !s.handleInput() {
			return
		}
		s.game.updateObjects()
		s.game.resolver.Resolve()
		s.drawFrame()
	}
}

// handleInput consumes at most one pending key per tick. Returns false
// on quit
func (s *FrameScheduler) handleInput() bool {
	key, ok := s.input.Poll()
	if !ok {
		return true
	}

	switch key {
	case core.KeyInterrupt:
		return false
	case s.PauseKey:
		return s.pause()
	case s.DebugKey:
		s.game.Debug = !s.game.Debug
	default:
		s.game.dispatchKey(key)
	}
	return true
}

// pause suspends normal ticking, drawing the paused state once and then
// blocking on input until resume or quit. Resume returns the loop to
// the top of the next tick
func (s *FrameScheduler) pause() bool {
	s.game.StatusMessage = "paused"
	s.renderer.DrawFrame(s.game)

	for {
		switch s.input.Wait() {
		case s.ResumeKey:
			s.game.StatusMessage = ""
			return true
		case s.QuitKey, core.KeyInterrupt:
			return false
		}
	}
}

// drawFrame draws if the minimum frame interval has elapsed since the
// last drawn frame. The first frame always draws
func (s *FrameScheduler) drawFrame() {
	if s.hasDrawn && s.game.now.Sub(s.lastFrameTime) <= s.frameDelay {
		return
	}
	s.renderer.DrawFrame(s.game)
	s.hasDrawn = true
	s.lastFrameTime = s.game.now
}
