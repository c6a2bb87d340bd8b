package engine

import (
	"testing"
	"time"

	"github.com/ChrisBuilds/termgame/core"
)

// scriptedInput replays a fixed key sequence. KeyNone entries simulate
// polls with no input pending; an exhausted script quits the loop
type scriptedInput struct {
	polls []core.Key
	waits []core.Key
}

func (s *scriptedInput) Poll() (core.Key, bool) {
	if len(s.polls) == 0 {
		return core.KeyInterrupt, true
	}
	k := s.polls[0]
	s.polls = s.polls[1:]
	if k == core.KeyNone {
		return core.KeyNone, false
	}
	return k, true
}

func (s *scriptedInput) Wait() core.Key {
	if len(s.waits) == 0 {
		return core.KeyInterrupt
	}
	k := s.waits[0]
	s.waits = s.waits[1:]
	return k
}

// recordingRenderer counts frames and captures the status banner shown
// on each
type recordingRenderer struct {
	frames   int
	statuses []string
}

func (r *recordingRenderer) DrawFrame(g *Game) {
	r.frames++
	r.statuses = append(r.statuses, g.StatusMessage)
}

func idleKeys(n int) []core.Key {
	keys := make([]core.Key, n)
	return keys
}

func newSchedulerGame() (*Game, *MockClock) {
	clock := NewMockClock(time.Unix(100, 0))
	g := NewGame(core.Area{MaxRow: 23, MaxCol: 79}, clock)
	return g, clock
}

func TestSchedulerThrottlesDrawingNotLogic(t *testing.T) {
	g, clock := newSchedulerGame()
	clock.SetStep(time.Millisecond)

	b := &stubBehavior{}
	spawnStub(t, g, "ticker", b, core.Position{Row: 0, Col: 0})

	input := &scriptedInput{polls: idleKeys(20)}
	renderer := &recordingRenderer{}
	s := NewFrameScheduler(g, input, renderer, 5*time.Millisecond)
	s.Run()

	// 20 idle iterations plus the quitting one; logic ran on all 20,
	// the quit iteration exits before its update phase
	if b.updates != 20 {
		t.Errorf("updates = %d, want 20", b.updates)
	}
	// Draws land at t+0, t+6, t+12, t+18 with a 1ms tick and a 5ms
	// minimum interval
	if renderer.frames != 4 {
		t.Errorf("frames = %d, want 4", renderer.frames)
	}
}

func TestSchedulerDrawsFirstFrameImmediately(t *testing.T) {
	g, _ := newSchedulerGame()

	input := &scriptedInput{polls: idleKeys(1)}
	renderer := &recordingRenderer{}
	s := NewFrameScheduler(g, input, renderer, time.Hour)
	s.Run()

	if renderer.frames != 1 {
		t.Errorf("frames = %d, want the first frame drawn despite the interval", renderer.frames)
	}
}

func TestSchedulerPauseAndResume(t *testing.T) {
	g, _ := newSchedulerGame()
	b := &stubBehavior{}
	spawnStub(t, g, "ticker", b, core.Position{Row: 0, Col: 0})

	input := &scriptedInput{
		polls: []core.Key{core.Key('q')},
		waits: []core.Key{core.Key('x'), core.Key('r')}, // 'x' ignored while paused
	}
	renderer := &recordingRenderer{}
	s := NewFrameScheduler(g, input, renderer, 0)
	s.Run()

	pausedDrawn := false
	for _, status := range renderer.statuses {
		if status == "paused" {
			pausedDrawn = true
		}
	}
	if !pausedDrawn {
		t.Errorf("paused state never drawn; statuses = %v", renderer.statuses)
	}
	if g.StatusMessage != "" {
		t.Errorf("status banner not cleared on resume: %q", g.StatusMessage)
	}
	// One tick ran after resume before the script quit
	if b.updates != 1 {
		t.Errorf("updates = %d, want 1 after resume", b.updates)
	}
}

func TestSchedulerQuitWhilePaused(t *testing.T) {
	g, _ := newSchedulerGame()
	b := &stubBehavior{}
	spawnStub(t, g, "ticker", b, core.Position{Row: 0, Col: 0})

	input := &scriptedInput{
		polls: []core.Key{core.Key('q')},
		waits: []core.Key{core.Key('q')},
	}
	s := NewFrameScheduler(g, input, &recordingRenderer{}, 0)
	s.Run()

	if b.updates != 0 {
		t.Errorf("updates = %d, want 0 when quitting from pause", b.updates)
	}
}

// keyStub extends the stub with a key map for dispatch tests
type keyStub struct {
	stubBehavior
	keys    []core.Key
	handled []core.Key
}

func (b *keyStub) KeyMap() []core.Key { return b.keys }

func (b *keyStub) HandleKey(obj *Object, key core.Key) {
	b.handled = append(b.handled, key)
}

func TestSchedulerDispatchesMappedKeysOnly(t *testing.T) {
	g, _ := newSchedulerGame()
	b := &keyStub{keys: []core.Key{core.Key('h'), core.KeyUp}}
	g.RegisterFactory("handler", func(*Game) Behavior { return b })
	if g.SpawnAt("handler", core.Position{Row: 1, Col: 1}, nil) == nil {
		t.Fatal("failed to spawn handler")
	}

	input := &scriptedInput{
		polls: []core.Key{core.Key('z'), core.Key('h'), core.KeyUp},
	}
	s := NewFrameScheduler(g, input, &recordingRenderer{}, 0)
	s.Run()

	if len(b.handled) != 2 || b.handled[0] != core.Key('h') || b.handled[1] != core.KeyUp {
		t.Errorf("handled = %v, want [h KeyUp]", b.handled)
	}
}

func TestSchedulerTogglesDebugConsole(t *testing.T) {
	g, _ := newSchedulerGame()
	g.Debug = false

	input := &scriptedInput{polls: []core.Key{core.Key(':')}}
	s := NewFrameScheduler(g, input, &recordingRenderer{}, 0)
	s.Run()

	if !g.Debug {
		t.Errorf("debug console not toggled on")
	}
}
