package engine

import (
	"time"

	"github.com/ChrisBuilds/termgame/core"
	"github.com/ChrisBuilds/termgame/navigation"
)

// Game owns the simulation state for one world: the object registry,
// the layered spatial index, the conflict resolver, and the debug log.
// All mutation happens on the single tick goroutine; no locking
type Game struct {
	Bounds core.Area
	Debug  bool

	// StatusMessage is drawn by the renderer when non-empty
	// (e.g. "paused")
	StatusMessage string

	// CollisionCue, when set, is invoked once per tick in which at
	// least one rigidbody conflict occurred
	CollisionCue func()

	registry *Registry
	index    *SpatialIndex
	resolver *ConflictResolver
	log      *DebugLog

	clock     Clock
	startTime time.Time
	now       time.Time
}

// NewGame creates a game bounded to the given grid area
func NewGame(bounds core.Area, clock Clock) *Game {
	g := &Game{
		Bounds:   bounds,
		registry: NewRegistry(),
		index:    NewSpatialIndex(),
		log:      NewDebugLog(),
		clock:    clock,
	}
	g.resolver = newConflictResolver(g)
	g.startTime = clock.Now()
	g.now = g.startTime
	return g
}

// RegisterFactory binds a spawnable resource label to a behavior
// factory. Registration happens at startup, before the loop runs
func (g *Game) RegisterFactory(label string, f Factory) {
	g.registry.RegisterFactory(label, f)
}

// Spawn instantiates the labeled resource without a position. Returns
// nil (and logs) for an unknown label
func (g *Game) Spawn(label string, parent *Object) *Object {
	return g.spawn(label, nil, parent)
}

// SpawnAt instantiates the labeled resource at a grid position. The
// object enters the spatial index immediately if its profile marks it
// a collider
func (g *Game) SpawnAt(label string, pos core.Position, parent *Object) *Object {
	return g.spawn(label, &pos, parent)
}

func (g *Game) spawn(label string, pos *core.Position, parent *Object) *Object {
	factory, ok := g.registry.Factory(label)
	if !ok {
		g.Logf("game", "unable to spawn %q: label not registered", label)
		return nil
	}

	obj := g.registry.create(g, label, nil, parent)
	obj.Behavior = factory(g)

	// Start runs before placement so the behavior can set the
	// collision profile the index insertion depends on
	if starter, ok := obj.Behavior.(Starter); ok {
		starter.Start(obj)
	}

	if pos != nil {
		obj.pos = *pos
		obj.hasPos = true
		if obj.Profile.Collider {
			g.index.Add(obj.Profile.Layer, obj.pos, obj)
		}
	}
	return obj
}

// Destroy removes an object from the registry and the spatial index
func (g *Game) Destroy(obj *Object) {
	g.registry.remove(obj.id)
	if obj.hasPos {
		g.index.Remove(obj.Profile.Layer, obj.pos, obj)
	}
}

// Move queues a relocation request for the next move-resolution phase
func (g *Game) Move(obj *Object, target core.Position) {
	g.resolver.Request(obj, target)
}

// FindByLabel returns all active objects with the given label
func (g *Game) FindByLabel(label string) []*Object {
	return g.registry.FindByLabel(label)
}

// EachObject visits every active object in spawn order
func (g *Game) EachObject(fn func(obj *Object)) {
	g.registry.Each(fn)
}

// ObjectsAt returns the indexed objects at a position across all
// layers, keyed by layer
func (g *Game) ObjectsAt(pos core.Position) map[int][]*Object {
	found := make(map[int][]*Object)
	g.index.Each(func(layer int, bucketPos core.Position, objs []*Object) bool {
		if bucketPos == pos {
			copied := make([]*Object, len(objs))
			copy(copied, objs)
			found[layer] = copied
		}
		return true
	})
	return found
}

// ObjectsAtLayer returns the indexed objects at a position on one layer
func (g *Game) ObjectsAtLayer(layer int, pos core.Position) []*Object {
	return g.index.AllAt(layer, pos)
}

// Pathfind searches for a 4-connected shortest path between two grid
// positions within the game bounds. ok is false when the target is
// unreachable. The search reads only the boundary, never live
// occupancy, so it is safe to call from any behavior at any point in
// the tick
func (g *Game) Pathfind(from, to core.Position) ([]core.Position, bool) {
	return navigation.FindPath(from, to, g.Bounds)
}

// Now returns the time sampled at the top of the current tick
func (g *Game) Now() time.Time {
	return g.now
}

// Elapsed returns seconds since then, measured against tick time
func (g *Game) Elapsed(then time.Time) float64 {
	return g.now.Sub(then).Seconds()
}

// Logf pushes a formatted entry onto the in-screen debug log
func (g *Game) Logf(label, format string, args ...any) {
	g.log.Pushf(g.now.Sub(g.startTime), label, format, args...)
}

// LogEntries returns the debug log contents, newest first
func (g *Game) LogEntries() []string {
	return g.log.Entries()
}

// updateObjects runs the update phase: every active object's behavior,
// in spawn order. Behaviors may spawn, destroy, and queue moves
func (g *Game) updateObjects() {
	g.registry.Each(func(obj *Object) {
		if obj.Behavior != nil {
			obj.Behavior.Update(obj)
		}
	})
}

// dispatchKey routes a pressed key to every behavior whose key map
// contains it
func (g *Game) dispatchKey(key core.Key) {
	g.registry.Each(func(obj *Object) {
		handler, ok := obj.Behavior.(KeyHandler)
		if !ok {
			return
		}
		for _, mapped := range handler.KeyMap() {
			if mapped == key {
				handler.HandleKey(obj, key)
				return
			}
		}
	})
}
