package engine

import "github.com/ChrisBuilds/termgame/core"

// ID is a unique identifier for a game object, assigned monotonically
// at spawn. 0 is never a valid ID
type ID uint64

// CollisionProfile defines how an object participates in occupancy
// tracking and rigidbody resolution
type CollisionProfile struct {
	Collider  bool // tracked in the spatial index
	Rigidbody bool // may not overlap another rigidbody on the same layer
	Layer     int  // only same-layer objects collide
	Mass      int  // reserved for resolution weighting
	Fixed     bool // reserved; resolver does not special-case it yet
}

// Object is a registry-owned game entity. The engine owns its identity,
// position, and collision profile; all behavior lives in the attached
// Behavior value
type Object struct {
	id      ID
	Label   string
	Parent  *Object
	Profile CollisionProfile

	pos    core.Position
	hasPos bool

	// Sprite frames keyed by visual key. An object with a position and
	// a current sprite is renderable
	Sprites   map[string][]string
	SpriteKey string
	Frame     int

	Behavior Behavior

	game *Game
}

// Behavior is the per-tick logic hook attached to an object. The engine
// calls Update once per tick during the update phase
type Behavior interface {
	Update(obj *Object)
}

// Starter is implemented by behaviors that need to configure their
// object (collision profile, sprites) or spawn children. Start runs
// once, before the object is placed into the spatial index
type Starter interface {
	Start(obj *Object)
}

// KeyHandler is implemented by behaviors that consume keyboard input.
// HandleKey is called during the input phase for every pressed key
// present in KeyMap
type KeyHandler interface {
	KeyMap() []core.Key
	HandleKey(obj *Object, key core.Key)
}

// RigidbodyHandler is implemented by behaviors that want rigidbody
// collision notifications. Peers holds every object this one conflicted
// with during the tick, across all distinct conflicts
type RigidbodyHandler interface {
	OnRigidbodyCollision(obj *Object, peers []*Object)
}

// ID returns the object's stable identifier
func (o *Object) ID() ID {
	return o.id
}

// Game returns the owning game
func (o *Object) Game() *Game {
	return o.game
}

// Position returns the object's recorded grid position. ok is false
// while the object is unpositioned
func (o *Object) Position() (core.Position, bool) {
	return o.pos, o.hasPos
}

// CurrentSprite returns the sprite frame to draw, or ok=false when the
// object has no visual key or the key resolves to no frames
func (o *Object) CurrentSprite() (string, bool) {
	frames, ok := o.Sprites[o.SpriteKey]
	if !ok || len(frames) == 0 {
		return "", false
	}
	return frames[o.Frame%len(frames)], true
}

// MoveAbs queues a relocation request to an absolute grid position.
// The move is applied during the next move-resolution phase
func (o *Object) MoveAbs(pos core.Position) {
	o.game.Move(o, pos)
}

// MoveRel queues a relocation request relative to the current recorded
// position. A relative move without a position is logged and dropped
func (o *Object) MoveRel(dRow, dCol int) {
	if !o.hasPos {
		o.game.Logf(o.Label, "relative move requested without current position: (%d,%d)", dRow, dCol)
		return
	}
	o.game.Move(o, o.pos.Add(dRow, dCol))
}

// Destroy removes this object from the registry and the spatial index
func (o *Object) Destroy() {
	o.game.Destroy(o)
}
