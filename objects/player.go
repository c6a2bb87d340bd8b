package objects

import (
	"github.com/ChrisBuilds/termgame/core"
	"github.com/ChrisBuilds/termgame/engine"
)

// Player is the operator-controlled rigidbody. Vi movement keys and
// arrows queue relative moves; the resolver decides whether they stick
type Player struct{}

// NewPlayer creates the player behavior
func NewPlayer() *Player {
	return &Player{}
}

// Start configures the collision profile and sprite
func (p *Player) Start(obj *engine.Object) {
	obj.Profile = engine.CollisionProfile{
		Collider:  true,
		Rigidbody: true,
		Layer:     0,
		Mass:      1,
	}
	obj.Sprites = map[string][]string{"idle": {"@"}}
	obj.SpriteKey = "idle"
}

// Update is a no-op; the player only reacts to input
func (p *Player) Update(obj *engine.Object) {}

// KeyMap returns the movement keys the player consumes
func (p *Player) KeyMap() []core.Key {
	return []core.Key{
		core.Key('h'), core.Key('j'), core.Key('k'), core.Key('l'),
		core.KeyLeft, core.KeyDown, core.KeyUp, core.KeyRight,
	}
}

// HandleKey queues the corresponding relative move
func (p *Player) HandleKey(obj *engine.Object, key core.Key) {
	switch key {
	case core.Key('h'), core.KeyLeft:
		obj.MoveRel(0, -1)
	case core.Key('l'), core.KeyRight:
		obj.MoveRel(0, 1)
	case core.Key('k'), core.KeyUp:
		obj.MoveRel(-1, 0)
	case core.Key('j'), core.KeyDown:
		obj.MoveRel(1, 0)
	}
}

// OnRigidbodyCollision logs each blocking peer
func (p *Player) OnRigidbodyCollision(obj *engine.Object, peers []*engine.Object) {
	for _, peer := range peers {
		obj.Game().Logf(obj.Label, "bumped into %s %d", peer.Label, peer.ID())
	}
}
