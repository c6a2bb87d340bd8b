package objects

import "github.com/ChrisBuilds/termgame/engine"

// Wall is a stationary rigidbody block. It never requests moves, so
// the resolver always reverts whoever walked into it
type Wall struct{}

// NewWall creates the wall behavior
func NewWall() *Wall {
	return &Wall{}
}

// Start configures the collision profile and sprite
func (w *Wall) Start(obj *engine.Object) {
	obj.Profile = engine.CollisionProfile{
		Collider:  true,
		Rigidbody: true,
		Layer:     0,
		Mass:      100,
		Fixed:     true,
	}
	obj.Sprites = map[string][]string{"idle": {"#"}}
	obj.SpriteKey = "idle"
}

// Update is a no-op
func (w *Wall) Update(obj *engine.Object) {}
