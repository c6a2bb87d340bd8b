package objects

import (
	"time"

	"github.com/ChrisBuilds/termgame/core"
	"github.com/ChrisBuilds/termgame/engine"
)

// chaserStepDelay throttles chaser movement to a walkable pace
// independent of the tick rate
const chaserStepDelay = 250 * time.Millisecond

// Chaser pathfinds toward the nearest player and walks the route one
// cell per step interval
type Chaser struct {
	lastStep time.Time
}

// NewChaser creates the chaser behavior
func NewChaser() *Chaser {
	return &Chaser{}
}

// Start configures the collision profile and sprite
func (c *Chaser) Start(obj *engine.Object) {
	obj.Profile = engine.CollisionProfile{
		Collider:  true,
		Rigidbody: true,
		Layer:     0,
		Mass:      1,
	}
	obj.Sprites = map[string][]string{"idle": {"&"}}
	obj.SpriteKey = "idle"
}

// Update recomputes the route to the player and queues the next step
func (c *Chaser) Update(obj *engine.Object) {
	g := obj.Game()
	if g.Elapsed(c.lastStep) < chaserStepDelay.Seconds() {
		return
	}

	pos, positioned := obj.Position()
	if !positioned {
		return
	}
	target, ok := c.playerPosition(obj)
	if !ok {
		return
	}

	path, found := g.Pathfind(pos, target)
	if !found {
		g.Logf(obj.Label, "no path to player from (%d,%d)", pos.Row, pos.Col)
		return
	}
	// The final path cell is the player itself; stop adjacent
	if len(path) < 2 {
		return
	}
	obj.MoveAbs(path[0])
	c.lastStep = g.Now()
}

// OnRigidbodyCollision logs the contact
func (c *Chaser) OnRigidbodyCollision(obj *engine.Object, peers []*engine.Object) {
	for _, peer := range peers {
		obj.Game().Logf(obj.Label, "caught up with %s %d", peer.Label, peer.ID())
	}
}

// playerPosition finds the first positioned player object
func (c *Chaser) playerPosition(obj *engine.Object) (core.Position, bool) {
	for _, player := range obj.Game().FindByLabel("player") {
		if pos, positioned := player.Position(); positioned {
			return pos, true
		}
	}
	return core.Position{}, false
}
