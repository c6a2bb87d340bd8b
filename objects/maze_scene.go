package objects

import (
	"github.com/ChrisBuilds/termgame/engine"
	"github.com/ChrisBuilds/termgame/layout"
)

// mazeBraiding leaves a few loops so the chaser cannot be shaken off at
// a dead end
const mazeBraiding = 0.15

// MazeScene spawns a generated maze with the player at the entry and a
// chaser at the far corner
type MazeScene struct {
	// Seed pins the layout; 0 generates a fresh maze every run
	Seed int64
}

// NewMazeScene creates the maze scene behavior
func NewMazeScene() *MazeScene {
	return &MazeScene{}
}

// Start generates the layout and populates the world
func (s *MazeScene) Start(obj *engine.Object) {
	g := obj.Game()
	maze := layout.GenerateMaze(layout.MazeConfig{
		Bounds:   g.Bounds,
		Braiding: mazeBraiding,
		Seed:     s.Seed,
	})

	for _, pos := range maze.Walls {
		g.SpawnAt("wall", pos, obj)
	}
	g.SpawnAt("player", maze.Entry, obj)
	g.SpawnAt("chaser", maze.Goal, obj)

	g.Logf(obj.Label, "maze ready, %d walls", len(maze.Walls))
}

// Update is a no-op
func (s *MazeScene) Update(obj *engine.Object) {}
