// Package objects holds the spawnable game content: the player, walls,
// pathfinding chasers, and the startup scene. It is the content side of
// the engine's label -> factory resource table.
package objects

import "github.com/ChrisBuilds/termgame/engine"

// Register installs every spawnable label into the game's resource
// table. Called once at startup
func Register(g *engine.Game) {
	g.RegisterFactory("player", func(g *engine.Game) engine.Behavior { return NewPlayer() })
	g.RegisterFactory("wall", func(g *engine.Game) engine.Behavior { return NewWall() })
	g.RegisterFactory("chaser", func(g *engine.Game) engine.Behavior { return NewChaser() })
	g.RegisterFactory("scene0", func(g *engine.Game) engine.Behavior { return NewScene0() })
	g.RegisterFactory("scene1", func(g *engine.Game) engine.Behavior { return NewMazeScene() })
}
