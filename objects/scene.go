package objects

import (
	"github.com/ChrisBuilds/termgame/core"
	"github.com/ChrisBuilds/termgame/engine"
)

// Scene0 spawns the starting layout: the player mid-grid, two chasers
// in opposite corners, and a short wall segment between them. The scene
// object itself stays unpositioned and idle after setup
type Scene0 struct{}

// NewScene0 creates the scene behavior
func NewScene0() *Scene0 {
	return &Scene0{}
}

// Start populates the world
func (s *Scene0) Start(obj *engine.Object) {
	g := obj.Game()
	midRow := g.Bounds.MaxRow / 2
	midCol := g.Bounds.MaxCol / 2

	g.SpawnAt("player", core.Position{Row: midRow, Col: midCol}, obj)
	g.SpawnAt("chaser", core.Position{Row: 0, Col: 0}, obj)
	g.SpawnAt("chaser", core.Position{Row: g.Bounds.MaxRow, Col: g.Bounds.MaxCol}, obj)

	for dCol := -3; dCol <= 3; dCol++ {
		g.SpawnAt("wall", core.Position{Row: midRow - 3, Col: midCol + dCol}, obj)
	}

	g.Logf(obj.Label, "scene ready (%dx%d)", g.Bounds.MaxRow+1, g.Bounds.MaxCol+1)
}

// Update is a no-op
func (s *Scene0) Update(obj *engine.Object) {}
