package engine

import (
	"testing"

	"github.com/ChrisBuilds/termgame/core"
)

func rigidObject(id ID, layer int) *Object {
	return &Object{id: id, Profile: CollisionProfile{Collider: true, Rigidbody: true, Layer: layer}}
}

func softObject(id ID, layer int) *Object {
	return &Object{id: id, Profile: CollisionProfile{Collider: true, Layer: layer}}
}

func TestIndexAddRemove(t *testing.T) {
	ix := NewSpatialIndex()
	pos := core.Position{Row: 2, Col: 3}
	a := rigidObject(1, 0)

	ix.Add(0, pos, a)
	if got := ix.AllAt(0, pos); len(got) != 1 || got[0] != a {
		t.Fatalf("bucket after add: %v", got)
	}

	ix.Remove(0, pos, a)
	if got := ix.AllAt(0, pos); got != nil {
		t.Errorf("bucket not emptied after remove: %v", got)
	}

	// Removing an absent object is a no-op
	ix.Remove(0, pos, a)
	ix.Remove(5, pos, a)
}

func TestIndexDuplicateEntries(t *testing.T) {
	ix := NewSpatialIndex()
	pos := core.Position{Row: 0, Col: 0}
	a := rigidObject(1, 0)

	ix.Add(0, pos, a)
	ix.Add(0, pos, a)
	if got := ix.AllAt(0, pos); len(got) != 2 {
		t.Fatalf("duplicate entry collapsed: %v", got)
	}

	// Remove deletes exactly one occurrence
	ix.Remove(0, pos, a)
	if got := ix.AllAt(0, pos); len(got) != 1 {
		t.Errorf("remove deleted %d entries", 2-len(got))
	}
}

func TestIndexConflicts(t *testing.T) {
	ix := NewSpatialIndex()
	shared := core.Position{Row: 4, Col: 4}
	a := rigidObject(1, 0)
	b := rigidObject(2, 0)
	c := rigidObject(3, 0)

	ix.Add(0, shared, a)
	ix.Add(0, shared, b)
	ix.Add(0, core.Position{Row: 9, Col: 9}, c)

	conflicts := ix.Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(conflicts))
	}
	if conflicts[0].Pos != shared || len(conflicts[0].Objects) != 2 {
		t.Errorf("conflict = %+v", conflicts[0])
	}
}

func TestRigidbodyConflictFiltersSoftColliders(t *testing.T) {
	ix := NewSpatialIndex()
	shared := core.Position{Row: 1, Col: 1}

	ix.Add(0, shared, rigidObject(1, 0))
	ix.Add(0, shared, softObject(2, 0))

	if _, ok := ix.RigidbodyConflictAt(0, shared); ok {
		t.Errorf("single rigidbody plus soft collider reported as conflict")
	}

	ix.Add(0, shared, rigidObject(3, 0))
	conflict, ok := ix.RigidbodyConflictAt(0, shared)
	if !ok {
		t.Fatalf("two rigidbodies not reported as conflict")
	}
	if len(conflict.Objects) != 2 {
		t.Errorf("got %d conflict members, want the 2 rigidbodies", len(conflict.Objects))
	}
	for _, obj := range conflict.Objects {
		if !obj.Profile.Rigidbody {
			t.Errorf("soft collider %d leaked into rigidbody conflict", obj.id)
		}
	}
}

func TestLayersIsolateBuckets(t *testing.T) {
	ix := NewSpatialIndex()
	pos := core.Position{Row: 6, Col: 6}

	ix.Add(0, pos, rigidObject(1, 0))
	ix.Add(1, pos, rigidObject(2, 1))

	if got := ix.Conflicts(); len(got) != 0 {
		t.Errorf("same position on different layers reported as conflict: %v", got)
	}
	if _, ok := ix.FirstRigidbodyConflict(); ok {
		t.Errorf("cross-layer rigidbody conflict reported")
	}
}

func TestConflictSameAsIgnoresOrder(t *testing.T) {
	a := rigidObject(1, 0)
	b := rigidObject(2, 0)
	pos := core.Position{Row: 3, Col: 3}

	left := Conflict{Layer: 0, Pos: pos, Objects: []*Object{a, b}}
	right := Conflict{Layer: 0, Pos: pos, Objects: []*Object{b, a}}
	if !left.sameAs(right) {
		t.Errorf("reordered conflict not recognized as identical")
	}

	other := Conflict{Layer: 0, Pos: pos, Objects: []*Object{a, a}}
	if left.sameAs(other) {
		t.Errorf("multiset mismatch not detected")
	}
	elsewhere := Conflict{Layer: 0, Pos: core.Position{Row: 0, Col: 0}, Objects: []*Object{a, b}}
	if left.sameAs(elsewhere) {
		t.Errorf("position mismatch not detected")
	}
}

func TestRebuildDropsStaleEntries(t *testing.T) {
	g := newTestGame()
	rigid := &stubBehavior{profile: rigidProfile(0)}
	ghost := &stubBehavior{profile: CollisionProfile{}}

	a := spawnStub(t, g, "rigid", rigid, core.Position{Row: 2, Col: 2})
	spawnStub(t, g, "ghost", ghost, core.Position{Row: 2, Col: 2})

	// Pollute the index with an entry at a stale position
	g.index.Add(0, core.Position{Row: 8, Col: 8}, a)

	g.index.Rebuild(g.registry)

	if got := g.index.AllAt(0, core.Position{Row: 8, Col: 8}); got != nil {
		t.Errorf("stale entry survived rebuild: %v", got)
	}
	got := g.index.AllAt(0, core.Position{Row: 2, Col: 2})
	if len(got) != 1 || got[0] != a {
		t.Errorf("rebuild bucket = %v, want only the collider", got)
	}
}
