package engine

import "github.com/ChrisBuilds/termgame/core"

// Conflict is a spatial index bucket holding two or more objects.
// Objects is a filtered copy; mutating the index does not invalidate it
type Conflict struct {
	Layer   int
	Pos     core.Position
	Objects []*Object
}

// sameAs reports whether two conflicts cover the same layer, position,
// and object set. Used to recognize a previously recorded unresolvable
// conflict regardless of bucket ordering
func (c Conflict) sameAs(other Conflict) bool {
	if c.Layer != other.Layer || c.Pos != other.Pos || len(c.Objects) != len(other.Objects) {
		return false
	}
	seen := make(map[ID]int, len(c.Objects))
	for _, obj := range c.Objects {
		seen[obj.id]++
	}
	for _, obj := range other.Objects {
		seen[obj.id]--
		if seen[obj.id] < 0 {
			return false
		}
	}
	return true
}

// SpatialIndex is a layered mapping from grid position to the objects
// occupying it. Buckets keep insertion order and permit duplicates;
// duplicate entries are how same-cell conflicts become visible
type SpatialIndex struct {
	buckets map[int]map[core.Position][]*Object
}

// NewSpatialIndex creates an empty index
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		buckets: make(map[int]map[core.Position][]*Object),
	}
}

// Add inserts an object into the bucket at (layer, pos)
func (ix *SpatialIndex) Add(layer int, pos core.Position, obj *Object) {
	layerBuckets, ok := ix.buckets[layer]
	if !ok {
		layerBuckets = make(map[core.Position][]*Object)
		ix.buckets[layer] = layerBuckets
	}
	layerBuckets[pos] = append(layerBuckets[pos], obj)
}

// Remove deletes one occurrence of obj from the bucket at (layer, pos).
// No-op if absent
func (ix *SpatialIndex) Remove(layer int, pos core.Position, obj *Object) {
	layerBuckets, ok := ix.buckets[layer]
	if !ok {
		return
	}
	objs := layerBuckets[pos]
	for i, o := range objs {
		if o == obj {
			layerBuckets[pos] = append(objs[:i], objs[i+1:]...)
			if len(layerBuckets[pos]) == 0 {
				delete(layerBuckets, pos)
			}
			return
		}
	}
}

// Each visits every non-empty bucket. Returning false from fn stops the
// walk. Bucket visit order is not significant
func (ix *SpatialIndex) Each(fn func(layer int, pos core.Position, objs []*Object) bool) {
	for layer, layerBuckets := range ix.buckets {
		for pos, objs := range layerBuckets {
			if len(objs) == 0 {
				continue
			}
			if !fn(layer, pos, objs) {
				return
			}
		}
	}
}

// AllAt returns a copy of the bucket contents at (layer, pos)
func (ix *SpatialIndex) AllAt(layer int, pos core.Position) []*Object {
	objs := ix.buckets[layer][pos]
	if len(objs) == 0 {
		return nil
	}
	out := make([]*Object, len(objs))
	copy(out, objs)
	return out
}

// Conflicts returns every bucket holding two or more objects
func (ix *SpatialIndex) Conflicts() []Conflict {
	var conflicts []Conflict
	ix.Each(func(layer int, pos core.Position, objs []*Object) bool {
		if len(objs) > 1 {
			copied := make([]*Object, len(objs))
			copy(copied, objs)
			conflicts = append(conflicts, Conflict{Layer: layer, Pos: pos, Objects: copied})
		}
		return true
	})
	return conflicts
}

// rigidbodySubset filters a bucket down to its rigidbody members,
// preserving insertion order. Returns nil unless at least two remain
func rigidbodySubset(objs []*Object) []*Object {
	var rigid []*Object
	for _, obj := range objs {
		if obj.Profile.Rigidbody {
			rigid = append(rigid, obj)
		}
	}
	if len(rigid) < 2 {
		return nil
	}
	return rigid
}

// RigidbodyConflicts returns every conflict whose same-layer rigidbody
// subset has at least two members
func (ix *SpatialIndex) RigidbodyConflicts() []Conflict {
	var conflicts []Conflict
	ix.Each(func(layer int, pos core.Position, objs []*Object) bool {
		if rigid := rigidbodySubset(objs); rigid != nil {
			conflicts = append(conflicts, Conflict{Layer: layer, Pos: pos, Objects: rigid})
		}
		return true
	})
	return conflicts
}

// RigidbodyConflictAt restricts the rigidbody conflict query to a
// single bucket
func (ix *SpatialIndex) RigidbodyConflictAt(layer int, pos core.Position) (Conflict, bool) {
	if rigid := rigidbodySubset(ix.buckets[layer][pos]); rigid != nil {
		return Conflict{Layer: layer, Pos: pos, Objects: rigid}, true
	}
	return Conflict{}, false
}

// FirstRigidbodyConflict returns one rigidbody conflict without
// materializing the full list. Bucket choice is arbitrary; the resolver
// re-fetches after every incremental fix
func (ix *SpatialIndex) FirstRigidbodyConflict() (Conflict, bool) {
	var found Conflict
	ok := false
	ix.Each(func(layer int, pos core.Position, objs []*Object) bool {
		if rigid := rigidbodySubset(objs); rigid != nil {
			found = Conflict{Layer: layer, Pos: pos, Objects: rigid}
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Rebuild clears the index and re-inserts every positioned collider at
// its recorded position. Non-colliders and unpositioned objects never
// survive a rebuild
func (ix *SpatialIndex) Rebuild(reg *Registry) {
	ix.buckets = make(map[int]map[core.Position][]*Object)
	reg.Each(func(obj *Object) {
		if obj.Profile.Collider && obj.hasPos {
			ix.Add(obj.Profile.Layer, obj.pos, obj)
		}
	})
}
