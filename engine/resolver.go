package engine

import (
	"sort"

	"github.com/ChrisBuilds/termgame/core"
)

// MoveRequest is a pending relocation of an object to a target grid
// position, queued during the update phase
type MoveRequest struct {
	Object *Object
	Target core.Position
}

// ConflictResolver consumes queued relocation requests, mutates the
// spatial index, and iteratively resolves rigidbody overlaps until none
// remain or no further progress is possible.
//
// Requests are drained in reverse-enqueue (LIFO) order, which decides
// bucket ordering and therefore which contender a conflict reverts
// first. Queueing several moves for one object in a single tick is
// unsupported; the surviving bucket is unspecified
type ConflictResolver struct {
	game    *Game
	pending []MoveRequest
}

func newConflictResolver(g *Game) *ConflictResolver {
	return &ConflictResolver{game: g}
}

// Request queues a relocation. Applied at the next Resolve call
func (r *ConflictResolver) Request(obj *Object, target core.Position) {
	r.pending = append(r.pending, MoveRequest{Object: obj, Target: target})
}

// Pending returns the number of queued relocation requests
func (r *ConflictResolver) Pending() int {
	return len(r.pending)
}

// Resolve runs the move-resolution phase for the current tick:
//
//  1. Rebuild the spatial index from the registry, so conflicts are
//     evaluated against fresh occupancy.
//  2. Drain queued requests LIFO, rebucketing each object from its
//     recorded position to the requested one. The object's own
//     position field is untouched until reconciliation.
//  3. Repeatedly fetch one rigidbody conflict: record every member's
//     peers, then revert the first member whose recorded position
//     differs from the conflicted cell. A conflict with no revertible
//     member is recorded unresolvable; re-fetching a recorded
//     unresolvable conflict terminates the loop.
//  4. Reconcile every object's position field with its bucket.
//  5. Dispatch accumulated collision notifications.
//
// With an empty queue Resolve is a no-op, leaving all positions and
// the index untouched
func (r *ConflictResolver) Resolve() {
	if len(r.pending) == 0 {
		return
	}

	ix := r.game.index
	ix.Rebuild(r.game.registry)
	r.applyRequests(ix)

	reports := make(map[ID][]*Object)
	var unresolvable []Conflict

	conflict, ok := ix.FirstRigidbodyConflict()
	for ok {
		recordPeers(reports, conflict)

		resolved := false
		for _, obj := range conflict.Objects {
			if obj.hasPos && obj.pos != conflict.Pos {
				ix.Remove(conflict.Layer, conflict.Pos, obj)
				ix.Add(conflict.Layer, obj.pos, obj)
				resolved = true
				break
			}
		}
		if !resolved {
			unresolvable = append(unresolvable, conflict)
			r.game.Logf("engine", "unresolvable rigidbody overlap at layer %d (%d,%d)",
				conflict.Layer, conflict.Pos.Row, conflict.Pos.Col)
		}

		conflict, ok = ix.FirstRigidbodyConflict()
		if ok && isRecordedUnresolvable(unresolvable, conflict) {
			break
		}
	}

	r.reconcilePositions(ix)
	r.notify(reports)
}

// applyRequests drains the queue newest-first, moving each object's
// index entry from its recorded bucket to the requested one. Requests
// for objects no longer in the registry are dropped; applying them
// would plant a phantom bucket entry
func (r *ConflictResolver) applyRequests(ix *SpatialIndex) {
	for len(r.pending) > 0 {
		req := r.pending[len(r.pending)-1]
		r.pending = r.pending[:len(r.pending)-1]

		obj := req.Object
		if _, ok := r.game.registry.Get(obj.id); !ok {
			r.game.Logf("engine", "dropping relocation for unregistered object %d", obj.id)
			continue
		}
		if obj.hasPos {
			ix.Remove(obj.Profile.Layer, obj.pos, obj)
		}
		ix.Add(obj.Profile.Layer, req.Target, obj)
	}
}

// recordPeers accumulates, for every member of the conflict, every
// other member into its collision report
func recordPeers(reports map[ID][]*Object, conflict Conflict) {
	for _, obj := range conflict.Objects {
		for _, peer := range conflict.Objects {
			if peer != obj {
				reports[obj.id] = append(reports[obj.id], peer)
			}
		}
	}
}

func isRecordedUnresolvable(unresolvable []Conflict, conflict Conflict) bool {
	for _, u := range unresolvable {
		if u.sameAs(conflict) {
			return true
		}
	}
	return false
}

// reconcilePositions makes bucket placement the single source of truth:
// every indexed object's position field is set to its bucket position
func (r *ConflictResolver) reconcilePositions(ix *SpatialIndex) {
	ix.Each(func(layer int, pos core.Position, objs []*Object) bool {
		for _, obj := range objs {
			obj.pos = pos
			obj.hasPos = true
		}
		return true
	})
}

// notify dispatches the accumulated collision reports in ascending ID
// order. Objects destroyed since their conflict was recorded are
// skipped silently: a behavior may legitimately remove its object (or a
// peer's) mid-tick
func (r *ConflictResolver) notify(reports map[ID][]*Object) {
	if len(reports) == 0 {
		return
	}

	ids := make([]ID, 0, len(reports))
	for id := range reports {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		obj, ok := r.game.registry.Get(id)
		if !ok {
			continue
		}
		peers := dedupPeers(reports[id])
		if handler, ok := obj.Behavior.(RigidbodyHandler); ok {
			handler.OnRigidbodyCollision(obj, peers)
			continue
		}
		for _, peer := range peers {
			r.game.Logf(obj.Label, "rigidbody collision %d -> %s %d", obj.id, peer.Label, peer.id)
		}
	}

	if r.game.CollisionCue != nil {
		r.game.CollisionCue()
	}
}

// dedupPeers collapses repeat entries from an object conflicting with
// the same peer across successive partial resolutions, keeping
// first-seen order
func dedupPeers(peers []*Object) []*Object {
	seen := make(map[ID]bool, len(peers))
	out := peers[:0:0]
	for _, peer := range peers {
		if !seen[peer.id] {
			seen[peer.id] = true
			out = append(out, peer)
		}
	}
	return out
}
