// Package navigation provides grid pathfinding for game behaviors.
// Searches read only the grid boundary, never live occupancy, so they
// are stateless between calls and safe at any point in the tick.
package navigation

import (
	"container/heap"

	"github.com/ChrisBuilds/termgame/core"
)

// frontierItem is an explicit (priority, position) pair. Keeping the
// priority out of the value avoids ordering the frontier by position
// identity; seq breaks priority ties in insertion order
type frontierItem struct {
	pos      core.Position
	priority int
	seq      int
}

type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// FindPath runs a 4-connected uniform-cost A* search from start to
// target within bounds, using a Manhattan distance heuristic. The
// returned path begins at the step after start and ends at target;
// start == target yields an empty path. ok is false when the target is
// unreachable (out of bounds, or not connected within the grid); the
// search always terminates because the frontier is bounded by the grid
func FindPath(start, target core.Position, bounds core.Area) (path []core.Position, ok bool) {
	if !bounds.Contains(start) || !bounds.Contains(target) {
		return nil, false
	}
	if start == target {
		return []core.Position{}, true
	}

	front := &frontier{}
	heap.Init(front)
	seq := 0
	heap.Push(front, frontierItem{pos: start, priority: 0, seq: seq})

	cameFrom := map[core.Position]core.Position{start: start}
	costSoFar := map[core.Position]int{start: 0}

	for front.Len() > 0 {
		current := heap.Pop(front).(frontierItem).pos
		if current == target {
			break
		}
		for _, next := range neighbors(current, bounds) {
			newCost := costSoFar[current] + 1
			if best, seen := costSoFar[next]; !seen || newCost < best {
				costSoFar[next] = newCost
				seq++
				heap.Push(front, frontierItem{
					pos:      next,
					priority: newCost + next.ManhattanDistance(target),
					seq:      seq,
				})
				cameFrom[next] = current
			}
		}
	}

	// An untraced target means the frontier drained without reaching
	// it: explicit no-path, never a lookup failure
	if _, traced := cameFrom[target]; !traced {
		return nil, false
	}

	for current := target; current != start; current = cameFrom[current] {
		path = append(path, current)
	}
	reverse(path)
	return path, true
}

// neighbors returns the in-bounds 4-connected cells around pos
func neighbors(pos core.Position, bounds core.Area) []core.Position {
	candidates := [4]core.Position{
		pos.Add(1, 0),
		pos.Add(-1, 0),
		pos.Add(0, 1),
		pos.Add(0, -1),
	}
	result := make([]core.Position, 0, 4)
	for _, c := range candidates {
		if bounds.Contains(c) {
			result = append(result, c)
		}
	}
	return result
}

func reverse(path []core.Position) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
