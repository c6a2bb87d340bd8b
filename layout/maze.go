// Package layout generates wall placements for scene setup.
package layout

import (
	"math/rand"
	"time"

	"github.com/ChrisBuilds/termgame/core"
)

// MazeConfig tunes maze generation. The maze occupies the odd-sized
// sub-grid of Bounds; the remainder stays open
type MazeConfig struct {
	Bounds core.Area

	// Braiding in [0, 1] removes dead ends by adding loops. 0 keeps a
	// perfect maze, 1 opens every dead end it safely can
	Braiding float64

	// Seed for reproducible layouts. 0 seeds from the wall clock
	Seed int64
}

// Maze is a generated layout: the wall cells to spawn plus suggested
// entry and goal cells, both guaranteed open
type Maze struct {
	Walls []core.Position
	Entry core.Position
	Goal  core.Position
}

// GenerateMaze carves a maze with a recursive backtracker and optional
// braiding. Cells are addressed in (row, col) grid coordinates
func GenerateMaze(cfg MazeConfig) Maze {
	rows := oddBelow(cfg.Bounds.MaxRow + 1)
	cols := oddBelow(cfg.Bounds.MaxCol + 1)

	walls := make([][]bool, rows)
	for r := range walls {
		walls[r] = make([]bool, cols)
		for c := range walls[r] {
			walls[r][c] = true
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	entry := core.Position{Row: 1, Col: 1}
	goal := core.Position{Row: rows - 2, Col: cols - 2}

	carve(walls, entry, rng)
	if cfg.Braiding > 0 {
		braid(walls, cfg.Braiding, rng)
	}
	walls[entry.Row][entry.Col] = false
	walls[goal.Row][goal.Col] = false

	m := Maze{Entry: entry, Goal: goal}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if walls[r][c] {
				m.Walls = append(m.Walls, core.Position{Row: r, Col: c})
			}
		}
	}
	return m
}

// carve runs a recursive backtracker over the odd lattice, knocking out
// the wall between each visited cell and its chosen neighbor
func carve(walls [][]bool, start core.Position, rng *rand.Rand) {
	rows, cols := len(walls), len(walls[0])
	jumps := [4]core.Position{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

	stack := []core.Position{start}
	walls[start.Row][start.Col] = false

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := make([]core.Position, 0, 4)
		for _, j := range jumps {
			next := curr.Add(j.Row, j.Col)
			if next.Row > 0 && next.Row < rows-1 && next.Col > 0 && next.Col < cols-1 &&
				walls[next.Row][next.Col] {
				candidates = append(candidates, j)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		j := candidates[rng.Intn(len(candidates))]
		between := curr.Add(j.Row/2, j.Col/2)
		next := curr.Add(j.Row, j.Col)
		walls[between.Row][between.Col] = false
		walls[next.Row][next.Col] = false
		stack = append(stack, next)
	}
}

// braid opens dead ends with the given probability, skipping removals
// that would create a 2x2 open plaza
func braid(walls [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(walls), len(walls[0])
	sides := [4]core.Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
	jumps := [4]core.Position{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

	for r := 1; r < rows-1; r += 2 {
		for c := 1; c < cols-1; c += 2 {
			if walls[r][c] {
				continue
			}

			exits := 0
			for _, s := range sides {
				if !walls[r+s.Row][c+s.Col] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]core.Position, 0, 4)
			for _, j := range jumps {
				nr, nc := r+j.Row, c+j.Col
				wr, wc := r+j.Row/2, c+j.Col/2
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				if !walls[nr][nc] && walls[wr][wc] && !opensPlaza(walls, wr, wc) {
					candidates = append(candidates, core.Position{Row: wr, Col: wc})
				}
			}
			if len(candidates) > 0 {
				pick := candidates[rng.Intn(len(candidates))]
				walls[pick.Row][pick.Col] = false
			}
		}
	}
}

// opensPlaza reports whether clearing (r, c) would complete a 2x2 open
// square with any of the four quadrants around it
func opensPlaza(walls [][]bool, r, c int) bool {
	open := func(tr, tc int) bool {
		if tr < 0 || tr >= len(walls) || tc < 0 || tc >= len(walls[0]) {
			return false
		}
		return !walls[tr][tc]
	}

	if open(r-1, c-1) && open(r-1, c) && open(r, c-1) {
		return true
	}
	if open(r-1, c) && open(r-1, c+1) && open(r, c+1) {
		return true
	}
	if open(r, c-1) && open(r+1, c-1) && open(r+1, c) {
		return true
	}
	if open(r, c+1) && open(r+1, c) && open(r+1, c+1) {
		return true
	}
	return false
}

// oddBelow rounds n down to the nearest odd number, with a floor of 5
// so the lattice always has room to carve
func oddBelow(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < 5 {
		return 5
	}
	return n
}
