package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pthm-cable/lattice/geom"
	"github.com/pthm-cable/lattice/rule"
)

// Strategy selects how Update distributes work. All strategies
// implement the same two-phase contract and produce identical grids
// from identical inputs.
type Strategy uint8

const (
	// Sequential runs both phases as plain loops.
	Sequential Strategy = iota
	// ChunkedSerial parallelizes per chunk; neighbor patches that may
	// cross a chunk face are collected and applied single-threaded.
	ChunkedSerial
	// ChunkedAtomic parallelizes both phases fully; patches sourced
	// near a chunk face use atomic adds instead of a serial pass.
	ChunkedAtomic
)

func (s Strategy) String() string {
	switch s {
	case ChunkedSerial:
		return "chunked-serial"
	case ChunkedAtomic:
		return "chunked-atomic"
	default:
		return "sequential"
	}
}

// ParseStrategy resolves a config string to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "sequential":
		return Sequential, nil
	case "chunked-serial":
		return ChunkedSerial, nil
	case "chunked-atomic":
		return ChunkedAtomic, nil
	default:
		return Sequential, fmt.Errorf("unknown strategy %q", name)
	}
}

// TickStats reports what one Update did.
type TickStats struct {
	Spawns int
	Deaths int
	PhaseA time.Duration
	PhaseB time.Duration
}

// Engine advances a Grid one generation per Update call.
//
// Each tick runs two strictly-ordered phases. Phase A reads the frozen
// neighbor counts and rewrites cell values, collecting the indices that
// entered or left full value. Phase B consumes those lists and patches
// the neighbor counts incrementally. Phase A of the next tick must not
// start before Phase B finishes.
type Engine struct {
	strategy Strategy
	grid     *Grid
	rng      *rand.Rand

	// Chunk partitioning, valid for the chunked strategies.
	chunkRadius int32
	chunkCount  int
	diffs       []chunkDiff

	// Sequential transition lists, reused across ticks.
	spawns []int
	deaths []int
}

// NewEngine creates an engine with an all-dead 1-cell grid. Call
// SetBounds before use.
func NewEngine(strategy Strategy, seed int64) *Engine {
	return &Engine{
		strategy: strategy,
		grid:     NewGrid(1),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Strategy returns the configured concurrency strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Grid exposes the lattice for read-only consumers (render extraction,
// validation, tests).
func (e *Engine) Grid() *Grid { return e.grid }

// Bounds returns the current effective side length.
func (e *Engine) Bounds() int32 { return e.grid.Bound() }

// SetBounds discards the grid and allocates a fresh all-dead one. The
// chunked strategies round the bound up to a ChunkSize multiple; the
// effective bound is returned.
func (e *Engine) SetBounds(bound int32) int32 {
	if bound < 1 {
		bound = 1
	}
	if e.strategy != Sequential {
		radius := chunkRadius(bound)
		bound = radius * ChunkSize
		e.chunkRadius = radius
		e.chunkCount = int(radius) * int(radius) * int(radius)
		if len(e.diffs) < e.chunkCount {
			e.diffs = make([]chunkDiff, e.chunkCount)
		}
	}
	e.grid = NewGrid(bound)
	return bound
}

// CellCount scans the grid and returns the number of non-dead cells.
func (e *Engine) CellCount() int {
	count := 0
	for _, v := range e.grid.values {
		if v != 0 {
			count++
		}
	}
	return count
}

// Update advances the grid one generation. The pool is used by the
// chunked strategies; Sequential ignores it and a nil pool forces
// inline execution everywhere.
func (e *Engine) Update(r *rule.Rule, pool *Pool) TickStats {
	switch e.strategy {
	case ChunkedSerial:
		return e.updateChunkedSerial(r, pool)
	case ChunkedAtomic:
		return e.updateChunkedAtomic(r, pool)
	default:
		return e.updateSequential(r)
	}
}

// stepValue applies the Phase A decision to a single cell value given
// its frozen neighbor count. It returns the new value plus whether the
// cell entered (spawn) or left (death) full value this tick. Only
// full-value transitions matter: partial-value decay steps do not
// affect neighbor counts.
func stepValue(value uint8, neighbors int32, r *rule.Rule) (newValue uint8, spawned, died bool) {
	if value == 0 {
		if r.Birth.Contains(uint8(neighbors)) {
			return r.States, true, false
		}
		return 0, false, false
	}
	if value == r.States {
		if r.Survival.Contains(uint8(neighbors)) {
			return value, false, false
		}
		return value - 1, false, true
	}
	return value - 1, false, false
}

// updateChunkValues runs Phase A over one chunk, appending transition
// indices to the chunk's diff. When splitBorder is set, transitions of
// cells on a chunk face go to the border lists instead.
func (e *Engine) updateChunkValues(r *rule.Rule, chunkIndex int, d *chunkDiff, splitBorder bool) {
	g := e.grid
	bound := g.Bound()
	origin := chunkOrigin(chunkIndex, e.chunkRadius)

	for offset := 0; offset < chunkCells; offset++ {
		local := geom.IndexToPos(offset, ChunkSize)
		idx := geom.PosToIndex(origin.Add(local), bound)

		v, spawned, died := stepValue(g.values[idx], g.neighbors[idx], r)
		g.values[idx] = v

		if spawned {
			if splitBorder && isChunkBorder(local, 0) {
				d.borderSpawns = append(d.borderSpawns, idx)
			} else {
				d.spawns = append(d.spawns, idx)
			}
		} else if died {
			if splitBorder && isChunkBorder(local, 0) {
				d.borderDeaths = append(d.borderDeaths, idx)
			} else {
				d.deaths = append(d.deaths, idx)
			}
		}
	}
}
