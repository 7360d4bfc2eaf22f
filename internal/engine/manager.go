// Package engine drives the chunk streaming pipeline: deciding which chunks
// should be resident around the observer, generating their blocks on worker
// goroutines, meshing dirty chunks, and retiring everything that drifts out
// of range.
package engine

import (
	"log"

	"cubeworld/internal/config"
	"cubeworld/internal/mesh"
	"cubeworld/internal/world"
)

// Generator produces the block contents of a chunk. Implementations must be
// safe for concurrent use, since chunks are generated on the worker pool.
type Generator interface {
	Generate(id world.ChunkID, blocks *[world.ChunkCube]world.Block)
}

type genResult struct {
	id     world.ChunkID
	blocks [world.ChunkCube]world.Block
}

type meshResult struct {
	id   world.ChunkID
	mesh *mesh.TerrainMesh
}

// Manager owns all resident chunks and keeps them in sync with an observer
// position. All methods must be called from the main thread; the worker pool
// only touches the result channels.
type Manager struct {
	cfg     config.EngineConfig
	logger  *log.Logger
	exec    Executor
	backend Backend
	gen     Generator

	logic    map[world.ChunkID]*world.LogicChunk
	drawable map[world.ChunkID]*DrawableChunk
	inflight map[world.ChunkID]struct{}

	genResults  chan genResult
	meshResults chan meshResult
}

func NewManager(cfg config.EngineConfig, logger *log.Logger, exec Executor, backend Backend, gen Generator) *Manager {
	// Generation results are bounded by the in-flight cap, mesh results by
	// everything the pool can hold plus what is already running. Sizing the
	// channels past those bounds keeps worker sends from ever dropping in
	// steady state.
	genDepth := cfg.MaxInFlightLoads
	if genDepth < 1 {
		genDepth = 1
	}
	meshDepth := cfg.QueueDepth + cfg.Workers + cfg.MeshBuildsPerTick
	if meshDepth < 1 {
		meshDepth = 1
	}
	return &Manager{
		cfg:         cfg,
		logger:      logger,
		exec:        exec,
		backend:     backend,
		gen:         gen,
		logic:       make(map[world.ChunkID]*world.LogicChunk),
		drawable:    make(map[world.ChunkID]*DrawableChunk),
		inflight:    make(map[world.ChunkID]struct{}),
		genResults:  make(chan genResult, genDepth),
		meshResults: make(chan meshResult, meshDepth),
	}
}

// Maintain advances the pipeline by one tick for an observer standing in the
// chunk at center. It drains finished work, dispatches new work up to the
// per-tick budgets, and evicts chunks outside the load area.
func (m *Manager) Maintain(center world.ChunkID) {
	area := world.NewLoadAreaCuboid(center, m.cfg.DrawDistance, m.cfg.VerticalDistance)

	m.drainMeshResults()
	m.drainGenResults()
	m.dispatchMeshBuilds()
	m.dispatchGeneration(area)
	m.evict(area)
}

func (m *Manager) drainMeshResults() {
	for {
		select {
		case res := <-m.meshResults:
			m.applyMeshResult(res)
		default:
			return
		}
	}
}

// applyMeshResult installs a finished mesh, unless the chunk was evicted or
// edited while the build ran. A stale result is discarded so geometry never
// lags behind the blocks it was built from.
func (m *Manager) applyMeshResult(res meshResult) {
	chunk, ok := m.logic[res.id]
	if !ok {
		m.logger.Printf("WARN discarding mesh for evicted chunk %v", res.id)
		return
	}
	if chunk.Status() != world.StatusPending {
		m.logger.Printf("WARN discarding stale mesh for chunk %v (status %v)", res.id, chunk.Status())
		return
	}

	chunk.MarkBuilt()
	if old, ok := m.drawable[res.id]; ok {
		old.destroy()
		delete(m.drawable, res.id)
	}
	if res.mesh.Empty() {
		return
	}
	m.drawable[res.id] = newDrawableChunk(m.backend, res.mesh)
}

func (m *Manager) drainGenResults() {
	for {
		select {
		case res := <-m.genResults:
			delete(m.inflight, res.id)
			chunk := world.NewLogicChunk()
			*chunk.BlocksMut() = res.blocks
			// Results for chunks that left the area while generating are
			// still inserted; the eviction pass at the end of this tick
			// sweeps them right back out.
			m.logic[res.id] = chunk
		default:
			return
		}
	}
}

func (m *Manager) dispatchMeshBuilds() {
	budget := m.cfg.MeshBuildsPerTick
	for id, chunk := range m.logic {
		if budget <= 0 {
			return
		}
		if chunk.Status() != world.StatusNone {
			continue
		}

		// Chunks without a single opaque block mesh to nothing, so they
		// skip the pool entirely and consume no budget.
		if !chunk.HasOpaque() {
			chunk.MarkBuilt()
			if old, ok := m.drawable[id]; ok {
				old.destroy()
				delete(m.drawable, id)
			}
			continue
		}

		chunk.MarkPending()
		budget--

		id := id
		snapshot := chunk.Snapshot()
		m.exec.Spawn(func() {
			built := mesh.Build(id.Coord(), snapshot)
			select {
			case m.meshResults <- meshResult{id: id, mesh: built}:
			default:
				m.logger.Printf("WARN dropping mesh result for chunk %v, result queue full", id)
			}
		})
	}
}

func (m *Manager) dispatchGeneration(area world.LoadArea) {
	budget := m.cfg.ChunkLoadsPerTick
	it := area.Iter()
	for budget > 0 && len(m.inflight) < m.cfg.MaxInFlightLoads {
		id, ok := it.Next()
		if !ok {
			return
		}
		if _, loaded := m.logic[id]; loaded {
			continue
		}
		if _, pending := m.inflight[id]; pending {
			continue
		}

		m.inflight[id] = struct{}{}
		budget--

		m.exec.Spawn(func() {
			res := genResult{id: id}
			m.gen.Generate(id, &res.blocks)
			// The channel is sized to the in-flight cap, so this send
			// cannot block for long and never leaves the id stuck.
			m.genResults <- res
		})
	}
}

func (m *Manager) evict(area world.LoadArea) {
	for id := range m.logic {
		if area.Contains(id) {
			continue
		}
		delete(m.logic, id)
		if old, ok := m.drawable[id]; ok {
			old.destroy()
			delete(m.drawable, id)
		}
	}
}

// Chunk returns the resident chunk with the given id, if any.
func (m *Manager) Chunk(id world.ChunkID) (*world.LogicChunk, bool) {
	chunk, ok := m.logic[id]
	return chunk, ok
}

// Drawables exposes the uploaded chunk meshes for rendering. The returned
// map is owned by the manager and only valid until the next Maintain call.
func (m *Manager) Drawables() map[world.ChunkID]*DrawableChunk {
	return m.drawable
}

// Counts reports resident, drawable and in-flight chunk totals for logging.
func (m *Manager) Counts() (logic, drawable, inflight int) {
	return len(m.logic), len(m.drawable), len(m.inflight)
}

// ClearMesh destroys every drawable and marks all chunks dirty, forcing a
// full remesh without regenerating any blocks.
func (m *Manager) ClearMesh() {
	for id, d := range m.drawable {
		d.destroy()
		delete(m.drawable, id)
	}
	for _, chunk := range m.logic {
		chunk.Invalidate()
	}
}

// Cleanup reallocates the chunk maps at their current size, releasing the
// slack a large eviction leaves behind. Purely a memory hint; every resident
// chunk and drawable survives.
func (m *Manager) Cleanup() {
	logic := make(map[world.ChunkID]*world.LogicChunk, len(m.logic))
	for id, chunk := range m.logic {
		logic[id] = chunk
	}
	m.logic = logic

	drawable := make(map[world.ChunkID]*DrawableChunk, len(m.drawable))
	for id, d := range m.drawable {
		drawable[id] = d
	}
	m.drawable = drawable
}

// Close releases every resident chunk and drawable. Results still in flight
// drain into the fresh maps and get swept by the next Maintain call, if any.
func (m *Manager) Close() {
	for _, d := range m.drawable {
		d.destroy()
	}
	m.logic = make(map[world.ChunkID]*world.LogicChunk)
	m.drawable = make(map[world.ChunkID]*DrawableChunk)
	m.inflight = make(map[world.ChunkID]struct{})
}
