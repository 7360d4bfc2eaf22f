package world

// BuildStatus tracks whether a chunk's mesh reflects its current block data.
//
// Transitions follow StatusNone -> StatusPending -> StatusBuilt. Any block
// mutation resets the chunk to StatusNone, which is what schedules a remesh.
type BuildStatus uint8

const (
	// StatusNone marks a dirty chunk: no mesh, or a stale one.
	StatusNone BuildStatus = iota
	// StatusPending marks a chunk with a mesh build in flight.
	StatusPending
	// StatusBuilt marks a chunk whose drawable mesh matches its blocks.
	StatusBuilt
)

func (s BuildStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusPending:
		return "pending"
	case StatusBuilt:
		return "built"
	default:
		return "invalid"
	}
}

// LogicChunk owns one chunk's block grid and its build status.
//
// The zero status is StatusNone, so a freshly generated chunk is considered
// dirty and gets meshed on the next maintenance tick.
type LogicChunk struct {
	blocks [ChunkCube]Block
	status BuildStatus
}

// NewLogicChunk returns an all-air chunk in the dirty state.
func NewLogicChunk() *LogicChunk {
	return &LogicChunk{}
}

// Block reads a single block by its in-chunk offset.
func (c *LogicChunk) Block(at BlockCoord) Block {
	return c.blocks[at.Flatten()]
}

// Blocks grants read access to the block grid without touching the status.
func (c *LogicChunk) Blocks() *[ChunkCube]Block {
	return &c.blocks
}

// BlocksMut grants mutable access to the block grid. This is the only
// mutation path, and taking it resets the build status so cached geometry
// cannot outlive the edit.
func (c *LogicChunk) BlocksMut() *[ChunkCube]Block {
	c.status = StatusNone
	return &c.blocks
}

// Snapshot copies the block grid for use off-thread by a mesh build.
func (c *LogicChunk) Snapshot() []Block {
	out := make([]Block, ChunkCube)
	copy(out, c.blocks[:])
	return out
}

// Status reports the chunk's build state.
func (c *LogicChunk) Status() BuildStatus {
	return c.status
}

// MarkPending records that a mesh build was dispatched. Only a dirty chunk
// can move to pending; pending and built chunks are left untouched.
func (c *LogicChunk) MarkPending() {
	if c.status == StatusNone {
		c.status = StatusPending
	}
}

// MarkBuilt records that the drawable mesh matches the block data. Chunks
// with no opaque blocks are marked built directly from the dirty state.
func (c *LogicChunk) MarkBuilt() {
	c.status = StatusBuilt
}

// Invalidate forces the chunk back to the dirty state without touching the
// blocks, e.g. when all meshes are cleared for a full rebuild.
func (c *LogicChunk) Invalidate() {
	c.status = StatusNone
}

// HasOpaque reports whether the chunk contains at least one opaque block.
func (c *LogicChunk) HasOpaque() bool {
	for _, b := range c.blocks {
		if b.Opaque() {
			return true
		}
	}
	return false
}
