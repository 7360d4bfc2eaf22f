package world

// LoadArea is the axis-aligned cuboid of chunk ids that should stay resident
// around an observer. Bounds are inclusive on both ends.
type LoadArea struct {
	Start ChunkID
	End   ChunkID
}

// NewLoadArea returns a cubic area of the given radius around center.
func NewLoadArea(center ChunkID, radius int) LoadArea {
	return NewLoadAreaCuboid(center, radius, radius)
}

// NewLoadAreaCuboid returns an area with a shorter vertical extent, for
// worlds that are much wider than they are tall.
func NewLoadAreaCuboid(center ChunkID, radius, vertical int) LoadArea {
	return LoadArea{
		Start: ChunkID{X: center.X - radius, Y: center.Y - vertical, Z: center.Z - radius},
		End:   ChunkID{X: center.X + radius, Y: center.Y + vertical, Z: center.Z + radius},
	}
}

// Contains reports whether the id lies within the area.
func (a LoadArea) Contains(id ChunkID) bool {
	return id.X >= a.Start.X && id.X <= a.End.X &&
		id.Y >= a.Start.Y && id.Y <= a.End.Y &&
		id.Z >= a.Start.Z && id.Z <= a.End.Z
}

// Iter starts a fresh enumeration of the area. Each call restarts from the
// first id.
func (a LoadArea) Iter() *AreaIter {
	return &AreaIter{area: a, cur: a.Start}
}

// AreaIter visits every id in its area exactly once, in row-major order:
// x fastest, then y, then z. The ordering is a contract relied on by the
// load scheduler and asserted by tests.
type AreaIter struct {
	area LoadArea
	cur  ChunkID
	done bool
}

// Next returns the next id in sequence, or false once the area is exhausted.
func (it *AreaIter) Next() (ChunkID, bool) {
	if it.done || it.cur.Z > it.area.End.Z ||
		it.area.Start.X > it.area.End.X || it.area.Start.Y > it.area.End.Y {
		it.done = true
		return ChunkID{}, false
	}

	id := it.cur

	it.cur.X++
	if it.cur.X > it.area.End.X {
		it.cur.X = it.area.Start.X
		it.cur.Y++
		if it.cur.Y > it.area.End.Y {
			it.cur.Y = it.area.Start.Y
			it.cur.Z++
		}
	}
	return id, true
}
