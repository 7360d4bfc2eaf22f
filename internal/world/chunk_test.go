package world

import "testing"

func TestLogicChunkStartsDirtyAndEmpty(t *testing.T) {
	chunk := NewLogicChunk()
	if chunk.Status() != StatusNone {
		t.Fatalf("new chunk status = %v, want %v", chunk.Status(), StatusNone)
	}
	if chunk.HasOpaque() {
		t.Fatalf("new chunk should be all air")
	}
}

func TestLogicChunkStatusTransitions(t *testing.T) {
	chunk := NewLogicChunk()

	chunk.MarkPending()
	if chunk.Status() != StatusPending {
		t.Fatalf("status after MarkPending = %v", chunk.Status())
	}

	// Pending cannot be re-entered.
	chunk.MarkPending()
	if chunk.Status() != StatusPending {
		t.Fatalf("status after duplicate MarkPending = %v", chunk.Status())
	}

	chunk.MarkBuilt()
	if chunk.Status() != StatusBuilt {
		t.Fatalf("status after MarkBuilt = %v", chunk.Status())
	}

	// MarkPending only applies to dirty chunks.
	chunk.MarkPending()
	if chunk.Status() != StatusBuilt {
		t.Fatalf("built chunk moved to %v on MarkPending", chunk.Status())
	}

	chunk.Invalidate()
	if chunk.Status() != StatusNone {
		t.Fatalf("status after Invalidate = %v", chunk.Status())
	}
}

func TestBlocksMutMarksDirty(t *testing.T) {
	chunk := NewLogicChunk()
	chunk.MarkPending()
	chunk.MarkBuilt()

	blocks := chunk.BlocksMut()
	if chunk.Status() != StatusNone {
		t.Fatalf("mutable access left status %v, want %v", chunk.Status(), StatusNone)
	}

	at := BlockCoord{X: 1, Y: 2, Z: 3}
	blocks[at.Flatten()] = Stone
	if got := chunk.Block(at); got != Stone {
		t.Fatalf("block at %v = %v, want stone", at, got)
	}
	if !chunk.HasOpaque() {
		t.Fatalf("chunk with a stone block reports no opaque blocks")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	chunk := NewLogicChunk()
	chunk.BlocksMut()[0] = Grass

	snap := chunk.Snapshot()
	snap[0] = Air

	if chunk.Block(BlockCoord{}) != Grass {
		t.Fatalf("mutating a snapshot changed the chunk")
	}
	if chunk.Status() != StatusNone {
		t.Fatalf("snapshot changed status to %v", chunk.Status())
	}
}

func TestBlockCatalog(t *testing.T) {
	if Air.Opaque() {
		t.Fatalf("air must not be opaque")
	}
	for _, b := range []Block{Stone, Dirt, Grass, Sand} {
		if !b.Opaque() {
			t.Fatalf("%v must be opaque", b)
		}
		if b.Color() == Air.Color() {
			t.Fatalf("%v has no distinct color", b)
		}
	}
}
