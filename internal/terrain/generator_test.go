package terrain

import (
	"testing"

	"cubeworld/internal/config"
	"cubeworld/internal/world"
)

func testTerrainConfig() config.TerrainConfig {
	cfg := config.Default().Terrain
	cfg.Amplitude = 4
	return cfg
}

func TestNoiseGeneratorIsDeterministic(t *testing.T) {
	cfg := testTerrainConfig()
	a := NewNoiseGenerator(cfg)
	b := NewNoiseGenerator(cfg)

	var blocksA, blocksB [world.ChunkCube]world.Block
	id := world.ChunkID{X: 3, Y: -1, Z: -7}
	a.Generate(id, &blocksA)
	b.Generate(id, &blocksB)

	if blocksA != blocksB {
		t.Fatalf("same seed and position produced different chunks")
	}
}

func TestNoiseGeneratorSeedChangesTerrain(t *testing.T) {
	cfgA := testTerrainConfig()
	cfgB := testTerrainConfig()
	cfgB.Seed = cfgA.Seed + 1

	differs := false
	for x := -32; x < 32 && !differs; x += 4 {
		for z := -32; z < 32 && !differs; z += 4 {
			if NewNoiseGenerator(cfgA).SurfaceHeight(x, z) != NewNoiseGenerator(cfgB).SurfaceHeight(x, z) {
				differs = true
			}
		}
	}
	if !differs {
		t.Fatalf("different seeds produced identical heightmaps")
	}
}

func TestNoiseGeneratorRespectsAmplitude(t *testing.T) {
	gen := NewNoiseGenerator(testTerrainConfig())
	for x := -64; x <= 64; x += 7 {
		for z := -64; z <= 64; z += 7 {
			h := gen.SurfaceHeight(x, z)
			if h < -4 || h > 4 {
				t.Fatalf("height at (%d,%d) = %d, outside [-4, 4]", x, z, h)
			}
		}
	}
}

func TestNoiseGeneratorDeepChunkIsSolid(t *testing.T) {
	gen := NewNoiseGenerator(testTerrainConfig())

	var blocks [world.ChunkCube]world.Block
	gen.Generate(world.ChunkID{Y: -2}, &blocks)
	for i, b := range blocks {
		if b != world.Stone {
			t.Fatalf("deep chunk block %d = %v, want stone", i, b)
		}
	}
}

func TestNoiseGeneratorHighChunkIsAir(t *testing.T) {
	gen := NewNoiseGenerator(testTerrainConfig())

	var blocks [world.ChunkCube]world.Block
	gen.Generate(world.ChunkID{Y: 1}, &blocks)
	for i, b := range blocks {
		if b != world.Air {
			t.Fatalf("high chunk block %d = %v, want air", i, b)
		}
	}
}

func TestNoiseGeneratorSurfaceCap(t *testing.T) {
	gen := NewNoiseGenerator(testTerrainConfig())

	// Stack the chunks covering y in [-16, 15] and check each column's
	// topmost opaque block.
	var lower, upper [world.ChunkCube]world.Block
	gen.Generate(world.ChunkID{Y: -1}, &lower)
	gen.Generate(world.ChunkID{Y: 0}, &upper)

	blockAt := func(x, y, z int) world.Block {
		if y >= 0 {
			return upper[world.BlockCoord{X: x, Y: y, Z: z}.Flatten()]
		}
		return lower[world.BlockCoord{X: x, Y: y + world.ChunkSize, Z: z}.Flatten()]
	}

	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			for y := world.ChunkSize - 1; y >= -world.ChunkSize; y-- {
				b := blockAt(x, y, z)
				if b == world.Air {
					continue
				}
				height := gen.SurfaceHeight(x, z)
				wantTop := world.Grass
				if height <= -3 {
					wantTop = world.Sand
				}
				if b != wantTop {
					t.Fatalf("column (%d,%d): topmost opaque block at y=%d is %v, want %v", x, z, y, b, wantTop)
				}
				if y != height {
					t.Fatalf("column (%d,%d): surface at y=%d, heightmap says %d", x, z, y, height)
				}
				break
			}
		}
	}
}

func TestLayeredGeneratorStrata(t *testing.T) {
	gen := NewLayeredGenerator()

	var blocks [world.ChunkCube]world.Block
	gen.Generate(world.ChunkID{Y: -1}, &blocks)

	cases := []struct {
		at   world.BlockCoord
		want world.Block
	}{
		{world.BlockCoord{X: 0, Y: 15, Z: 0}, world.Dirt},  // global y = -1
		{world.BlockCoord{X: 5, Y: 6, Z: 9}, world.Dirt},   // global y = -10
		{world.BlockCoord{X: 5, Y: 5, Z: 9}, world.Stone},  // global y = -11
		{world.BlockCoord{X: 15, Y: 0, Z: 15}, world.Stone}, // global y = -16
	}
	for _, tc := range cases {
		if got := blocks[tc.at.Flatten()]; got != tc.want {
			t.Fatalf("block at %v = %v, want %v", tc.at, got, tc.want)
		}
	}

	gen.Generate(world.ChunkID{Y: 0}, &blocks)
	if got := blocks[world.BlockCoord{X: 3, Y: 0, Z: 3}.Flatten()]; got != world.Grass {
		t.Fatalf("surface block = %v, want grass", got)
	}
	if got := blocks[world.BlockCoord{X: 3, Y: 1, Z: 3}.Flatten()]; got != world.Air {
		t.Fatalf("block above surface = %v, want air", got)
	}
}
