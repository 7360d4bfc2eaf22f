// Package terrain produces block volumes for chunks from deterministic
// noise fields. Generators are pure functions of the seed and the chunk
// position, so the same configuration always yields the same world.
package terrain

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"cubeworld/internal/config"
	"cubeworld/internal/world"
)

// NoiseGenerator fills chunks from a fractal simplex heightmap. Columns are
// capped with grass, backed by a few layers of dirt and stone below.
type NoiseGenerator struct {
	noise       opensimplex.Noise32
	frequency   float64
	amplitude   float64
	octaves     int
	persistence float64
	lacunarity  float64
}

func NewNoiseGenerator(cfg config.TerrainConfig) *NoiseGenerator {
	octaves := cfg.Octaves
	if octaves < 1 {
		octaves = 1
	}
	return &NoiseGenerator{
		noise:       opensimplex.New32(cfg.Seed),
		frequency:   cfg.Frequency,
		amplitude:   cfg.Amplitude,
		octaves:     octaves,
		persistence: cfg.Persistence,
		lacunarity:  cfg.Lacunarity,
	}
}

// SurfaceHeight returns the terrain height at a global column, in blocks.
// The result lies within [-Amplitude, Amplitude].
func (g *NoiseGenerator) SurfaceHeight(x, z int) int {
	var (
		total     float64
		maxValue  float64
		freq      = g.frequency
		amplitude = 1.0
	)
	for i := 0; i < g.octaves; i++ {
		sample := float64(g.noise.Eval2(float32(float64(x)*freq), float32(float64(z)*freq)))
		total += sample * amplitude
		maxValue += amplitude
		amplitude *= g.persistence
		freq *= g.lacunarity
	}
	if maxValue == 0 {
		return 0
	}
	return int(math.Floor(total / maxValue * g.amplitude))
}

// Generate fills blocks for the chunk at id. The layering per column is
// grass at the surface, three blocks of dirt beneath it, stone below that.
func (g *NoiseGenerator) Generate(id world.ChunkID, blocks *[world.ChunkCube]world.Block) {
	origin := id.Coord()
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			height := g.SurfaceHeight(origin.X+x, origin.Z+z)
			for y := 0; y < world.ChunkSize; y++ {
				at := world.BlockCoord{X: x, Y: y, Z: z}
				blocks[at.Flatten()] = columnBlock(origin.Y+y, height)
			}
		}
	}
}

// sandLevel is the surface height at or below which columns are capped with
// sand instead of grass.
const sandLevel = -3

func columnBlock(y, height int) world.Block {
	switch {
	case y > height:
		return world.Air
	case y == height:
		if height <= sandLevel {
			return world.Sand
		}
		return world.Grass
	case y >= height-3:
		return world.Dirt
	default:
		return world.Stone
	}
}

// LayeredGenerator fills chunks with flat horizontal strata regardless of
// horizontal position. Useful for tests and as a minimal flatland world.
type LayeredGenerator struct{}

func NewLayeredGenerator() *LayeredGenerator {
	return &LayeredGenerator{}
}

func (LayeredGenerator) Generate(id world.ChunkID, blocks *[world.ChunkCube]world.Block) {
	origin := id.Coord()
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			for y := 0; y < world.ChunkSize; y++ {
				at := world.BlockCoord{X: x, Y: y, Z: z}
				blocks[at.Flatten()] = layeredBlock(origin.Y + y)
			}
		}
	}
}

func layeredBlock(y int) world.Block {
	switch {
	case y > 0:
		return world.Air
	case y == 0:
		return world.Grass
	case y >= -10:
		return world.Dirt
	default:
		return world.Stone
	}
}
