package mesh

import "github.com/go-gl/mathgl/mgl32"

// Blocks are unit cubes centered on their global coordinate, so every face
// corner sits half a block away from the center.
const half = 0.5

// quadCorners holds the four face corners per direction, wound
// counter-clockwise when viewed from outside the block.
var quadCorners = [6][4]mgl32.Vec3{
	Down: {
		{-half, -half, -half},
		{half, -half, -half},
		{half, -half, half},
		{-half, -half, half},
	},
	Up: {
		{-half, half, -half},
		{-half, half, half},
		{half, half, half},
		{half, half, -half},
	},
	Left: {
		{-half, -half, -half},
		{-half, -half, half},
		{-half, half, half},
		{-half, half, -half},
	},
	Right: {
		{half, -half, half},
		{half, -half, -half},
		{half, half, -half},
		{half, half, half},
	},
	Front: {
		{half, -half, -half},
		{-half, -half, -half},
		{-half, half, -half},
		{half, half, -half},
	},
	Back: {
		{-half, -half, half},
		{half, -half, half},
		{half, half, half},
		{-half, half, half},
	},
}

// corners returns the four world-space corners of the face of the block
// centered at pos.
func (d Direction) corners(pos mgl32.Vec3) [4]mgl32.Vec3 {
	c := quadCorners[d]
	return [4]mgl32.Vec3{
		pos.Add(c[0]),
		pos.Add(c[1]),
		pos.Add(c[2]),
		pos.Add(c[3]),
	}
}
