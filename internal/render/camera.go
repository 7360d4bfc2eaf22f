package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cubeworld/internal/config"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-flying first person camera driven by yaw and pitch.
type Camera struct {
	Position mgl32.Vec3
	yaw      float32
	pitch    float32
	front    mgl32.Vec3
}

// NewCamera places a camera at position looking down negative Z.
func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{Position: position, yaw: -90}
	c.updateFront()
	return c
}

// Rotate applies a yaw and pitch delta in degrees. Pitch is clamped short of
// straight up and down to keep the view basis well defined.
func (c *Camera) Rotate(yawDelta, pitchDelta float32) {
	c.yaw += yawDelta
	c.pitch += pitchDelta
	if c.pitch > 89 {
		c.pitch = 89
	}
	if c.pitch < -89 {
		c.pitch = -89
	}
	c.updateFront()
}

func (c *Camera) updateFront() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)
	c.front = mgl32.Vec3{
		cos(yaw) * cos(pitch),
		sin(pitch),
		sin(yaw) * cos(pitch),
	}.Normalize()
}

// Front returns the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Move translates the camera by forward/right/up amounts in world units.
// Forward ignores pitch so horizontal flight stays level.
func (c *Camera) Move(forward, right, up float32) {
	level := mgl32.Vec3{c.front.X(), 0, c.front.Z()}
	if level.Len() > 0 {
		level = level.Normalize()
	}
	sideways := c.front.Cross(worldUp).Normalize()

	c.Position = c.Position.
		Add(level.Mul(forward)).
		Add(sideways.Mul(right)).
		Add(worldUp.Mul(up))
}

// View returns the camera's view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), worldUp)
}

// Projection builds the perspective matrix for the configured window.
func Projection(cfg config.RenderConfig) mgl32.Mat4 {
	aspect := float32(cfg.WindowWidth) / float32(cfg.WindowHeight)
	return mgl32.Perspective(
		mgl32.DegToRad(float32(cfg.FieldOfView)),
		aspect,
		float32(cfg.NearPlane),
		float32(cfg.FarPlane),
	)
}

func sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}
