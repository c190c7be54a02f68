package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	minPitch    = -89.0
	maxPitch    = 89.0
	minDistance = 0.01
)

// Camera orbits a target point. Yaw and pitch are in degrees.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Target   mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Distance float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       60.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
		Yaw:       30.0,
		Pitch:     20.0,
		Distance:  3.0,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. A zero height (minimised window) is ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Position returns the eye position in world space
func (c *Camera) Position() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	offset := mgl32.Vec3{
		c.Distance * cos32(pitch) * sin32(yaw),
		c.Distance * sin32(pitch),
		c.Distance * cos32(pitch) * cos32(yaw),
	}
	return c.Target.Add(offset)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Orbit rotates around the target by the given deltas in degrees
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	for c.Yaw >= 360 {
		c.Yaw -= 360
	}
	for c.Yaw < 0 {
		c.Yaw += 360
	}
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, minPitch, maxPitch)
}

// Zoom scales the orbit distance; factors below 1 move closer
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance *= factor
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	if c.Distance > c.FarPlane*0.5 {
		c.Distance = c.FarPlane * 0.5
	}
}

// Frame centres the camera on the box spanned by min and max and backs off
// far enough for the whole box to fit in the vertical field of view.
func (c *Camera) Frame(min, max mgl32.Vec3) {
	c.Target = min.Add(max).Mul(0.5)
	radius := max.Sub(min).Len() * 0.5
	if radius <= 0 {
		radius = 1
	}

	halfFOV := mgl32.DegToRad(c.FOV) * 0.5
	c.Distance = radius / sin32(halfFOV)
	c.NearPlane = c.Distance * 0.01
	c.FarPlane = c.Distance * 10
}

func sin32(a float32) float32 { return float32(math.Sin(float64(a))) }
func cos32(a float32) float32 { return float32(math.Cos(float64(a))) }
