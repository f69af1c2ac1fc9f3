package geometry

import (
	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/material"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3         // Point of intersection
	Normal    core.Vec3         // Outward unit normal at the intersection
	T         float64           // Parameter t along the ray, always > 0
	FrontFace bool              // Whether the ray arrived from outside the surface
	Material  material.Material // Material of the shape that was hit
}

// setOutwardNormal records the outward normal and which side the ray came from.
// Unlike a shading normal, the outward normal is never flipped toward the ray;
// callers viewing from inside interpret the sign themselves.
func (h *HitRecord) setOutwardNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.Normal = outwardNormal
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
}

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection at a strictly positive distance along
// the ray, or (nil, false). It never modifies the shape or the ray, so a shape
// can be queried from any number of goroutines.
type Shape interface {
	Hit(ray core.Ray) (*HitRecord, bool)
	Surface() material.Material
}
