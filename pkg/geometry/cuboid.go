package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/material"
)

const (
	// CuboidNormalOffset is how far back along the ray the hit point is moved
	// before the face test, so it sits just outside the face that was crossed
	CuboidNormalOffset = 0.001
	// CuboidFaceTolerance is the maximum distance from a face plane for the
	// offset point to be considered on that face
	CuboidFaceTolerance = 0.01
)

// cuboidFaces lists the faces in the order they are tested: x-min, x-max,
// y-min, y-max, z-min, z-max. Edge and corner hits resolve to the first match.
var cuboidFaces = [6]struct {
	axis   int
	max    bool
	normal core.Vec3
}{
	{0, false, core.NewVec3(-1, 0, 0)},
	{0, true, core.NewVec3(1, 0, 0)},
	{1, false, core.NewVec3(0, -1, 0)},
	{1, true, core.NewVec3(0, 1, 0)},
	{2, false, core.NewVec3(0, 0, -1)},
	{2, true, core.NewVec3(0, 0, 1)},
}

// Cuboid represents an axis-aligned box between two corners
type Cuboid struct {
	Min      core.Vec3 // Minimum corner
	Max      core.Vec3 // Maximum corner, above Min on every axis
	Material material.Material
}

// NewCuboid creates a new axis-aligned cuboid from its min and max corners
func NewCuboid(min, max core.Vec3, material material.Material) *Cuboid {
	return &Cuboid{
		Min:      min,
		Max:      max,
		Material: material,
	}
}

// Hit tests if a ray intersects with the cuboid using the slab method.
// A ray starting inside the box enters it at a negative distance and so
// reports no hit.
func (c *Cuboid) Hit(ray core.Ray) (*HitRecord, bool) {
	tEntry, _, ok := c.BoundingBox().Slab(ray)
	if !ok || !(tEntry > 0) {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        tEntry,
		Point:    ray.At(tEntry),
		Material: c.Material,
	}
	hitRecord.setOutwardNormal(ray, c.faceNormal(ray.At(tEntry-CuboidNormalOffset)))

	return hitRecord, true
}

// faceNormal returns the outward normal of the first face (in cuboidFaces
// order) within CuboidFaceTolerance of p. When no face is that close, which
// happens when a long ray direction pushes the offset point further out, the
// face whose plane is nearest to p wins, ties again going to the earlier face.
func (c *Cuboid) faceNormal(p core.Vec3) core.Vec3 {
	best := 0
	bestDistance := math.Inf(1)

	for i, face := range cuboidFaces {
		bound := c.Min.Axis(face.axis)
		if face.max {
			bound = c.Max.Axis(face.axis)
		}

		distance := math.Abs(p.Axis(face.axis) - bound)
		if distance < CuboidFaceTolerance {
			return face.normal
		}
		if distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}

	return cuboidFaces[best].normal
}

// Surface returns the cuboid's material
func (c *Cuboid) Surface() material.Material {
	return c.Material
}

// BoundingBox returns the axis-aligned bounding box for this cuboid
func (c *Cuboid) BoundingBox() core.AABB {
	return core.NewAABB(c.Min, c.Max)
}

func (c *Cuboid) String() string {
	return fmt.Sprintf("cuboid(min=%v, max=%v)", c.Min, c.Max)
}
