package core

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Slab clips the ray's parameter interval against the three slabs of the box,
// in X, Y, Z order. It returns the entry and exit distances and whether the
// clipped interval is non-empty. The entry distance may be zero or negative
// when the ray starts inside or past the box; callers decide what counts as a hit.
//
// A zero direction component divides to ±Inf (or NaN when the origin lies
// exactly on that slab's plane), which IEEE-754 comparison handles without
// special cases.
func (aabb AABB) Slab(ray Ray) (tMin, tMax float64, ok bool) {
	tMin, tMax = aabb.axisInterval(ray, 0)

	for axis := 1; axis < 3; axis++ {
		near, far := aabb.axisInterval(ray, axis)

		if tMin >= far || near >= tMax {
			return 0, 0, false
		}
		if near >= tMin {
			tMin = near
		}
		if far <= tMax {
			tMax = far
		}
	}

	return tMin, tMax, true
}

// axisInterval returns the ordered entry/exit distances for a single slab
func (aabb AABB) axisInterval(ray Ray, axis int) (near, far float64) {
	origin := ray.Origin.Axis(axis)
	direction := ray.Direction.Axis(axis)

	near = (aabb.Min.Axis(axis) - origin) / direction
	far = (aabb.Max.Axis(axis) - origin) / direction
	if near > far {
		near, far = far, near
	}
	return near, far
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if min is strictly below max on every axis
func (aabb AABB) IsValid() bool {
	return aabb.Min.X < aabb.Max.X &&
		aabb.Min.Y < aabb.Max.Y &&
		aabb.Min.Z < aabb.Max.Z
}

// Contains reports whether p lies inside or on the boundary of the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}
