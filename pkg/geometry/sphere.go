package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := ray.Direction.Dot(oc)
	ocSquared := oc.Dot(oc)
	radiusSquared := s.Radius * s.Radius
	c := ocSquared - radiusSquared

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// From inside, only the far root lies ahead of the origin
	var root float64
	if ocSquared <= radiusSquared {
		root = (-halfB + sqrtD) / a
	} else {
		root = (-halfB - sqrtD) / a
	}

	// Sphere behind the origin, or origin exactly on the surface
	if !(root > 0) {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	hitRecord.setOutwardNormal(ray, hitRecord.Point.Subtract(s.Center).Normalize())

	return hitRecord, true
}

// Surface returns the sphere's material
func (s *Sphere) Surface() material.Material {
	return s.Material
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

func (s *Sphere) String() string {
	return fmt.Sprintf("sphere(center=%v, radius=%g)", s.Center, s.Radius)
}
