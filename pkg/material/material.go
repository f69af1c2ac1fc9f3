// Package material holds the surface description carried by shapes.
// Intersection code passes materials through without reading them;
// only the shading stage looks inside.
package material

import "github.com/df07/go-ray-intersect/pkg/core"

// Material describes the surface of a shape
type Material struct {
	Name   string    // Identifier used by scene descriptions
	Albedo core.Vec3 // Base color, components in [0, 1]
}

// New creates a new material
func New(name string, albedo core.Vec3) Material {
	return Material{Name: name, Albedo: albedo}
}

// Default returns the neutral grey material assigned to shapes that don't name one
func Default() Material {
	return New("default", core.NewVec3(0.5, 0.5, 0.5))
}
