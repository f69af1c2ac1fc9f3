package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/geometry"
	"github.com/df07/go-ray-intersect/pkg/material"
)

// ErrUnknownShape is returned when a description names a shape type that doesn't exist
var ErrUnknownShape = errors.New("unknown shape type")

// Shape type names accepted in descriptions
const (
	ShapeSphere = "sphere"
	ShapeCuboid = "cuboid"
)

// Vector is a 3-component vector as written in YAML: [x, y, z]
type Vector []float64

// Vec converts the vector, failing unless it has exactly three components
func (v Vector) Vec() (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// MaterialSpec declares a named material
type MaterialSpec struct {
	Name   string `yaml:"name"`
	Albedo Vector `yaml:"albedo"`
}

// ShapeSpec declares a sphere (center, radius) or a cuboid (min, max)
type ShapeSpec struct {
	Type     string  `yaml:"type"`
	Center   Vector  `yaml:"center,omitempty"`
	Radius   float64 `yaml:"radius,omitempty"`
	Min      Vector  `yaml:"min,omitempty"`
	Max      Vector  `yaml:"max,omitempty"`
	Material string  `yaml:"material,omitempty"`
}

// RaySpec declares a probe ray
type RaySpec struct {
	Origin    Vector `yaml:"origin"`
	Direction Vector `yaml:"direction"`
}

// Description is the declarative form of a scene plus the rays to fire into it
type Description struct {
	Materials []MaterialSpec `yaml:"materials"`
	Shapes    []ShapeSpec    `yaml:"shapes"`
	Rays      []RaySpec      `yaml:"rays"`
}

// ParseDescription decodes a YAML scene description
func ParseDescription(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parsing scene description: %w", err)
	}
	return &desc, nil
}

// LoadDescription reads and decodes a YAML scene description file
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene description: %w", err)
	}
	return ParseDescription(data)
}

// Marshal encodes the description as YAML
func (d *Description) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Build validates the description and constructs its shapes.
// Shapes without a material get material.Default().
func Build(desc *Description) (*Scene, error) {
	materials, err := buildMaterials(desc.Materials)
	if err != nil {
		return nil, err
	}

	s := New()
	for i, spec := range desc.Shapes {
		shape, err := buildShape(spec, materials)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		s.Add(shape)
	}
	return s, nil
}

// ProbeRays converts the described rays, rejecting zero directions
func (d *Description) ProbeRays() ([]core.Ray, error) {
	rays := make([]core.Ray, 0, len(d.Rays))
	for i, spec := range d.Rays {
		origin, err := spec.Origin.Vec()
		if err != nil {
			return nil, fmt.Errorf("ray %d origin: %w", i, err)
		}
		direction, err := spec.Direction.Vec()
		if err != nil {
			return nil, fmt.Errorf("ray %d direction: %w", i, err)
		}
		if direction.IsZero() {
			return nil, fmt.Errorf("ray %d: direction must be non-zero", i)
		}
		rays = append(rays, core.NewRay(origin, direction))
	}
	return rays, nil
}

func buildMaterials(specs []MaterialSpec) (map[string]material.Material, error) {
	materials := make(map[string]material.Material, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("material %d: name is required", i)
		}
		if _, exists := materials[spec.Name]; exists {
			return nil, fmt.Errorf("material %d: duplicate name %q", i, spec.Name)
		}
		albedo, err := spec.Albedo.Vec()
		if err != nil {
			return nil, fmt.Errorf("material %q albedo: %w", spec.Name, err)
		}
		materials[spec.Name] = material.New(spec.Name, albedo)
	}
	return materials, nil
}

func buildShape(spec ShapeSpec, materials map[string]material.Material) (geometry.Shape, error) {
	mat := material.Default()
	if spec.Material != "" {
		m, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", spec.Material)
		}
		mat = m
	}

	switch strings.ToLower(spec.Type) {
	case ShapeSphere:
		center, err := spec.Center.Vec()
		if err != nil {
			return nil, fmt.Errorf("sphere center: %w", err)
		}
		if !(spec.Radius > 0) {
			return nil, fmt.Errorf("sphere radius must be positive, got %g", spec.Radius)
		}
		return geometry.NewSphere(center, spec.Radius, mat), nil

	case ShapeCuboid:
		min, err := spec.Min.Vec()
		if err != nil {
			return nil, fmt.Errorf("cuboid min: %w", err)
		}
		max, err := spec.Max.Vec()
		if err != nil {
			return nil, fmt.Errorf("cuboid max: %w", err)
		}
		if !core.NewAABB(min, max).IsValid() {
			return nil, fmt.Errorf("cuboid min must be below max on every axis, got min=%v max=%v", min, max)
		}
		return geometry.NewCuboid(min, max, mat), nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownShape, spec.Type)
}
