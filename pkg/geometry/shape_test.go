package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/material"
)

var (
	_ Shape = (*Sphere)(nil)
	_ Shape = (*Cuboid)(nil)
)

func TestShape_HitContract(t *testing.T) {
	shapes := map[string]Shape{
		"sphere": NewSphere(core.NewVec3(0, 0, 5), 1, material.Default()),
		"cuboid": NewCuboid(core.NewVec3(-1, -1, 4), core.NewVec3(1, 1, 6), material.Default()),
	}
	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.1, 0.05, 3)),
		core.NewRay(core.NewVec3(0.3, -0.2, -2), core.NewVec3(0, 0, 0.5)),
		core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(-1, 0, 0)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			for i, ray := range rays {
				before := ray
				first, firstHit := shape.Hit(ray)
				second, secondHit := shape.Hit(ray)

				if ray != before {
					t.Errorf("ray %d: Hit modified the ray", i)
				}
				if firstHit != secondHit {
					t.Fatalf("ray %d: repeated Hit disagreed (%t vs %t)", i, firstHit, secondHit)
				}
				if !firstHit {
					continue
				}
				if *first != *second {
					t.Errorf("ray %d: repeated Hit returned %+v then %+v", i, *first, *second)
				}

				if first.T <= 0 {
					t.Errorf("ray %d: expected t > 0, got %f", i, first.T)
				}
				if !vecNear(first.Point, ray.At(first.T), 1e-12) {
					t.Errorf("ray %d: point %v does not match ray.At(t) %v", i, first.Point, ray.At(first.T))
				}
				if math.Abs(first.Normal.Length()-1) > 1e-9 {
					t.Errorf("ray %d: expected unit normal, got %v", i, first.Normal)
				}
				if first.Material != shape.Surface() {
					t.Errorf("ray %d: expected shape material on hit", i)
				}
			}
		})
	}
}

func TestShape_HitDoesNotMutateShape(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, material.Default())
	cuboid := NewCuboid(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.Default())
	sphereBefore, cuboidBefore := *sphere, *cuboid

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	sphere.Hit(ray)
	cuboid.Hit(ray)

	if *sphere != sphereBefore {
		t.Errorf("Sphere changed from %+v to %+v", sphereBefore, *sphere)
	}
	if *cuboid != cuboidBefore {
		t.Errorf("Cuboid changed from %+v to %+v", cuboidBefore, *cuboid)
	}
}

func TestShape_String(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, material.Default())
	if got := sphere.String(); got != "sphere(center=(0, 0, 5), radius=1)" {
		t.Errorf("Unexpected sphere string %q", got)
	}

	cuboid := NewCuboid(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.Default())
	if got := cuboid.String(); got != "cuboid(min=(-1, -1, -1), max=(1, 1, 1))" {
		t.Errorf("Unexpected cuboid string %q", got)
	}
}
