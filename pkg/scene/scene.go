// Package scene gathers shapes and answers closest-hit queries for rays.
package scene

import (
	"go.uber.org/zap"

	"github.com/df07/go-ray-intersect/pkg/core"
	"github.com/df07/go-ray-intersect/pkg/geometry"
)

// Scene contains the shapes a ray can hit
type Scene struct {
	Shapes []geometry.Shape // Objects in the scene
	logger *zap.Logger
}

// New creates a scene holding the given shapes
func New(shapes ...geometry.Shape) *Scene {
	return &Scene{
		Shapes: append(make([]geometry.Shape, 0, len(shapes)), shapes...),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger used for per-ray debug output. A nil logger disables it.
func (s *Scene) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Closest queries every shape and returns the hit with the smallest positive t,
// along with the index of the shape that produced it. When two shapes report
// the same distance the earlier one wins.
func (s *Scene) Closest(ray core.Ray) (*geometry.HitRecord, int, bool) {
	var closest *geometry.HitRecord
	closestIndex := -1

	for i, shape := range s.Shapes {
		hit, isHit := shape.Hit(ray)
		if !isHit {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
			closestIndex = i
		}
	}

	if closest == nil {
		s.log().Debug("ray missed", zap.Stringer("origin", ray.Origin), zap.Stringer("direction", ray.Direction))
		return nil, -1, false
	}

	s.log().Debug("ray hit",
		zap.Int("shape", closestIndex),
		zap.Float64("t", closest.T),
		zap.Stringer("normal", closest.Normal),
	)
	return closest, closestIndex, true
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// log tolerates scenes built as struct literals
func (s *Scene) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}
