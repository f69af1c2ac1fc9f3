package scene

// NewDefaultDescription returns the built-in scene: a sphere behind a unit cube
// on the z axis, probed by one ray starting inside the cube, one from in front
// of it and one running parallel to it.
func NewDefaultDescription() *Description {
	return &Description{
		Materials: []MaterialSpec{
			{Name: "red", Albedo: Vector{0.65, 0.25, 0.2}},
			{Name: "blue", Albedo: Vector{0.1, 0.2, 0.5}},
		},
		Shapes: []ShapeSpec{
			{Type: ShapeSphere, Center: Vector{0, 0, 5}, Radius: 1, Material: "red"},
			{Type: ShapeCuboid, Min: Vector{-1, -1, -1}, Max: Vector{1, 1, 1}, Material: "blue"},
		},
		Rays: []RaySpec{
			// Starts inside the cube, which it can't hit, and reaches the sphere at t=4
			{Origin: Vector{0, 0, 0}, Direction: Vector{0, 0, 1}},
			// Enters the cube's z-min face at t=4, in front of the sphere
			{Origin: Vector{0, 0, -5}, Direction: Vector{0, 0, 1}},
			// Parallel to the cube, outside it
			{Origin: Vector{0, 0, -5}, Direction: Vector{0, 1, 0}},
		},
	}
}
