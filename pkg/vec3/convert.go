package vec3

import "gonum.org/v1/gonum/spatial/r3"

// R3 converts the vector to a gonum r3.Vec, widening the components to
// float64.
func (v Vector3D[T]) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts a gonum r3.Vec to a float64 vector.
func FromR3(w r3.Vec) Vector3D[float64] {
	return Vector3D[float64]{X: w.X, Y: w.Y, Z: w.Z}
}
