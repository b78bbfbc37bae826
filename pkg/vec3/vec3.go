// Package vec3 provides a generic three-dimensional vector value type.
//
// Vector3D is parameterized over its scalar type, so the same value type
// covers plain numbers and unit-carrying quantities (defined numeric
// types such as a Meters or Seconds float64). Operations that keep the
// scalar type fixed (addition, subtraction, negation) are methods;
// operations whose result type may differ from the operands (scalar
// multiply/divide, dot, cross, norm-squared) are package-level functions
// taking the result type as an explicit type parameter.
package vec3

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of types a vector component may have.
// Defined types over these kinds qualify, which is how unit-carrying
// quantities participate.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vector3D represents a 3D point or vector with components of type T.
// The zero value is the zero vector.
type Vector3D[T Scalar] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

// New creates a new 3D vector
func New[T Scalar](x, y, z T) Vector3D[T] {
	return Vector3D[T]{X: x, Y: y, Z: z}
}

// Zero returns the vector with all components at their zero value
func Zero[T Scalar]() Vector3D[T] {
	return Vector3D[T]{}
}

// At returns the component for axis 0, 1 or 2 (X, Y, Z).
// Any other axis is a caller bug and panics.
func (v Vector3D[T]) At(axis int) T {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vec3: invalid axis %d", axis))
}

// Set replaces the component for axis 0, 1 or 2 (X, Y, Z).
// Any other axis is a caller bug and panics.
func (v *Vector3D[T]) Set(axis int, s T) {
	switch axis {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	default:
		panic(fmt.Sprintf("vec3: invalid axis %d", axis))
	}
}

// Add returns the sum of two vectors
func (v Vector3D[T]) Add(other Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3D[T]) Sub(other Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Neg returns the vector with every component negated
func (v Vector3D[T]) Neg() Vector3D[T] {
	return Vector3D[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul multiplies the vector by a scalar of the same type.
// For a scalar of a different type, use Scale.
func (v Vector3D[T]) Mul(scalar T) Vector3D[T] {
	return Vector3D[T]{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Div divides the vector by a scalar of the same type.
// For a scalar of a different type, use ScaleDiv.
func (v Vector3D[T]) Div(scalar T) Vector3D[T] {
	return Vector3D[T]{
		X: v.X / scalar,
		Y: v.Y / scalar,
		Z: v.Z / scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector3D[T]) Dot(other Vector3D[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3D[T]) Cross(other Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Norm2 returns the squared magnitude of the vector.
// The true norm needs a square root, which would tie the scalar type to
// the floats; callers that want it can take math.Sqrt of this.
func (v Vector3D[T]) Norm2() T {
	return v.Dot(v)
}
