package vec3

import "iter"

// The functions in this file let the result scalar type differ from the
// operand types, which the method set cannot express. The result type X
// is the leading type parameter so it can be given explicitly while the
// operand types are inferred:
//
//	area := vec3.Dot[SquareMeters](a, b)
//
// Components are converted through X before the arithmetic, which is
// how a value crosses a unit boundary (e.g. Meters times Seconds
// yielding MeterSeconds).

// Scale multiplies each component of v by scalar, producing a vector
// with components of type X.
func Scale[X Scalar, T Scalar, S Scalar](v Vector3D[T], scalar S) Vector3D[X] {
	return Vector3D[X]{
		X: X(v.X) * X(scalar),
		Y: X(v.Y) * X(scalar),
		Z: X(v.Z) * X(scalar),
	}
}

// ScaleDiv divides each component of v by scalar, producing a vector
// with components of type X.
func ScaleDiv[X Scalar, T Scalar, S Scalar](v Vector3D[T], scalar S) Vector3D[X] {
	return Vector3D[X]{
		X: X(v.X) / X(scalar),
		Y: X(v.Y) / X(scalar),
		Z: X(v.Z) / X(scalar),
	}
}

// Dot returns the dot product of a and b as a scalar of type X.
// Each axis multiplies the right-hand component by the left-hand one;
// the order only matters for scalar types where multiplication does not
// commute, but it is kept fixed so the formula reads the same everywhere.
func Dot[X Scalar, T Scalar, U Scalar](a Vector3D[T], b Vector3D[U]) X {
	return X(b.X)*X(a.X) + X(b.Y)*X(a.Y) + X(b.Z)*X(a.Z)
}

// Cross returns the cross product of a and b as a vector of type X,
// with the same per-axis operand order as Dot.
func Cross[X Scalar, T Scalar, U Scalar](a Vector3D[T], b Vector3D[U]) Vector3D[X] {
	return Vector3D[X]{
		X: X(b.Z)*X(a.Y) - X(b.Y)*X(a.Z),
		Y: X(b.X)*X(a.Z) - X(b.Z)*X(a.X),
		Z: X(b.Y)*X(a.X) - X(b.X)*X(a.Y),
	}
}

// Norm2 returns the squared magnitude of v as a scalar of type X.
func Norm2[X Scalar, T Scalar](v Vector3D[T]) X {
	return Dot[X](v, v)
}

// Sum folds a sequence of vectors into their component-wise total.
// An empty sequence yields the zero vector.
func Sum[T Scalar](seq iter.Seq[Vector3D[T]]) Vector3D[T] {
	var total Vector3D[T]
	first := true
	for v := range seq {
		if first {
			total = v
			first = false
			continue
		}
		total = total.Add(v)
	}
	return total
}

// SumPtrs is Sum over a sequence of pointers, copying each element
// before folding. The pointed-to vectors are never modified.
func SumPtrs[T Scalar](seq iter.Seq[*Vector3D[T]]) Vector3D[T] {
	var total Vector3D[T]
	first := true
	for p := range seq {
		v := *p
		if first {
			total = v
			first = false
			continue
		}
		total = total.Add(v)
	}
	return total
}
