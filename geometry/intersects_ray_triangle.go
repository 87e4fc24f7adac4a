package geometry

// IntersectsTriangle reports whether the ray r hits the triangle t, using
// back-face-culled Moller-Trumbore: triangles facing away from the ray,
// or nearly edge-on, are rejected.
func (r Ray) IntersectsTriangle(t Triangle) bool {
	origin := r.Origin()
	direction := r.Direction()

	e0 := t.At(1).Sub(t.At(0))
	e1 := t.At(2).Sub(t.At(0))

	p := CrossVector3(direction, e1)
	d := DotVector3(e0, p)

	if d < Epsilon {
		return false
	}

	dInv := 1 / d
	s := origin.Sub(t.At(0))
	u := dInv * DotVector3(s, p)

	if u < 0 || u > 1 {
		return false
	}

	q := CrossVector3(s, e0)
	v := dInv * DotVector3(direction, q)

	if v < 0 || u+v > 1 {
		return false
	}

	return (dInv * DotVector3(e1, q)) > Epsilon
}

// IntersectsRay reports whether the ray r hits the triangle t.
func (t Triangle) IntersectsRay(r Ray) bool {
	return r.IntersectsTriangle(t)
}
