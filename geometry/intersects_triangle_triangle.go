package geometry

// IntersectsTriangle reports whether t1 and t2 spatially intersect, using
// the Moller interval-overlap test with a coplanar fallback.
//
// https://fileadmin.cs.lth.se/cs/Personal/Tomas_Akenine-Moller/code/tritri_isectline.txt
func (t1 Triangle) IntersectsTriangle(t2 Triangle) bool {
	v0, v1, v2 := t1.Vertices()
	u0, u1, u2 := t2.Vertices()

	n1 := t1.Normal()
	d1 := -DotVector3(n1, v0)

	du0 := snap(DotVector3(n1, u0) + d1)
	du1 := snap(DotVector3(n1, u1) + d1)
	du2 := snap(DotVector3(n1, u2) + d1)

	du0du1 := du0 * du1
	du0du2 := du0 * du2

	if du0du1 > 0 && du0du2 > 0 {
		return false
	}

	n2 := t2.Normal()
	d2 := -DotVector3(n2, u0)

	dv0 := snap(DotVector3(n2, v0) + d2)
	dv1 := snap(DotVector3(n2, v1) + d2)
	dv2 := snap(DotVector3(n2, v2) + d2)

	dv0dv1 := dv0 * dv1
	dv0dv2 := dv0 * dv2

	if dv0dv1 > 0 && dv0dv2 > 0 {
		return false
	}

	d := CrossVector3(n1, n2)
	index := d.Abs().MaxIndex()

	vp := NewVector3(v0.At(index), v1.At(index), v2.At(index))
	up := NewVector3(u0.At(index), u1.At(index), u2.At(index))

	interval1, coplanar := computeInterval(vp, dv0, dv1, dv2, dv0dv1, dv0dv2)
	if coplanar {
		return coplanarTriTri(n1, v0, v1, v2, u0, u1, u2)
	}

	interval2, coplanar := computeInterval(up, du0, du1, du2, du0du1, du0du2)
	if coplanar {
		return coplanarTriTri(n1, v0, v1, v2, u0, u1, u2)
	}

	xx := interval1.x0 * interval1.x1
	yy := interval2.x0 * interval2.x1
	xxyy := xx * yy

	tmp := interval1.a * xxyy
	i10 := tmp + interval1.b*interval1.x1*yy
	i11 := tmp + interval1.c*interval1.x0*yy
	if i10 > i11 {
		i10, i11 = i11, i10
	}

	tmp = interval2.a * xxyy
	i20 := tmp + interval2.b*xx*interval2.x1
	i21 := tmp + interval2.c*xx*interval2.x0
	if i20 > i21 {
		i20, i21 = i21, i20
	}

	if i11 < i20 || i21 < i10 {
		return false
	}

	return true
}

// snap clamps signed distances whose magnitude is below Epsilon to
// exactly zero.
func snap(d float64) float64 {
	if d < Epsilon && d > -Epsilon {
		return 0
	}
	return d
}

type triInterval struct {
	a, b, c, x0, x1 float64
}

func computeInterval(vv Vector3, d0, d1, d2, d0d1, d0d2 float64) (triInterval, bool) {
	var in triInterval

	switch {
	case d0d1 > 0:
		in.a = vv.Z
		in.b = (vv.X - vv.Z) * d2
		in.c = (vv.Y - vv.Z) * d2
		in.x0 = d2 - d0
		in.x1 = d2 - d1
	case d0d2 > 0:
		in.a = vv.Y
		in.b = (vv.X - vv.Y) * d1
		in.c = (vv.Z - vv.Y) * d1
		in.x0 = d1 - d0
		in.x1 = d1 - d2
	case d1*d2 > 0 || d0 != 0:
		in.a = vv.X
		in.b = (vv.Y - vv.X) * d0
		in.c = (vv.Z - vv.X) * d0
		in.x0 = d0 - d1
		in.x1 = d0 - d2
	case d1 != 0:
		in.a = vv.Y
		in.b = (vv.X - vv.Y) * d1
		in.c = (vv.Z - vv.Y) * d1
		in.x0 = d1 - d0
		in.x1 = d1 - d2
	case d2 != 0:
		in.a = vv.Z
		in.b = (vv.X - vv.Z) * d2
		in.c = (vv.Y - vv.Z) * d2
		in.x0 = d2 - d0
		in.x1 = d2 - d1
	default:
		return triInterval{}, true
	}

	return in, false
}

func coplanarTriTri(n, v0, v1, v2, u0, u1, u2 Vector3) bool {
	a := n.Abs()

	var i0, i1 int
	if a.X > a.Y {
		if a.X > a.Z {
			i0, i1 = 1, 2
		} else {
			i0, i1 = 0, 1
		}
	} else {
		if a.Z > a.Y {
			i0, i1 = 0, 1
		} else {
			i0, i1 = 0, 2
		}
	}

	if edgeAgainstTriEdges(v0, v1, u0, u1, u2, i0, i1) {
		return true
	}
	if edgeAgainstTriEdges(v1, v2, u0, u1, u2, i0, i1) {
		return true
	}
	if edgeAgainstTriEdges(v2, v0, u0, u1, u2, i0, i1) {
		return true
	}

	if pointInTri(v0, u0, u1, u2, i0, i1) {
		return true
	}
	if pointInTri(u0, v0, v1, v2, i0, i1) {
		return true
	}

	return false
}

func edgeAgainstTriEdges(v0, v1, u0, u1, u2 Vector3, i0, i1 int) bool {
	ax := v1.At(i0) - v0.At(i0)
	ay := v1.At(i1) - v0.At(i1)

	if edgeEdgeTest(v0, u0, u1, ax, ay, i0, i1) {
		return true
	}
	if edgeEdgeTest(v0, u1, u2, ax, ay, i0, i1) {
		return true
	}
	if edgeEdgeTest(v0, u2, u0, ax, ay, i0, i1) {
		return true
	}

	return false
}

func edgeEdgeTest(v0, u0, u1 Vector3, ax, ay float64, i0, i1 int) bool {
	bx := u0.At(i0) - u1.At(i0)
	by := u0.At(i1) - u1.At(i1)
	cx := v0.At(i0) - u0.At(i0)
	cy := v0.At(i1) - u0.At(i1)
	f := ay*bx - ax*by
	d := by*cx - bx*cy

	if (f > 0 && d >= 0 && d <= f) || (f < 0 && d <= 0 && d >= f) {
		e := ax*cy - ay*cx

		if f > 0 {
			if e >= 0 && e <= f {
				return true
			}
		} else {
			if e <= 0 && e >= f {
				return true
			}
		}
	}

	return false
}

func pointInTri(v0, u0, u1, u2 Vector3, i0, i1 int) bool {
	a := u1.At(i1) - u0.At(i1)
	b := -(u1.At(i0) - u0.At(i0))
	c := -a*u0.At(i0) - b*u0.At(i1)
	d0 := a*v0.At(i0) + b*v0.At(i1) + c

	a = u2.At(i1) - u1.At(i1)
	b = -(u2.At(i0) - u1.At(i0))
	c = -a*u1.At(i0) - b*u1.At(i1)
	d1 := a*v0.At(i0) + b*v0.At(i1) + c

	a = u0.At(i1) - u2.At(i1)
	b = -(u0.At(i0) - u2.At(i0))
	c = -a*u2.At(i0) - b*u2.At(i1)
	d2 := a*v0.At(i0) + b*v0.At(i1) + c

	return d0*d1 > 0 && d0*d2 > 0
}
