package geometry

import "math"

// IntersectsTriangle reports whether a and t spatially intersect, using
// the Akenine-Moller separating-axis test over 13 candidate axes: the 3
// box axes, the triangle's own normal, and the 9 cross products of each
// triangle edge against each box axis.
//
// https://fileadmin.cs.lth.se/cs/Personal/Tomas_Akenine-Moller/code/tribox3.txt
func (a Aabb) IntersectsTriangle(t Triangle) bool {
	center := a.Center()
	h := a.Halfsize()

	v0 := t.At(0).Sub(center)
	v1 := t.At(1).Sub(center)
	v2 := t.At(2).Sub(center)

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	e2 := v0.Sub(v2)

	fex, fey, fez := math.Abs(e0.X), math.Abs(e0.Y), math.Abs(e0.Z)
	if !axisTestX01(e0.Z, e0.Y, fez, fey, v0, v2, h) {
		return false
	}
	if !axisTestY02(e0.Z, e0.X, fez, fex, v0, v2, h) {
		return false
	}
	if !axisTestZ12(e0.Y, e0.X, fey, fex, v1, v2, h) {
		return false
	}

	fex, fey, fez = math.Abs(e1.X), math.Abs(e1.Y), math.Abs(e1.Z)
	if !axisTestX01(e1.Z, e1.Y, fez, fey, v0, v2, h) {
		return false
	}
	if !axisTestY02(e1.Z, e1.X, fez, fex, v0, v2, h) {
		return false
	}
	if !axisTestZ0(e1.Y, e1.X, fey, fex, v0, v1, h) {
		return false
	}

	fex, fey, fez = math.Abs(e2.X), math.Abs(e2.Y), math.Abs(e2.Z)
	if !axisTestX2(e2.Z, e2.Y, fez, fey, v0, v1, h) {
		return false
	}
	if !axisTestY1(e2.Z, e2.X, fez, fex, v0, v1, h) {
		return false
	}
	if !axisTestZ12(e2.Y, e2.X, fey, fex, v1, v2, h) {
		return false
	}

	// Bullet #1: box vs triangle AABB.
	for i := 0; i < 3; i++ {
		min := math.Min(v0.At(i), math.Min(v1.At(i), v2.At(i)))
		max := math.Max(v0.At(i), math.Max(v1.At(i), v2.At(i)))
		if min > h.At(i) || max < -h.At(i) {
			return false
		}
	}

	// Bullet #2: box vs triangle plane.
	normal := CrossVector3(e0, e1)
	if !planeBoxOverlap(normal, v0, h) {
		return false
	}

	return true
}

// IntersectsAabb reports whether t and a spatially intersect.
func (t Triangle) IntersectsAabb(a Aabb) bool {
	return a.IntersectsTriangle(t)
}

func planeBoxOverlap(normal, v, halfsize Vector3) bool {
	var min, max Vector3

	for i := 0; i < 3; i++ {
		if normal.At(i) > 0 {
			min = min.Set(i, -halfsize.At(i)-v.At(i))
			max = max.Set(i, halfsize.At(i)-v.At(i))
		} else {
			min = min.Set(i, halfsize.At(i)-v.At(i))
			max = max.Set(i, -halfsize.At(i)-v.At(i))
		}
	}

	return DotVector3(normal, min) <= 0 && DotVector3(normal, max) >= 0
}

func axisTestX01(a, b, fa, fb float64, v0, v2, h Vector3) bool {
	p0 := a*v0.Y - b*v0.Z
	p2 := a*v2.Y - b*v2.Z
	min, max := p0, p2
	if p2 < p0 {
		min, max = p2, p0
	}
	rad := fa*h.Y + fb*h.Z
	return !(min > rad || max < -rad)
}

func axisTestX2(a, b, fa, fb float64, v0, v1, h Vector3) bool {
	p0 := a*v0.Y - b*v0.Z
	p1 := a*v1.Y - b*v1.Z
	min, max := p0, p1
	if p1 < p0 {
		min, max = p1, p0
	}
	rad := fa*h.Y + fb*h.Z
	return !(min > rad || max < -rad)
}

func axisTestY02(a, b, fa, fb float64, v0, v2, h Vector3) bool {
	p0 := -a*v0.X + b*v0.Z
	p2 := -a*v2.X + b*v2.Z
	min, max := p0, p2
	if p2 < p0 {
		min, max = p2, p0
	}
	rad := fa*h.X + fb*h.Z
	return !(min > rad || max < -rad)
}

func axisTestY1(a, b, fa, fb float64, v0, v1, h Vector3) bool {
	p0 := -a*v0.X + b*v0.Z
	p1 := -a*v1.X + b*v1.Z
	min, max := p0, p1
	if p1 < p0 {
		min, max = p1, p0
	}
	rad := fa*h.X + fb*h.Z
	return !(min > rad || max < -rad)
}

func axisTestZ12(a, b, fa, fb float64, v1, v2, h Vector3) bool {
	p1 := a*v1.X - b*v1.Y
	p2 := a*v2.X - b*v2.Y
	min, max := p1, p2
	if p2 < p1 {
		min, max = p2, p1
	}
	rad := fa*h.X + fb*h.Y
	return !(min > rad || max < -rad)
}

func axisTestZ0(a, b, fa, fb float64, v0, v1, h Vector3) bool {
	p0 := a*v0.X - b*v0.Y
	p1 := a*v1.X - b*v1.Y
	min, max := p0, p1
	if p1 < p0 {
		min, max = p1, p0
	}
	rad := fa*h.X + fb*h.Y
	return !(min > rad || max < -rad)
}
