package geometry

// IntersectsSphere reports whether a and s spatially intersect, computed
// as the squared distance from the sphere center to the box accumulated
// per axis, compared against r^2.
func (a Aabb) IntersectsSphere(s Sphere) bool {
	center := s.Center()
	min, max := a.Min(), a.Max()

	var d float64
	for i := 0; i < 3; i++ {
		c := center.At(i)
		switch {
		case c < min.At(i):
			t := c - min.At(i)
			d += t * t
		case c > max.At(i):
			t := c - max.At(i)
			d += t * t
		}
	}

	return d <= s.Radius()*s.Radius()
}

// IntersectsAabb reports whether s and a spatially intersect.
func (s Sphere) IntersectsAabb(a Aabb) bool {
	return a.IntersectsSphere(s)
}
