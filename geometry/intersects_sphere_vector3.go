package geometry

// IntersectsVector3 reports whether the point v lies within (closed) s.
func (s Sphere) IntersectsVector3(v Vector3) bool {
	d := v.Sub(s.Center())
	return DotVector3(d, d) <= s.Radius()*s.Radius()
}

// IntersectsSphere reports whether the point v lies within (closed) s.
func (v Vector3) IntersectsSphere(s Sphere) bool {
	return s.IntersectsVector3(v)
}
