package geometry

// IntersectsSphere reports whether a and b spatially intersect.
func (a Sphere) IntersectsSphere(b Sphere) bool {
	d := a.Center().Sub(b.Center())
	r := a.Radius() + b.Radius()
	return DotVector3(d, d) <= r*r
}
