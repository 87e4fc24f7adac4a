package geometry

// Triangle is a plane triangle defined by three ordered vertices.
type Triangle struct {
	p, q, r Vector3
}

// NewTriangle constructs a Triangle from its vertices.
func NewTriangle(p, q, r Vector3) Triangle {
	return Triangle{p: p, q: q, r: r}
}

// Vertices returns the three vertices.
func (t Triangle) Vertices() (Vector3, Vector3, Vector3) {
	return t.p, t.q, t.r
}

// At returns the vertex at index i in [0,3). Panics otherwise.
func (t Triangle) At(i int) Vector3 {
	switch i {
	case 0:
		return t.p
	case 1:
		return t.q
	case 2:
		return t.r
	default:
		panic("geometry: triangle index out of range")
	}
}

// Normal returns (q-p) x (r-p), unnormalized.
func (t Triangle) Normal() Vector3 {
	u := t.q.Sub(t.p)
	v := t.r.Sub(t.p)
	return CrossVector3(u, v)
}

// UnitNormal returns the unit normal.
func (t Triangle) UnitNormal() Vector3 {
	return t.Normal().Unit()
}

// Area returns the triangle's area.
func (t Triangle) Area() float64 {
	return t.Normal().Mag() * 0.5
}

// Center returns the centroid of the triangle.
func (t Triangle) Center() Vector3 {
	return t.p.Add(t.q).Add(t.r).Scale(1. / 3.)
}

// Edges returns the three oriented boundary segments: q->p, r->q, p->r.
func (t Triangle) Edges() [3]Line {
	return [3]Line{
		NewLine(t.q, t.p),
		NewLine(t.r, t.q),
		NewLine(t.p, t.r),
	}
}

// IsCoplanarTriangle reports whether t0 and t1 are coplanar: the dot of
// their unit normals exceeds 1-Epsilon.
func IsCoplanarTriangle(t0, t1 Triangle) bool {
	n0 := t0.UnitNormal()
	n1 := t1.UnitNormal()
	return DotVector3(n0, n1) > (1 - Epsilon)
}

// Contains reports whether v, assumed to already lie in the triangle's
// plane, falls inside the triangle (closed: the boundary counts as
// inside), via a barycentric sign test.
func (t Triangle) Contains(v Vector3) bool {
	u, vv, w := barycentricOf(t, v)
	const tol = Epsilon
	return u >= -tol && u <= 1+tol &&
		vv >= -tol && vv <= 1+tol &&
		w >= -tol && w <= 1+tol
}

// barycentricOf solves for the barycentric coordinates of point v with
// respect to triangle t (assumed coplanar with v), using the standard
// area-ratio construction.
func barycentricOf(t Triangle, v Vector3) (u, vv, w float64) {
	e0 := t.q.Sub(t.p)
	e1 := t.r.Sub(t.p)
	e2 := v.Sub(t.p)

	d00 := DotVector3(e0, e0)
	d01 := DotVector3(e0, e1)
	d11 := DotVector3(e1, e1)
	d20 := DotVector3(e2, e0)
	d21 := DotVector3(e2, e1)

	denom := d00*d11 - d01*d01
	vv = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - vv - w
	return u, vv, w
}
