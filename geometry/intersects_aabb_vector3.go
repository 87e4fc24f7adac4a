package geometry

// IntersectsVector3 reports whether the point v lies inside (closed) a.
func (a Aabb) IntersectsVector3(v Vector3) bool {
	min, max := a.Min(), a.Max()
	return min.X <= v.X && v.X <= max.X &&
		min.Y <= v.Y && v.Y <= max.Y &&
		min.Z <= v.Z && v.Z <= max.Z
}

// IntersectsAabb reports whether the point v lies inside (closed) a.
func (v Vector3) IntersectsAabb(a Aabb) bool {
	return a.IntersectsVector3(v)
}
