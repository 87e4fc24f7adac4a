package geometry

// IntersectsAabb reports whether a and b spatially intersect. The test is
// closed: ranges that only touch at a shared face still intersect.
func (a Aabb) IntersectsAabb(b Aabb) bool {
	minA, maxA := a.Min(), a.Max()
	minB, maxB := b.Min(), b.Max()

	return minA.X <= maxB.X && maxA.X >= minB.X &&
		minA.Y <= maxB.Y && maxA.Y >= minB.Y &&
		minA.Z <= maxB.Z && maxA.Z >= minB.Z
}
