package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestIntersectsAabbAabb(t *testing.T) {
	cases := []struct {
		name   string
		b      Aabb
		expect bool
	}{
		{"overlap full", NewAabb(ZeroVector3(), NewVector3(0.1, 0.1, 0.1)), true},
		{"overlap partial", NewAabb(NewVector3(0.4, 0.4, 0.4), NewVector3(0.2, 0.2, 0.2)), true},
		{"shared face", NewAabb(NewVector3(1, 0, 0), NewVector3(0.5, 0.5, 0.5)), true},
		{"separated x", NewAabb(NewVector3(2, 0, 0), NewVector3(0.2, 0.2, 0.2)), false},
		{"separated y", NewAabb(NewVector3(0, 2, 0), NewVector3(0.2, 0.2, 0.2)), false},
		{"separated z", NewAabb(NewVector3(0, 0, 2), NewVector3(0.2, 0.2, 0.2)), false},
	}

	a := UnitAabb()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			test.That(t, a.IntersectsAabb(c.b), test.ShouldEqual, c.expect)
			test.That(t, c.b.IntersectsAabb(a), test.ShouldEqual, c.expect)
		})
	}
}

func TestIntersectsAabbVector3(t *testing.T) {
	a := UnitAabb()

	test.That(t, a.IntersectsVector3(NewVector3(-0.1, 0.4, 0.2)), test.ShouldBeTrue)
	test.That(t, a.IntersectsVector3(NewVector3(0.5, 0.5, 0.2)), test.ShouldBeTrue)
	test.That(t, a.IntersectsVector3(NewVector3(2, 2, 2)), test.ShouldBeFalse)
}

func TestIntersectsAabbSphere(t *testing.T) {
	a := UnitAabb()

	test.That(t, a.IntersectsSphere(NewSphere(NewVector3(0.4, 0.1, 0.2), 0.05)), test.ShouldBeTrue)
	test.That(t, a.IntersectsSphere(NewSphere(NewVector3(0.6, 0.1, 0.2), 0.2)), test.ShouldBeTrue)
	test.That(t, a.IntersectsSphere(NewSphere(NewVector3(-1, 0, 0), 0.1)), test.ShouldBeFalse)
}

func TestIntersectsAabbRay(t *testing.T) {
	a := UnitAabb()

	hit := NewRay(NewVector3(-1, -1, -1), NewVector3(1, 1, 1))
	test.That(t, a.IntersectsRay(hit), test.ShouldBeTrue)

	miss := NewRay(NewVector3(1, 1, 1), NewVector3(1, 1, 1))
	test.That(t, a.IntersectsRay(miss), test.ShouldBeFalse)
}

// TestIntersectsAabbTriangleScenarioS6 covers spec scenario S6.
func TestIntersectsAabbTriangleScenarioS6(t *testing.T) {
	a := UnitAabb()

	inside := NewTriangle(
		NewVector3(0.5, 0.5, 0.5),
		NewVector3(1.25, 0.75, 0.5),
		NewVector3(1.25, 0.25, 0.5),
	)
	test.That(t, a.IntersectsTriangle(inside), test.ShouldBeTrue)

	outside := NewTriangle(
		NewVector3(0.1, 1.1, 0.9),
		NewVector3(0.5, 0.8, 1.5),
		NewVector3(0.9, 1.1, 0.9),
	)
	test.That(t, a.IntersectsTriangle(outside), test.ShouldBeFalse)
}

func TestIntersectsAabbTriangleSymmetry(t *testing.T) {
	a := UnitAabb()
	tr := NewTriangle(
		NewVector3(0.5, 0.5, 0.5),
		NewVector3(1.25, 0.75, 0.5),
		NewVector3(1.25, 0.25, 0.5),
	)

	test.That(t, a.IntersectsTriangle(tr), test.ShouldEqual, tr.IntersectsAabb(a))
}

func TestIntersectsRayTriangle(t *testing.T) {
	hit := NewRay(NewVector3(0.5, 0.5, 0), NewVector3(0, 0, 1))
	front := NewTriangle(NewVector3(0, 0, 1), NewVector3(0, 1, 1), NewVector3(1, 0, 1))
	test.That(t, hit.IntersectsTriangle(front), test.ShouldBeTrue)

	backface := NewTriangle(NewVector3(0, 0, 1), NewVector3(1, 0, 1), NewVector3(0, 1, 1))
	test.That(t, hit.IntersectsTriangle(backface), test.ShouldBeFalse)

	miss := NewRay(NewVector3(2, 2, 0), NewVector3(0, 0, 1))
	test.That(t, miss.IntersectsTriangle(front), test.ShouldBeFalse)
}

func TestIntersectsRaySphere(t *testing.T) {
	hit := NewRay(NewVector3(-1, 0, 0), NewVector3(1, 0, 0))
	sphere := NewSphere(ZeroVector3(), 0.1)
	test.That(t, hit.IntersectsSphere(sphere), test.ShouldBeTrue)

	miss := NewRay(NewVector3(-1, 0, 0), NewVector3(-1, 0, 0))
	test.That(t, miss.IntersectsSphere(sphere), test.ShouldBeFalse)
}

func TestIntersectsSphereSphere(t *testing.T) {
	a := NewSphere(ZeroVector3(), 1)
	b := NewSphere(NewVector3(0.1, 0.1, 0.1), 0.2)
	test.That(t, a.IntersectsSphere(b), test.ShouldBeTrue)

	c := NewSphere(NewVector3(1, 1, 1), 0.2)
	small := NewSphere(ZeroVector3(), 0.5)
	test.That(t, small.IntersectsSphere(c), test.ShouldBeFalse)
}

func TestIntersectsSphereVector3(t *testing.T) {
	s := NewSphere(ZeroVector3(), 1)
	test.That(t, s.IntersectsVector3(NewVector3(0.1, 0.2, 0.3)), test.ShouldBeTrue)

	small := NewSphere(ZeroVector3(), 0.1)
	test.That(t, small.IntersectsVector3(NewVector3(1, 1, 1)), test.ShouldBeFalse)
}

func TestIntersectsTriangleTriangle(t *testing.T) {
	t1 := NewTriangle(NewVector3(0, 0, 0), NewVector3(2, 0, 0), NewVector3(2, 2, 0))

	overlap := NewTriangle(NewVector3(1, 0.1, -0.5), NewVector3(1, 0.1, 1), NewVector3(1, 0.3, 1))
	test.That(t, t1.IntersectsTriangle(overlap), test.ShouldBeTrue)

	coplanarOverlap := NewTriangle(NewVector3(1, 0, 0), NewVector3(3, 0, 0), NewVector3(3, 2, 0))
	test.That(t, t1.IntersectsTriangle(coplanarOverlap), test.ShouldBeTrue)

	farCoplanar := NewTriangle(NewVector3(5, 0, 0), NewVector3(6, 0, 0), NewVector3(6, 6, 0))
	t2 := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(1, 1, 0))
	test.That(t, t2.IntersectsTriangle(farCoplanar), test.ShouldBeFalse)
}

func TestIntersectsTriangleTriangleIdenticalCoplanar(t *testing.T) {
	tr := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	test.That(t, tr.IntersectsTriangle(tr), test.ShouldBeTrue)
}

func TestIntersectsTriangleTriangleSharedVertexOnly(t *testing.T) {
	t1 := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	t2 := NewTriangle(NewVector3(0, 0, 0), NewVector3(-1, 0, 0), NewVector3(0, -1, 0))
	test.That(t, t1.IntersectsTriangle(t2), test.ShouldBeTrue)
}

func TestIntersectionLineTriangle(t *testing.T) {
	l := NewLine(NewVector3(0.5, 0.5, 0), NewVector3(0.5, 0.5, 2))
	tr := NewTriangle(NewVector3(0, 0, 1), NewVector3(0, 1, 1), NewVector3(1, 0, 1))

	point, ok := l.IntersectionTriangle(tr)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, point, test.ShouldResemble, NewVector3(0.5, 0.5, 1))
}

func TestIntersectionLineTriangleNotCulled(t *testing.T) {
	l := NewLine(NewVector3(0.5, 0.5, 0), NewVector3(0.5, 0.5, 2))
	tr := NewTriangle(NewVector3(0, 0, 1), NewVector3(1, 0, 1), NewVector3(0, 1, 1))

	point, ok := l.IntersectionTriangle(tr)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, point, test.ShouldResemble, NewVector3(0.5, 0.5, 1))
}

func TestIntersectionLineTriangleMiss(t *testing.T) {
	l := NewLine(NewVector3(2, 2, 0), NewVector3(2, 2, 1))
	tr := NewTriangle(NewVector3(0, 0, 1), NewVector3(0, 1, 1), NewVector3(1, 0, 1))

	_, ok := l.IntersectionTriangle(tr)
	test.That(t, ok, test.ShouldBeFalse)
}
