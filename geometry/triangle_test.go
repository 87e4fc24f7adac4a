package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestTriangleNormalArea(t *testing.T) {
	tr := NewTriangle(ZeroVector3(), NewVector3(1, 0, 0), NewVector3(0, 1, 0))

	test.That(t, tr.Normal(), test.ShouldResemble, NewVector3(0, 0, 1))
	test.That(t, tr.Area(), test.ShouldAlmostEqual, 0.5)
	test.That(t, tr.UnitNormal().Mag(), test.ShouldAlmostEqual, 1)
}

func TestTriangleCenter(t *testing.T) {
	tr := NewTriangle(NewVector3(0, 0, 0), NewVector3(3, 0, 0), NewVector3(0, 3, 0))
	test.That(t, tr.Center(), test.ShouldResemble, NewVector3(1, 1, 0))
}

func TestTriangleEdges(t *testing.T) {
	tr := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	edges := tr.Edges()

	test.That(t, edges[0].P(), test.ShouldResemble, tr.At(1))
	test.That(t, edges[0].Q(), test.ShouldResemble, tr.At(0))
	test.That(t, edges[1].P(), test.ShouldResemble, tr.At(2))
	test.That(t, edges[1].Q(), test.ShouldResemble, tr.At(1))
	test.That(t, edges[2].P(), test.ShouldResemble, tr.At(0))
	test.That(t, edges[2].Q(), test.ShouldResemble, tr.At(2))
}

func TestIsCoplanarTriangle(t *testing.T) {
	t1 := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))
	t2 := NewTriangle(NewVector3(2, 0, 0), NewVector3(3, 0, 0), NewVector3(2, 1, 0))
	test.That(t, IsCoplanarTriangle(t1, t2), test.ShouldBeTrue)

	t3 := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 0, 1))
	test.That(t, IsCoplanarTriangle(t1, t3), test.ShouldBeFalse)
}

func TestTriangleContains(t *testing.T) {
	tr := NewTriangle(NewVector3(0, 0, 0), NewVector3(2, 0, 0), NewVector3(0, 2, 0))

	test.That(t, tr.Contains(NewVector3(0.5, 0.5, 0)), test.ShouldBeTrue)
	test.That(t, tr.Contains(tr.At(0)), test.ShouldBeTrue)
	test.That(t, tr.Contains(NewVector3(1, 1, 0)), test.ShouldBeTrue)
	test.That(t, tr.Contains(NewVector3(2, 2, 0)), test.ShouldBeFalse)
}
