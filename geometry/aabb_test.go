package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestAabbMinMax(t *testing.T) {
	a := NewAabb(NewVector3(1, 2, 3), NewVector3(0.5, 0.5, 0.5))

	test.That(t, a.Min(), test.ShouldResemble, a.Center().Sub(a.Halfsize()))
	test.That(t, a.Max(), test.ShouldResemble, a.Center().Add(a.Halfsize()))
}

func TestAabbOctantHalfsize(t *testing.T) {
	a := UnitAabb()

	for k := 0; k < 8; k++ {
		child := a.Octant(k)
		test.That(t, child.Halfsize(), test.ShouldResemble, a.Halfsize().Scale(0.5))
	}
}

func TestAabbOctantSigns(t *testing.T) {
	a := UnitAabb()

	child := a.Octant(0)
	test.That(t, child.Center().X < a.Center().X, test.ShouldBeTrue)
	test.That(t, child.Center().Y < a.Center().Y, test.ShouldBeTrue)
	test.That(t, child.Center().Z < a.Center().Z, test.ShouldBeTrue)

	child = a.Octant(7)
	test.That(t, child.Center().X > a.Center().X, test.ShouldBeTrue)
	test.That(t, child.Center().Y > a.Center().Y, test.ShouldBeTrue)
	test.That(t, child.Center().Z > a.Center().Z, test.ShouldBeTrue)
}

func TestAabbOctantPanicsOutOfRange(t *testing.T) {
	a := UnitAabb()
	test.That(t, func() { a.Octant(8) }, test.ShouldPanic)
}

func TestAabbFromBounds(t *testing.T) {
	min := NewVector3(-1, -2, -3)
	max := NewVector3(1, 2, 3)
	a := AabbFromBounds(min, max)

	test.That(t, a.Min(), test.ShouldResemble, min)
	test.That(t, a.Max(), test.ShouldResemble, max)
}
