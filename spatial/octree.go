// Package spatial provides a loose octree spatial index over any item
// type that can test its own intersection against an axis-aligned
// bounding box.
package spatial

import (
	"sort"

	"github.com/edaniels/golog"

	"github.com/ajcurley/meshr/geometry"
)

// maxDepth bounds recursion so a location code (root code 1, three
// bits per level, so 3*depth+1 bits in all) never overflows a signed
// 64-bit int, which has 63 bits below the sign bit.
const maxDepth = (64 - 2) / 3

// AabbIntersector is the narrow interface an octree item must satisfy:
// it can test its own intersection against an axis-aligned bounding
// box. This replaces the single generic `Intersects<T>` trait of the
// original source with the one concrete method the octree actually
// calls, since Go has no trait objects parameterized the way Rust's
// generic bound is.
type AabbIntersector interface {
	IntersectsAabb(geometry.Aabb) bool
}

// SphereIntersector is the narrow interface an item must satisfy to
// support QuerySphere: it can test its own intersection against a
// sphere.
type SphereIntersector interface {
	IntersectsSphere(geometry.Sphere) bool
}

// RayIntersector is the narrow interface an item must satisfy to
// support QueryRay: it can test its own intersection against a ray.
type RayIntersector interface {
	IntersectsRay(geometry.Ray) bool
}

// OctreeOptions tunes node-splitting behavior. Use DefaultOctreeOptions
// for the original source's constants.
type OctreeOptions struct {
	MaxItemsPerNode int
	MaxDepth        int
}

// DefaultOctreeOptions returns the tuning the original source hard-coded:
// split once a leaf holds more than 100 items, down to a depth bounded
// by the machine word size.
func DefaultOctreeOptions() OctreeOptions {
	return OctreeOptions{
		MaxItemsPerNode: 100,
		MaxDepth:        maxDepth,
	}
}

// Octree is a loose octree: each node's stored bounds are exactly its
// geometric octant (no padding), but an item is indexed on every leaf
// it overlaps, so an item straddling a split is duplicated across
// leaves rather than forcing the split boundary to move. Nodes are
// addressed by Morton/Z-order location codes in a sparse map rather
// than a pointer tree, following the source's own node layout.
type Octree[T AabbIntersector] struct {
	nodes   map[int]*OctreeNode
	items   []T
	options OctreeOptions
	logger  golog.Logger
}

// NewOctree constructs an Octree over bounds with the given options.
// Pass a nil logger to disable split diagnostics.
func NewOctree[T AabbIntersector](bounds geometry.Aabb, options OctreeOptions, logger golog.Logger) *Octree[T] {
	return &Octree[T]{
		nodes:   map[int]*OctreeNode{1: newOctreeNode(1, bounds)},
		options: options,
		logger:  logger,
	}
}

// Node returns the node at the given location code.
func (o *Octree[T]) Node(code int) *OctreeNode {
	return o.nodes[code]
}

// Items returns every indexed item, in insertion order.
func (o *Octree[T]) Items() []T {
	return o.items
}

// Item returns the item at index.
func (o *Octree[T]) Item(index int) T {
	return o.items[index]
}

// Insert indexes item on every leaf it overlaps, starting from the
// root and descending breadth-first, splitting any leaf that crosses
// its item threshold afterward. Panics if item does not overlap the
// root bounds -- an item that can't be placed anywhere is a caller
// bug, not a recoverable condition.
func (o *Octree[T]) Insert(item T) int {
	index := len(o.items)
	queue := []int{1}
	var placed []int

	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]

		node, ok := o.nodes[code]
		if !ok || !item.IntersectsAabb(node.bounds) {
			continue
		}

		if node.isLeaf {
			node.items = append(node.items, index)
			placed = append(placed, code)
		} else {
			queue = append(queue, node.children()...)
		}
	}

	if len(placed) == 0 {
		panic("spatial: item not inserted")
	}

	o.items = append(o.items, item)

	for _, code := range placed {
		if o.nodes[code].shouldSplit(o.options) {
			o.split(code)
		}
	}

	return index
}

// split turns a leaf into an internal node, redistributing its items
// among the eight freshly created children according to each item's
// own intersection with the child bounds.
func (o *Octree[T]) split(code int) {
	node, ok := o.nodes[code]
	if !ok {
		return
	}
	if !node.canSplit(o.options) {
		panic("spatial: octree node cannot be split")
	}

	children := node.children()
	bounds := node.bounds
	items := node.items

	node.isLeaf = false
	node.items = nil

	if o.logger != nil {
		o.logger.Debugw("splitting octree node", "code", code, "depth", node.depth(), "items", len(items))
	}

	for octant, childCode := range children {
		childBounds := bounds.Octant(octant)
		child := newOctreeNode(childCode, childBounds)

		for _, item := range items {
			if o.items[item].IntersectsAabb(childBounds) {
				child.items = append(child.items, item)
			}
		}

		o.nodes[childCode] = child
	}
}

// QueryAabb returns the sorted, de-duplicated indices of every item
// that itself intersects q.
func (o *Octree[T]) QueryAabb(q geometry.Aabb) []int {
	return Query(o, geometry.Aabb.IntersectsAabb, func(item T, q geometry.Aabb) bool {
		return item.IntersectsAabb(q)
	}, q)
}

// QuerySphere returns the sorted, de-duplicated indices of every item
// that itself intersects q. T must also implement SphereIntersector,
// a bound QueryAabb doesn't need since AabbIntersector already covers
// it; Octree's own type parameter can't carry that extra constraint,
// so QuerySphere is a package-level function rather than a method.
func QuerySphere[T interface {
	AabbIntersector
	SphereIntersector
}](o *Octree[T], q geometry.Sphere) []int {
	return Query(o, geometry.Aabb.IntersectsSphere, func(item T, q geometry.Sphere) bool {
		return item.IntersectsSphere(q)
	}, q)
}

// QueryRay returns the sorted, de-duplicated indices of every item
// that itself intersects q. See QuerySphere for why this is a
// package-level function rather than a method.
func QueryRay[T interface {
	AabbIntersector
	RayIntersector
}](o *Octree[T], q geometry.Ray) []int {
	return Query(o, geometry.Aabb.IntersectsRay, func(item T, q geometry.Ray) bool {
		return item.IntersectsRay(q)
	}, q)
}

// Query does a breadth-first descent from the root of o, pruning any
// subtree whose bounds fail the bounds predicate against q, then
// narrows each candidate leaf's items down to those for which
// itemTest itself reports an intersection with q -- a node's loose
// bounds overlapping q says nothing about whether the items it holds
// actually do. Because loose membership can place one item on up to
// eight leaves, de-duplication happens through a set before the
// result is materialized and sorted. This is the generalized escape
// hatch behind QueryAabb/QuerySphere/QueryRay, for callers with a
// custom query shape; Go methods cannot introduce their own type
// parameters, so this is a package-level function rather than a
// method on Octree.
func Query[T AabbIntersector, Q any](o *Octree[T], bounds func(geometry.Aabb, Q) bool, itemTest func(T, Q) bool, q Q) []int {
	seen := make(map[int]struct{})
	queue := []int{1}

	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]

		node, ok := o.nodes[code]
		if !ok || !bounds(node.bounds, q) {
			continue
		}

		if node.isLeaf {
			for _, item := range node.items {
				if _, ok := seen[item]; ok {
					continue
				}
				if itemTest(o.items[item], q) {
					seen[item] = struct{}{}
				}
			}
		} else {
			queue = append(queue, node.children()...)
		}
	}

	result := make([]int, 0, len(seen))
	for item := range seen {
		result = append(result, item)
	}
	sort.Ints(result)

	return result
}
