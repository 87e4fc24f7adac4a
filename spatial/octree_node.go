package spatial

import "github.com/ajcurley/meshr/geometry"

// OctreeNode is one node of an Octree, addressed by its Morton/Z-order
// location code: the root is code 1, and each descent appends three
// bits (the octant index from Aabb.Octant) by shifting left three and
// OR-ing in the octant.
type OctreeNode struct {
	code   int
	bounds geometry.Aabb
	isLeaf bool
	items  []int
}

func newOctreeNode(code int, bounds geometry.Aabb) *OctreeNode {
	return &OctreeNode{code: code, bounds: bounds, isLeaf: true}
}

// Code returns the node's location code.
func (n *OctreeNode) Code() int {
	return n.code
}

// Bounds returns the node's (loose, unpadded) bounding box.
func (n *OctreeNode) Bounds() geometry.Aabb {
	return n.bounds
}

// IsLeaf reports whether the node has not yet been split.
func (n *OctreeNode) IsLeaf() bool {
	return n.isLeaf
}

// Items returns the indices of the items indexed directly on this
// node. Always empty for an internal (non-leaf) node.
func (n *OctreeNode) Items() []int {
	return n.items
}

// depth returns the node's depth below the root, derived from the
// position of the code's leading sentinel bit.
func (n *OctreeNode) depth() int {
	for d := 0; d <= maxDepth; d++ {
		if n.code>>(d*3) == 1 {
			return d
		}
	}
	panic("spatial: invalid octree location code")
}

// children returns the eight location codes of this node's octants.
func (n *OctreeNode) children() []int {
	children := make([]int, 8)
	for o := 0; o < 8; o++ {
		children[o] = (n.code << 3) | o
	}
	return children
}

// canSplit reports whether the node is eligible to split: it must
// still be a leaf, and must not already sit at the maximum depth a
// location code can address.
func (n *OctreeNode) canSplit(options OctreeOptions) bool {
	return n.isLeaf && n.depth() < options.MaxDepth
}

// shouldSplit reports whether the node has accumulated enough items to
// warrant splitting, and is still eligible to.
func (n *OctreeNode) shouldSplit(options OctreeOptions) bool {
	return len(n.items) > options.MaxItemsPerNode && n.canSplit(options)
}
