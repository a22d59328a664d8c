// Package accel implements the scene acceleration structure: a binary-ish
// tree of 4-wide packed nodes, built top-down by median splits along the
// longest centroid axis and traversed with an explicit per-call stack of tagged child
// identifiers (no recursion).
package accel

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
)

// Hittable is the subset of geometry.Hittable the BVH needs: intersection
// and a bounding box. Declared locally so accel does not depend on
// geometry (geometry.Hittable is structurally identical).
type Hittable interface {
	Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// objectTag marks a child id as indexing into Objects rather than Nodes.
const objectTag uint32 = 1 << 31

func taggedObject(idx int) uint32 { return objectTag | uint32(idx) }
func taggedNode(idx int) uint32   { return uint32(idx) }
func isObjectID(id uint32) bool   { return id&objectTag != 0 }
func idIndex(id uint32) int       { return int(id &^ objectTag) }

// node is one packed 4-wide BVH node: four child AABBs laid out as
// struct-of-arrays (min/max per axis per lane) so the slab test can be run
// across all four lanes as a single batch, plus the four tagged child ids.
// Unused lanes carry core.InfiniteAABB() so their slab test always misses.
type node struct {
	min [3][4]float64
	max [3][4]float64
	ids [4]uint32
}

func emptyNode() node {
	var n node
	inf := core.InfiniteAABB()
	for lane := 0; lane < 4; lane++ {
		for axis := 0; axis < 3; axis++ {
			amin, amax := inf.Axis(axis)
			n.min[axis][lane] = amin
			n.max[axis][lane] = amax
		}
	}
	return n
}

func (n *node) setLane(lane int, box core.AABB, id uint32) {
	for axis := 0; axis < 3; axis++ {
		amin, amax := box.Axis(axis)
		n.min[axis][lane] = amin
		n.max[axis][lane] = amax
	}
	n.ids[lane] = id
}

// BVH is the flat, array-based scene acceleration structure: Nodes[0] is
// the root; Objects is the flat leaf array every object-tagged id indexes
// into. FiniteWorldCenter/FiniteWorldRadius give a bounding sphere over the
// scene's finite geometry (outsized "infinite plane" objects excluded so
// walls don't skew the radius).
type BVH struct {
	Nodes             []node
	Objects           []Hittable
	FiniteWorldCenter core.Vec3
	FiniteWorldRadius float64
}

// The explicit traversal stack needs depth log4(N) plus a small constant;
// 64 comfortably covers scenes up to ~10^8 primitives.
const traversalStackSize = 64

// NewBVH builds the acceleration structure over a flat list of objects.
// Construction is top-down: at each level the algorithm performs two nested
// median splits along the largest-extent centroid axis, producing up to
// four child groups packed into one node. A group of exactly one object
// becomes a direct object-tagged leaf in its lane; a larger group recurses
// into a new packed node (subtree-tagged); an empty group (from a
// degenerate split) is filled with the infinite-AABB sentinel.
func NewBVH(objects []Hittable) *BVH {
	b := &BVH{Objects: objects}
	if len(objects) == 0 {
		b.FiniteWorldRadius = 100
		return b
	}

	indices := make([]int, len(objects))
	for i := range indices {
		indices[i] = i
	}
	boxes := make([]core.AABB, len(objects))
	for i, o := range objects {
		boxes[i] = o.BoundingBox()
	}

	b.buildNode(indices, boxes)
	b.FiniteWorldCenter, b.FiniteWorldRadius = finiteWorldBounds(boxes)
	return b
}

// buildNode appends one packed node for indices and returns its index into
// b.Nodes.
func (b *BVH) buildNode(indices []int, boxes []core.AABB) int {
	groups := splitFour(indices, boxes)

	n := emptyNode()
	nodeIdx := len(b.Nodes)
	b.Nodes = append(b.Nodes, n) // reserve slot before recursing (children may append more nodes)

	for lane, group := range groups {
		switch len(group) {
		case 0:
			continue // leave the infinite-AABB sentinel from emptyNode
		case 1:
			idx := group[0]
			b.Nodes[nodeIdx].setLane(lane, boxes[idx], taggedObject(idx))
		default:
			box := unionOf(group, boxes)
			childIdx := b.buildNode(group, boxes)
			b.Nodes[nodeIdx].setLane(lane, box, taggedNode(childIdx))
		}
	}
	return nodeIdx
}

// splitFour performs two nested median splits along the longest centroid
// axis, producing up to four groups (LL, LR, RL, RR in lane order).
func splitFour(indices []int, boxes []core.AABB) [4][]int {
	left, right := medianSplit(indices, boxes)
	ll, lr := medianSplit(left, boxes)
	rl, rr := medianSplit(right, boxes)
	return [4][]int{ll, lr, rl, rr}
}

// medianSplit partitions indices by the median of their bounding-box
// centroids along the longest axis of the group's centroid bounds. Groups
// of 0 or 1 objects are returned unsplit (as the left half) so callers
// bottom out instead of recursing forever.
func medianSplit(indices []int, boxes []core.AABB) (left, right []int) {
	if len(indices) <= 1 {
		return indices, nil
	}

	var centroidBox core.AABB
	for i, idx := range indices {
		c := boxes[idx].Center()
		if i == 0 {
			centroidBox = core.NewAABB(c, c)
		} else {
			centroidBox = centroidBox.Union(core.NewAABB(c, c))
		}
	}
	axis := centroidBox.LongestAxis()

	sorted := append([]int(nil), indices...)
	sortByCentroidAxis(sorted, boxes, axis)

	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:]
}

// sortByCentroidAxis insertion-sorts the (small, already-grouped) index
// slice by centroid position on the given axis; NaN centroids (from boxes
// with infinite bounds on that axis) compare as equal rather than breaking
// the ordering.
func sortByCentroidAxis(indices []int, boxes []core.AABB, axis int) {
	key := func(idx int) float64 {
		c := boxes[idx].Center()
		switch axis {
		case 0:
			return c.X
		case 1:
			return c.Y
		default:
			return c.Z
		}
	}
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0; j-- {
			a, b := key(indices[j-1]), key(indices[j])
			if math.IsNaN(a) || math.IsNaN(b) || a <= b {
				break
			}
			indices[j-1], indices[j] = indices[j], indices[j-1]
		}
	}
}

func unionOf(indices []int, boxes []core.AABB) core.AABB {
	box := boxes[indices[0]]
	for _, idx := range indices[1:] {
		box = box.Union(boxes[idx])
	}
	return box
}

// largeObjectCutoff: an object whose bounding box spans more than this
// many world units along its longest axis is treated as an "infinite
// plane" (a wall or floor) and excluded from the finite-world bounding
// sphere exposed for scene-scale queries (camera placement, media sizing).
const largeObjectCutoff = 1e5

func finiteWorldBounds(boxes []core.AABB) (core.Vec3, float64) {
	var union core.AABB
	set := false
	for _, box := range boxes {
		size := box.Size()
		if size.X > largeObjectCutoff || size.Y > largeObjectCutoff || size.Z > largeObjectCutoff {
			continue
		}
		if !set {
			union = box
			set = true
		} else {
			union = union.Union(box)
		}
	}
	if !set {
		for i, box := range boxes {
			if i == 0 {
				union = box
			} else {
				union = union.Union(box)
			}
		}
	}
	center := union.Center()
	radius := union.Max.Subtract(center).Length()
	if radius == 0 {
		radius = 100
	}
	return center, radius
}
