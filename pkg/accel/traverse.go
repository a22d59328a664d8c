package accel

import (
	"math"

	"github.com/kestrelrender/pathtracer/pkg/core"
	"github.com/kestrelrender/pathtracer/pkg/material"
)

// Stack is a reusable, per-thread explicit traversal stack. Each render
// worker owns exactly one Stack and reuses it across every ray it traces.
type Stack struct {
	ids [traversalStackSize]uint32
	top int
}

// NewStack allocates a traversal stack sized for the depth bound above.
func NewStack() *Stack { return &Stack{} }

func (s *Stack) reset() { s.top = 0 }

func (s *Stack) push(id uint32) {
	if s.top < len(s.ids) {
		s.ids[s.top] = id
		s.top++
	}
	// A stack deep enough to overflow 64 entries implies a scene far past
	// the ~10^8-primitive sizing above; dropping the push beats a runtime
	// panic mid-render.
}

func (s *Stack) pop() (uint32, bool) {
	if s.top == 0 {
		return 0, false
	}
	s.top--
	return s.ids[s.top], true
}

// Hit traverses the BVH iteratively with the given reusable stack,
// returning the closest hit in (tMin, tMax), the same distance a linear
// scan over every object finds. Among hits at exactly equal t, which one
// is returned depends on the order the stack visits the objects, not on
// their order in Objects.
func (b *BVH) Hit(r core.Ray, tMin, tMax float64, stack *Stack) (*material.HitRecord, bool) {
	if len(b.Nodes) == 0 {
		return nil, false
	}

	stack.reset()
	stack.push(taggedNode(0))

	var invDir [3]float64
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			invDir[axis] = 1.0 / dir[axis]
		} else {
			invDir[axis] = math.Inf(1)
		}
	}

	var best *material.HitRecord
	closest := tMax

	for {
		id, ok := stack.pop()
		if !ok {
			break
		}
		if isObjectID(id) {
			obj := b.Objects[idIndex(id)]
			if hit, ok := obj.Hit(r, tMin, closest); ok {
				best = hit
				closest = hit.T
			}
			continue
		}

		n := &b.Nodes[idIndex(id)]
		hitLanes := simdSlab(n, origin, dir, invDir, tMin, closest)
		for lane := 0; lane < 4; lane++ {
			if hitLanes[lane] {
				stack.push(n.ids[lane])
			}
		}
	}

	return best, best != nil
}

// simdSlab runs the slab test across all four lanes of a packed node at
// once: per-lane t0/t1 from the precomputed inverse ray direction, reduced
// to a single [hitMin, hitMax] interval per lane, hit iff hitMax > hitMin.
// Lanes are independent and identically computed, the shape a real 4-wide
// SIMD instruction would operate on, run as an unrolled scalar loop since
// portable Go has no vector intrinsics.
func simdSlab(n *node, origin, dir, invDir [3]float64, tMin, tMax float64) [4]bool {
	var hitMin, hitMax [4]float64
	for lane := 0; lane < 4; lane++ {
		hitMin[lane] = tMin
		hitMax[lane] = tMax
	}

	for axis := 0; axis < 3; axis++ {
		for lane := 0; lane < 4; lane++ {
			if dir[axis] == 0 {
				if origin[axis] < n.min[axis][lane] || origin[axis] > n.max[axis][lane] {
					hitMax[lane] = hitMin[lane] - 1 // force a miss
				}
				continue
			}
			t0 := (n.min[axis][lane] - origin[axis]) * invDir[axis]
			t1 := (n.max[axis][lane] - origin[axis]) * invDir[axis]
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			if t0 > hitMin[lane] {
				hitMin[lane] = t0
			}
			if t1 < hitMax[lane] {
				hitMax[lane] = t1
			}
		}
	}

	var result [4]bool
	for lane := 0; lane < 4; lane++ {
		result[lane] = hitMax[lane] > hitMin[lane]
	}
	return result
}
