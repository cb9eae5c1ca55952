// Package collision maps a pointer position to the drop zone and grid cell
// an item would land in if it were released there.
//
// # Policy
//
// The pointer is treated as a small square ([Resolver.PointerSize]) centred
// on the pointer position. Every registered container is scored by the area
// it shares with that square:
//
//   - the container with the largest positive overlap wins
//   - ties go to the container registered first
//   - when nothing overlaps, the previous target is returned unchanged
//
// The last rule keeps the target stable while the pointer crosses the gap
// between two zones, so the highlighted drop position does not flicker.
//
// Within the winning container the insertion index comes from
// [geom.CellIndexForPoint]. No adjustment is made when the dragged item
// already lives in that container.
//
// # Cost
//
// [Resolver.Resolve] runs on every pointer move. It walks the registry's
// container slice once and does not allocate.
package collision

import (
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// DefaultPointerSize is the side length of the pointer square.
const DefaultPointerSize = 1.0

// Target is the resolved drop position.
type Target struct {
	ContainerID registry.ContainerID
	Index       int
	Valid       bool // false until a container has been hit or seeded
}

// Resolver scores containers against the pointer.
// The zero value uses DefaultPointerSize.
type Resolver struct {
	PointerSize float64
}

// NewResolver returns a resolver with the given pointer size. Non-positive
// sizes select DefaultPointerSize.
func NewResolver(pointerSize float64) Resolver {
	if pointerSize <= 0 {
		pointerSize = DefaultPointerSize
	}
	return Resolver{PointerSize: pointerSize}
}

// Resolve returns the target under pointer, or prev when the pointer is
// outside every registered container. A kept index is clamped to the
// container's current length, which may have shrunk since prev was resolved.
func (r Resolver) Resolve(reg *registry.Registry, pointer geom.Point, prev Target) Target {
	size := r.PointerSize
	if size <= 0 {
		size = DefaultPointerSize
	}
	pr := geom.PointRect(pointer, size)

	var (
		best     *registry.DroppableContainer
		bestArea float64
	)
	for _, c := range reg.Containers() {
		// Strict comparison keeps the earliest registered container on ties.
		if a := geom.OverlapArea(pr, c.Rect); a > bestArea {
			best, bestArea = c, a
		}
	}
	if best == nil {
		if c, ok := reg.Droppable(prev.ContainerID); ok && prev.Valid {
			prev.Index = min(prev.Index, c.Len())
		}
		return prev
	}

	return Target{
		ContainerID: best.ID,
		Index:       geom.CellIndexForPoint(pointer, best.Rect, best.Grid, best.Len()),
		Valid:       true,
	}
}

// Hit reports the container with the largest overlap, or false. Unlike
// Resolve it has no memory of a previous target.
func (r Resolver) Hit(reg *registry.Registry, pointer geom.Point) (Target, bool) {
	t := r.Resolve(reg, pointer, Target{})
	return t, t.Valid
}
