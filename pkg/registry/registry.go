// Package registry holds the measured layout the drag core works against:
// one [DraggableNode] per mounted item and one [DroppableContainer] per drop
// zone.
//
// # Ownership
//
// The registry is written by the rendering layer (on mount, on every layout
// pass, on unmount) and read by the collision resolver and the drag store.
// It does not try to keep the two maps consistent with each other; every
// item listed in a container is expected to have a draggable entry because
// the renderer registers both from the same data.
//
// There is no package-level registry. Each grid context creates its own with
// [New], so two independent grids never see each other's containers.
//
// # Registration Order
//
// Containers remember the order in which they were first registered.
// Re-registering an existing container updates it in place without moving
// it. The collision resolver relies on this order to break ties
// deterministically.
//
// # Concurrency
//
// A Registry is not safe for concurrent use. The drag core is single-threaded
// and expects the host UI loop to serialize all calls.
package registry

import (
	"slices"

	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/geom"
)

// ItemID identifies a draggable item. It is opaque to the drag core.
type ItemID string

// ContainerID identifies a drop zone. It is opaque to the drag core.
type ContainerID string

// DraggableNode is the registry entry for one mounted item.
type DraggableNode struct {
	ID          ItemID
	ContainerID ContainerID // Owning drop zone
	Rect        geom.Rect   // Last measured bounds
}

// DroppableContainer is the registry entry for one drop zone.
type DroppableContainer struct {
	ID    ContainerID
	Rect  geom.Rect
	Grid  geom.GridSpec
	Items []ItemID // Current item order, owned by the registry
}

// Len returns the number of items in the container.
func (c *DroppableContainer) Len() int { return len(c.Items) }

// IndexOf returns the position of id in the container, or -1.
func (c *DroppableContainer) IndexOf(id ItemID) int {
	return slices.Index(c.Items, id)
}

// Registry is an arena of draggable and droppable entries keyed by id.
//
// The zero value is not usable - use New to create a Registry.
type Registry struct {
	draggables map[ItemID]*DraggableNode
	containers map[ContainerID]*DroppableContainer
	order      []*DroppableContainer // registration order
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		draggables: make(map[ItemID]*DraggableNode),
		containers: make(map[ContainerID]*DroppableContainer),
	}
}

// RegisterDraggable records or updates the draggable entry for id.
// It is called on mount and again on every layout pass with fresh bounds.
func (r *Registry) RegisterDraggable(id ItemID, container ContainerID, rect geom.Rect) error {
	if err := errors.ValidateID("item", string(id)); err != nil {
		return err
	}
	if err := errors.ValidateID("container", string(container)); err != nil {
		return err
	}
	if n, ok := r.draggables[id]; ok {
		n.ContainerID = container
		n.Rect = rect
		return nil
	}
	r.draggables[id] = &DraggableNode{ID: id, ContainerID: container, Rect: rect}
	return nil
}

// UnregisterDraggable removes the entry for id. Unknown ids are ignored.
func (r *Registry) UnregisterDraggable(id ItemID) {
	delete(r.draggables, id)
}

// Draggable returns the entry for id.
func (r *Registry) Draggable(id ItemID) (*DraggableNode, bool) {
	n, ok := r.draggables[id]
	return n, ok
}

// DraggableCount returns the number of registered draggables.
func (r *Registry) DraggableCount() int { return len(r.draggables) }

// RegisterDroppable records or updates a drop zone. The items slice is copied.
// A container that is already registered keeps its registration position.
func (r *Registry) RegisterDroppable(id ContainerID, rect geom.Rect, grid geom.GridSpec, items []ItemID) error {
	if err := errors.ValidateID("container", string(id)); err != nil {
		return err
	}
	if err := grid.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGrid, err, "container %q", id)
	}

	if c, ok := r.containers[id]; ok {
		c.Rect = rect
		c.Grid = grid
		c.Items = slices.Clone(items)
		return nil
	}

	c := &DroppableContainer{
		ID:    id,
		Rect:  rect,
		Grid:  grid,
		Items: slices.Clone(items),
	}
	r.containers[id] = c
	r.order = append(r.order, c)
	return nil
}

// UpdateDroppableRect updates the measured bounds of a registered container.
func (r *Registry) UpdateDroppableRect(id ContainerID, rect geom.Rect) error {
	c, ok := r.containers[id]
	if !ok {
		return errors.New(errors.ErrCodeUnknownContainer, "container %q is not registered", id)
	}
	c.Rect = rect
	return nil
}

// SetItemOrder replaces the item order of a registered container, typically
// after the host committed a reorder. The items slice is copied.
func (r *Registry) SetItemOrder(id ContainerID, items []ItemID) error {
	c, ok := r.containers[id]
	if !ok {
		return errors.New(errors.ErrCodeUnknownContainer, "container %q is not registered", id)
	}
	c.Items = slices.Clone(items)
	return nil
}

// UnregisterDroppable removes a drop zone. Unknown ids are ignored.
// The relative order of the remaining containers is preserved.
func (r *Registry) UnregisterDroppable(id ContainerID) {
	c, ok := r.containers[id]
	if !ok {
		return
	}
	delete(r.containers, id)
	r.order = slices.DeleteFunc(r.order, func(o *DroppableContainer) bool { return o == c })
}

// Droppable returns the container registered under id.
func (r *Registry) Droppable(id ContainerID) (*DroppableContainer, bool) {
	c, ok := r.containers[id]
	return c, ok
}

// Containers returns all containers in registration order.
// The returned slice is owned by the registry and must not be modified; it
// is returned without copying because the resolver walks it on every move.
func (r *Registry) Containers() []*DroppableContainer {
	return r.order
}

// Locate returns the container and index currently holding item.
// It reports false when the item is not registered, its container is not
// registered, or the container's order does not list it.
func (r *Registry) Locate(item ItemID) (*DroppableContainer, int, bool) {
	n, ok := r.draggables[item]
	if !ok {
		return nil, -1, false
	}
	c, ok := r.containers[n.ContainerID]
	if !ok {
		return nil, -1, false
	}
	idx := c.IndexOf(item)
	if idx < 0 {
		return c, -1, false
	}
	return c, idx, true
}
