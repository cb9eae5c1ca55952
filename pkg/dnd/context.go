package dnd

import (
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// Change describes the reorder a host should commit after a drop.
//
// TargetContainerID is empty when the item was dropped back into its own
// container; the host then applies reorder.Swap to that container with
// SourceIndex and TargetIndex. Otherwise the host applies reorder.Move from
// the source to the target container.
type Change struct {
	SourceContainerID registry.ContainerID
	SourceIndex       int
	TargetIndex       int
	TargetContainerID registry.ContainerID
}

// IsMove reports whether the change crosses containers.
func (c Change) IsMove() bool { return c.TargetContainerID != "" }

// Target returns the container the item ends up in.
func (c Change) Target() registry.ContainerID {
	if c.IsMove() {
		return c.TargetContainerID
	}
	return c.SourceContainerID
}

// IsNoop reports whether applying c leaves every container unchanged.
func (c Change) IsNoop() bool {
	return !c.IsMove() && c.SourceIndex == c.TargetIndex
}

// Hooks are the host callbacks of a Context. Nil fields are skipped.
type Hooks struct {
	OnDragStart  func(Snapshot)
	OnDragUpdate func(Snapshot)
	OnDragEnd    func(Snapshot)
	OnDragCancel func(Snapshot)

	// OnChange is called after OnDragEnd with the reorder to commit.
	OnChange func(Change)
}

// Context composes one registry, one collision resolver, and one store. It is
// the only type a host needs: the rendering layer feeds it layout, the
// input layer feeds it pointer events, and the host receives callbacks.
//
// A Context is not safe for concurrent use.
type Context struct {
	reg   *registry.Registry
	store *Store
	hooks Hooks
}

// NewContext returns an idle context with an empty registry.
func NewContext(hooks Hooks, opts Options) *Context {
	c := &Context{reg: registry.New(), hooks: hooks}
	c.store = NewStore(c.reg, Listener{
		OnDragStart:  hooks.OnDragStart,
		OnDragUpdate: hooks.OnDragUpdate,
		OnDragEnd:    c.dropped,
		OnDragCancel: hooks.OnDragCancel,
	}, opts)
	return c
}

// Registry returns the context's registry for read access.
func (c *Context) Registry() *registry.Registry { return c.reg }

// Store returns the underlying state machine.
func (c *Context) Store() *Store { return c.store }

// RegisterDraggable records or updates an item's measured bounds.
func (c *Context) RegisterDraggable(id registry.ItemID, container registry.ContainerID, rect geom.Rect) error {
	return c.reg.RegisterDraggable(id, container, rect)
}

// UnregisterDraggable forgets an item.
func (c *Context) UnregisterDraggable(id registry.ItemID) {
	c.reg.UnregisterDraggable(id)
}

// RegisterDroppable records or updates a drop zone.
func (c *Context) RegisterDroppable(id registry.ContainerID, rect geom.Rect, grid geom.GridSpec, items []registry.ItemID) error {
	return c.reg.RegisterDroppable(id, rect, grid, items)
}

// UpdateDroppableRect updates a drop zone's measured bounds.
func (c *Context) UpdateDroppableRect(id registry.ContainerID, rect geom.Rect) error {
	return c.reg.UpdateDroppableRect(id, rect)
}

// UnregisterDroppable forgets a drop zone.
func (c *Context) UnregisterDroppable(id registry.ContainerID) {
	c.reg.UnregisterDroppable(id)
}

// SetItemOrder pushes a committed item order back into the registry.
func (c *Context) SetItemOrder(id registry.ContainerID, items []registry.ItemID) error {
	return c.reg.SetItemOrder(id, items)
}

// DragStart starts a drag. See [Store.DragStart].
func (c *Context) DragStart(item registry.ItemID, p geom.Point) error {
	return c.store.DragStart(item, p)
}

// DragMove moves the active drag. See [Store.DragMove].
func (c *Context) DragMove(p geom.Point) { c.store.DragMove(p) }

// DragEnd drops the active item. See [Store.DragEnd].
func (c *Context) DragEnd() { c.store.DragEnd() }

// DragCancel abandons the active drag. See [Store.DragCancel].
func (c *Context) DragCancel() { c.store.DragCancel() }

// Dispatch applies a lifecycle action. See [Store.Dispatch].
func (c *Context) Dispatch(a Action) error { return c.store.Dispatch(a) }

// Snapshot returns the current drag state.
func (c *Context) Snapshot() Snapshot { return c.store.Snapshot() }

func (c *Context) dropped(final Snapshot) {
	if c.hooks.OnDragEnd != nil {
		c.hooks.OnDragEnd(final)
	}
	if c.hooks.OnChange != nil {
		c.hooks.OnChange(c.changeFor(final))
	}
}

// changeFor derives the reorder for a final snapshot.
//
// A same-container insertion index may equal the item count ("append"), but
// the dragged item is already part of that list, so the index is clamped to
// the last position. A target container that was unregistered mid-drag
// yields a no-op change on the source.
func (c *Context) changeFor(final Snapshot) Change {
	s := final.Session
	ch := Change{
		SourceContainerID: s.SourceContainerID,
		SourceIndex:       s.SourceIndex,
		TargetIndex:       s.TargetIndex,
	}

	if final.Over == nil {
		ch.TargetIndex = s.SourceIndex
		return ch
	}
	if !s.SameContainer() {
		ch.TargetContainerID = s.TargetContainerID
		return ch
	}
	if last := final.Over.Len() - 1; ch.TargetIndex > last {
		ch.TargetIndex = max(last, 0)
	}
	return ch
}
