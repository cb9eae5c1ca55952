package dnd

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/dropgrid/pkg/collision"
	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/observability"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// Snapshot is a read-only view of the drag state for renderers and
// callbacks. Draggable and Over point into the registry and are nil while
// Idle.
type Snapshot struct {
	Session   Session
	Draggable *registry.DraggableNode
	Over      *registry.DroppableContainer
	Transform Transform
}

// Listener receives the store's lifecycle callbacks. Nil fields are skipped.
// Callbacks run synchronously on the caller's goroutine.
type Listener struct {
	OnDragStart  func(Snapshot)
	OnDragUpdate func(Snapshot)
	OnDragEnd    func(Snapshot)
	OnDragCancel func(Snapshot)
}

// Options configures a Store or Context.
type Options struct {
	// Scale is applied to the dragged item. Zero means DefaultScale.
	Scale float64

	// PointerSize is the side of the square used for collision tests.
	// Zero means collision.DefaultPointerSize.
	PointerSize float64

	// Logger receives the warning for rejected drag starts and debug lines
	// for each transition. Nil discards everything.
	Logger *log.Logger

	// NewID mints session ids. Nil uses random UUIDs.
	NewID func() string

	// Now is the clock used for session timing. Nil uses time.Now.
	Now func() time.Time
}

func (o *Options) setDefaults() {
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.PointerSize <= 0 {
		o.PointerSize = collision.DefaultPointerSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Store is the drag session state machine. It reads the registry but never
// writes to it and never changes item order.
//
// A Store is not safe for concurrent use.
type Store struct {
	reg      *registry.Registry
	resolver collision.Resolver
	listener Listener
	opts     Options

	session Session
	target  collision.Target
}

// NewStore returns an idle store reading from reg.
func NewStore(reg *registry.Registry, l Listener, opts Options) *Store {
	opts.setDefaults()
	return &Store{
		reg:      reg,
		resolver: collision.NewResolver(opts.PointerSize),
		listener: l,
		opts:     opts,
	}
}

// Phase returns the current phase.
func (s *Store) Phase() Phase { return s.session.Phase }

// Session returns a copy of the current session.
func (s *Store) Session() Session { return s.session }

// DragStart picks up item at pointer p.
//
// It is a no-op while a drag is already in progress. If item is not
// registered, or its container does not list it, the store stays Idle and
// an UNKNOWN_ITEM or UNKNOWN_CONTAINER error is returned.
func (s *Store) DragStart(item registry.ItemID, p geom.Point) error {
	if s.session.Active() {
		s.opts.Logger.Debug("drag start ignored, session active", "item", item, "active", s.session.ActiveItemID)
		return nil
	}

	node, ok := s.reg.Draggable(item)
	if !ok {
		return s.reject(errors.New(errors.ErrCodeUnknownItem, "item %q is not registered", item))
	}
	c, ok := s.reg.Droppable(node.ContainerID)
	if !ok {
		return s.reject(errors.New(errors.ErrCodeUnknownContainer,
			"container %q of item %q is not registered", node.ContainerID, item))
	}
	idx := c.IndexOf(item)
	if idx < 0 {
		return s.reject(errors.New(errors.ErrCodeUnknownItem,
			"item %q is not listed in container %q", item, c.ID))
	}

	s.session = Session{
		Phase:             Dragging,
		ID:                s.opts.NewID(),
		ActiveItemID:      item,
		InitialPointer:    p,
		CurrentPointer:    p,
		SourceContainerID: c.ID,
		SourceIndex:       idx,
		TargetContainerID: c.ID,
		TargetIndex:       idx,
		StartedAt:         s.opts.Now(),
	}
	s.target = collision.Target{ContainerID: c.ID, Index: idx, Valid: true}

	s.opts.Logger.Debug("drag start", "session", s.session.ID, "item", item, "container", c.ID, "index", idx)
	observability.Drag().OnSessionStart(s.session.ID, string(item), string(c.ID))
	s.emit(s.listener.OnDragStart, s.Snapshot())
	return nil
}

// DragMove moves the pointer to p and re-resolves the drop target.
// It is ignored while Idle.
func (s *Store) DragMove(p geom.Point) {
	if !s.session.Active() {
		return
	}
	s.session.CurrentPointer = p

	next := s.resolver.Resolve(s.reg, p, s.target)
	if next != s.target {
		s.target = next
		s.session.TargetContainerID = next.ContainerID
		s.session.TargetIndex = next.Index
		s.opts.Logger.Debug("drag target", "session", s.session.ID, "container", next.ContainerID, "index", next.Index)
		observability.Drag().OnTargetChange(s.session.ID, string(next.ContainerID), next.Index)
	}

	s.emit(s.listener.OnDragUpdate, s.Snapshot())
}

// DragEnd drops the item and returns to Idle. The listener receives the
// final snapshot; committing the reorder is up to the caller.
// It is ignored while Idle.
func (s *Store) DragEnd() {
	if !s.session.Active() {
		return
	}
	final := s.finish(observability.OutcomeDropped)
	s.emit(s.listener.OnDragEnd, final)
}

// DragCancel abandons the drag and returns to Idle. No reorder is implied.
// It is always safe to call.
func (s *Store) DragCancel() {
	if !s.session.Active() {
		return
	}
	final := s.finish(observability.OutcomeCanceled)
	s.emit(s.listener.OnDragCancel, final)
}

// Snapshot returns the current state with its resolved registry entries.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Session:   s.session,
		Transform: transformFor(s.session, s.opts.Scale),
	}
	if !s.session.Active() {
		return snap
	}
	if n, ok := s.reg.Draggable(s.session.ActiveItemID); ok {
		snap.Draggable = n
	}
	if c, ok := s.reg.Droppable(s.session.TargetContainerID); ok {
		snap.Over = c
	}
	return snap
}

// finish resets the store to Idle and returns the snapshot taken just before.
func (s *Store) finish(outcome observability.Outcome) Snapshot {
	final := s.Snapshot()
	elapsed := s.opts.Now().Sub(s.session.StartedAt)

	s.opts.Logger.Debug("drag "+string(outcome), "session", s.session.ID,
		"item", s.session.ActiveItemID,
		"from", s.session.SourceContainerID, "from_index", s.session.SourceIndex,
		"to", s.session.TargetContainerID, "to_index", s.session.TargetIndex,
		"elapsed", elapsed)
	observability.Drag().OnSessionEnd(s.session.ID, outcome, elapsed)

	s.session = Session{}
	s.target = collision.Target{}
	return final
}

func (s *Store) reject(err error) error {
	s.opts.Logger.Warn("drag start rejected", "err", err)
	observability.Drag().OnRejected(ActionDragStart.String(), err)
	return err
}

func (s *Store) emit(fn func(Snapshot), snap Snapshot) {
	if fn != nil {
		fn(snap)
	}
}
