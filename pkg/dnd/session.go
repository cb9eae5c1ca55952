package dnd

import (
	"fmt"
	"time"

	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// DefaultScale is the scale applied to the dragged item while it is lifted.
const DefaultScale = 1.06

// Phase is the state of the drag state machine.
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Session describes one drag gesture from pick-up to release.
// All fields except Phase are zero while Idle.
type Session struct {
	Phase             Phase
	ID                string // Unique per gesture, for logs and hooks
	ActiveItemID      registry.ItemID
	InitialPointer    geom.Point
	CurrentPointer    geom.Point
	SourceContainerID registry.ContainerID
	SourceIndex       int
	TargetContainerID registry.ContainerID
	TargetIndex       int // Insertion index in [0, len(target items)]
	StartedAt         time.Time
}

// Active reports whether a drag is in progress.
func (s Session) Active() bool { return s.Phase == Dragging }

// Delta returns how far the pointer moved since the drag started.
func (s Session) Delta() geom.Point {
	return s.CurrentPointer.Sub(s.InitialPointer)
}

// SameContainer reports whether the current target is the source container.
func (s Session) SameContainer() bool {
	return s.TargetContainerID == s.SourceContainerID
}

// Transform is the visual transform of the dragged item: a translation
// followed by a scale about the item's centre.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
}

// Identity is the transform of an item that is not being dragged.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// IsIdentity reports whether t leaves a rectangle unchanged.
func (t Transform) IsIdentity() bool { return t == Identity }

// Apply returns r scaled about its centre and then translated.
func (t Transform) Apply(r geom.Rect) geom.Rect {
	c := r.Center()
	w, h := r.Width*t.ScaleX, r.Height*t.ScaleY
	return geom.Rect{
		Left:   c.X - w/2 + t.X,
		Top:    c.Y - h/2 + t.Y,
		Width:  w,
		Height: h,
	}
}

// String formats t the way a CSS transform property would.
func (t Transform) String() string {
	return fmt.Sprintf("translate3d(%gpx, %gpx, 0) scaleX(%g) scaleY(%g)", t.X, t.Y, t.ScaleX, t.ScaleY)
}

func transformFor(s Session, scale float64) Transform {
	if !s.Active() {
		return Identity
	}
	d := s.Delta()
	return Transform{X: d.X, Y: d.Y, ScaleX: scale, ScaleY: scale}
}
