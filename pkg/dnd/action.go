package dnd

import (
	"fmt"

	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// ActionType names a drag lifecycle event.
type ActionType int

const (
	ActionDragStart ActionType = iota + 1
	ActionDragMove
	ActionDragEnd
	ActionDragCancel
)

var actionNames = map[ActionType]string{
	ActionDragStart:  "drag_start",
	ActionDragMove:   "drag_move",
	ActionDragEnd:    "drag_end",
	ActionDragCancel: "drag_cancel",
}

func (a ActionType) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("ActionType(%d)", int(a))
}

// Action is a lifecycle event in reducer form. Item is read only by
// ActionDragStart and Pointer only by ActionDragStart and ActionDragMove.
type Action struct {
	Type    ActionType
	Item    registry.ItemID
	Pointer geom.Point
}

// Start returns an ActionDragStart.
func Start(item registry.ItemID, p geom.Point) Action {
	return Action{Type: ActionDragStart, Item: item, Pointer: p}
}

// MoveTo returns an ActionDragMove.
func MoveTo(p geom.Point) Action { return Action{Type: ActionDragMove, Pointer: p} }

// End returns an ActionDragEnd.
func End() Action { return Action{Type: ActionDragEnd} }

// Cancel returns an ActionDragCancel.
func Cancel() Action { return Action{Type: ActionDragCancel} }

// Dispatch applies a to the store. Only ActionDragStart can fail; an unknown
// action type is an INVALID_INPUT error.
func (s *Store) Dispatch(a Action) error {
	switch a.Type {
	case ActionDragStart:
		return s.DragStart(a.Item, a.Pointer)
	case ActionDragMove:
		s.DragMove(a.Pointer)
	case ActionDragEnd:
		s.DragEnd()
	case ActionDragCancel:
		s.DragCancel()
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown drag action %v", a.Type)
	}
	return nil
}
