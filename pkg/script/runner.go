package script

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/dnd"
	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/layout"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// Event is the drag state after one step.
type Event struct {
	Step   int // 1-based
	Action string
	Phase  dnd.Phase
	Item   registry.ItemID // Item being dragged, kept on the ending step

	Pointer geom.Point
	Target  registry.ContainerID
	Index   int

	// Change is set on the step that committed a drop.
	Change *dnd.Change
	// Err is set when the step was rejected, such as a start on an
	// unknown item. The run continues.
	Err error
}

// Result is the outcome of a run.
type Result struct {
	Board   *board.Board
	Trace   []Event
	Changes []dnd.Change
}

// Runner replays scripts.
type Runner struct {
	Layout layout.Options
	Drag   dnd.Options
	Logger *log.Logger
}

// NewRunner returns a runner using the pixel layout.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Layout: layout.PixelOptions(), Logger: logger}
}

// Run replays s against a copy of b. Steps that the drag core rejects are
// recorded in the trace; a step that cannot be resolved against the board
// (unknown zone) aborts the run.
func (r *Runner) Run(ctx context.Context, s *Script, b *board.Board) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	drag := r.Drag
	if drag.Logger == nil {
		drag.Logger = logger
	}

	res := &Result{Board: b.Clone()}
	lay := layout.Compute(res.Board, r.Layout)

	var (
		commitErr error
		committed *dnd.Change
		active    registry.ItemID
	)
	dc := dnd.NewContext(dnd.Hooks{
		OnChange: func(ch dnd.Change) {
			next, err := res.Board.Apply(ch)
			if err != nil {
				commitErr = err
				return
			}
			res.Board = next
			res.Changes = append(res.Changes, ch)
			committed = &ch
		},
	}, drag)

	if err := lay.Register(dc, res.Board); err != nil {
		return nil, err
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		committed = nil

		ev := Event{Step: i + 1, Action: st.Action}
		p, hasPointer, err := st.pointer(res.Board, lay)
		if err != nil {
			return res, errors.Wrap(errors.GetCode(err), err, "step %d", i+1)
		}

		switch st.Action {
		case ActionStart:
			item, err := res.Board.LookupItem(st.Item)
			if err != nil {
				ev.Err = err
				break
			}
			if !hasPointer {
				p = itemCenter(dc, item)
			}
			ev.Err = dc.Dispatch(dnd.Start(item, p))
		case ActionMove:
			ev.Err = dc.Dispatch(dnd.MoveTo(p))
		case ActionEnd:
			ev.Err = dc.Dispatch(dnd.End())
		case ActionCancel:
			ev.Err = dc.Dispatch(dnd.Cancel())
		}

		if commitErr != nil {
			return res, errors.Wrap(errors.GetCode(commitErr), commitErr, "step %d: commit", i+1)
		}
		if committed != nil {
			ev.Change = committed
			if err := lay.Register(dc, res.Board); err != nil {
				return res, err
			}
		}

		snap := dc.Snapshot()
		if snap.Session.Active() {
			active = snap.Session.ActiveItemID
		}
		ev.Item = active
		if !snap.Session.Active() {
			active = ""
		}
		ev.Phase = snap.Session.Phase
		ev.Pointer = snap.Session.CurrentPointer
		ev.Target = snap.Session.TargetContainerID
		ev.Index = snap.Session.TargetIndex
		if ev.Err != nil {
			logger.Warn("step rejected", "step", ev.Step, "action", ev.Action, "err", ev.Err)
		} else {
			logger.Debug("step", "step", ev.Step, "action", ev.Action, "phase", ev.Phase, "target", ev.Target, "index", ev.Index)
		}
		res.Trace = append(res.Trace, ev)
	}

	// A script that stops mid-drag leaves nothing half-done.
	dc.DragCancel()
	return res, nil
}

func itemCenter(dc *dnd.Context, item registry.ItemID) geom.Point {
	if n, ok := dc.Registry().Draggable(item); ok {
		return n.Rect.Center()
	}
	return geom.Point{}
}
