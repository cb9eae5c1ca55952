package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/collision"
	"github.com/matzehuels/dropgrid/pkg/dnd"
	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/layout"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// headerLines is the number of terminal rows above the board.
const headerLines = 2

// =============================================================================
// PlayModel - Interactive drag and drop
// =============================================================================

// PlayModel is the bubbletea model behind `dropgrid play`. Mouse press,
// motion and release drive the drag lifecycle; esc cancels the drag in
// flight and u undoes the last drop.
//
// The model is used through a pointer because the drag context's hooks
// write back into it.
type PlayModel struct {
	Board   *board.Board
	Changes int

	dc      *dnd.Context
	lay     *layout.Layout
	opts    layout.Options
	hit     collision.Resolver
	history []*board.Board
	pending *dnd.Change
	status  string
	failed  bool
}

// NewPlayModel lays b out in terminal cells of the given size and registers
// it with a fresh drag context.
func NewPlayModel(b *board.Board, drag dnd.Options, cellWidth, cellHeight int) (*PlayModel, error) {
	opts := layout.TerminalOptions(cellWidth, cellHeight)
	opts.Origin = geom.Pt(0, headerLines)

	m := &PlayModel{
		Board:  b.Clone(),
		opts:   opts,
		hit:    collision.NewResolver(drag.PointerSize),
		status: "Drag an item with the mouse",
	}
	m.dc = dnd.NewContext(dnd.Hooks{
		OnChange: func(ch dnd.Change) { m.pending = &ch },
	}, drag)

	if err := m.relayout(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *PlayModel) relayout() error {
	m.lay = layout.Compute(m.Board, m.opts)
	return m.lay.Register(m.dc, m.Board)
}

// Snapshot returns the current drag state.
func (m *PlayModel) Snapshot() dnd.Snapshot { return m.dc.Snapshot() }

func (m *PlayModel) Init() tea.Cmd {
	return nil
}

func (m *PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.dc.DragCancel()
			return m, tea.Quit
		case "esc":
			if m.dc.Snapshot().Session.Active() {
				m.dc.DragCancel()
				m.setStatus("Drag canceled")
			}
		case "u":
			m.undo()
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

func (m *PlayModel) mouse(msg tea.MouseMsg) {
	p := pointerAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.dc.Snapshot().Session.Active() {
			return
		}
		item, ok := m.itemAt(p)
		if !ok {
			return
		}
		if err := m.dc.DragStart(item, p); err != nil {
			m.fail(err)
			return
		}
		m.setStatus("Dragging %s", m.label(item))
	case tea.MouseActionMotion:
		m.dc.DragMove(p)
	case tea.MouseActionRelease:
		item := m.dc.Snapshot().Session.ActiveItemID
		m.dc.DragMove(p)
		m.dc.DragEnd()
		m.commit(item)
	}
}

// commit applies the drop reported by the last DragEnd.
func (m *PlayModel) commit(item registry.ItemID) {
	if m.pending == nil {
		return
	}
	ch := *m.pending
	m.pending = nil

	if ch.IsNoop() {
		m.setStatus("%s stays in place", m.label(item))
		return
	}
	next, err := m.Board.Apply(ch)
	if err != nil {
		m.fail(err)
		return
	}
	m.history = append(m.history, m.Board)
	m.Board = next
	m.Changes++
	if err := m.relayout(); err != nil {
		m.fail(err)
		return
	}
	m.setStatus("%s", describeChange(m.Board, item, ch))
}

func (m *PlayModel) undo() {
	if len(m.history) == 0 || m.dc.Snapshot().Session.Active() {
		return
	}
	m.Board = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.Changes--
	if err := m.relayout(); err != nil {
		m.fail(err)
		return
	}
	m.setStatus("Undone")
}

// itemAt returns the item whose cell contains p.
func (m *PlayModel) itemAt(p geom.Point) (registry.ItemID, bool) {
	reg := m.dc.Registry()
	t, ok := m.hit.Hit(reg, p)
	if !ok {
		return "", false
	}
	c, ok := reg.Droppable(t.ContainerID)
	if !ok || t.Index >= c.Len() {
		return "", false
	}
	id := c.Items[t.Index]
	if n, ok := reg.Draggable(id); !ok || !n.Rect.Contains(p) {
		return "", false
	}
	return id, true
}

func (m *PlayModel) label(id registry.ItemID) string {
	if z, idx, ok := m.Board.Find(id); ok {
		return z.Items[idx].Label
	}
	return string(id)
}

func (m *PlayModel) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.failed = false
}

func (m *PlayModel) fail(err error) {
	m.status = errors.UserMessage(err)
	m.failed = true
}

// pointerAt maps a terminal cell to the point at its centre.
func pointerAt(x, y int) geom.Point {
	return geom.Pt(float64(x)+0.5, float64(y)+0.5)
}

func (m *PlayModel) View() string {
	snap := m.dc.Snapshot()
	cv := newCanvas(int(m.lay.Bounds.Right())+2, int(m.lay.Bounds.Bottom())-headerLines+1)

	for _, zb := range m.lay.Zones {
		p := paintFrame
		if snap.Over != nil && snap.Over.ID == zb.ID {
			p = paintFrameOver
		}
		frame := toCanvas(zb.Frame)
		cv.box(frame, p)
		cv.text(frame.x+2, frame.y, " "+zb.Title+" ", frame.w-4, paintTitle)

		z, ok := m.Board.Zone(zb.ID)
		if !ok {
			continue
		}
		for i, it := range z.Items {
			cell := toCanvas(geom.CellRect(zb.Rect, zb.Grid, i))
			if it.ID == snap.Session.ActiveItemID {
				cv.label(cell, "", paintPlaceholder)
				continue
			}
			cv.label(cell, it.Label, paintItem)
		}
	}

	if snap.Draggable != nil {
		if r, ok := m.lay.CellRect(snap.Session.TargetContainerID, snap.Session.TargetIndex); ok && snap.Over != nil {
			cv.box(toCanvas(r), paintTarget)
		}
		cv.label(toCanvas(snap.Transform.Apply(snap.Draggable.Rect)), m.label(snap.Session.ActiveItemID), paintActive)
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(appName) + StyleDim.Render(" · "+m.Board.Name))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("\n", headerLines-1))
	b.WriteString(cv.String())
	b.WriteString("\n")
	if m.failed {
		b.WriteString(StyleWarning.Render(iconWarning + " " + m.status))
	} else {
		b.WriteString(StyleDim.Render(iconInfo + " " + m.status))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("drag: mouse  esc: cancel  u: undo  q: quit  [%s]", plural(m.Changes, "change"))))
	return b.String()
}

// toCanvas snaps a layout rectangle into canvas coordinates, which start below
// the header.
func toCanvas(r geom.Rect) cellBox {
	b := snap(r)
	b.y -= headerLines
	return b
}
