// Package layout places a board's zones and item cells in a single
// coordinate space and feeds the result to a drag context.
//
// Zones flow left to right in board order. A zone with Break set starts a
// new row below the tallest zone of the previous row. Each zone is
// Columns×CellWidth wide and Rows×CellHeight tall; a zone holding more items
// than its grid grows by whole rows so every item and the append cell stay
// inside it. Inset reserves a frame around it (the border in the terminal
// UI) and Gap separates frames.
//
// The same layout works in pixels ([PixelOptions]) and in terminal cells
// ([TerminalOptions]).
package layout

import (
	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/dnd"
	"github.com/matzehuels/dropgrid/pkg/geom"
	"github.com/matzehuels/dropgrid/pkg/registry"
)

// Options controls zone placement.
type Options struct {
	CellWidth  float64
	CellHeight float64
	Gap        float64 // Space between zone frames
	Inset      float64 // Frame thickness around each zone
	Origin     geom.Point
}

// PixelOptions uses 100×70 cells and 20 units between zones.
func PixelOptions() Options {
	return Options{CellWidth: 100, CellHeight: 70, Gap: 20}
}

// TerminalOptions lays zones out in terminal cells with a one-cell border.
func TerminalOptions(cellWidth, cellHeight int) Options {
	return Options{
		CellWidth:  float64(max(cellWidth, 1)),
		CellHeight: float64(max(cellHeight, 1)),
		Gap:        1,
		Inset:      1,
	}
}

// ZoneBox is a placed zone.
type ZoneBox struct {
	ID    registry.ContainerID
	Title string
	Rect  geom.Rect // Droppable area, registered with the drag context
	Frame geom.Rect // Rect grown by the inset
	Grid  geom.GridSpec
}

// Layout is the placement of every zone of a board.
type Layout struct {
	Zones  []ZoneBox
	Bounds geom.Rect // Union of all frames
	opts   Options
}

// Compute places the zones of b.
func Compute(b *board.Board, opts Options) *Layout {
	l := &Layout{opts: opts}

	x, y := opts.Origin.X, opts.Origin.Y
	rowHeight := 0.0
	right, bottom := opts.Origin.X, opts.Origin.Y

	for i, z := range b.Zones {
		grid := geom.GridSpec{Columns: z.Columns, RowHeight: opts.CellHeight}
		rows := max(z.Rows, grid.Rows(len(z.Items)+1))
		w := float64(z.Columns)*opts.CellWidth + 2*opts.Inset
		h := float64(rows)*opts.CellHeight + 2*opts.Inset

		if z.Break && i > 0 {
			x = opts.Origin.X
			y += rowHeight + opts.Gap
			rowHeight = 0
		}

		frame := geom.R(x, y, w, h)
		l.Zones = append(l.Zones, ZoneBox{
			ID:    z.ID,
			Title: z.Name(),
			Frame: frame,
			Rect:  geom.R(x+opts.Inset, y+opts.Inset, w-2*opts.Inset, h-2*opts.Inset),
			Grid:  grid,
		})

		x += w + opts.Gap
		rowHeight = max(rowHeight, h)
		right = max(right, frame.Right())
		bottom = max(bottom, frame.Bottom())
	}

	l.Bounds = geom.R(opts.Origin.X, opts.Origin.Y, right-opts.Origin.X, bottom-opts.Origin.Y)
	return l
}

// Zone returns the placed zone with the given id.
func (l *Layout) Zone(id registry.ContainerID) (*ZoneBox, bool) {
	for i := range l.Zones {
		if l.Zones[i].ID == id {
			return &l.Zones[i], true
		}
	}
	return nil, false
}

// CellRect returns the rectangle of the cell at index in the given zone.
func (l *Layout) CellRect(id registry.ContainerID, index int) (geom.Rect, bool) {
	z, ok := l.Zone(id)
	if !ok {
		return geom.Rect{}, false
	}
	return geom.CellRect(z.Rect, z.Grid, index), true
}

// CellCenter returns the centre of a cell, the point a pointer must be at
// to target that index.
func (l *Layout) CellCenter(id registry.ContainerID, index int) (geom.Point, bool) {
	r, ok := l.CellRect(id, index)
	return r.Center(), ok
}

// Register publishes the layout to ctx: every zone as a droppable with its
// current item order and every item as a draggable at its cell. Zones that
// ctx knows but b no longer has are unregistered.
func (l *Layout) Register(ctx *dnd.Context, b *board.Board) error {
	keep := make(map[registry.ContainerID]bool, len(l.Zones))
	for _, zb := range l.Zones {
		z, ok := b.Zone(zb.ID)
		if !ok {
			continue
		}
		keep[zb.ID] = true

		if err := ctx.RegisterDroppable(zb.ID, zb.Rect, zb.Grid, z.ItemIDs()); err != nil {
			return err
		}
		for i, it := range z.Items {
			if err := ctx.RegisterDraggable(it.ID, zb.ID, geom.CellRect(zb.Rect, zb.Grid, i)); err != nil {
				return err
			}
		}
	}

	var stale []registry.ContainerID
	for _, c := range ctx.Registry().Containers() {
		if !keep[c.ID] {
			stale = append(stale, c.ID)
		}
	}
	for _, id := range stale {
		ctx.UnregisterDroppable(id)
	}
	return nil
}
