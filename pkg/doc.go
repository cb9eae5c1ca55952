// Package pkg holds the dropgrid libraries: a drag-and-drop engine for items
// arranged in grid drop zones, and the board model and tooling built on it.
//
// # Overview
//
// The engine is split into small packages that depend on each other in one
// direction:
//
//  1. [geom] - rectangles, overlap, and the grid cell arithmetic
//  2. [registry] - measured draggables and drop zones, per grid
//  3. [collision] - maps a pointer to the zone and cell under it
//  4. [dnd] - the drag session store and the host-facing Context
//  5. [reorder] - the pure Swap and Move applied when a drag ends
//
// On top of the engine:
//
//   - [board] - zones and items as data, TOML and JSON files, file and Redis stores
//   - [layout] - places a board's zones in one coordinate space and registers them
//   - [script] - replays scripted gestures against a board
//
// Shared support lives in [errors] (coded errors), [observability] (hooks)
// and [buildinfo].
//
// # Data Flow
//
//	pointer events
//	     ↓
//	dnd.Context ── registry ── collision
//	     ↓ OnChange(Change)
//	board.Apply (reorder.Swap / reorder.Move)
//	     ↓
//	layout.Register (new order back into the registry)
//
// # Quick Start
//
//	b := board.Default(false)
//	lay := layout.Compute(b, layout.PixelOptions())
//
//	dc := dnd.NewContext(dnd.Hooks{
//	    OnChange: func(ch dnd.Change) {
//	        b, _ = b.Apply(ch)
//	    },
//	}, dnd.Options{})
//	_ = lay.Register(dc, b)
//
//	from, _ := lay.CellCenter("left", 1)
//	to, _ := lay.CellCenter("right", 0)
//	_ = dc.DragStart("2", from)
//	dc.DragMove(to)
//	dc.DragEnd()
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/geom
// [registry]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/registry
// [collision]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/collision
// [dnd]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/dnd
// [reorder]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/reorder
// [board]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/board
// [layout]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/layout
// [script]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/script
// [errors]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dropgrid/pkg/buildinfo
package pkg
