// Package board is the host-side model of a drag-and-drop grid: a named set
// of zones, each holding an ordered list of items.
//
// The drag core in pkg/dnd never changes item order. It reports a
// [dnd.Change] when an item is dropped and leaves the commit to the host.
// [Board.Apply] is that commit: it calls reorder.Swap for a drop inside one
// zone and reorder.Move for a drop into another zone, and returns a new
// board without modifying the old one.
//
// # Files
//
// Boards are stored as TOML (the default) or JSON:
//
//	name = "drag-between"
//
//	[[zones]]
//	id = "left"
//	columns = 4
//	rows = 5
//
//	  [[zones.items]]
//	  id = "1"
//	  label = "ben"
//
// Items without an id get a random UUID when the file is decoded.
//
// # Stores
//
// [Store] persists boards by name. [FileStore] keeps one TOML file per
// board in a directory and is what the CLI uses by default. [RedisStore]
// keeps JSON documents under a key prefix so several processes can share
// boards.
package board
