// Package geom provides the rectangle and grid arithmetic behind drag
// collision detection.
//
// # Coordinate Space
//
// All values are float64 in a single shared coordinate space. Whether that
// space is the viewport, the document, or a terminal cell grid is up to the
// host, but every rectangle handed to the drag core must use the same one.
// X grows to the right and Y grows downward. Rectangles are half-open: the
// left and top edges are inside, the right and bottom edges are outside.
//
// # Grids
//
// A [GridSpec] maps a flat ordered list onto cells in row-major order:
// left to right, then top to bottom. Cell width is the container width
// divided by [GridSpec.Columns]; cell height is [GridSpec.RowHeight].
//
//	+-----+-----+-----+
//	|  0  |  1  |  2  |
//	+-----+-----+-----+
//	|  3  |  4  |     |   itemCount = 5, index 5 means "append"
//	+-----+-----+-----+
//
// [CellIndexForPoint] converts a pointer position into an insertion index and
// [CellRect] goes the other way, returning the rectangle a renderer should
// paint for a given index.
package geom
