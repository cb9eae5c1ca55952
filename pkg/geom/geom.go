package geom

import (
	"fmt"
	"math"

	"github.com/matzehuels/dropgrid/pkg/errors"
)

// Point is a position in the shared coordinate space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Rect is an axis-aligned rectangle. Left and Top are the top-left corner.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// R is shorthand for Rect{Left: left, Top: top, Width: width, Height: height}.
func R(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Area returns the area of the rectangle, or 0 if it is empty.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether p lies inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Left: r.Left + d.X, Top: r.Top + d.Y, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// If they do not overlap, it returns the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	left := math.Max(r.Left, o.Left)
	top := math.Max(r.Top, o.Top)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())

	if right <= left || bottom <= top {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Left, r.Top, r.Width, r.Height)
}

// PointRect returns a size×size rectangle centred at p. The collision
// resolver uses it to turn a pointer position into something with area.
func PointRect(p Point, size float64) Rect {
	return Rect{Left: p.X - size/2, Top: p.Y - size/2, Width: size, Height: size}
}

// RectsOverlap reports whether the intersection of a and b has positive area.
// Rectangles that only share an edge do not overlap.
func RectsOverlap(a, b Rect) bool {
	return OverlapArea(a, b) > 0
}

// OverlapArea returns the area of the intersection of a and b, 0 if disjoint.
func OverlapArea(a, b Rect) float64 {
	return a.Intersect(b).Area()
}

// GridSpec describes how a container lays out its items: a fixed number of
// columns of equal width and rows of fixed height.
type GridSpec struct {
	Columns   int
	RowHeight float64
}

// Validate returns an INVALID_GRID error unless Columns and RowHeight are positive.
func (g GridSpec) Validate() error {
	if g.Columns <= 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "columns must be positive, got %d", g.Columns)
	}
	if !(g.RowHeight > 0) || math.IsInf(g.RowHeight, 0) {
		return errors.New(errors.ErrCodeInvalidGrid, "row height must be positive, got %g", g.RowHeight)
	}
	return nil
}

// Rows returns the number of rows needed to show itemCount items.
func (g GridSpec) Rows(itemCount int) int {
	if g.Columns <= 0 || itemCount <= 0 {
		return 0
	}
	return (itemCount + g.Columns - 1) / g.Columns
}

// CellIndexForPoint maps p, which is expected to lie inside container, to the
// insertion index of the grid cell under it. The column is clamped to
// [0, Columns-1] and the resulting index to [0, itemCount]; an index equal to
// itemCount means "append at the end".
//
// The grid must be valid; a zero-column grid yields 0.
func CellIndexForPoint(p Point, container Rect, grid GridSpec, itemCount int) int {
	if grid.Columns <= 0 || grid.RowHeight <= 0 || container.Width <= 0 {
		return 0
	}

	cellWidth := container.Width / float64(grid.Columns)
	column := int(math.Floor((p.X - container.Left) / cellWidth))
	row := int(math.Floor((p.Y - container.Top) / grid.RowHeight))

	column = clamp(column, 0, grid.Columns-1)
	index := row*grid.Columns + column
	return clamp(index, 0, max(itemCount, 0))
}

// CellRect returns the rectangle occupied by the cell at index inside
// container. It is the inverse of [CellIndexForPoint]: the centre of
// CellRect(c, g, i) maps back to i whenever i <= itemCount.
func CellRect(container Rect, grid GridSpec, index int) Rect {
	if grid.Columns <= 0 {
		return Rect{}
	}
	cellWidth := container.Width / float64(grid.Columns)
	row, column := index/grid.Columns, index%grid.Columns
	return Rect{
		Left:   container.Left + float64(column)*cellWidth,
		Top:    container.Top + float64(row)*grid.RowHeight,
		Width:  cellWidth,
		Height: grid.RowHeight,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
