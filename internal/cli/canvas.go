package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dropgrid/pkg/geom"
)

// paint selects one of the canvas styles.
type paint uint8

const (
	paintNone paint = iota
	paintFrame
	paintFrameOver
	paintTitle
	paintItem
	paintActive
	paintPlaceholder
	paintTarget
)

var paints = [...]lipgloss.Style{
	paintNone:        lipgloss.NewStyle(),
	paintFrame:       lipgloss.NewStyle().Foreground(colorDim),
	paintFrameOver:   lipgloss.NewStyle().Foreground(colorYellow),
	paintTitle:       lipgloss.NewStyle().Foreground(colorGray).Bold(true),
	paintItem:        lipgloss.NewStyle().Foreground(colorWhite),
	paintActive:      lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	paintPlaceholder: lipgloss.NewStyle().Foreground(colorDim),
	paintTarget:      lipgloss.NewStyle().Foreground(colorYellow),
}

type glyph struct {
	r rune
	p paint
}

// canvas is a fixed-size grid of terminal cells. Drawing outside the grid is
// clipped.
type canvas struct {
	w, h  int
	cells []glyph
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([]glyph, c.w*c.h)
	for i := range c.cells {
		c.cells[i] = glyph{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = glyph{r: r, p: p}
}

func (c *canvas) at(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].r
}

// text writes s starting at (x, y), cut to at most width cells.
func (c *canvas) text(x, y int, s string, width int, p paint) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		c.set(x+i, y, r, p)
		i++
	}
}

// fill paints every cell of the rectangle.
func (c *canvas) fill(b cellBox, r rune, p paint) {
	for y := b.y; y < b.y+b.h; y++ {
		for x := b.x; x < b.x+b.w; x++ {
			c.set(x, y, r, p)
		}
	}
}

// box draws a rounded border along the edge of b.
func (c *canvas) box(b cellBox, p paint) {
	if b.w < 2 || b.h < 2 {
		c.fill(b, '▪', p)
		return
	}
	right, bottom := b.x+b.w-1, b.y+b.h-1
	for x := b.x + 1; x < right; x++ {
		c.set(x, b.y, '─', p)
		c.set(x, bottom, '─', p)
	}
	for y := b.y + 1; y < bottom; y++ {
		c.set(b.x, y, '│', p)
		c.set(right, y, '│', p)
	}
	c.set(b.x, b.y, '╭', p)
	c.set(right, b.y, '╮', p)
	c.set(b.x, bottom, '╰', p)
	c.set(right, bottom, '╯', p)
}

// label draws a boxed, centred label filling b.
func (c *canvas) label(b cellBox, s string, p paint) {
	if b.h >= 3 && b.w >= 3 {
		c.fill(b.inset(1), ' ', p)
		c.box(b, p)
		in := b.inset(1)
		c.centered(in.x, in.y+in.h/2, in.w, s, p)
		return
	}
	c.fill(b, ' ', p)
	c.centered(b.x, b.y+b.h/2, b.w, s, p)
}

func (c *canvas) centered(x, y, width int, s string, p paint) {
	n := len([]rune(s))
	if n > width {
		c.text(x, y, s, width, p)
		return
	}
	c.text(x+(width-n)/2, y, s, width, p)
}

// String renders the canvas, one styled run per stretch of equal paint.
func (c *canvas) String() string {
	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		for i := 0; i < len(row); {
			p := row[i].p
			run.Reset()
			for ; i < len(row) && row[i].p == p; i++ {
				run.WriteRune(row[i].r)
			}
			if p == paintNone {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(paints[p].Render(run.String()))
			}
		}
	}
	return sb.String()
}

// cellBox is a rectangle snapped to whole terminal cells.
type cellBox struct {
	x, y, w, h int
}

func snap(r geom.Rect) cellBox {
	x, y := int(math.Round(r.Left)), int(math.Round(r.Top))
	return cellBox{
		x: x,
		y: y,
		w: int(math.Round(r.Right())) - x,
		h: int(math.Round(r.Bottom())) - y,
	}
}

func (b cellBox) inset(n int) cellBox {
	return cellBox{x: b.x + n, y: b.y + n, w: max(b.w-2*n, 0), h: max(b.h-2*n, 0)}
}
