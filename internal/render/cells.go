package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal cells are roughly twice as tall as they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

type cell struct {
	r  rune
	fg Color
	bg Color
}

// Cells is a Canvas that rasterises onto a grid of terminal cells. Each cell
// stands for a CellWidth x CellHeight block of pixels.
type Cells struct {
	cols, rows int
	cellW      int
	cellH      int
	grid       []cell
}

// NewCells creates a cols x rows cell canvas using the default footprint.
func NewCells(cols, rows int) *Cells {
	return NewCellsWithFootprint(cols, rows, DefaultCellWidth, DefaultCellHeight)
}

// NewCellsWithFootprint creates a cell canvas where each cell covers
// cellW x cellH pixels.
func NewCellsWithFootprint(cols, rows, cellW, cellH int) *Cells {
	cols, rows = max(cols, 0), max(rows, 0)
	c := &Cells{
		cols:  cols,
		rows:  rows,
		cellW: max(cellW, 1),
		cellH: max(cellH, 1),
		grid:  make([]cell, cols*rows),
	}
	for i := range c.grid {
		c.grid[i] = cell{r: ' '}
	}
	return c
}

func (c *Cells) Size() (int, int) {
	return c.cols * c.cellW, c.rows * c.cellH
}

// Footprint returns the pixel size of one cell.
func (c *Cells) Footprint() (int, int) {
	return c.cellW, c.cellH
}

// PixelAt returns the pixel at the centre of the given cell.
func (c *Cells) PixelAt(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(c.cellW), (float64(row) + 0.5) * float64(c.cellH)
}

func (c *Cells) cellOf(x, y float64) (int, int, bool) {
	col := int(math.Floor(x / float64(c.cellW)))
	row := int(math.Floor(y / float64(c.cellH)))
	if x == float64(c.cols*c.cellW) {
		col = c.cols - 1
	}
	if y == float64(c.rows*c.cellH) {
		row = c.rows - 1
	}
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0, 0, false
	}
	return col, row, true
}

func (c *Cells) set(x, y float64, r rune, fg Color) {
	col, row, ok := c.cellOf(x, y)
	if !ok {
		return
	}
	i := row*c.cols + col
	c.grid[i].r = r
	c.grid[i].fg = fg
}

func (c *Cells) Fill(bg Color) {
	for i := range c.grid {
		c.grid[i] = cell{r: ' ', bg: bg}
	}
}

func (c *Cells) Line(x1, y1, x2, y2, _ float64, fg Color) {
	r := '·'
	switch {
	case y1 == y2:
		r = '─'
	case x1 == x2:
		r = '│'
	}
	step := float64(min(c.cellW, c.cellH)) / 2
	n := int(math.Ceil(math.Hypot(x2-x1, y2-y1)/step)) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.set(x1+(x2-x1)*t, y1+(y2-y1)*t, r, fg)
	}
}

func (c *Cells) Circle(x, y, radius, _ float64, fg Color) {
	step := float64(min(c.cellW, c.cellH)) / 2
	n := max(int(math.Ceil(2*math.Pi*radius/step)), 8)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		c.set(x+radius*math.Cos(a), y+radius*math.Sin(a), '·', fg)
	}
}

func (c *Cells) Disc(x, y, radius float64, fg Color) {
	// markers are smaller than a cell, so a disc marks the cell holding its centre
	c.set(x, y, '●', fg)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			px, py := c.PixelAt(col, row)
			if math.Hypot(px-x, py-y) < radius {
				c.grid[row*c.cols+col].r = '●'
				c.grid[row*c.cols+col].fg = fg
			}
		}
	}
}

func (c *Cells) Text(s string, x, y float64, fg Color) {
	runes := []rune(s)
	start := x - float64(len(runes)*c.cellW)/2
	for i, r := range runes {
		c.set(start+(float64(i)+0.5)*float64(c.cellW), y, r, fg)
	}
}

// Plain returns the grid as text without colour.
func (c *Cells) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			b.WriteRune(c.grid[row*c.cols+col].r)
		}
	}
	return b.String()
}

// String renders the grid with lipgloss colouring. Runs of cells sharing the
// same colours are styled together.
func (c *Cells) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var cur cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle()
			if cur.fg != "" {
				style = style.Foreground(lipgloss.Color(cur.fg))
			}
			if cur.bg != "" {
				style = style.Background(lipgloss.Color(cur.bg))
			}
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			cl := c.grid[row*c.cols+col]
			if col > 0 && (cl.fg != cur.fg || cl.bg != cur.bg) {
				flush()
			}
			cur = cl
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}
