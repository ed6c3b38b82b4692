package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y). The canvas is Width*2 by Height*4
// sub-pixels, y pointing down.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCross marks a point with a small x.
func (c *Canvas) DrawCross(x, y int) {
	for d := -2; d <= 2; d++ {
		c.Set(x+d, y+d)
		c.Set(x+d, y-d)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Bounds is a world rectangle mapped onto a canvas, y up.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func EmptyBounds() Bounds {
	return Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// Include grows b to contain (x, y).
func (b Bounds) Include(x, y float64) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, x),
		MinY: math.Min(b.MinY, y),
		MaxX: math.Max(b.MaxX, x),
		MaxY: math.Max(b.MaxY, y),
	}
}

// Contains reports whether (x, y) is inside b.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Pad widens b by a fraction of its span, and gives a flat or empty box a
// unit size.
func (b Bounds) Pad(frac float64) Bounds {
	if b.MinX > b.MaxX {
		return Bounds{-1, -1, 1, 1}
	}
	dx, dy := (b.MaxX-b.MinX)*frac, (b.MaxY-b.MinY)*frac
	if dx == 0 {
		dx = 0.5
	}
	if dy == 0 {
		dy = 0.5
	}
	return Bounds{b.MinX - dx, b.MinY - dy, b.MaxX + dx, b.MaxY + dy}
}

// Project maps a world point to sub-pixel coordinates of c.
func (c *Canvas) Project(b Bounds, x, y float64) (int, int) {
	w, h := float64(c.Width*2-1), float64(c.Height*4-1)
	px := (x - b.MinX) / (b.MaxX - b.MinX) * w
	py := (b.MaxY - y) / (b.MaxY - b.MinY) * h
	return int(math.Round(px)), int(math.Round(py))
}
