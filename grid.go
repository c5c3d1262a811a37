package herofx

import "image"

// Cell is one occupancy cell of the collision grid. X and Y are the
// top-left corner in canvas pixels and identify the cell.
type Cell struct {
	X, Y int
	Size int
	Hit  bool
}

// Rect returns the cell as a Rect.
func (c Cell) Rect() Rect {
	return Rect{X: float64(c.X), Y: float64(c.Y), Width: float64(c.Size), Height: float64(c.Size)}
}

// BuildGrid partitions coverage into cellSize squares starting at the
// buffer origin and keeps, in row-major order, every cell in which some
// pixel's alpha exceeds threshold. Edge cells are clipped to the buffer.
func BuildGrid(coverage *image.RGBA, cellSize int, threshold uint8) []Cell {
	if cellSize < 1 {
		cellSize = 1
	}
	b := coverage.Bounds()
	var cells []Cell
	for y := b.Min.Y; y < b.Max.Y; y += cellSize {
		for x := b.Min.X; x < b.Max.X; x += cellSize {
			if cellOccupied(coverage, x, y, cellSize, threshold) {
				cells = append(cells, Cell{X: x, Y: y, Size: cellSize})
			}
		}
	}
	return cells
}

func cellOccupied(img *image.RGBA, x0, y0, size int, threshold uint8) bool {
	b := img.Bounds()
	x1 := min(x0+size, b.Max.X)
	y1 := min(y0+size, b.Max.Y)
	for y := y0; y < y1; y++ {
		off := img.PixOffset(x0, y) + 3
		for x := x0; x < x1; x++ {
			if img.Pix[off] > threshold {
				return true
			}
			off += 4
		}
	}
	return false
}

// CountHit returns the number of cells already struck.
func CountHit(cells []Cell) int {
	n := 0
	for i := range cells {
		if cells[i].Hit {
			n++
		}
	}
	return n
}
