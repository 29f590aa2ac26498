package tetris

// Board is the grid of locked tiles. Row 0 is the top row. A Board is never
// mutated after construction; Merge and ClearFullRows return new boards.
type Board struct {
	width, height int
	tiles         [][]Tile
}

func NewBoard(width, height int) Board {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return Board{width: width, height: height, tiles: tiles}
}

func (b Board) Width() int {
	return b.width
}

func (b Board) Height() int {
	return b.height
}

// At returns the tile at column x, row y, or TileEmpty when the position is
// outside the grid.
func (b Board) At(x, y int) Tile {
	if !b.inside(x, y) {
		return TileEmpty
	}
	return b.tiles[y][x]
}

func (b Board) Tiles() [][]Tile {
	return b.copyTiles()
}

func (b Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Collides reports whether shape placed at (x, y) would leave the board
// horizontally, reach past the bottom, or overlap a locked tile. Cells above
// the top row are allowed.
func (b Board) Collides(shape Shape, x, y int) bool {
	for dy, row := range shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			cx, cy := x+dx, y+dy
			if cx < 0 || cx >= b.width || cy >= b.height {
				return true
			}
			if cy >= 0 && b.tiles[cy][cx] != TileEmpty {
				return true
			}
		}
	}
	return false
}

// Merge writes the piece into a copy of the board. It does not check for
// collisions.
func (b Board) Merge(p Piece) Board {
	tiles := b.copyTiles()
	tile := p.Tile()
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled && b.inside(p.X+dx, p.Y+dy) {
				tiles[p.Y+dy][p.X+dx] = tile
			}
		}
	}
	return Board{width: b.width, height: b.height, tiles: tiles}
}

// ClearFullRows removes every completely filled row and pushes empty rows in
// from the top. It returns the new board, how many rows were removed and
// their original indices in ascending order.
func (b Board) ClearFullRows() (Board, int, []int) {
	var cleared []int
	kept := make([][]Tile, 0, b.height)
	for y := 0; y < b.height; y++ {
		if b.isRowCompleted(y) {
			cleared = append(cleared, y)
			continue
		}
		kept = append(kept, append([]Tile(nil), b.tiles[y]...))
	}

	tiles := make([][]Tile, 0, b.height)
	for i := 0; i < len(cleared); i++ {
		tiles = append(tiles, make([]Tile, b.width))
	}
	tiles = append(tiles, kept...)

	return Board{width: b.width, height: b.height, tiles: tiles}, len(cleared), cleared
}

func (b Board) isRowCompleted(row int) bool {
	for x := 0; x < b.width; x++ {
		if b.tiles[row][x] == TileEmpty {
			return false
		}
	}
	return true
}

func (b Board) copyTiles() [][]Tile {
	tiles := make([][]Tile, b.height)
	for y := range tiles {
		tiles[y] = append([]Tile(nil), b.tiles[y]...)
	}
	return tiles
}
