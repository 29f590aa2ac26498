package tetris

type Tile int

const (
	TileEmpty Tile = iota
	TileCyan
	TileBlue
	TileOrange
	TileYellow
	TileGreen
	TilePurple
	TileRed
)

type Tetromino int

const (
	TetrominoI Tetromino = iota
	TetrominoJ
	TetrominoL
	TetrominoO
	TetrominoS
	TetrominoT
	TetrominoZ
)

var Tetrominoes = []Tetromino{
	TetrominoI,
	TetrominoJ,
	TetrominoL,
	TetrominoO,
	TetrominoS,
	TetrominoT,
	TetrominoZ,
}

type tetrominoDef struct {
	name  string
	shape [][]int
	tile  Tile
}

var catalog = [...]tetrominoDef{
	TetrominoI: {"I", [][]int{{1, 1, 1, 1}}, TileCyan},
	TetrominoJ: {"J", [][]int{{1, 0, 0}, {1, 1, 1}}, TileBlue},
	TetrominoL: {"L", [][]int{{0, 0, 1}, {1, 1, 1}}, TileOrange},
	TetrominoO: {"O", [][]int{{1, 1}, {1, 1}}, TileYellow},
	TetrominoS: {"S", [][]int{{0, 1, 1}, {1, 1, 0}}, TileGreen},
	TetrominoT: {"T", [][]int{{0, 1, 0}, {1, 1, 1}}, TilePurple},
	TetrominoZ: {"Z", [][]int{{1, 1, 0}, {0, 1, 1}}, TileRed},
}

// Shape returns a fresh copy of the canonical occupancy matrix.
func (t Tetromino) Shape() Shape {
	rows := catalog[t].shape
	shape := make(Shape, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, v := range row {
			shape[y][x] = v == 1
		}
	}
	return shape
}

func (t Tetromino) Tile() Tile {
	return catalog[t].tile
}

func (t Tetromino) String() string {
	if t < 0 || int(t) >= len(catalog) {
		return "?"
	}
	return catalog[t].name
}

// Shape is a rectangular occupancy matrix, indexed [row][column].
type Shape [][]bool

func (s Shape) Height() int {
	return len(s)
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90 degrees clockwise.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	rotated := make(Shape, w)
	for i := 0; i < w; i++ {
		rotated[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			rotated[i][j] = s[h-1-j][i]
		}
	}
	return rotated
}

func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

func (s Shape) Cells() int {
	n := 0
	for _, row := range s {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Piece is a tetromino placed on a board. X and Y locate the top-left
// corner of its shape.
type Piece struct {
	Tetromino Tetromino
	Shape     Shape
	X, Y      int
}

// Spawn places t centered at the top of a board of the given width.
func Spawn(t Tetromino, boardWidth int) Piece {
	shape := t.Shape()
	return Piece{
		Tetromino: t,
		Shape:     shape,
		X:         boardWidth/2 - shape.Width()/2,
		Y:         0,
	}
}

func (p Piece) Tile() Tile {
	return p.Tetromino.Tile()
}

func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}
