package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(b Board, y int, cols ...int) Board {
	tiles := b.copyTiles()
	for _, x := range cols {
		tiles[y][x] = TileRed
	}
	return Board{width: b.width, height: b.height, tiles: tiles}
}

func span(from, to int) []int {
	var cols []int
	for x := from; x <= to; x++ {
		cols = append(cols, x)
	}
	return cols
}

func filledCells(b Board) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != TileEmpty {
				n++
			}
		}
	}
	return n
}

func TestCollides(t *testing.T) {
	board := fill(NewBoard(10, 20), 10, 5)
	square := TetrominoO.Shape()

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"spawn position", 4, 0, false},
		{"left wall", -1, 0, true},
		{"right wall", 9, 0, true},
		{"resting on floor", 4, 18, false},
		{"below floor", 4, 19, true},
		{"above top", 4, -1, false},
		{"far above top", 4, -5, false},
		{"above top outside wall", -1, -5, true},
		{"overlaps tile", 4, 9, true},
		{"below tile", 4, 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.Collides(square, tt.x, tt.y))
		})
	}
}

func TestMergeReturnsNewBoard(t *testing.T) {
	board := NewBoard(10, 20)
	piece := Piece{Tetromino: TetrominoO, Shape: TetrominoO.Shape(), X: 4, Y: 18}

	merged := board.Merge(piece)

	assert.Equal(t, 0, filledCells(board))
	assert.Equal(t, 4, filledCells(merged))
	for _, cell := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, TileYellow, merged.At(cell[0], cell[1]))
	}
	assert.True(t, merged.Collides(piece.Shape, piece.X, piece.Y))
}

func TestMergeSkipsCellsAboveTop(t *testing.T) {
	piece := Piece{Tetromino: TetrominoI, Shape: TetrominoI.Shape().Rotate(), X: 0, Y: -2}
	merged := NewBoard(10, 20).Merge(piece)
	assert.Equal(t, 2, filledCells(merged))
}

func TestClearFullRows(t *testing.T) {
	board := NewBoard(10, 20)
	board = fill(board, 16, 3)
	board = fill(board, 17, span(0, 9)...)
	board = fill(board, 18, 0)
	board = fill(board, 19, span(0, 9)...)

	cleared, count, rows := board.ClearFullRows()

	assert.Equal(t, 2, count)
	assert.Equal(t, []int{17, 19}, rows)
	assert.Equal(t, 10, cleared.Width())
	assert.Equal(t, 20, cleared.Height())
	assert.Len(t, cleared.Tiles(), 20)

	assert.Equal(t, TileRed, cleared.At(0, 19))
	assert.Equal(t, TileRed, cleared.At(3, 18))
	assert.Equal(t, 2, filledCells(cleared))
	for x := 0; x < 10; x++ {
		assert.Equal(t, TileEmpty, cleared.At(x, 0))
		assert.Equal(t, TileEmpty, cleared.At(x, 1))
	}
}

func TestClearFullRowsWithoutFullRows(t *testing.T) {
	board := fill(NewBoard(10, 20), 19, span(0, 8)...)

	cleared, count, rows := board.ClearFullRows()

	assert.Equal(t, 0, count)
	assert.Empty(t, rows)
	assert.Equal(t, board.Tiles(), cleared.Tiles())
}

func TestClearFourRows(t *testing.T) {
	board := NewBoard(10, 20)
	for y := 16; y < 20; y++ {
		board = fill(board, y, span(0, 9)...)
	}
	board = fill(board, 15, 7)

	cleared, count, rows := board.ClearFullRows()

	assert.Equal(t, 4, count)
	assert.Equal(t, []int{16, 17, 18, 19}, rows)
	assert.Equal(t, TileRed, cleared.At(7, 19))
	assert.Equal(t, 1, filledCells(cleared))
}
