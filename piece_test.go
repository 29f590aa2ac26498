package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShapes(t *testing.T) {
	tiles := map[Tile]Tetromino{}
	for _, tetromino := range Tetrominoes {
		shape := tetromino.Shape()
		assert.Equal(t, 4, shape.Cells(), "piece %s", tetromino)
		for _, row := range shape {
			assert.Len(t, row, shape.Width(), "piece %s has ragged rows", tetromino)
		}

		tile := tetromino.Tile()
		assert.NotEqual(t, TileEmpty, tile)
		if other, ok := tiles[tile]; ok {
			t.Fatalf("pieces %s and %s share a color", tetromino, other)
		}
		tiles[tile] = tetromino
	}
	assert.Len(t, tiles, 7)
}

func TestShapeIsCopied(t *testing.T) {
	shape := TetrominoT.Shape()
	shape[0][0] = true
	assert.False(t, TetrominoT.Shape()[0][0])
}

func TestRotateClockwise(t *testing.T) {
	rotated := TetrominoT.Shape().Rotate()
	want := Shape{
		{true, false},
		{true, true},
		{true, false},
	}
	assert.True(t, rotated.Equal(want), "got %v", rotated)

	vertical := TetrominoI.Shape().Rotate()
	assert.Equal(t, 1, vertical.Width())
	assert.Equal(t, 4, vertical.Height())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, tetromino := range Tetrominoes {
		shape := tetromino.Shape()
		rotated := shape
		for i := 0; i < 4; i++ {
			rotated = rotated.Rotate()
		}
		assert.True(t, shape.Equal(rotated), "piece %s", tetromino)
	}
}

func TestSpawnCentered(t *testing.T) {
	tests := []struct {
		tetromino Tetromino
		x         int
	}{
		{TetrominoI, 3},
		{TetrominoO, 4},
		{TetrominoT, 4},
		{TetrominoJ, 4},
	}
	for _, tt := range tests {
		piece := Spawn(tt.tetromino, DefaultWidth)
		require.Equal(t, tt.tetromino, piece.Tetromino)
		assert.Equal(t, tt.x, piece.X, "piece %s", tt.tetromino)
		assert.Equal(t, 0, piece.Y)
	}
}
