package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescentInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, 1000 * time.Millisecond},
		{1, 1000 * time.Millisecond},
		{2, 900 * time.Millisecond},
		{5, 600 * time.Millisecond},
		{9, 200 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{11, 100 * time.Millisecond},
		{12, 100 * time.Millisecond},
		{50, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescentInterval(tt.level), "level %d", tt.level)
	}

	for level := 1; level < 60; level++ {
		assert.LessOrEqual(t, DescentInterval(level+1), DescentInterval(level))
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0))
	assert.Equal(t, 1, LevelFor(100))
	assert.Equal(t, 1, LevelFor(2999))
	assert.Equal(t, 2, LevelFor(3000))
	assert.Equal(t, 4, LevelFor(9400))
}

func TestScoreAdd(t *testing.T) {
	score := NewScore()
	assert.Equal(t, Score{Level: 1}, score)

	score = score.Add(0)
	assert.Equal(t, Score{Level: 1}, score)

	score = score.Add(1)
	assert.Equal(t, Score{Points: 100, Level: 1, Lines: 1}, score)

	score = Score{Points: 2900, Level: 1, Lines: 29}.Add(4)
	assert.Equal(t, Score{Points: 3300, Level: 2, Lines: 33}, score)
}

func TestScoreIsMonotonic(t *testing.T) {
	score := NewScore()
	for i := 0; i < 500; i++ {
		next := score.Add(i % 5)
		assert.GreaterOrEqual(t, next.Points, score.Points)
		assert.GreaterOrEqual(t, next.Level, score.Level)
		assert.Equal(t, LevelFor(next.Points), next.Level)
		score = next
	}
}
