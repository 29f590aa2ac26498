package tetris

import "time"

const (
	PointsPerLine  = 100
	PointsPerLevel = 3000

	BaseInterval = 1000 * time.Millisecond
	IntervalStep = 100 * time.Millisecond
	MinInterval  = 100 * time.Millisecond
)

type Score struct {
	Points int
	Level  int
	Lines  int
}

func NewScore() Score {
	return Score{Level: 1}
}

// Add accounts for one lock event that cleared rows rows.
func (s Score) Add(rows int) Score {
	if rows <= 0 {
		return s
	}
	s.Points += PointsFor(rows)
	s.Lines += rows
	if level := LevelFor(s.Points); level > s.Level {
		s.Level = level
	}
	return s
}

func PointsFor(rows int) int {
	if rows <= 0 {
		return 0
	}
	return rows * PointsPerLine
}

func LevelFor(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// DescentInterval is the delay between automatic soft drops at level.
func DescentInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := BaseInterval - time.Duration(level-1)*IntervalStep
	if interval < MinInterval {
		return MinInterval
	}
	return interval
}
