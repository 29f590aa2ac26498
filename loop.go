package tetris

import (
	"time"

	"github.com/rs/zerolog"
)

// ClearFlash is how long Highlight keeps reporting freshly cleared rows.
const ClearFlash = 300 * time.Millisecond

// descentTimer is the loop's handle on automatic descent. The zero value is
// disarmed.
type descentTimer struct {
	armed    bool
	interval time.Duration
	deadline time.Time
}

func (t *descentTimer) arm(now time.Time, interval time.Duration) {
	t.armed = true
	t.interval = interval
	t.deadline = now.Add(interval)
}

func (t *descentTimer) stop() {
	*t = descentTimer{}
}

func (t *descentTimer) due(now time.Time) bool {
	return t.armed && !now.Before(t.deadline)
}

// Loop drives a Game from a host's event loop. It owns no goroutines: the
// host calls Advance on every frame and Handle on every input, always from
// the same goroutine.
type Loop struct {
	game   *Game
	timer  descentTimer
	logger zerolog.Logger

	level     int
	locks     int
	clearedAt time.Time
}

func NewLoop(game *Game, logger zerolog.Logger) *Loop {
	return &Loop{game: game, logger: logger}
}

func (l *Loop) Game() *Game {
	return l.game
}

// Handle routes a player input to the game. Start is accepted only when no
// game is in progress; every other input is dropped unless the game runs.
func (l *Loop) Handle(action Action, now time.Time) bool {
	switch action {
	case ActionStart:
		if l.game.Status() != StatusNotStarted {
			return false
		}
		l.timer.stop()
		l.game.Start()
		l.level = 0
		l.locks = 0
		l.clearedAt = time.Time{}
		l.sync(now)
		return true
	case ActionExit:
		l.timer.stop()
		return l.game.Exit()
	}

	if l.game.Status() != StatusRunning {
		return false
	}
	ok := l.game.Apply(action)
	l.sync(now)
	return ok
}

// Advance performs the automatic soft drop when the descent timer is due. It
// fires at most once per call.
func (l *Loop) Advance(now time.Time) bool {
	if !l.timer.due(now) {
		return false
	}
	l.timer.arm(now, l.timer.interval)
	l.game.SoftDrop()
	l.sync(now)
	return true
}

// Interval returns the armed descent interval, or zero when the timer is
// stopped.
func (l *Loop) Interval() time.Duration {
	if !l.timer.armed {
		return 0
	}
	return l.timer.interval
}

// Highlight returns the rows removed by the latest lock while they are still
// fresh enough to animate.
func (l *Loop) Highlight(now time.Time) []int {
	rows := l.game.ClearedRows()
	if len(rows) == 0 || l.clearedAt.IsZero() || now.Sub(l.clearedAt) >= ClearFlash {
		return nil
	}
	return rows
}

func (l *Loop) sync(now time.Time) {
	if locks := l.game.Locks(); locks != l.locks {
		l.locks = locks
		if len(l.game.ClearedRows()) > 0 {
			l.clearedAt = now
		}
	}

	if l.game.Status() != StatusRunning {
		l.timer.stop()
		return
	}

	level := l.game.Level()
	if level != l.level || !l.timer.armed {
		l.level = level
		l.timer.arm(now, DescentInterval(level))
		l.logger.Debug().
			Str("game", l.game.ID()).
			Int("level", level).
			Dur("interval", l.timer.interval).
			Msg("descent timer armed")
	}
}
