package tetris

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
	PreviewSize   = 3
)

type Action int

const (
	ActionStart Action = iota
	ActionGoLeft
	ActionGoRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionGoLeft:
		return "left"
	case ActionGoRight:
		return "right"
	case ActionRotate:
		return "rotate"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionHardDrop:
		return "hard-drop"
	case ActionExit:
		return "exit"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Phase tells whether there is an active piece and what it is doing.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseFalling
	PhaseLocking
)

type CompleteHandler interface {
	OnCompleted(rows int)
}

type CompleteHandlerFunc func(rows int)

func (f CompleteHandlerFunc) OnCompleted(rows int) {
	f(rows)
}

// MoveHandler is notified after every successful horizontal move or
// rotation. Drops never notify it.
type MoveHandler interface {
	OnMoved()
}

type MoveHandlerFunc func()

func (f MoveHandlerFunc) OnMoved() {
	f()
}

// State is a snapshot of a game for renderers.
type State struct {
	ID          string
	Status      Status
	Phase       Phase
	Tiles       [][]Tile
	Current     Piece
	Next        []Tetromino
	Score       Score
	ClearedRows []int
	Locks       int
}

// Active returns the falling piece, if any.
func (s State) Active() (Piece, bool) {
	if s.Phase == PhaseNone {
		return Piece{}, false
	}
	return s.Current, true
}

// Game is one play session. It is not safe for concurrent use; the host must
// serialize every call.
type Game struct {
	tetrominoGetter TetrominoGetter
	completeHandler CompleteHandler
	moveHandler     MoveHandler
	logger          zerolog.Logger
	width, height   int

	id          string
	status      Status
	phase       Phase
	board       Board
	current     Piece
	next        *NextQueue
	score       Score
	clearedRows []int
	locks       int
}

type GameOption func(*Game)

func WithSize(width, height int) GameOption {
	if width < 10 || height < 10 {
		panic(fmt.Errorf("minimal width x height is 10x10"))
	}
	return func(game *Game) {
		game.width = width
		game.height = height
	}
}

func WithGetter(tetrominoGetter TetrominoGetter) GameOption {
	return func(game *Game) {
		game.tetrominoGetter = tetrominoGetter
	}
}

func WithCompleteHandler(handler CompleteHandler) GameOption {
	return func(game *Game) {
		game.completeHandler = handler
	}
}

func WithMoveHandler(handler MoveHandler) GameOption {
	return func(game *Game) {
		game.moveHandler = handler
	}
}

func WithLogger(logger zerolog.Logger) GameOption {
	return func(game *Game) {
		game.logger = logger
	}
}

func NewGame(options ...GameOption) *Game {
	game := &Game{
		width:  DefaultWidth,
		height: DefaultHeight,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(game)
	}
	if game.tetrominoGetter == nil {
		game.tetrominoGetter = NewRandomGetter(time.Now().UnixNano())
	}
	game.reset()
	return game
}

func (g *Game) reset() {
	g.id = ""
	g.status = StatusNotStarted
	g.phase = PhaseNone
	g.board = NewBoard(g.width, g.height)
	g.current = Piece{}
	g.next = nil
	g.score = NewScore()
	g.clearedRows = nil
	g.locks = 0
}

// Start begins a fresh session. It is accepted only before the first game or
// after Exit.
func (g *Game) Start() bool {
	if g.status != StatusNotStarted {
		return false
	}

	g.reset()
	g.id = uuid.New().String()
	g.next = NewNextQueue(g.tetrominoGetter, PreviewSize)
	g.status = StatusRunning
	g.logger.Info().Str("game", g.id).Msg("game started")
	g.spawn()
	return true
}

// Exit abandons the current session, running or finished, and returns the
// game to StatusNotStarted.
func (g *Game) Exit() bool {
	if g.status == StatusNotStarted {
		return false
	}
	g.logger.Info().Str("game", g.id).Int("score", g.score.Points).Msg("game exited")
	g.reset()
	return true
}

func (g *Game) Apply(action Action) bool {
	switch action {
	case ActionStart:
		return g.Start()
	case ActionExit:
		return g.Exit()
	case ActionGoLeft:
		return g.MoveLeft()
	case ActionGoRight:
		return g.MoveRight()
	case ActionRotate:
		return g.Rotate()
	case ActionSoftDrop:
		return g.SoftDrop()
	case ActionHardDrop:
		return g.HardDrop()
	}
	return false
}

func (g *Game) MoveLeft() bool {
	return g.moveHorizontal(-1)
}

func (g *Game) MoveRight() bool {
	return g.moveHorizontal(1)
}

func (g *Game) moveHorizontal(dir int) bool {
	if !g.isFalling() {
		return false
	}
	return g.tryReplace(g.current.Moved(dir, 0))
}

// Rotate turns the piece clockwise in place. There is no wall kick: a
// rotation that would collide is rejected.
func (g *Game) Rotate() bool {
	if !g.isFalling() {
		return false
	}
	return g.tryReplace(g.current.Rotated())
}

func (g *Game) tryReplace(candidate Piece) bool {
	if g.board.Collides(candidate.Shape, candidate.X, candidate.Y) {
		return false
	}
	g.current = candidate
	if g.moveHandler != nil {
		g.moveHandler.OnMoved()
	}
	return true
}

// SoftDrop moves the piece one row down, or locks it when it cannot descend.
func (g *Game) SoftDrop() bool {
	if !g.isFalling() {
		return false
	}
	candidate := g.current.Moved(0, 1)
	if !g.board.Collides(candidate.Shape, candidate.X, candidate.Y) {
		g.current = candidate
		return true
	}
	g.lock()
	return true
}

// HardDrop moves the piece to the lowest legal row and locks it.
func (g *Game) HardDrop() bool {
	if !g.isFalling() {
		return false
	}
	landed := g.current
	for {
		candidate := landed.Moved(0, 1)
		if g.board.Collides(candidate.Shape, candidate.X, candidate.Y) {
			break
		}
		landed = candidate
	}
	g.current = landed
	g.lock()
	return true
}

func (g *Game) isFalling() bool {
	return g.status == StatusRunning && g.phase == PhaseFalling
}

func (g *Game) lock() {
	g.phase = PhaseLocking
	locked := g.current

	board, rows, indices := g.board.Merge(locked).ClearFullRows()
	g.board = board
	g.clearedRows = indices
	g.locks++
	g.score = g.score.Add(rows)

	g.logger.Debug().
		Str("game", g.id).
		Stringer("piece", locked.Tetromino).
		Int("x", locked.X).
		Int("y", locked.Y).
		Int("rows", rows).
		Int("score", g.score.Points).
		Int("level", g.score.Level).
		Msg("piece locked")

	if g.completeHandler != nil {
		g.completeHandler.OnCompleted(rows)
	}

	// A piece that could not leave the spawn row means the stack reached the top.
	if locked.Y <= 0 {
		g.over("locked at top")
		return
	}
	g.spawn()
}

func (g *Game) spawn() bool {
	piece := Spawn(g.next.Pop(), g.width)
	if g.board.Collides(piece.Shape, piece.X, piece.Y) {
		g.over("spawn blocked")
		return false
	}
	g.current = piece
	g.phase = PhaseFalling
	return true
}

func (g *Game) over(reason string) {
	g.status = StatusOver
	g.phase = PhaseNone
	g.current = Piece{}
	g.logger.Info().
		Str("game", g.id).
		Str("reason", reason).
		Int("score", g.score.Points).
		Int("level", g.score.Level).
		Int("lines", g.score.Lines).
		Msg("game over")
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Active() (Piece, bool) {
	if g.phase == PhaseNone {
		return Piece{}, false
	}
	return g.current, true
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Score() Score {
	return g.score
}

func (g *Game) Level() int {
	return g.score.Level
}

func (g *Game) Next() []Tetromino {
	if g.next == nil {
		return nil
	}
	return g.next.Peek()
}

// ClearedRows returns the row indices removed by the most recent lock.
func (g *Game) ClearedRows() []int {
	return append([]int(nil), g.clearedRows...)
}

func (g *Game) Locks() int {
	return g.locks
}

func (g *Game) State() State {
	return State{
		ID:          g.id,
		Status:      g.status,
		Phase:       g.phase,
		Tiles:       g.board.Tiles(),
		Current:     g.current,
		Next:        g.Next(),
		Score:       g.score,
		ClearedRows: g.ClearedRows(),
		Locks:       g.locks,
	}
}

// Render returns the locked tiles with the active piece drawn on top.
func (g *Game) Render() [][]Tile {
	frame := g.board.Tiles()
	piece, ok := g.Active()
	if !ok {
		return frame
	}

	tile := piece.Tile()
	for y, row := range piece.Shape {
		for x, filled := range row {
			frameX := piece.X + x
			frameY := piece.Y + y
			if filled && frameX >= 0 && frameX < g.width && frameY >= 0 && frameY < g.height {
				frame[frameY][frameX] = tile
			}
		}
	}
	return frame
}
