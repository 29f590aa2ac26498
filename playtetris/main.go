package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/JoelOtter/termloop"
	"github.com/rs/zerolog"

	tetris "github.com/jauhararifin/gotetris"
	"github.com/jauhararifin/gotetris/config"
	"github.com/jauhararifin/gotetris/sound"
)

func main() {
	envFile := flag.String("env", ".env", "env file to load")
	seed := flag.Int64("seed", 0, "random seed, overrides TETRIS_SEED")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	player := sound.NewPlayer(logger)
	if cfg.Sound {
		if err := player.Init(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, playing silently")
		}
	}
	defer player.Close()

	logger.Info().Int64("seed", cfg.Seed).Msg("starting terminal frontend")

	game := termloop.NewGame()
	level := termloop.NewBaseLevel(termloop.Cell{})
	boardEntity := NewBoardPlayer(0, 0, cfg.Seed, player, logger)
	level.AddEntity(boardEntity)
	game.Screen().SetLevel(level)
	game.Start()
}

type boardPlayer struct {
	loop                *tetris.Loop
	x, y, width, height int

	scoreText  *termloop.Text
	levelText  *termloop.Text
	statusText *termloop.Text
	helpText   *termloop.Text
}

func NewBoardPlayer(x, y int, seed int64, moves tetris.MoveHandler, logger zerolog.Logger) *boardPlayer {
	b := &boardPlayer{
		width:  tetris.DefaultWidth,
		height: tetris.DefaultHeight,
		x:      x,
		y:      y,
	}

	panelX := x + b.width + 3
	b.scoreText = termloop.NewText(panelX, y+17, "", termloop.ColorWhite, termloop.ColorDefault)
	b.levelText = termloop.NewText(panelX, y+18, "", termloop.ColorWhite, termloop.ColorDefault)
	b.statusText = termloop.NewText(panelX, y+19, "", termloop.ColorYellow, termloop.ColorDefault)
	b.helpText = termloop.NewText(panelX, y+20, "arrows move  space drop  q quit", termloop.ColorWhite, termloop.ColorDefault)

	game := tetris.NewGame(
		tetris.WithGetter(tetris.NewRandomGetter(seed)),
		tetris.WithMoveHandler(moves),
		tetris.WithLogger(logger),
	)
	b.loop = tetris.NewLoop(game, logger)

	return b
}

// Tick runs once per frame with EventNone when no key is pending, so the
// descent timer is polled from the same goroutine that handles input.
func (b *boardPlayer) Tick(ev termloop.Event) {
	now := time.Now()
	if ev.Type == termloop.EventKey {
		if action, ok := b.actionFor(ev); ok {
			if action == tetris.ActionStart && b.loop.Game().Status() == tetris.StatusOver {
				b.loop.Handle(tetris.ActionExit, now)
			}
			b.loop.Handle(action, now)
		}
	}
	b.loop.Advance(now)
}

func (b *boardPlayer) actionFor(ev termloop.Event) (tetris.Action, bool) {
	switch ev.Key {
	case termloop.KeyArrowLeft:
		return tetris.ActionGoLeft, true
	case termloop.KeyArrowRight:
		return tetris.ActionGoRight, true
	case termloop.KeyArrowUp:
		return tetris.ActionRotate, true
	case termloop.KeyArrowDown:
		return tetris.ActionSoftDrop, true
	case termloop.KeySpace:
		return tetris.ActionHardDrop, true
	case termloop.KeyEnter:
		return tetris.ActionStart, true
	}
	switch ev.Ch {
	case 'q', 'Q':
		return tetris.ActionExit, true
	}
	return 0, false
}

func (b *boardPlayer) Draw(s *termloop.Screen) {
	game := b.loop.Game()

	b.drawFrame(s, b.x, b.y, b.width+2, b.height+2)

	highlight := map[int]bool{}
	for _, row := range b.loop.Highlight(time.Now()) {
		highlight[row] = true
	}

	tiles := game.Render()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := tileCell(tiles[y][x])
			if highlight[y] {
				cell = termloop.Cell{Fg: termloop.ColorBlack, Bg: termloop.ColorWhite, Ch: '='}
			}
			s.RenderCell(b.x+1+x, b.y+1+y, &cell)
		}
	}

	for i, next := range game.Next() {
		b.drawPreview(s, b.x+b.width+3, b.y+i*5, next)
	}

	score := game.Score()
	b.scoreText.SetText(fmt.Sprintf("Score: %d", score.Points))
	b.scoreText.Draw(s)
	b.levelText.SetText(fmt.Sprintf("Level: %d  Lines: %d", score.Level, score.Lines))
	b.levelText.Draw(s)

	switch game.Status() {
	case tetris.StatusNotStarted:
		b.statusText.SetText("Press Enter to start")
	case tetris.StatusRunning:
		b.statusText.SetText("")
	case tetris.StatusOver:
		b.statusText.SetText(fmt.Sprintf("Game Over! Final score %d, Enter to retry", score.Points))
	}
	b.statusText.Draw(s)
	b.helpText.Draw(s)
}

func (b *boardPlayer) drawFrame(s *termloop.Screen, x, y, width, height int) {
	border := termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack, Ch: '+'}
	for i := 0; i < width; i++ {
		s.RenderCell(x+i, y, &border)
		s.RenderCell(x+i, y+height-1, &border)
	}
	for i := 0; i < height; i++ {
		s.RenderCell(x, y+i, &border)
		s.RenderCell(x+width-1, y+i, &border)
	}
}

func (b *boardPlayer) drawPreview(s *termloop.Screen, x, y int, next tetris.Tetromino) {
	b.drawFrame(s, x, y, 6, 4)

	shape := next.Shape()
	offsetX := (4 - shape.Width()) / 2
	offsetY := (2 - shape.Height()) / 2
	for py := 0; py < 2; py++ {
		for px := 0; px < 4; px++ {
			cell := termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack}
			sy, sx := py-offsetY, px-offsetX
			if sy >= 0 && sy < shape.Height() && sx >= 0 && sx < shape.Width() && shape[sy][sx] {
				cell = tileCell(next.Tile())
			}
			s.RenderCell(x+1+px, y+1+py, &cell)
		}
	}
}

func tileCell(tile tetris.Tile) termloop.Cell {
	cell := termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack}
	if tile == tetris.TileEmpty {
		return cell
	}
	cell.Ch = '#'
	switch tile {
	case tetris.TileCyan:
		cell.Fg = termloop.ColorCyan
	case tetris.TileBlue:
		cell.Fg = termloop.ColorBlue
	case tetris.TileOrange:
		cell.Fg = termloop.ColorRed | termloop.AttrBold
	case tetris.TileYellow:
		cell.Fg = termloop.ColorYellow
	case tetris.TileGreen:
		cell.Fg = termloop.ColorGreen
	case tetris.TilePurple:
		cell.Fg = termloop.ColorMagenta
	case tetris.TileRed:
		cell.Fg = termloop.ColorRed
	}
	return cell
}
