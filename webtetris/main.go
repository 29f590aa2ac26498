// Command webtetris is the graphical frontend. It runs as a desktop window or,
// built with GOOS=js GOARCH=wasm, inside a browser page.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	tetris "github.com/jauhararifin/gotetris"
	"github.com/jauhararifin/gotetris/config"
	"github.com/jauhararifin/gotetris/sound"
)

const (
	cellSize = 28
	margin   = 16
	panelW   = 170

	logicalW = margin*3 + tetris.DefaultWidth*cellSize + panelW
	logicalH = margin*2 + tetris.DefaultHeight*cellSize

	// Held keys repeat after repeatDelay ticks, every repeatEvery ticks.
	repeatDelay = 15
	repeatEvery = 4
)

var (
	bgColor        = color.RGBA{31, 41, 55, 255}
	boardColor     = color.RGBA{17, 24, 39, 255}
	gridColor      = color.RGBA{55, 65, 81, 255}
	panelColor     = color.RGBA{55, 65, 81, 255}
	previewColor   = color.RGBA{255, 255, 255, 255}
	highlightColor = color.RGBA{255, 255, 255, 200}
	overlayColor   = color.RGBA{0, 0, 0, 160}

	tileColors = map[tetris.Tile]color.RGBA{
		tetris.TileCyan:   {6, 182, 212, 255},
		tetris.TileBlue:   {59, 130, 246, 255},
		tetris.TileOrange: {249, 115, 22, 255},
		tetris.TileYellow: {234, 179, 8, 255},
		tetris.TileGreen:  {34, 197, 94, 255},
		tetris.TilePurple: {168, 85, 247, 255},
		tetris.TileRed:    {239, 68, 68, 255},
	}
)

type game struct {
	loop *tetris.Loop
}

func newGame(seed int64, moves tetris.MoveHandler, logger zerolog.Logger) *game {
	engine := tetris.NewGame(
		tetris.WithGetter(tetris.NewRandomGetter(seed)),
		tetris.WithMoveHandler(moves),
		tetris.WithLogger(logger),
	)
	return &game{loop: tetris.NewLoop(engine, logger)}
}

func (g *game) Update() error {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if g.loop.Game().Status() == tetris.StatusOver {
			g.loop.Handle(tetris.ActionExit, now)
		}
		g.loop.Handle(tetris.ActionStart, now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.loop.Handle(tetris.ActionExit, now)
	}

	if repeating(ebiten.KeyArrowLeft) {
		g.loop.Handle(tetris.ActionGoLeft, now)
	}
	if repeating(ebiten.KeyArrowRight) {
		g.loop.Handle(tetris.ActionGoRight, now)
	}
	if repeating(ebiten.KeyArrowDown) {
		g.loop.Handle(tetris.ActionSoftDrop, now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.loop.Handle(tetris.ActionRotate, now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.Handle(tetris.ActionHardDrop, now)
	}

	g.loop.Advance(now)
	return nil
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > repeatDelay && d%repeatEvery == 0)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	engine := g.loop.Game()

	originX, originY := float32(margin), float32(margin)
	vector.DrawFilledRect(screen, originX-2, originY-2, tetris.DefaultWidth*cellSize+4, tetris.DefaultHeight*cellSize+4, gridColor, false)

	highlight := map[int]bool{}
	for _, row := range g.loop.Highlight(time.Now()) {
		highlight[row] = true
	}

	tiles := engine.Render()
	for y, row := range tiles {
		for x, tile := range row {
			c := boardColor
			if tc, ok := tileColors[tile]; ok {
				c = tc
			}
			if highlight[y] {
				c = highlightColor
			}
			drawCell(screen, originX+float32(x*cellSize), originY+float32(y*cellSize), cellSize, c)
		}
	}

	panelX := originX + tetris.DefaultWidth*cellSize + margin
	score := engine.Score()
	text.Draw(screen, fmt.Sprintf("Score: %d", score.Points), basicfont.Face7x13, int(panelX), int(originY)+12, color.White)
	text.Draw(screen, fmt.Sprintf("Level: %d", score.Level), basicfont.Face7x13, int(panelX), int(originY)+30, color.White)
	text.Draw(screen, fmt.Sprintf("Lines: %d", score.Lines), basicfont.Face7x13, int(panelX), int(originY)+48, color.White)

	previewY := originY + 70
	for _, next := range engine.Next() {
		drawPreview(screen, panelX, previewY, next)
		previewY += 70
	}

	switch engine.Status() {
	case tetris.StatusNotStarted:
		drawBanner(screen, "Press Enter to start")
	case tetris.StatusOver:
		drawBanner(screen, fmt.Sprintf("Game Over! Final score %d", score.Points), "Enter to play again")
	}
}

func drawCell(screen *ebiten.Image, x, y, size float32, c color.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, c, false)
}

func drawPreview(screen *ebiten.Image, x, y float32, next tetris.Tetromino) {
	const (
		previewCell = 16
		previewW    = 4
		previewH    = 2
	)
	vector.DrawFilledRect(screen, x, y, previewW*previewCell+16, previewH*previewCell+16, panelColor, false)

	shape := next.Shape()
	offX := x + 8 + float32((previewW-shape.Width())*previewCell)/2
	offY := y + 8 + float32((previewH-shape.Height())*previewCell)/2
	c := tileColors[next.Tile()]
	for sy, row := range shape {
		for sx, filled := range row {
			if filled {
				drawCell(screen, offX+float32(sx*previewCell), offY+float32(sy*previewCell), previewCell, c)
			}
		}
	}
	vector.StrokeRect(screen, x, y, previewW*previewCell+16, previewH*previewCell+16, 1, previewColor, false)
}

func drawBanner(screen *ebiten.Image, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, logicalW, logicalH, overlayColor, false)
	y := logicalH/2 - len(lines)*9
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, logicalW/2-len(line)*7/2, y, color.White)
		y += 18
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return logicalW, logicalH
}

func main() {
	envFile := flag.String("env", ".env", "env file to load")
	seed := flag.Int64("seed", 0, "random seed, overrides TETRIS_SEED")
	flag.Parse()

	// The browser build has no filesystem: no env file, log to the console.
	wasm := runtime.GOOS == "js"
	var envFiles []string
	if !wasm {
		envFiles = append(envFiles, *envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if wasm {
		cfg.LogFile = config.StderrLogFile
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

	ebiten.SetWindowSize(logicalW, logicalH)
	ebiten.SetWindowTitle("Tetris")
	logger.Info().Int64("seed", cfg.Seed).Msg("starting graphical frontend")
	if err := ebiten.RunGame(newGame(cfg.Seed, player, logger)); err != nil {
		logger.Error().Err(err).Msg("game loop exited")
	}
}
