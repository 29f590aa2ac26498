// Package sound plays the short tone that acknowledges a successful move or
// rotation.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	tetris "github.com/jauhararifin/gotetris"
)

const (
	SampleRate = beep.SampleRate(44100)

	MoveToneFrequency = 880
	MoveToneDuration  = 40 * time.Millisecond
)

var _ tetris.MoveHandler = (*Player)(nil)

// Player mixes move tones onto the speaker. Until Init succeeds every method
// is a no-op, so a game can always be wired to a Player.
type Player struct {
	logger zerolog.Logger
	mixer  *beep.Mixer
	ready  bool
}

func NewPlayer(logger zerolog.Logger) *Player {
	return &Player{
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

func (p *Player) OnMoved() {
	if !p.ready {
		return
	}
	tone, err := moveTone(SampleRate)
	if err != nil {
		p.logger.Warn().Err(err).Msg("cannot build move tone")
		return
	}
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}

// moveTone is a half-volume sine blip.
func moveTone(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, MoveToneFrequency)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(MoveToneDuration), sine),
		Base:     2,
		Volume:   -1,
	}, nil
}
