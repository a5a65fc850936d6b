package audio

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"
)

// Player plays pre-rendered cues. A nil *Player is silent, so callers never
// need to check whether audio came up.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cues   map[Cue][]byte
	log    zerolog.Logger
}

// NewPlayer opens the audio device and renders every cue up front
func NewPlayer(volume float64, log zerolog.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	p := &Player{
		ctx:    ctx,
		ready:  ready,
		volume: clampVolume(volume),
		cues:   make(map[Cue][]byte),
		log:    log.With().Str("component", "audio").Logger(),
	}
	for _, c := range Cues() {
		p.cues[c] = Render(c)
	}
	return p, nil
}

// Play starts a cue and returns immediately. Cues requested before the
// device is ready are dropped.
func (p *Player) Play(c Cue) {
	if p == nil || p.volume <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	samples := p.cues[c]
	if len(samples) == 0 {
		return
	}
	p.log.Trace().Stringer("cue", c).Msg("play")
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Debug().Err(err).Stringer("cue", c).Msg("close player")
		}
	}()
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
