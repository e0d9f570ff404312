package assets

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/bullethell/prefabs"
)

// CuePlayer plays short sound cues by name.
type CuePlayer struct {
	players map[string]*audio.Player
	Muted   bool
}

// NewCuePlayer decodes every cue in specs. A cue that fails to load is an
// error; an unknown name passed to Play is silently ignored.
func NewCuePlayer(ctx *audio.Context, specs []prefabs.AudioSpec) (*CuePlayer, error) {
	c := &CuePlayer{players: make(map[string]*audio.Player, len(specs))}
	for _, spec := range specs {
		pcm, err := DecodeWAV(spec.File, ctx.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("assets: cue %s: %w", spec.Name, err)
		}
		p := ctx.NewPlayerFromBytes(pcm)
		p.SetVolume(volume(spec.Volume))
		c.players[spec.Name] = p
	}
	return c, nil
}

func (c *CuePlayer) Play(name string) {
	if c == nil || c.Muted {
		return
	}
	p, ok := c.players[name]
	if !ok {
		return
	}
	if err := p.SetPosition(0); err != nil {
		log.Printf("assets: rewind cue %s: %v", name, err)
		return
	}
	p.Play()
}

func (c *CuePlayer) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.players[name]
	return ok
}

func volume(v float64) float64 {
	switch {
	case v <= 0:
		return 1
	case v > 1:
		return 1
	default:
		return v
	}
}
