// Package audio plays short synthesized cues through the system speaker.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/trail-sketch/config"
)

// Player owns the speaker. A disabled or uninitialized player drops cues.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	initialized bool

	// speaker hooks, replaced in tests
	initSpeaker  func(beep.SampleRate, int) error
	play         func(...beep.Streamer)
	closeSpeaker func()
}

// NewPlayer creates a player from audio settings
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:          cfg,
		rate:         beep.SampleRate(cfg.SampleRate),
		initSpeaker:  speaker.Init,
		play:         speaker.Play,
		closeSpeaker: speaker.Close,
	}
}

// Init opens the speaker; it is a no-op when audio is disabled
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	// 100ms buffer keeps latency low without underruns
	if err := p.initSpeaker(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	log.Printf("audio: speaker ready at %d Hz", p.rate)
	return nil
}

// Enabled reports whether cues will be heard
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) tone() Tone {
	return Tone{
		Frequency: p.cfg.Frequency,
		Duration:  p.cfg.Duration.Duration,
		Volume:    p.cfg.Volume,
	}
}

// PlayCommit plays the rectangle-committed ding
func (p *Player) PlayCommit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.play(NewCommitSound(p.tone(), p.rate))
}

// PlayRemove plays the rectangle-removed buzz
func (p *Player) PlayRemove() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.play(NewRemoveSound(p.tone(), p.rate))
}

// Close releases the speaker. Safe to call multiple times
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.closeSpeaker()
	p.initialized = false
}
