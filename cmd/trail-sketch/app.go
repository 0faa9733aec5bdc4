package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/trail-sketch/audio"
	"github.com/lixenwraith/trail-sketch/render"
	"github.com/lixenwraith/trail-sketch/sketch"
)

// app owns the drawing and is the only goroutine that touches it
type app struct {
	screen   tcell.Screen
	drawing  *sketch.Drawing
	canvas   *render.Canvas
	player   *audio.Player
	input    inputMapper
	interval time.Duration
}

func newApp(screen tcell.Screen, drawing *sketch.Drawing, canvas *render.Canvas, player *audio.Player, interval time.Duration) *app {
	w, h := screen.Size()
	drawing.Update(sketch.Resize{Width: w, Height: h})

	return &app{
		screen:   screen,
		drawing:  drawing,
		canvas:   canvas,
		player:   player,
		interval: interval,
	}
}

// handle applies one terminal event and reports whether to keep running
func (a *app) handle(ev tcell.Event) bool {
	msg, quit := a.input.translate(ev)
	if quit {
		return false
	}
	if msg == nil {
		return true
	}

	switch a.drawing.Update(msg) {
	case sketch.EffectRectAdded:
		log.Printf("rect added, %d total", len(a.drawing.Rects))
		a.player.PlayCommit()
	case sketch.EffectRectRemoved:
		log.Printf("rects removed, %d left", len(a.drawing.Rects))
		a.player.PlayRemove()
	}

	if _, ok := msg.(sketch.Resize); ok {
		a.screen.Sync()
	}
	return true
}

// tick advances the trail and renders one frame
func (a *app) tick() {
	a.drawing.Frame()
	a.canvas.Draw(a.drawing)
}

func (a *app) run() {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handle(ev) {
				return
			}

		case <-ticker.C:
			a.tick()
		}
	}
}
