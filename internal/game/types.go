package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Message represents an on-screen message that expires after a while.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// fade animates the minimap opacity between hidden (0) and shown (1).
type fade struct {
	value    float32
	duration float32
	tween    *gween.Tween
}

func newFade(visible bool, seconds float64) fade {
	f := fade{duration: float32(seconds)}
	if visible {
		f.value = 1
	}
	return f
}

// toward starts animating from the current value to target.
func (f *fade) toward(target float32) {
	if f.duration <= 0 {
		f.value = target
		f.tween = nil
		return
	}
	f.tween = gween.New(f.value, target, f.duration, ease.OutQuad)
}

// step advances the animation by dt seconds.
func (f *fade) step(dt float32) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.value = v
	if done {
		f.tween = nil
	}
}
