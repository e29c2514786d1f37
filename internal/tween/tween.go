// Package tween animates float32 fields over time on the frame loop.
package tween

import (
	"github.com/gen2brain/raylib-go/easings"
)

// EaseFunc follows the Penner signature used by raylib-go/easings:
// elapsed time, start value, change, duration.
type EaseFunc func(t, b, c, d float32) float32

type tween struct {
	target   *float32
	from     float32
	to       float32
	elapsed  float32
	duration float32
	ease     EaseFunc
}

// Engine advances running tweens. It is not safe for concurrent use; drive it from the frame loop.
type Engine struct {
	tweens []*tween
}

// New returns an idle engine.
func New() *Engine {
	return &Engine{}
}

// Animate moves *target from its current value to `to` over duration seconds with
// quadratic ease-out. A tween already running on the same target is replaced.
func (e *Engine) Animate(target *float32, duration, to float32) {
	e.AnimateWith(target, duration, to, easings.QuadOut)
}

// AnimateWith is Animate with a custom easing function.
func (e *Engine) AnimateWith(target *float32, duration, to float32, ease EaseFunc) {
	if target == nil {
		return
	}
	if duration <= 0 {
		e.cancel(target)
		*target = to
		return
	}
	tw := &tween{target: target, from: *target, to: to, duration: duration, ease: ease}
	for i, running := range e.tweens {
		if running.target == target {
			e.tweens[i] = tw
			return
		}
	}
	e.tweens = append(e.tweens, tw)
}

func (e *Engine) cancel(target *float32) {
	kept := e.tweens[:0]
	for _, tw := range e.tweens {
		if tw.target != target {
			kept = append(kept, tw)
		}
	}
	e.tweens = kept
}

// Update advances every tween by dt seconds and drops finished ones.
func (e *Engine) Update(dt float32) {
	kept := e.tweens[:0]
	for _, tw := range e.tweens {
		tw.elapsed += dt
		if tw.elapsed >= tw.duration {
			*tw.target = tw.to
			continue
		}
		*tw.target = tw.ease(tw.elapsed, tw.from, tw.to-tw.from, tw.duration)
		kept = append(kept, tw)
	}
	clear(e.tweens[len(kept):])
	e.tweens = kept
}

// Active reports how many tweens are still running.
func (e *Engine) Active() int {
	return len(e.tweens)
}
