// Package debug draws the stats overlay: frame rate, frame time and heap usage.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 16
	padding    = 8
	lineHeight = fontSize + 4
	// refresh text every N frames to limit allocations.
	updateInterval = 30
)

var (
	statsBgColor   = rl.NewColor(0, 0, 34, 200)
	statsTextColor = rl.NewColor(0, 255, 255, 255)
)

// Sample is one reading of the values the overlay shows.
type Sample struct {
	FPS       int32
	FrameTime float32 // seconds
	HeapBytes uint64
	Loaded    int
	Total     int
}

// Lines formats s for display.
func (s Sample) Lines() []string {
	lines := []string{
		fmt.Sprintf("%d FPS", s.FPS),
		fmt.Sprintf("%.1f ms", s.FrameTime*1000),
		fmt.Sprintf("%.2f MiB", float64(s.HeapBytes)/(1024*1024)),
	}
	if s.Total > 0 && s.Loaded < s.Total {
		lines = append(lines, fmt.Sprintf("loading %d/%d", s.Loaded, s.Total))
	}
	return lines
}

// Stats is the overlay at the top-left corner. It draws nothing while Visible is false.
type Stats struct {
	Visible bool
	// Progress, if set, reports texture loading progress.
	Progress func() (loaded, total int)

	frames uint32
	lines  []string
	mem    runtime.MemStats
	font   rl.Font
}

// New returns a hidden stats overlay.
func New() *Stats {
	return &Stats{}
}

// SetVisible shows or hides the overlay.
func (s *Stats) SetVisible(visible bool) {
	s.Visible = visible
}

// SetFont sets the overlay font. A zero texture ID keeps the raylib default.
func (s *Stats) SetFont(font rl.Font) {
	s.font = font
}

func (s *Stats) measure(text string) int32 {
	if s.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(s.font, text, fontSize, 1).X)
	}
	return rl.MeasureText(text, fontSize)
}

func (s *Stats) sample() Sample {
	runtime.ReadMemStats(&s.mem)
	out := Sample{FPS: rl.GetFPS(), FrameTime: rl.GetFrameTime(), HeapBytes: s.mem.Alloc}
	if s.Progress != nil {
		out.Loaded, out.Total = s.Progress()
	}
	return out
}

// Draw renders the overlay. Call after the scene so it stays on top.
func (s *Stats) Draw() {
	if !s.Visible {
		s.lines = nil
		return
	}
	s.frames++
	if s.lines == nil || s.frames%updateInterval == 0 {
		s.lines = s.sample().Lines()
	}

	var w int32
	for _, line := range s.lines {
		w = max(w, s.measure(line))
	}
	h := int32(len(s.lines))*lineHeight + padding
	rl.DrawRectangle(0, 0, w+2*padding, h, statsBgColor)
	for i, line := range s.lines {
		y := padding/2 + int32(i)*lineHeight
		if s.font.Texture.ID != 0 {
			rl.DrawTextEx(s.font, line, rl.NewVector2(padding, float32(y)), fontSize, 1, statsTextColor)
			continue
		}
		rl.DrawText(line, padding, y, fontSize, statsTextColor)
	}
}
