// Package terminal is the command bar at the bottom of the window.
package terminal

import (
	"errors"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-tweaks/internal/commands"
	"cube-tweaks/internal/logger"
)

const (
	BarHeight = 32
	prompt    = "> "
	fontSize  = 18
	padding   = 7
	// log lines drawn above the bar while open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineLen       = 160
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	historyBg   = rl.NewColor(24, 24, 24, 220)
	historyText = rl.LightGray
)

// Terminal toggles with ESC. While open it takes keyboard input; Enter submits the line.
// Lines starting with "cmd " run through the command registry, anything else is only logged.
type Terminal struct {
	log     *logger.Logger
	reg     *commands.Registry
	input   string
	open    bool
	history []string
	recall  int
	// font is optional; the raylib default font is used while its texture ID is zero.
	font rl.Font
}

// New returns a closed terminal that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the terminal is capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font for the bar and the log lines.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Toggle opens or closes the terminal.
func (t *Terminal) Toggle() {
	t.open = !t.open
}

// Input returns the line being typed.
func (t *Terminal) Input() string {
	return t.input
}

// Submit logs line and, when it is a command, runs it. Errors are logged.
func (t *Terminal) Submit(line string) {
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	t.recall = len(t.history)
	if err := t.reg.Run(line); err != nil && !errors.Is(err, commands.ErrNotCommand) {
		t.log.Slog().Error("command failed", "line", line, "err", err)
	}
}

// Recall steps through submitted lines; delta -1 is older, +1 newer.
func (t *Terminal) Recall(delta int) {
	if len(t.history) == 0 {
		return
	}
	t.recall = min(max(t.recall+delta, 0), len(t.history))
	if t.recall == len(t.history) {
		t.input = ""
		return
	}
	t.input = t.history[t.recall]
}

// Type appends r to the input line.
func (t *Terminal) Type(r rune) {
	t.input += string(r)
}

// Backspace removes the last rune of the input line.
func (t *Terminal) Backspace() {
	_, size := utf8.DecodeLastRuneInString(t.input)
	t.input = t.input[:len(t.input)-size]
}

// Update handles ESC and, while open, typing. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.Toggle()
	}
	if !t.open {
		return
	}
	paste := rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper))
	if paste {
		t.input += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.Type(rune(c))
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace):
		t.Backspace()
	case rl.IsKeyPressed(rl.KeyUp):
		t.Recall(-1)
	case rl.IsKeyPressed(rl.KeyDown):
		t.Recall(1)
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		line := t.input
		t.input = ""
		t.Submit(line)
	}
}

// Draw draws the bar and the most recent log lines above it while open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	historyH := int32(maxLinesOnScreen * lineHeight)
	historyY := barY - historyH
	if historyY < 0 {
		historyH, historyY = barY, 0
	}
	rl.DrawRectangle(0, historyY, screenW, historyH, historyBg)
	lines := t.log.Lines()
	lines = lines[max(len(lines)-maxLinesOnScreen, 0):]
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		t.drawText(line, padding, historyY+int32(i*lineHeight)+padding/2, historyText)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	t.drawText(prompt+t.input+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) drawText(text string, x, y int32, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(text, x, y, fontSize, c)
}
