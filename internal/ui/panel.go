// Package ui draws the debug panel: one raygui widget per registry control, grouped in
// collapsible folders.
package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"slices"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-tweaks/internal/params"
	"cube-tweaks/internal/ui/theme"
)

const (
	// DefaultWidth is the panel width in pixels.
	DefaultWidth = 300
	margin       = 10
	headerHeight = 24
	rowHeight    = 22
	rowGap       = 4
	labelWidth   = 90
	pickerHeight = 80
)

// Panel is the debug panel. It is hidden until Toggle is called.
type Panel struct {
	Width   int32
	Visible bool

	registry *params.Registry
	log      *slog.Logger
	open     map[*params.Folder]bool
	bounds   rl.Rectangle
	// picking is the color control whose picker is expanded, if any.
	picking *params.Control
}

// New returns a hidden panel for reg. Folders start closed when their Closed flag is set.
func New(reg *params.Registry, width int32, log *slog.Logger) *Panel {
	if width <= 0 {
		width = DefaultWidth
	}
	if log == nil {
		log = slog.Default()
	}
	p := &Panel{Width: width, registry: reg, log: log, open: map[*params.Folder]bool{}}
	for _, f := range reg.Folders() {
		p.open[f] = !f.Closed
	}
	return p
}

// Toggle shows or hides the panel.
func (p *Panel) Toggle() {
	p.Visible = !p.Visible
}

// Contains reports whether pt is over the visible panel, so camera input can be ignored there.
func (p *Panel) Contains(pt rl.Vector2) bool {
	return p.Visible && rl.CheckCollisionPointRec(pt, p.bounds)
}

// ApplyTheme maps the ".panel" rule of sheet onto raygui's default style.
func ApplyTheme(sheet *theme.Sheet) {
	colors := []struct {
		prop  string
		apply func(rl.Color)
	}{
		{"background-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(c)) }},
		{"base-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(c)) }},
		{"hover-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(c)) }},
		{"active-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(c)) }},
		{"color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(c)) }},
		{"hover-text-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(c)) }},
		{"active-text-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(c)) }},
		{"border-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(c)) }},
		{"hover-border-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(c)) }},
		{"line-color", func(c rl.Color) { gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(c)) }},
	}
	for _, c := range colors {
		if v, ok := sheet.Color(".panel", c.prop); ok {
			c.apply(rl.NewColor(v.R, v.G, v.B, v.A))
		}
	}
	if size, ok := sheet.Pixels(".panel", "font-size"); ok {
		gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, int64(size))
	}
}

// DefaultTheme is used when no stylesheet is configured.
const DefaultTheme = `.panel {
  background-color: #1e1e23;
  base-color: #2d2d32;
  hover-color: #3c3c46;
  active-color: #46505a;
  color: #c8c8c8;
  hover-text-color: #ffffff;
  active-text-color: #ffd700;
  border-color: #505a64;
  hover-border-color: #64788c;
  line-color: #3c3c3c;
  font-size: 14px;
}`

// DefaultSheet returns DefaultTheme parsed.
func DefaultSheet() *theme.Sheet {
	return theme.MustParse(DefaultTheme)
}

// height returns the panel height for the current folder states.
func (p *Panel) height() float32 {
	h := float32(headerHeight + rowGap)
	for _, f := range p.registry.Folders() {
		h += rowHeight + rowGap
		if !p.open[f] {
			continue
		}
		for _, c := range f.Controls() {
			h += rowHeight + rowGap
			if c == p.picking {
				h += pickerHeight + rowGap
			}
		}
	}
	return h
}

// Draw draws the panel at the top-right corner and writes widget changes through the
// registry. Call between BeginDrawing and EndDrawing.
func (p *Panel) Draw() {
	if !p.Visible {
		return
	}
	x := float32(rl.GetScreenWidth()) - float32(p.Width) - margin
	p.bounds = rl.NewRectangle(x, margin, float32(p.Width), p.height())
	gui.Panel(p.bounds, p.registry.Title())

	y := p.bounds.Y + headerHeight + rowGap
	inner := float32(p.Width) - 2*rowGap
	for _, f := range p.registry.Folders() {
		mark := "+ "
		if p.open[f] {
			mark = "- "
		}
		if gui.Button(rl.NewRectangle(x+rowGap, y, inner, rowHeight), mark+f.Name()) {
			p.open[f] = !p.open[f]
		}
		y += rowHeight + rowGap
		if !p.open[f] {
			continue
		}
		for _, c := range f.Controls() {
			y = p.drawControl(c, x+rowGap, y, inner)
		}
	}
}

func (p *Panel) drawControl(c *params.Control, x, y, w float32) float32 {
	label := rl.NewRectangle(x, y, labelWidth, rowHeight)
	field := rl.NewRectangle(x+labelWidth, y, w-labelWidth, rowHeight)
	next := y + rowHeight + rowGap
	v := c.Value()

	switch c.Kind() {
	case params.KindFloat:
		gui.Label(label, c.Name())
		lo, hi, _ := c.Range()
		text := fmt.Sprintf("%.2f", v.Float)
		if got := gui.Slider(field, "", text, v.Float, lo, hi); got != v.Float {
			p.set(c, params.Float(got))
		}
	case params.KindInt:
		gui.Label(label, c.Name())
		lo, hi, _ := c.Range()
		got := gui.Slider(field, "", fmt.Sprint(v.Int), float32(v.Int), lo, hi)
		if n := int(math.Round(float64(got))); n != v.Int {
			p.set(c, params.Int(n))
		}
	case params.KindBool:
		box := rl.NewRectangle(x+labelWidth, y+3, rowHeight-6, rowHeight-6)
		gui.Label(label, c.Name())
		if got := gui.CheckBox(box, "", v.Bool); got != v.Bool {
			p.set(c, params.Bool(got))
		}
	case params.KindOption:
		gui.Label(label, c.Name())
		opts := c.Options()
		active := int32(max(slices.Index(opts, v.Option), 0))
		if got := gui.ComboBox(field, strings.Join(opts, ";"), active); got != active && int(got) < len(opts) {
			p.set(c, params.Option(opts[got]))
		}
	case params.KindColor:
		gui.Label(label, c.Name())
		swatch := rl.NewColor(v.Color.R, v.Color.G, v.Color.B, 255)
		if gui.Button(field, params.FormatColor(v.Color)) {
			if p.picking == c {
				p.picking = nil
			} else {
				p.picking = c
			}
		}
		rl.DrawRectangleRec(rl.NewRectangle(field.X+field.Width-rowHeight, y+4, rowHeight-8, rowHeight-8), swatch)
		if p.picking == c {
			area := rl.NewRectangle(x+labelWidth, next, w-labelWidth-pickerHeight/4-rowGap, pickerHeight)
			got := gui.ColorPicker(area, "", swatch)
			if got != swatch {
				p.set(c, params.Color(color.RGBA{R: got.R, G: got.G, B: got.B, A: 255}))
			}
			next += pickerHeight + rowGap
		}
	case params.KindAction:
		if gui.Button(rl.NewRectangle(x, y, w, rowHeight), c.Name()) {
			p.set(c, params.Action())
		}
	}
	return next
}

func (p *Panel) set(c *params.Control, v params.Value) {
	if err := p.registry.Set(c.Path(), v); err != nil {
		p.log.Warn("panel", "control", c.Path(), "err", err)
	}
}
