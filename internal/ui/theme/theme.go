// Package theme reads the small CSS dialect used to color the debug panel.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"cube-tweaks/internal/params"
)

// Rule is one selector with its declarations. Values are kept as written.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Sheet is an ordered list of rules; later rules override earlier ones.
type Sheet struct {
	Rules []Rule
}

// Parse reads CSS rulesets. At-rules and comments are skipped; selector lists
// ("a, b") produce one rule per selector.
func Parse(src string) (*Sheet, error) {
	p := css.NewParser(parse.NewInput(bytes.NewBufferString(src)), false)
	sheet := &Sheet{}
	var (
		pending []string
		current []int
		atDepth int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if errors.Is(p.Err(), io.EOF) {
				return sheet, nil
			}
			return nil, fmt.Errorf("theme: %w", p.Err())
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth = max(atDepth-1, 0)
		case css.QualifiedRuleGrammar:
			// All but the last selector of a list arrive here.
			pending = append(pending, selectors(p.Values())...)
		case css.BeginRulesetGrammar:
			pending = append(pending, selectors(p.Values())...)
			current = current[:0]
			if atDepth == 0 {
				for _, sel := range pending {
					sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: map[string]string{}})
					current = append(current, len(sheet.Rules)-1)
				}
			}
			pending = pending[:0]
		case css.DeclarationGrammar:
			prop := strings.ToLower(string(data))
			value := strings.TrimSpace(joinTokens(p.Values()))
			for _, i := range current {
				sheet.Rules[i].Props[prop] = value
			}
		case css.EndRulesetGrammar:
			current = current[:0]
		}
	}
}

func selectors(tokens []css.Token) []string {
	var out []string
	for _, sel := range strings.Split(joinTokens(tokens), ",") {
		if sel = strings.TrimSpace(sel); sel != "" {
			out = append(out, sel)
		}
	}
	return out
}

// MustParse is like Parse but panics on error. Use it for stylesheets compiled into the
// program.
func MustParse(src string) *Sheet {
	sheet, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return sheet
}

// Load parses the file at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return Parse(string(data))
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}

// Value returns the last declared value of prop for selector.
func (s *Sheet) Value(selector, prop string) (string, bool) {
	if s == nil {
		return "", false
	}
	for i := len(s.Rules) - 1; i >= 0; i-- {
		r := s.Rules[i]
		if r.Selector != selector {
			continue
		}
		if v, ok := r.Props[prop]; ok {
			return v, true
		}
	}
	return "", false
}

// Color returns prop for selector parsed as a hex color.
func (s *Sheet) Color(selector, prop string) (color.RGBA, bool) {
	v, ok := s.Value(selector, prop)
	if !ok {
		return color.RGBA{}, false
	}
	c, err := params.ParseColor(v)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}

// Pixels returns prop for selector as an integer number of pixels ("14px" or "14").
func (s *Sheet) Pixels(selector, prop string) (int, bool) {
	v, ok := s.Value(selector, prop)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(v, "px"))
	if err != nil {
		return 0, false
	}
	return n, true
}
