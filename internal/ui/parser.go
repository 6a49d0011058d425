package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS reads .class and #id rules from a stylesheet. Selector lists ("#a, .b") become one
// rule per selector; other selectors and anything inside an at-rule are skipped.
// Later rules override earlier ones.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)
	var open []string
	var props map[string]string
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() == io.EOF {
				return sheet, nil
			}
			return sheet, fmt.Errorf("ui: css at offset %d: %w", p.Offset(), p.Err())
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.BeginRulesetGrammar:
			if atDepth > 0 {
				continue
			}
			open = selectors(p.Values())
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if props != nil {
				props[string(data)] = joinTokens(p.Values())
			}
		case css.EndRulesetGrammar:
			for _, sel := range open {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
			open, props = nil, nil
		}
	}
}

func selectors(tokens []css.Token) []string {
	var out []string
	for _, part := range strings.Split(joinTokens(tokens), ",") {
		sel := strings.TrimSpace(part)
		if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') || strings.ContainsAny(sel[1:], " .#>:[") {
			continue
		}
		out = append(out, sel)
	}
	return out
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
