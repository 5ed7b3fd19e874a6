package css

import (
	"maps"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses SVG style sheets and inline style declarations.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text (content of <style> element) into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Rules:    make([]Rule, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInputBytes(data), false)

	var currentSelectors []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			// @media, @font-face, @keyframes... nothing of it affects attribute values
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+string(data))
			p.skipAtRuleBlock(parser)
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.AtRuleGrammar:
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.QualifiedRuleGrammar:
			// selector followed by comma, the rest of the group comes later
			currentSelectors = append(currentSelectors, p.parseSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			currentSelectors = append(currentSelectors, p.parseSelectors(data, parser.Values())...)
			props := p.parseDeclarations(parser)

			for _, selStr := range currentSelectors {
				sel := p.parseSelector(selStr, sheet)
				if !sel.IsSimple() {
					continue
				}
				propsCopy := make(map[string]Value, len(props))
				maps.Copy(propsCopy, props)
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Properties: propsCopy})
			}
			currentSelectors = nil
		}
	}
}

// ParseInline parses content of a style attribute ("fill: red; stroke-width: 2")
// into property map. Later declarations of the same property win.
func (p *Parser) ParseInline(style string) map[string]Value {
	props := make(map[string]Value)
	if strings.TrimSpace(style) == "" {
		return props
	}

	parser := css.NewParser(parse.NewInputString(style), true)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("Inline style parse error", zap.String("style", style), zap.Error(parser.Err()))
			}
			return props

		case css.DeclarationGrammar:
			if values := parser.Values(); len(values) > 0 {
				props[strings.ToLower(string(data))] = p.parsePropertyValue(values)
			}
		}
	}
}

// parseSelectors extracts selector strings from token data.
func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser) map[string]Value {
	props := make(map[string]Value)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			if values := parser.Values(); len(values) > 0 {
				props[strings.ToLower(string(data))] = p.parsePropertyValue(values)
			}

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) - var() is never resolved
			continue
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	tokens = stripImportant(tokens)
	if len(tokens) == 0 {
		return Value{}
	}

	// Build raw value string
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			// Add space between non-whitespace tokens
			rawParts = append(rawParts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(rawParts, ""))

	val := Value{Raw: raw}

	// Handle single token cases
	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = ParseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
			val.Raw = val.Keyword
		case css.HashToken, css.URLToken:
			// Color value or reference
			val.Keyword = string(t.Data)
		}
		return val
	}

	// Functions (rgb(), url(), ...) and multi-value properties keep raw text
	val.Keyword = raw
	return val
}

// stripImportant drops trailing "!important" and surrounding whitespace,
// priority does not exist for attributes.
func stripImportant(tokens []css.Token) []css.Token {
	end := len(tokens)
	for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
		end--
	}
	if end >= 2 && tokens[end-1].TokenType == css.IdentToken &&
		strings.EqualFold(string(tokens[end-1].Data), "important") &&
		tokens[end-2].TokenType == css.DelimToken && string(tokens[end-2].Data) == "!" {
		end -= 2
	}
	for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
		end--
	}
	return tokens[:end]
}

// ParseDimension extracts numeric value and unit from dimension string like
// "1.5px". Returns zero value and empty unit if string does not start with a
// number.
func ParseDimension(s string) (float64, string) {
	s = strings.TrimSpace(s)
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' ||
			((r == 'e' || r == 'E') && i > 0 && i+1 < len(s) && (unicode.IsDigit(rune(s[i+1])) || s[i+1] == '-' || s[i+1] == '+')) {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// parseSelector parses a single selector string into a Selector.
func (p *Parser) parseSelector(selStr string, sheet *Stylesheet) Selector {
	selStr = strings.TrimSpace(selStr)
	sel := Selector{Raw: selStr}

	switch {
	case strings.ContainsAny(selStr, "+~> \t\n"):
		sheet.Warnings = append(sheet.Warnings, "unsupported combinator selector: "+selStr)
		p.log.Debug("Skipping combinator selector", zap.String("selector", selStr))
		return sel
	case strings.Contains(selStr, "["):
		sheet.Warnings = append(sheet.Warnings, "unsupported attribute selector: "+selStr)
		p.log.Debug("Skipping attribute selector", zap.String("selector", selStr))
		return sel
	case strings.Contains(selStr, ":"):
		sheet.Warnings = append(sheet.Warnings, "unsupported pseudo selector: "+selStr)
		p.log.Debug("Skipping pseudo selector", zap.String("selector", selStr))
		return sel
	case selStr == "*":
		sel.Universal = true
		return sel
	}

	remaining := selStr
	if before, id, found := strings.Cut(remaining, "#"); found {
		if strings.ContainsAny(id, ".#") {
			sheet.Warnings = append(sheet.Warnings, "unsupported compound selector: "+selStr)
			p.log.Debug("Skipping compound selector", zap.String("selector", selStr))
			return sel
		}
		sel.ID = id
		remaining = before
	}
	if element, class, found := strings.Cut(remaining, "."); found {
		if strings.Contains(class, ".") {
			sheet.Warnings = append(sheet.Warnings, "unsupported compound selector: "+selStr)
			p.log.Debug("Skipping compound selector", zap.String("selector", selStr))
			return Selector{Raw: selStr}
		}
		sel.Element = element
		sel.Class = class
	} else {
		sel.Element = remaining
	}
	if sel.Element == "*" {
		sel.Element = ""
		sel.Universal = true
	}
	return sel
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
