package transform

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/srwiley/rasterx"
	"github.com/tdewolff/parse/v2/strconv"
)

var errParamMismatch = errors.New("wrong number of transform parameters")

// ParseList parses SVG transform list, for example
// "translate(10 20) rotate(45, 5, 5) scale(2)". Functions are applied left to
// right.
func ParseList(s string) (rasterx.Matrix2D, error) {
	m := rasterx.Identity
	b := []byte(s)
	i := 0
	for {
		i = skipSeparators(b, i)
		if i >= len(b) {
			return m, nil
		}

		start := i
		for i < len(b) && isLetter(b[i]) {
			i++
		}
		name := string(b[start:i])
		if name == "" {
			return rasterx.Identity, fmt.Errorf("unexpected %q at offset %d", b[i], i)
		}
		for i < len(b) && isSpace(b[i]) {
			i++
		}
		if i >= len(b) || b[i] != '(' {
			return rasterx.Identity, fmt.Errorf("expected '(' after %s", name)
		}
		i++

		var args []float64
		for {
			i = skipSeparators(b, i)
			if i >= len(b) {
				return rasterx.Identity, fmt.Errorf("unterminated %s", name)
			}
			if b[i] == ')' {
				i++
				break
			}
			f, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				return rasterx.Identity, fmt.Errorf("bad number in %s at offset %d", name, i)
			}
			args = append(args, f)
			i += n
		}

		var err error
		if m, err = apply(m, name, args); err != nil {
			return rasterx.Identity, fmt.Errorf("%s: %w", name, err)
		}
	}
}

func apply(m rasterx.Matrix2D, name string, p []float64) (rasterx.Matrix2D, error) {
	switch strings.ToLower(name) {
	case "matrix":
		if len(p) == 6 {
			return m.Mult(rasterx.Matrix2D{A: p[0], B: p[1], C: p[2], D: p[3], E: p[4], F: p[5]}), nil
		}
	case "translate":
		switch len(p) {
		case 1:
			return m.Translate(p[0], 0), nil
		case 2:
			return m.Translate(p[0], p[1]), nil
		}
	case "scale":
		switch len(p) {
		case 1:
			return m.Scale(p[0], p[0]), nil
		case 2:
			return m.Scale(p[0], p[1]), nil
		}
	case "rotate":
		switch len(p) {
		case 1:
			return m.Rotate(radians(p[0])), nil
		case 3:
			return m.Translate(p[1], p[2]).Rotate(radians(p[0])).Translate(-p[1], -p[2]), nil
		}
	case "skewx":
		if len(p) == 1 {
			return m.SkewX(radians(p[0])), nil
		}
	case "skewy":
		if len(p) == 1 {
			return m.SkewY(radians(p[0])), nil
		}
	default:
		return m, fmt.Errorf("unknown transform function")
	}
	return m, errParamMismatch
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func skipSeparators(b []byte, i int) int {
	for i < len(b) && (isSpace(b[i]) || b[i] == ',') {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
