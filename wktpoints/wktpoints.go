// Package wktpoints is a trimmed, adapted Well-Known-Text reader/writer for
// the POINT / MULTIPOINT subset, restricted to 2D and 3D coordinate lists
// (no polygons or lines — those carry no meaning for a hull-point input).
// Implemented as a hand-written recursive-descent parser: a lexer plus a
// set of nextFoo methods, one per grammar production.
package wktpoints

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hullgraph/hull3d/point"
)

// Function names in the parser are chosen to match closely with the BNF
// productions of the WKT grammar.
//
// Convention: functions starting with 'next' consume token(s) and build the
// next production in the grammar.

type lexer struct {
	tokens []string
	pos    int
}

func newLexer(s string) *lexer {
	return &lexer{tokens: tokenize(s)}
}

func tokenize(s string) []string {
	var toks []string
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')' || c == ',':
			toks = append(toks, string(c))
			i++
		default:
			j := i
			for j < len(s) && !strings.ContainsRune(" \t\n\r(),", rune(s[j])) {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		}
	}
	return toks
}

func (l *lexer) next() (string, error) {
	if l.pos >= len(l.tokens) {
		return "", fmt.Errorf("wktpoints: unexpected end of input")
	}
	tok := l.tokens[l.pos]
	l.pos++
	return tok, nil
}

func (l *lexer) peek() (string, error) {
	if l.pos >= len(l.tokens) {
		return "", fmt.Errorf("wktpoints: unexpected end of input")
	}
	return l.tokens[l.pos], nil
}

type parser struct {
	lex *lexer
}

func (p *parser) nextRightParenOrComma() (string, error) {
	tok, err := p.lex.next()
	if err != nil {
		return "", err
	}
	if tok != ")" && tok != "," {
		return "", fmt.Errorf("wktpoints: expected ')' or ',' but got %q", tok)
	}
	return tok, nil
}

func (p *parser) nextFloat() (float64, error) {
	tok, err := p.lex.next()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("wktpoints: invalid numeric literal %q: %w", tok, err)
	}
	return f, nil
}

// nextCoordinate reads one X Y [Z] tuple. is3D tells it whether to read a Z.
func (p *parser) nextCoordinate(is3D bool) (point.Vec[float64], error) {
	var v point.Vec[float64]
	var err error
	if v.X, err = p.nextFloat(); err != nil {
		return v, err
	}
	if v.Y, err = p.nextFloat(); err != nil {
		return v, err
	}
	if is3D {
		if v.Z, err = p.nextFloat(); err != nil {
			return v, err
		}
	}
	return v, nil
}

// nextGeomTag reads the geometry keyword and an optional "Z" dimension tag.
func (p *parser) nextGeomTag() (string, bool, error) {
	tag, err := p.lex.next()
	if err != nil {
		return "", false, err
	}
	tag = strings.ToUpper(tag)
	peeked, err := p.lex.peek()
	if err == nil && strings.ToUpper(peeked) == "Z" {
		p.lex.next()
		return tag, true, nil
	}
	return tag, false, nil
}

// Parse reads a POINT or MULTIPOINT WKT string into its list of points
// (a single point parses as a length-1 slice) and reports whether the
// coordinates were 3D.
func Parse(s string) ([]point.Vec[float64], bool, error) {
	p := &parser{lex: newLexer(s)}
	tag, is3D, err := p.nextGeomTag()
	if err != nil {
		return nil, false, err
	}

	switch tag {
	case "POINT":
		if tok, err := p.lex.next(); err != nil || tok != "(" {
			return nil, false, fmt.Errorf("wktpoints: expected '(' after POINT")
		}
		v, err := p.nextCoordinate(is3D)
		if err != nil {
			return nil, false, err
		}
		if tok, err := p.lex.next(); err != nil || tok != ")" {
			return nil, false, fmt.Errorf("wktpoints: expected ')' closing POINT")
		}
		return []point.Vec[float64]{v}, is3D, nil

	case "MULTIPOINT":
		if tok, err := p.lex.next(); err != nil || tok != "(" {
			return nil, false, fmt.Errorf("wktpoints: expected '(' after MULTIPOINT")
		}
		var pts []point.Vec[float64]
		for {
			useParens := false
			if tok, _ := p.lex.peek(); tok == "(" {
				p.lex.next()
				useParens = true
			}
			v, err := p.nextCoordinate(is3D)
			if err != nil {
				return nil, false, err
			}
			pts = append(pts, v)
			if useParens {
				if tok, err := p.lex.next(); err != nil || tok != ")" {
					return nil, false, fmt.Errorf("wktpoints: expected ')' closing a MULTIPOINT member")
				}
			}
			tok, err := p.nextRightParenOrComma()
			if err != nil {
				return nil, false, err
			}
			if tok == ")" {
				break
			}
		}
		return pts, is3D, nil

	default:
		return nil, false, fmt.Errorf("wktpoints: unsupported geometry tag %q", tag)
	}
}

// Format writes pts as a MULTIPOINT WKT string (or POINT, for a single
// point), including a Z tag when is3D is set.
func Format(pts []point.Vec[float64], is3D bool) string {
	var b strings.Builder
	coord := func(v point.Vec[float64]) {
		fmt.Fprintf(&b, "%s %s", strconv.FormatFloat(v.X, 'g', -1, 64), strconv.FormatFloat(v.Y, 'g', -1, 64))
		if is3D {
			fmt.Fprintf(&b, " %s", strconv.FormatFloat(v.Z, 'g', -1, 64))
		}
	}

	if len(pts) == 1 {
		b.WriteString("POINT ")
		if is3D {
			b.WriteString("Z ")
		}
		b.WriteString("(")
		coord(pts[0])
		b.WriteString(")")
		return b.String()
	}

	b.WriteString("MULTIPOINT ")
	if is3D {
		b.WriteString("Z ")
	}
	b.WriteString("(")
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		coord(p)
	}
	b.WriteString(")")
	return b.String()
}

// ParseXY reads 2D points via Parse and drops the Z coordinate, used by
// Delaunay/Voronoi input which is inherently planar.
func ParseXY(s string) ([]point.XY, error) {
	pts, _, err := Parse(s)
	if err != nil {
		return nil, err
	}
	out := make([]point.XY, len(pts))
	for i, p := range pts {
		out[i] = point.XY{X: p.X, Y: p.Y}
	}
	return out, nil
}

// FormatXY writes 2D points as WKT, via Format.
func FormatXY(pts []point.XY) string {
	v := make([]point.Vec[float64], len(pts))
	for i, p := range pts {
		v[i] = point.Vec[float64]{X: p.X, Y: p.Y}
	}
	return Format(v, false)
}
