// Package parse reads Push program source text — parenthesized lists of
// literals, names, and instructions (spec §3's external textual form) —
// into a code tree. It is a small single-pass rune scanner in the style of
// CWBudde-go-dws's internal/lexer.Lexer, tracking line/column for
// internal/perr.ParseError, but Push's grammar is flat enough (atoms and
// parenthesized lists, no operators or precedence) that it needs no
// separate lexer/parser split.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/perr"
	"github.com/pushlang/go-push/internal/value"
)

type parser struct {
	ip     *interp.Interpreter
	src    string
	pos    int
	line   int
	column int
}

// Program parses src into a code list of top-level items, interning any
// name or instruction tokens against ip. Instruction tokens (those
// matching a name currently registered in ip's instruction registry) are
// parsed as KindInstr; everything else that isn't a bool/int/real literal
// is parsed as KindName.
func Program(ip *interp.Interpreter, src string) (*value.Code, error) {
	p := &parser{ip: ip, src: src, line: 1, column: 1}
	items, err := p.parseItems(false)
	if err != nil {
		return nil, err
	}
	return value.CodeOf(items...), nil
}

func (p *parser) parseItems(stopAtParen bool) ([]*value.Value, error) {
	var items []*value.Value
	for {
		p.skipSpaceAndComments()
		if p.atEnd() {
			if stopAtParen {
				return nil, p.errf("unexpected end of input, expected )")
			}
			return items, nil
		}
		if p.peek() == ')' {
			if !stopAtParen {
				return nil, p.errf("unexpected )")
			}
			p.advance()
			return items, nil
		}
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *parser) parseItem() (*value.Value, error) {
	if p.peek() == '(' {
		p.advance()
		items, err := p.parseItems(true)
		if err != nil {
			return nil, err
		}
		return p.ip.NewCode(value.CodeOf(items...)), nil
	}
	tok := p.readToken()
	if tok == "" {
		return nil, p.errf("unexpected character %q", p.peek())
	}
	return p.classify(tok), nil
}

func (p *parser) classify(tok string) *value.Value {
	switch tok {
	case "true", "TRUE":
		return p.ip.NewBool(true)
	case "false", "FALSE":
		return p.ip.NewBool(false)
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return p.ip.NewInt(i)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil && strings.ContainsAny(tok, ".eE") {
		return p.ip.NewReal(f)
	}
	n := p.ip.Intern(tok)
	if p.ip.LookupInstr(n) != nil {
		return p.ip.NewInstrValue(n)
	}
	return p.ip.NewNameValue(n)
}

func (p *parser) readToken() string {
	start := p.pos
	for !p.atEnd() && !isDelim(p.peekRune()) {
		p.advance()
	}
	return p.src[start:p.pos]
}

func isDelim(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r)
}

func (p *parser) skipSpaceAndComments() {
	for !p.atEnd() {
		r := p.peekRune()
		if unicode.IsSpace(r) {
			p.advance()
			continue
		}
		if r == ';' {
			for !p.atEnd() && p.peekRune() != '\n' {
				p.advance()
			}
			continue
		}
		return
	}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekRune() rune {
	if p.atEnd() {
		return 0
	}
	return rune(p.src[p.pos])
}

func (p *parser) advance() {
	if p.atEnd() {
		return
	}
	if p.src[p.pos] == '\n' {
		p.line++
		p.column = 1
	} else {
		p.column++
	}
	p.pos++
}

func (p *parser) errf(format string, args ...any) error {
	return perr.NewParseError(perr.Position{Line: p.line, Column: p.column}, fmt.Sprintf(format, args...), p.src)
}
