package parser

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/jphuse/nuskell/pkg/domain"
)

// Error reports a syntax or consistency problem in the CRN source.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIdent
	tokNumber
	tokArrow    // ->
	tokRevArrow // <=>
	tokPlus
	tokSemi
	tokLBrack
	tokRBrack
	tokLBrace
	tokRBrace
	tokEq
	tokComma
)

type token struct {
	kind tokenKind
	text string
	line int
}

func lex(src string) ([]token, error) {
	var toks []token
	line := 1
	runes := []rune(src)
	i := 0

	emit := func(k tokenKind, text string) {
		toks = append(toks, token{kind: k, text: text, line: line})
	}

	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		case r == '\n':
			emit(tokNewline, "\n")
			line++
			i++
		case r == ' ' || r == '\t' || r == '\r':
			i++
		case r == '+':
			emit(tokPlus, "+")
			i++
		case r == ';':
			emit(tokSemi, ";")
			i++
		case r == '[':
			emit(tokLBrack, "[")
			i++
		case r == ']':
			emit(tokRBrack, "]")
			i++
		case r == '{':
			emit(tokLBrace, "{")
			i++
		case r == '}':
			emit(tokRBrace, "}")
			i++
		case r == '=':
			emit(tokEq, "=")
			i++
		case r == ',':
			emit(tokComma, ",")
			i++
		case r == '-':
			if i+1 < len(runes) && runes[i+1] == '>' {
				emit(tokArrow, "->")
				i += 2
			} else {
				return nil, &Error{Line: line, Message: "unexpected '-'"}
			}
		case r == '<':
			if i+2 < len(runes) && runes[i+1] == '=' && runes[i+2] == '>' {
				emit(tokRevArrow, "<=>")
				i += 3
			} else {
				return nil, &Error{Line: line, Message: "unexpected '<'"}
			}
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			emit(tokIdent, string(runes[i:j]))
			i = j
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			// Decimal or scientific tail turns the token into a rate number.
			if j < len(runes) && runes[j] == '.' {
				j++
				for j < len(runes) && unicode.IsDigit(runes[j]) {
					j++
				}
			}
			if j < len(runes) && runes[j] == 'e' {
				k := j + 1
				if k < len(runes) && runes[k] == '-' {
					k++
				}
				if k < len(runes) && unicode.IsDigit(runes[k]) {
					j = k
					for j < len(runes) && unicode.IsDigit(runes[j]) {
						j++
					}
				}
			}
			emit(tokNumber, string(runes[i:j]))
			i = j
		default:
			return nil, &Error{Line: line, Message: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	emit(tokEOF, "")
	return toks, nil
}

type parser struct {
	toks []token
	pos  int

	reactions []domain.Reaction
	formals   map[string]bool
	signals   map[string]bool
	fuels     map[string]bool
}

func (p *parser) peek() token { return p.toks[p.pos] }
func (p *parser) next() token { t := p.toks[p.pos]; p.pos++; return t }
func (p *parser) accept(k tokenKind) bool {
	if p.toks[p.pos].kind == k {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != k {
		return t, &Error{Line: t.line, Message: fmt.Sprintf("expected %s, got %q", what, t.text)}
	}
	return t, nil
}

func (p *parser) errf(format string, args ...any) error {
	return &Error{Line: p.peek().line, Message: fmt.Sprintf(format, args...)}
}

// speciesList parses `term ('+' term)*` where term is `[multiplier] ident`,
// flattening multipliers into repeated occurrences. An empty list is legal
// (pure production/consumption reactions).
func (p *parser) speciesList() ([]string, error) {
	var out []string
	afterPlus := false
	for {
		mult := 1
		if p.peek().kind == tokNumber {
			t := p.next()
			if strings.ContainsAny(t.text, ".e") {
				return nil, &Error{Line: t.line, Message: fmt.Sprintf("stoichiometric multiplier %q must be an integer", t.text)}
			}
			n, err := strconv.Atoi(t.text)
			if err != nil || n < 1 {
				return nil, &Error{Line: t.line, Message: fmt.Sprintf("invalid multiplier %q", t.text)}
			}
			mult = n
		}
		if p.peek().kind != tokIdent {
			if mult != 1 {
				return nil, p.errf("multiplier without species name")
			}
			if afterPlus {
				return nil, p.errf("dangling '+' in species list")
			}
			return out, nil
		}
		name := p.next().text
		for k := 0; k < mult; k++ {
			out = append(out, name)
		}
		if !p.accept(tokPlus) {
			return out, nil
		}
		afterPlus = true
	}
}

func (p *parser) rateValue() (float64, error) {
	t, err := p.expect(tokNumber, "rate value")
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, &Error{Line: t.line, Message: fmt.Sprintf("invalid rate %q", t.text)}
	}
	return v, nil
}

// rate parses the optional `[k = v]` or `[kf = v, kr = v]` annotation.
func (p *parser) rate(rxn *domain.Reaction) error {
	if !p.accept(tokLBrack) {
		return nil
	}
	key, err := p.expect(tokIdent, "rate constant name")
	if err != nil {
		return err
	}
	if _, err := p.expect(tokEq, "'='"); err != nil {
		return err
	}
	v, err := p.rateValue()
	if err != nil {
		return err
	}

	switch {
	case key.text == "k" && !rxn.Reversible:
		rxn.RateF = &v
	case key.text == "kf" && rxn.Reversible:
		rxn.RateF = &v
		if _, err := p.expect(tokComma, "','"); err != nil {
			return err
		}
		kr, err := p.expect(tokIdent, "'kr'")
		if err != nil {
			return err
		}
		if kr.text != "kr" {
			return &Error{Line: kr.line, Message: fmt.Sprintf("expected 'kr', got %q", kr.text)}
		}
		if _, err := p.expect(tokEq, "'='"); err != nil {
			return err
		}
		r, err := p.rateValue()
		if err != nil {
			return err
		}
		rxn.RateR = &r
	default:
		return &Error{Line: key.line, Message: fmt.Sprintf("rate constant %q does not match reaction reversibility", key.text)}
	}

	_, err = p.expect(tokRBrack, "']'")
	return err
}

func (p *parser) reaction() error {
	reactants, err := p.speciesList()
	if err != nil {
		return err
	}

	var rxn domain.Reaction
	switch p.peek().kind {
	case tokArrow:
		p.next()
	case tokRevArrow:
		p.next()
		rxn.Reversible = true
	default:
		return p.errf("expected '->' or '<=>', got %q", p.peek().text)
	}

	products, err := p.speciesList()
	if err != nil {
		return err
	}
	rxn.Reactants = reactants
	rxn.Products = products

	if err := p.rate(&rxn); err != nil {
		return err
	}

	p.reactions = append(p.reactions, rxn)
	for _, name := range reactants {
		p.formals[name] = true
	}
	for _, name := range products {
		p.formals[name] = true
	}
	return nil
}

// declaration parses `formals|signals|fuels = { A, B, ... }`.
func (p *parser) declaration(into map[string]bool) error {
	if _, err := p.expect(tokEq, "'='"); err != nil {
		return err
	}
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return err
	}
	if p.accept(tokRBrace) {
		return nil
	}
	for {
		t, err := p.expect(tokIdent, "species name")
		if err != nil {
			return err
		}
		into[t.text] = true
		if p.accept(tokRBrace) {
			return nil
		}
		if _, err := p.expect(tokComma, "','"); err != nil {
			return err
		}
	}
}

func (p *parser) statement() error {
	if p.peek().kind == tokIdent && p.toks[p.pos+1].kind == tokEq {
		switch name := p.peek().text; name {
		case "formals":
			p.next()
			return p.declaration(p.formals)
		case "signals":
			p.next()
			return p.declaration(p.signals)
		case "fuels":
			p.next()
			return p.declaration(p.fuels)
		}
	}
	return p.reaction()
}

func (p *parser) document() error {
	for {
		for p.accept(tokNewline) || p.accept(tokSemi) {
		}
		if p.peek().kind == tokEOF {
			return nil
		}
		if err := p.statement(); err != nil {
			return err
		}
		switch p.peek().kind {
		case tokSemi, tokNewline:
			p.next()
		case tokEOF:
			return nil
		default:
			return p.errf("unexpected %q after statement", p.peek().text)
		}
	}
}

func sorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Parse parses a CRN in string format.
func Parse(src string) (*domain.CRN, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		toks:    toks,
		formals: make(map[string]bool),
		signals: make(map[string]bool),
		fuels:   make(map[string]bool),
	}
	if err := p.document(); err != nil {
		return nil, err
	}
	if len(p.reactions) == 0 {
		return nil, &Error{Line: 1, Message: "no reactions found"}
	}

	// Signal species default to the formal set.
	signals := p.signals
	if len(signals) == 0 {
		signals = p.formals
	}
	for name := range signals {
		if p.fuels[name] {
			return nil, &Error{Line: 1, Message: fmt.Sprintf("species %q declared as both signal and fuel", name)}
		}
	}

	return &domain.CRN{
		Reactions: p.reactions,
		Formals:   sorted(p.formals),
		Signals:   sorted(signals),
		Fuels:     sorted(p.fuels),
	}, nil
}

// ParseFile parses a CRN from a file.
func ParseFile(path string) (*domain.CRN, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CRN file: %w", err)
	}
	return Parse(string(data))
}
