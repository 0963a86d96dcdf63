package keymap

import (
	"errors"
	"fmt"
	"sync"
	"unicode"
)

// ErrInvalidPredicate is returned for context expressions that do not parse.
var ErrInvalidPredicate = errors.New("invalid context predicate")

// Context describes the state a binding's predicate is evaluated against.
type Context struct {
	// Identifiers holds the active context tags ("Editor", "menu").
	Identifiers map[string]bool

	// Values holds context variables ("mode" = "normal").
	Values map[string]string
}

// NewContext creates a context with the given identifiers set.
func NewContext(identifiers ...string) *Context {
	ctx := &Context{
		Identifiers: make(map[string]bool, len(identifiers)),
		Values:      make(map[string]string),
	}
	for _, id := range identifiers {
		ctx.Identifiers[id] = true
	}
	return ctx
}

// Add sets an identifier.
func (c *Context) Add(id string) *Context {
	if c.Identifiers == nil {
		c.Identifiers = make(map[string]bool)
	}
	c.Identifiers[id] = true
	return c
}

// Set sets a variable.
func (c *Context) Set(name, value string) *Context {
	if c.Values == nil {
		c.Values = make(map[string]string)
	}
	c.Values[name] = value
	return c
}

// Predicate is a parsed context expression. Supported syntax:
//
//	Editor                identifier is set
//	mode == normal        variable equals value
//	mode != insert        variable differs from value
//	!a, a && b, a || b    negation, conjunction, disjunction
//	(a || b) && c         grouping
//
// A nil *Predicate matches every context.
type Predicate struct {
	source string
	root   predicateNode
}

type predicateOp uint8

const (
	opIdentifier predicateOp = iota
	opEqual
	opNotEqual
	opNot
	opAnd
	opOr
)

type predicateNode struct {
	op          predicateOp
	left, right string
	children    []predicateNode
}

// ParsePredicate parses a context expression.
func ParsePredicate(source string) (*Predicate, error) {
	p := &predicateParser{source: source, tokens: tokenizePredicate(source)}
	if p.tokens == nil {
		return nil, fmt.Errorf("%w %q: unexpected character", ErrInvalidPredicate, source)
	}
	if len(p.tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidPredicate)
	}

	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, p.errorf("unexpected %q", p.tokens[p.pos])
	}
	return &Predicate{source: source, root: root}, nil
}

// MustParsePredicate parses a context expression and panics on error.
func MustParsePredicate(source string) *Predicate {
	p, err := ParsePredicate(source)
	if err != nil {
		panic(err)
	}
	return p
}

// Eval reports whether the predicate holds in ctx. A nil context has no
// identifiers or variables set.
func (p *Predicate) Eval(ctx *Context) bool {
	if p == nil {
		return true
	}
	if ctx == nil {
		ctx = NewContext()
	}
	return p.root.eval(ctx)
}

// String returns the source expression.
func (p *Predicate) String() string {
	if p == nil {
		return ""
	}
	return p.source
}

func (n predicateNode) eval(ctx *Context) bool {
	switch n.op {
	case opIdentifier:
		return ctx.Identifiers[n.left]
	case opEqual:
		v, ok := ctx.Values[n.left]
		return ok && v == n.right
	case opNotEqual:
		v, ok := ctx.Values[n.left]
		return !ok || v != n.right
	case opNot:
		return !n.children[0].eval(ctx)
	case opAnd:
		return n.children[0].eval(ctx) && n.children[1].eval(ctx)
	case opOr:
		return n.children[0].eval(ctx) || n.children[1].eval(ctx)
	}
	return false
}

// tokenizePredicate splits an expression into tokens. It returns nil on an
// unexpected character.
func tokenizePredicate(s string) []string {
	tokens := make([]string, 0, 8)
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(' || r == ')':
			tokens = append(tokens, string(r))
			i++
		case r == '!' && i+1 < len(runes) && runes[i+1] == '=':
			tokens = append(tokens, "!=")
			i += 2
		case r == '!':
			tokens = append(tokens, "!")
			i++
		case i+1 < len(runes) && (r == '&' || r == '|' || r == '=') && runes[i+1] == r:
			tokens = append(tokens, string([]rune{r, r}))
			i += 2
		case isIdentRune(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			tokens = append(tokens, string(runes[start:i]))
		default:
			return nil
		}
	}
	return tokens
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' || r == ':'
}

type predicateParser struct {
	source string
	tokens []string
	pos    int
}

func (p *predicateParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidPredicate, p.source, fmt.Sprintf(format, args...))
}

func (p *predicateParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *predicateParser) parseOr() (predicateNode, error) {
	left, err := p.parseAnd()
	if err != nil {
		return left, err
	}
	for p.peek() == "||" {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return right, err
		}
		left = predicateNode{op: opOr, children: []predicateNode{left, right}}
	}
	return left, nil
}

func (p *predicateParser) parseAnd() (predicateNode, error) {
	left, err := p.parseUnary()
	if err != nil {
		return left, err
	}
	for p.peek() == "&&" {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return right, err
		}
		left = predicateNode{op: opAnd, children: []predicateNode{left, right}}
	}
	return left, nil
}

func (p *predicateParser) parseUnary() (predicateNode, error) {
	switch tok := p.peek(); tok {
	case "!":
		p.pos++
		child, err := p.parseUnary()
		if err != nil {
			return child, err
		}
		return predicateNode{op: opNot, children: []predicateNode{child}}, nil
	case "(":
		p.pos++
		inner, err := p.parseOr()
		if err != nil {
			return inner, err
		}
		if p.peek() != ")" {
			return inner, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return inner, nil
	case "":
		return predicateNode{}, p.errorf("unexpected end of expression")
	default:
		if !isIdentifier(tok) {
			return predicateNode{}, p.errorf("unexpected %q", tok)
		}
		p.pos++
		op := p.peek()
		if op != "==" && op != "!=" {
			return predicateNode{op: opIdentifier, left: tok}, nil
		}
		p.pos++
		value := p.peek()
		if !isIdentifier(value) {
			return predicateNode{}, p.errorf("expected value after %q", op)
		}
		p.pos++
		if op == "==" {
			return predicateNode{op: opEqual, left: tok, right: value}, nil
		}
		return predicateNode{op: opNotEqual, left: tok, right: value}, nil
	}
}

func isIdentifier(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}

// PredicateCache interns parsed predicates so bindings with the same
// context text share one *Predicate.
type PredicateCache struct {
	mu    sync.Mutex
	cache map[string]*Predicate
}

// NewPredicateCache creates an empty cache.
func NewPredicateCache() *PredicateCache {
	return &PredicateCache{cache: make(map[string]*Predicate)}
}

// Get returns the parsed predicate for source, parsing it on first use.
// An empty source yields a nil predicate.
func (c *PredicateCache) Get(source string) (*Predicate, error) {
	if source == "" {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.cache[source]; ok {
		return p, nil
	}
	p, err := ParsePredicate(source)
	if err != nil {
		return nil, err
	}
	c.cache[source] = p
	return p, nil
}

// Len returns the number of cached predicates.
func (c *PredicateCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}
