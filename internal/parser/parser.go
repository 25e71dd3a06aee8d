// Package parser turns a token stream into an ast.Program: a list of
// top-level statements whose expressions already carry resolved de Bruijn
// indices for bound variables. It implements spec.md §4.2 without
// backtracking: applications are left-factored by walking the leftmost
// spine of an already-parsed right-hand expression and splicing in the new
// left atom, gated by a paren-depth comparison that seals off
// parenthesized subexpressions from absorbing outer atoms.
package parser

import (
	"github.com/levant47/lambda-calculus/internal/ast"
	"github.com/levant47/lambda-calculus/internal/diagnostics"
	"github.com/levant47/lambda-calculus/internal/lexer"
	"github.com/levant47/lambda-calculus/internal/token"
)

// boundEntry is one entry of the bound-variable stack: a binder's fresh id
// and the parameter name it was declared with. The stack's top (its last
// element) is the innermost currently-in-scope binder.
type boundEntry struct {
	id   int
	name string
}

type parser struct {
	tokens []token.Token
	pos    int

	boundStack    []boundEntry
	nextBinderID  int
	topLevelNames map[string]struct{}
	parenDepth    int
}

// Parse tokenizes and parses a complete program of `name = expression;`
// statements (spec.md §4.2, §6).
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, topLevelNames: map[string]struct{}{}}
	return p.parseProgram()
}

// ParseExpression parses a single expression with no surrounding
// statement, `=`, or `;` — the entry point spec.md §4.2 reserves for the
// test harness (see SPEC_FULL.md §5). Trailing non-whitespace input after
// the expression is an error, just as trailing input after the last
// statement is in Parse.
func ParseExpression(source string) (ast.Expression, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, topLevelNames: map[string]struct{}{}}
	p.skipWS()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if !p.atEnd() {
		return nil, diagnostics.NewParseError(p.cur().Offset, "unexpected trailing input at %s", describe(p.cur()))
	}
	return expr, nil
}

func (p *parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *parser) cur() token.Token {
	if p.atEnd() {
		return token.Token{Type: token.EOF, Offset: p.endOffset()}
	}
	return p.tokens[p.pos]
}

func (p *parser) endOffset() int {
	if len(p.tokens) == 0 {
		return 0
	}
	last := p.tokens[len(p.tokens)-1]
	return last.Offset + len(last.Text)
}

func (p *parser) advance() { p.pos++ }

func (p *parser) skipWS() {
	for !p.atEnd() && p.tokens[p.pos].Type == token.Whitespace {
		p.pos++
	}
}

func describe(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of input"
	case token.Name:
		return "name '" + t.Text + "'"
	default:
		return "'" + string(t.Type) + "'"
	}
}

func (p *parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	p.skipWS()
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, *stmt)
		p.skipWS()
	}
	return prog, nil
}

func (p *parser) parseStatement() (*ast.Statement, error) {
	if p.atEnd() {
		return nil, diagnostics.NewParseError(p.endOffset(), "unexpected end of input, expected a statement")
	}
	nameTok := p.cur()
	if nameTok.Type != token.Name {
		return nil, diagnostics.NewParseError(nameTok.Offset, "expected a name as the start of a statement, found %s", describe(nameTok))
	}
	if _, dup := p.topLevelNames[nameTok.Text]; dup {
		return nil, diagnostics.NewParseError(nameTok.Offset, "duplicate definition: %s", nameTok.Text)
	}
	p.advance()
	p.skipWS()

	if p.atEnd() || p.cur().Type != token.Equals {
		return nil, diagnostics.NewParseError(p.cur().Offset, "expected '=', found %s", describe(p.cur()))
	}
	p.advance()
	p.skipWS()

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipWS()

	if p.atEnd() || p.cur().Type != token.Semicolon {
		return nil, diagnostics.NewParseError(p.cur().Offset, "expected ';', found %s", describe(p.cur()))
	}
	p.advance()

	p.topLevelNames[nameTok.Text] = struct{}{}
	p.boundStack = p.boundStack[:0]

	return &ast.Statement{Name: nameTok.Text, Expression: expr}, nil
}

func (p *parser) startsExpression() bool {
	if p.atEnd() {
		return false
	}
	switch p.cur().Type {
	case token.Name, token.OpenParen, token.LambdaHeadStart:
		return true
	default:
		return false
	}
}

// parseExpression implements the expression grammar of spec.md §4.2. A
// leading '\' is a function, whose body is parsed greedily (it absorbs
// everything up to the statement's ';' or the enclosing ')'), so a
// function can never itself be left-factored into an application; an
// un-parenthesized function may still appear as the rightmost operand of
// an application.
func (p *parser) parseExpression() (ast.Expression, error) {
	if p.atEnd() {
		return nil, diagnostics.NewParseError(p.endOffset(), "unexpected end of input, expected an expression")
	}
	if p.cur().Type == token.LambdaHeadStart {
		return p.parseFunction()
	}

	depth := p.parenDepth
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	p.skipWS()
	if !p.startsExpression() {
		return left, nil
	}

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if rightApp, ok := right.(*ast.Application); ok && rightApp.Depth == depth {
		spliceLeft(rightApp, left, depth)
		return rightApp, nil
	}
	return &ast.Application{Left: left, Right: right, Depth: depth}, nil
}

// spliceLeft inserts atom as the new innermost-left leaf of root's
// leftmost spine: it follows Left pointers only through Application nodes
// that belong to the same paren_depth, so a parenthesized subexpression
// (a different depth) is treated as an opaque leaf and cannot absorb an
// atom from an outer precedence level (spec.md §4.2).
func spliceLeft(root *ast.Application, atom ast.Expression, depth int) {
	cur := root
	for {
		if leftApp, ok := cur.Left.(*ast.Application); ok && leftApp.Depth == depth {
			cur = leftApp
			continue
		}
		cur.Left = &ast.Application{Left: atom, Right: cur.Left, Depth: depth}
		return
	}
}

// parseAtom parses a variable or a parenthesized expression — the only two
// forms the grammar allows as the left operand of an application.
func (p *parser) parseAtom() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case token.Name:
		p.advance()
		return p.resolveVariable(tok), nil
	case token.OpenParen:
		p.advance()
		p.parenDepth++
		p.skipWS()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.skipWS()
		if p.atEnd() || p.cur().Type != token.CloseParen {
			return nil, diagnostics.NewParseError(p.cur().Offset, "expected ')', found %s", describe(p.cur()))
		}
		p.advance()
		p.parenDepth--
		return inner, nil
	default:
		return nil, diagnostics.NewParseError(tok.Offset, "expected a name or '(', found %s", describe(tok))
	}
}

func (p *parser) resolveVariable(tok token.Token) ast.Expression {
	for i := len(p.boundStack) - 1; i >= 0; i-- {
		if p.boundStack[i].name == tok.Text {
			return &ast.Variable{
				Depth:      p.parenDepth,
				IsBound:    true,
				BoundIndex: len(p.boundStack) - 1 - i,
				BinderID:   p.boundStack[i].id,
			}
		}
	}
	return &ast.Variable{Depth: p.parenDepth, IsBound: false, GlobalName: tok.Text}
}

// parseFunction parses `\ param1 param2 ... paramN . body`, desugaring
// into nested Function nodes (spec.md §3, §4.2). Each parameter is
// rejected if it shadows an enclosing binder (including an earlier
// parameter in the same head, since that parameter is already pushed onto
// boundStack by the time the next one is checked) or a top-level name.
func (p *parser) parseFunction() (ast.Expression, error) {
	p.advance() // consume '\'
	p.skipWS()

	var params []boundEntry
	for {
		if p.atEnd() || p.cur().Type != token.Name {
			break
		}
		nameTok := p.cur()
		if p.isBound(nameTok.Text) {
			return nil, diagnostics.NewParseError(nameTok.Offset, "parameter %q shadows an already bound name", nameTok.Text)
		}
		if _, ok := p.topLevelNames[nameTok.Text]; ok {
			return nil, diagnostics.NewParseError(nameTok.Offset, "parameter %q shadows a top-level definition", nameTok.Text)
		}
		entry := boundEntry{id: p.nextBinderID, name: nameTok.Text}
		p.nextBinderID++
		params = append(params, entry)
		p.boundStack = append(p.boundStack, entry)
		p.advance()
		p.skipWS()
	}

	if len(params) == 0 {
		return nil, diagnostics.NewParseError(p.cur().Offset, "expected a parameter name after '\\', found %s", describe(p.cur()))
	}

	if p.atEnd() || p.cur().Type != token.LambdaHeadEnd {
		p.boundStack = p.boundStack[:len(p.boundStack)-len(params)]
		return nil, diagnostics.NewParseError(p.cur().Offset, "expected '.', found %s", describe(p.cur()))
	}
	p.advance()
	p.skipWS()

	body, err := p.parseExpression()
	if err != nil {
		p.boundStack = p.boundStack[:len(p.boundStack)-len(params)]
		return nil, err
	}
	p.boundStack = p.boundStack[:len(p.boundStack)-len(params)]

	result := body
	for i := len(params) - 1; i >= 0; i-- {
		result = &ast.Function{
			Depth:         p.parenDepth,
			ParameterName: params[i].name,
			BinderID:      params[i].id,
			Body:          result,
		}
	}
	return result, nil
}

func (p *parser) isBound(name string) bool {
	for _, e := range p.boundStack {
		if e.name == name {
			return true
		}
	}
	return false
}
