// Package prettyprinter renders an ast.Expression back into source text
// that re-parses to a structurally equal expression (spec.md §4.5, §8
// property 1). Bound variables are displayed using their original
// parameter name, disambiguated with a "_N" suffix exactly when printing
// the plain name would collide with another binder currently in scope or
// with a free (global) name used somewhere under it — free names are
// privileged, so a colliding bound parameter is the one that gets renamed.
package prettyprinter

import (
	"bytes"
	"fmt"

	"github.com/levant47/lambda-calculus/internal/ast"
	"github.com/levant47/lambda-calculus/internal/config"
)

// stackEntry is one binder currently in scope while printing, with its
// disambiguated display name already resolved. The suffix is computed once
// when the binder is entered and reused by every Variable that references
// it, however deeply nested — see computeDisplayName.
type stackEntry struct {
	binderID    int
	paramName   string
	displayName string
}

type printer struct {
	buf        bytes.Buffer
	stack      []stackEntry
	collisions map[int]map[string]struct{}
}

// Print renders a single expression to its canonical textual form.
func Print(expr ast.Expression) string {
	p := &printer{collisions: map[int]map[string]struct{}{}}
	collectFreeNames(expr, p.collisions)
	p.render(expr)
	return p.buf.String()
}

// PrintProgram renders every statement of prog as `name = expression;\n`,
// concatenated with no blank lines or separators (spec.md §6, and the
// original test harness's exact output form — see SPEC_FULL.md §5).
func PrintProgram(prog *ast.Program) string {
	var out bytes.Buffer
	for _, stmt := range prog.Statements {
		out.WriteString(stmt.Name)
		out.WriteString(" = ")
		out.WriteString(Print(stmt.Expression))
		out.WriteString(";\n")
	}
	return out.String()
}

// collectFreeNames walks expr bottom-up, recording into collisions[id] the
// set of free-variable names appearing anywhere under the Function with
// that binder id (spec.md §4.5's "global collision precomputation"), and
// returns the set of free names appearing in expr itself.
func collectFreeNames(expr ast.Expression, collisions map[int]map[string]struct{}) map[string]struct{} {
	switch e := expr.(type) {
	case *ast.Variable:
		if e.IsBound {
			return nil
		}
		return map[string]struct{}{e.GlobalName: {}}
	case *ast.Function:
		names := collectFreeNames(e.Body, collisions)
		collisions[e.BinderID] = names
		return names
	case *ast.Application:
		left := collectFreeNames(e.Left, collisions)
		right := collectFreeNames(e.Right, collisions)
		return union(left, right)
	default:
		panic("prettyprinter.collectFreeNames: unknown expression type")
	}
}

func union(a, b map[string]struct{}) map[string]struct{} {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]struct{}, len(a)+len(b))
	for n := range a {
		out[n] = struct{}{}
	}
	for n := range b {
		out[n] = struct{}{}
	}
	return out
}

// computeDisplayName picks the name a newly-entered binder should be shown
// with: k counts same-named binders already in scope (entries pushed
// before this one, i.e. enclosing it), plus one more if this binder's own
// name collides with a free name used anywhere in its body. k == 0 keeps
// the plain name; otherwise the binder is shown as name_k.
func (p *printer) computeDisplayName(binderID int, name string) string {
	k := 0
	for _, e := range p.stack {
		if e.paramName == name {
			k++
		}
	}
	if _, collides := p.collisions[binderID][name]; collides {
		k++
	}
	if k == 0 {
		return name
	}
	return fmt.Sprintf("%s%s%d", name, config.DisambiguationSeparator, k)
}

func (p *printer) render(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Variable:
		if !e.IsBound {
			p.buf.WriteString(e.GlobalName)
			return
		}
		p.buf.WriteString(p.lookup(e.BinderID))

	case *ast.Function:
		var funcs []*ast.Function
		var cur ast.Expression = e
		for {
			f, ok := cur.(*ast.Function)
			if !ok {
				break
			}
			funcs = append(funcs, f)
			cur = f.Body
		}

		p.buf.WriteString(`\ `)
		for _, f := range funcs {
			display := p.computeDisplayName(f.BinderID, f.ParameterName)
			p.stack = append(p.stack, stackEntry{binderID: f.BinderID, paramName: f.ParameterName, displayName: display})
			p.buf.WriteString(display)
			p.buf.WriteString(" ")
		}
		p.buf.WriteString(". ")
		p.render(cur)
		p.stack = p.stack[:len(p.stack)-len(funcs)]

	case *ast.Application:
		p.renderOperand(e.Left, isFunction)
		p.buf.WriteString(" ")
		p.renderOperand(e.Right, isFunctionOrApplication)

	default:
		panic("prettyprinter.render: unknown expression type")
	}
}

func isFunction(e ast.Expression) bool {
	_, ok := e.(*ast.Function)
	return ok
}

func isFunctionOrApplication(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Function, *ast.Application:
		return true
	default:
		return false
	}
}

func (p *printer) renderOperand(e ast.Expression, needsParens func(ast.Expression) bool) {
	if needsParens(e) {
		p.buf.WriteString("(")
		p.render(e)
		p.buf.WriteString(")")
		return
	}
	p.render(e)
}

func (p *printer) lookup(binderID int) string {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].binderID == binderID {
			return p.stack[i].displayName
		}
	}
	panic("prettyprinter.lookup: bound variable refers to a binder not currently in scope")
}
