// Package ast defines the expression tree the parser produces and the
// reducer/interpreter/prettyprinter consume. The sum type is expressed as
// a small Go interface with three concrete node types and dispatched with
// type switches, the same way evaluator.Object is dispatched across this
// codebase's evaluator (see e.g. apply.go's "switch o := obj.(type)").
//
// Every node is exclusively owned by its parent: there are no shared
// subtrees and no back-references, so the reducer and interpreter can
// treat a tree as a value and hand out fresh trees freely.
package ast

// Expression is the sum type over Variable, Function and Application.
type Expression interface {
	expressionNode()
	// ParenDepth is the count of enclosing parenthesized groups this node
	// was parsed inside of. It exists purely to let the parser reassociate
	// adjacent applications across precedence levels (spec.md §4.2); it has
	// no reduction or equality semantics.
	ParenDepth() int
}

// Variable is either bound (refers to an enclosing Function by de Bruijn
// index) or free (refers to a top-level definition by name).
type Variable struct {
	Depth int

	IsBound bool

	// Valid when IsBound.
	BoundIndex int
	BinderID   int

	// Valid when !IsBound.
	GlobalName string
}

func (v *Variable) expressionNode()  {}
func (v *Variable) ParenDepth() int  { return v.Depth }

// Function is a single-parameter lambda abstraction. Syntactic
// `\ x y z . body` desugars into three nested Functions at parse time.
type Function struct {
	Depth int

	ParameterName string
	BinderID      int
	Body          Expression
}

func (f *Function) expressionNode() {}
func (f *Function) ParenDepth() int { return f.Depth }

// Application is ordinary juxtaposition: Left applied to Right.
type Application struct {
	Depth int

	Left  Expression
	Right Expression
}

func (a *Application) expressionNode() {}
func (a *Application) ParenDepth() int { return a.Depth }

// Statement is one top-level `name = expression;` binding.
type Statement struct {
	Name       string
	Expression Expression
}

// Program is an ordered list of top-level Statements; spec.md §3 requires
// their names to be pairwise distinct, which the parser enforces.
type Program struct {
	Statements []Statement
}

// Lookup returns the expression bound to name and whether it was found.
func (p *Program) Lookup(name string) (Expression, bool) {
	for _, s := range p.Statements {
		if s.Name == name {
			return s.Expression, true
		}
	}
	return nil, false
}
