package ast

// Equal implements the structural equality spec.md §3 requires: Variables
// compare equal iff both are bound with equal BoundIndex or both are free
// with equal GlobalName. BinderID and ParameterName are presentation
// metadata and are never consulted, which is what makes Equal invariant
// under alpha-renaming of binders (spec.md §8 property 3). ParenDepth is
// likewise ignored — it is a parse-time artifact with no runtime meaning.
func Equal(a, b Expression) bool {
	switch a := a.(type) {
	case *Variable:
		b, ok := b.(*Variable)
		if !ok || a.IsBound != b.IsBound {
			return false
		}
		if a.IsBound {
			return a.BoundIndex == b.BoundIndex
		}
		return a.GlobalName == b.GlobalName
	case *Function:
		b, ok := b.(*Function)
		if !ok {
			return false
		}
		return Equal(a.Body, b.Body)
	case *Application:
		b, ok := b.(*Application)
		if !ok {
			return false
		}
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	default:
		return false
	}
}

// Copy produces a deep clone of an expression tree. The interpreter's
// fixed-point loop (spec.md §4.4) uses it to inline a fresh copy of a
// top-level definition's body at every free-variable occurrence that
// references it, so that reducing one occurrence can never mutate another.
func Copy(e Expression) Expression {
	switch e := e.(type) {
	case *Variable:
		cp := *e
		return &cp
	case *Function:
		return &Function{Depth: e.Depth, ParameterName: e.ParameterName, BinderID: e.BinderID, Body: Copy(e.Body)}
	case *Application:
		return &Application{Depth: e.Depth, Left: Copy(e.Left), Right: Copy(e.Right)}
	default:
		panic("ast.Copy: unknown expression type")
	}
}
