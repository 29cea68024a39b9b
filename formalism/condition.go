package formalism

// ConditionKind discriminates the logical-connective variant a parsed-AST
// condition (a precondition, a goal, an axiom body) is built from, before
// the translator pipeline in package translate has normalized it away.
// To-NNF and remove-universal-quantifiers remove CondNot (except directly
// over a literal) and CondForall; CondOr and CondExists can remain. A
// condition made only of CondLiteral and CondAnd nodes is exactly the flat,
// sorted Literal list Action/Axiom/Problem store directly.
type ConditionKind uint8

const (
	CondLiteral ConditionKind = iota
	CondAnd
	CondOr
	CondNot
	CondExists
	CondForall
)

// Condition is the variant node of a lifted logical formula.
type Condition struct {
	Kind ConditionKind

	LiteralIdx int // CondLiteral: a Literal index

	ChildrenStart, ChildrenLen int // CondAnd/CondOr: Condition indices, sorted

	Operand int // CondNot: Condition index

	ParamsStart, ParamsLen int // CondExists/CondForall: Variable indices
	Body                   int // CondExists/CondForall: Condition index
}

func (r *Repository) InternConditionLiteral(literalIdx int) int {
	return r.Conditions.Intern(Condition{Kind: CondLiteral, LiteralIdx: literalIdx})
}

// InternConditionAnd/Or canonicalize their child list by sorting it, like
// every other commutative bundle in §4.G.
func (r *Repository) InternConditionAnd(childIdxs []int) int {
	start, length := r.children.Put(sortedInts(childIdxs))
	return r.Conditions.Intern(Condition{Kind: CondAnd, ChildrenStart: start, ChildrenLen: length})
}

func (r *Repository) InternConditionOr(childIdxs []int) int {
	start, length := r.children.Put(sortedInts(childIdxs))
	return r.Conditions.Intern(Condition{Kind: CondOr, ChildrenStart: start, ChildrenLen: length})
}

func (r *Repository) InternConditionNot(operand int) int {
	return r.Conditions.Intern(Condition{Kind: CondNot, Operand: operand})
}

func (r *Repository) InternConditionExists(paramIdxs []int, body int) int {
	start, length := r.children.Put(paramIdxs)
	return r.Conditions.Intern(Condition{Kind: CondExists, ParamsStart: start, ParamsLen: length, Body: body})
}

func (r *Repository) InternConditionForall(paramIdxs []int, body int) int {
	start, length := r.children.Put(paramIdxs)
	return r.Conditions.Intern(Condition{Kind: CondForall, ParamsStart: start, ParamsLen: length, Body: body})
}

func (r *Repository) ConditionChildren(c Condition) []int {
	return r.children.Get(c.ChildrenStart, c.ChildrenLen)
}

func (r *Repository) ConditionParams(c Condition) []int {
	return r.children.Get(c.ParamsStart, c.ParamsLen)
}

// EffectExprKind discriminates the lifted effect AST, pre effect-normal-
// form: a single literal, a conjunction, a universally quantified
// sub-effect ("forall (x) effect"), or a conditionally-guarded sub-effect
// ("when condition effect").
type EffectExprKind uint8

const (
	EffectLiteral EffectExprKind = iota
	EffectAnd
	EffectForall
	EffectWhen
)

// EffectExpr is the variant node of a lifted action effect, prior to
// normalization by translate.NormalizeEffect.
type EffectExpr struct {
	Kind EffectExprKind

	Positive bool // EffectLiteral
	AtomIdx  int  // EffectLiteral

	ChildrenStart, ChildrenLen int // EffectAnd: EffectExpr indices

	ParamsStart, ParamsLen int // EffectForall: Variable indices
	Body                   int // EffectForall: EffectExpr index

	Condition int // EffectWhen: Condition index
	Effect    int // EffectWhen: EffectExpr index
}

func (r *Repository) InternEffectLiteral(positive bool, atomIdx int) int {
	return r.EffectExprs.Intern(EffectExpr{Kind: EffectLiteral, Positive: positive, AtomIdx: atomIdx})
}

func (r *Repository) InternEffectAnd(childIdxs []int) int {
	start, length := r.children.Put(sortedInts(childIdxs))
	return r.EffectExprs.Intern(EffectExpr{Kind: EffectAnd, ChildrenStart: start, ChildrenLen: length})
}

func (r *Repository) InternEffectForall(paramIdxs []int, body int) int {
	start, length := r.children.Put(paramIdxs)
	return r.EffectExprs.Intern(EffectExpr{Kind: EffectForall, ParamsStart: start, ParamsLen: length, Body: body})
}

func (r *Repository) InternEffectWhen(condition, effect int) int {
	return r.EffectExprs.Intern(EffectExpr{Kind: EffectWhen, Condition: condition, Effect: effect})
}

func (r *Repository) EffectExprChildren(e EffectExpr) []int {
	return r.children.Get(e.ChildrenStart, e.ChildrenLen)
}

func (r *Repository) EffectExprParams(e EffectExpr) []int {
	return r.children.Get(e.ParamsStart, e.ParamsLen)
}
