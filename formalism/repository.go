// Package formalism implements the §4.G PDDL repository: one hash-consing
// factory per symbolic entity kind, each assigning dense, never-reused
// indices to structurally-equal representatives, plus the canonicalization
// rules (§3, §4.G) that make structural equality well-defined in the first
// place — sorting commutative operand pairs and conjunction-like lists
// before they are ever hashed.
package formalism

import (
	"sort"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
)

// Repository owns every entity factory for one Domain/Problem pair (or,
// during translation, a Domain/Problem plus the translator's target
// entities — see package translate). It is not safe for concurrent
// mutation; see §5.
type Repository struct {
	// ID identifies this repository instance, so trace output and
	// EventHandler callbacks from concurrently-translated repositories
	// (§5) can be told apart.
	ID uuid.UUID

	children *ChildPool

	Requirements *Factory[Requirements]
	Variables    *Factory[Variable]
	Objects      *Factory[Object]
	Terms        *Factory[Term]

	Predicates  *Factory[Predicate]
	Atoms       *Factory[Atom]
	GroundAtoms *Factory[GroundAtom]
	Literals       *Factory[Literal]
	GroundLiterals *Factory[GroundLiteral]

	Conditions  *Factory[Condition]
	EffectExprs *Factory[EffectExpr]

	FunctionSkeletons *Factory[FunctionSkeleton]
	Functions         *Factory[Function]
	GroundFunctions   *Factory[GroundFunction]

	FunctionExpressions       *Factory[FunctionExpression]
	GroundFunctionExpressions *Factory[GroundFunctionExpression]
	NumericFluents            *Factory[NumericFluent]

	EffectsStrips      *Factory[EffectStrips]
	EffectsConditional *Factory[EffectConditional]

	Actions  *Factory[Action]
	Axioms   *Factory[Axiom]
	Metrics  *Factory[OptimizationMetric]
	Domains  *Factory[Domain]
	Problems *Factory[Problem]
}

// NewRepository returns an empty Repository with every factory initialized.
func NewRepository() *Repository {
	return &Repository{
		ID:       uuid.New(),
		children: newChildPool(),

		Requirements: newFactory[Requirements](),
		Variables:    newFactory[Variable](),
		Objects:      newFactory[Object](),
		Terms:        newFactory[Term](),

		Predicates:     newFactory[Predicate](),
		Atoms:          newFactory[Atom](),
		GroundAtoms:    newFactory[GroundAtom](),
		Literals:       newFactory[Literal](),
		GroundLiterals: newFactory[GroundLiteral](),

		Conditions:  newFactory[Condition](),
		EffectExprs: newFactory[EffectExpr](),

		FunctionSkeletons: newFactory[FunctionSkeleton](),
		Functions:         newFactory[Function](),
		GroundFunctions:   newFactory[GroundFunction](),

		FunctionExpressions:       newFactory[FunctionExpression](),
		GroundFunctionExpressions: newFactory[GroundFunctionExpression](),
		NumericFluents:            newFactory[NumericFluent](),

		EffectsStrips:      newFactory[EffectStrips](),
		EffectsConditional: newFactory[EffectConditional](),

		Actions:  newFactory[Action](),
		Axioms:   newFactory[Axiom](),
		Metrics:  newFactory[OptimizationMetric](),
		Domains:  newFactory[Domain](),
		Problems: newFactory[Problem](),
	}
}

// Children exposes the repository's shared child-index pool, so that
// package translate (which builds new entities out of lists computed from
// existing ones) can stash its own intermediate id lists the same way.
func (r *Repository) Children() *ChildPool { return r.children }

// Clone returns a deep copy of r with a fresh ID, so a destructive
// translator pass (RemoveTypes, PositiveNormalForm) can rewrite the copy
// in place while r itself stays intact for a caller that still needs the
// pre-translation repository.
func (r *Repository) Clone() (*Repository, error) {
	clone := &Repository{}
	if err := deepcopy.Copy(clone, r); err != nil {
		return nil, err
	}
	clone.ID = uuid.New()
	return clone, nil
}

// --- canonicalization (§3, §4.G) -------------------------------------------

// sortedInts returns a sorted copy of ids. The repository canonicalizes
// every conjunction-like field (conditions, effects, predicate/object
// lists, initial/goal literal lists) by child index before hashing, so
// insertion order never affects the resulting interned representative.
func sortedInts(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}

// --- terms ------------------------------------------------------------

func (r *Repository) InternVariable(name string) int {
	return r.Variables.Intern(Variable{Name: name})
}

func (r *Repository) InternObject(name string) int {
	return r.Objects.Intern(Object{Name: name})
}

func (r *Repository) InternVariableTerm(variableIdx int) int {
	return r.Terms.Intern(Term{Kind: TermVariable, Index: variableIdx})
}

func (r *Repository) InternObjectTerm(objectIdx int) int {
	return r.Terms.Intern(Term{Kind: TermObject, Index: objectIdx})
}

// --- predicates / atoms -------------------------------------------------

func (r *Repository) InternPredicate(kind PredicateKind, name string, arity int) int {
	return r.Predicates.Intern(Predicate{Kind: kind, Name: name, Arity: arity})
}

// InternAtom interns a predicate application over terms, in the order
// given: argument order is significant (predicates are not commutative),
// so unlike conjunctions this list is never sorted.
func (r *Repository) InternAtom(kind PredicateKind, predicateIdx int, termIdxs []int) int {
	start, length := r.children.Put(termIdxs)
	return r.Atoms.Intern(Atom{Kind: kind, PredicateIndex: predicateIdx, TermsStart: start, TermsLen: length})
}

func (r *Repository) InternGroundAtom(kind PredicateKind, predicateIdx int, objectIdxs []int) int {
	start, length := r.children.Put(objectIdxs)
	return r.GroundAtoms.Intern(GroundAtom{Kind: kind, PredicateIndex: predicateIdx, ObjectsStart: start, ObjectsLen: length})
}

func (r *Repository) AtomTerms(a Atom) []int { return r.children.Get(a.TermsStart, a.TermsLen) }
func (r *Repository) GroundAtomObjects(a GroundAtom) []int {
	return r.children.Get(a.ObjectsStart, a.ObjectsLen)
}

func (r *Repository) InternLiteral(positive bool, kind PredicateKind, atomIdx int) int {
	return r.Literals.Intern(Literal{Positive: positive, AtomKind: kind, AtomIdx: atomIdx})
}

func (r *Repository) InternGroundLiteral(positive bool, kind PredicateKind, groundAtomIdx int) int {
	return r.GroundLiterals.Intern(GroundLiteral{Positive: positive, AtomKind: kind, GroundAtomIdx: groundAtomIdx})
}

// InternLiteralList canonicalizes a condition/effect literal bundle by
// sorting its member indices before storing them, per §3/§4.G.
func (r *Repository) InternLiteralList(literalIdxs []int) (start, length int) {
	return r.children.Put(sortedInts(literalIdxs))
}

func (r *Repository) InternGroundLiteralList(literalIdxs []int) (start, length int) {
	return r.children.Put(sortedInts(literalIdxs))
}

func (r *Repository) LiteralList(start, length int) []int { return r.children.Get(start, length) }

// --- functions -----------------------------------------------------------

func (r *Repository) InternFunctionSkeleton(kind FunctionSkeletonKind, name string, arity int) int {
	return r.FunctionSkeletons.Intern(FunctionSkeleton{Kind: kind, Name: name, Arity: arity})
}

func (r *Repository) InternFunction(kind FunctionSkeletonKind, skeletonIdx int, termIdxs []int) int {
	start, length := r.children.Put(termIdxs)
	return r.Functions.Intern(Function{Kind: kind, SkeletonIndex: skeletonIdx, TermsStart: start, TermsLen: length})
}

func (r *Repository) InternGroundFunction(kind FunctionSkeletonKind, skeletonIdx int, objectIdxs []int) int {
	start, length := r.children.Put(objectIdxs)
	return r.GroundFunctions.Intern(GroundFunction{Kind: kind, SkeletonIndex: skeletonIdx, ObjectsStart: start, ObjectsLen: length})
}

// --- function expressions: operand canonicalization (§4.G) ---------------

// InternNumber interns a numeric literal leaf.
func (r *Repository) InternNumber(v float64) int {
	return r.FunctionExpressions.Intern(FunctionExpression{Kind: ExprNumber, Number: v})
}

// InternBinaryOp interns a two-operand expression, swapping operands to
// (min, max) by child index when op is commutative, so that e.g. (+ a b)
// and (+ b a) always intern to the same representative.
func (r *Repository) InternBinaryOp(op BinaryOpKind, left, right int) int {
	if op.Commutative() && right < left {
		left, right = right, left
	}
	return r.FunctionExpressions.Intern(FunctionExpression{Kind: ExprBinaryOp, BinOp: op, Left: left, Right: right})
}

// InternMultiOp interns a multi-operand commutative expression, sorting its
// operands by child index before hashing.
func (r *Repository) InternMultiOp(op BinaryOpKind, operandIdxs []int) int {
	ids := operandIdxs
	if op.Commutative() {
		ids = sortedInts(operandIdxs)
	}
	start, length := r.children.Put(ids)
	return r.FunctionExpressions.Intern(FunctionExpression{Kind: ExprMultiOp, MultiOp: op, OperandsStart: start, Len: length})
}

func (r *Repository) InternMinus(operand int) int {
	return r.FunctionExpressions.Intern(FunctionExpression{Kind: ExprMinus, Operand: operand})
}

func (r *Repository) InternFunctionRef(functionIdx int) int {
	return r.FunctionExpressions.Intern(FunctionExpression{Kind: ExprFunctionRef, FunctionIndex: functionIdx})
}

func (r *Repository) MultiOpOperands(e FunctionExpression) []int {
	return r.children.Get(e.OperandsStart, e.Len)
}

// --- numeric fluents, effects, actions, axioms, metric --------------------

func (r *Repository) InternNumericFluent(groundFunctionIdx int, value float64) int {
	return r.NumericFluents.Intern(NumericFluent{GroundFunctionIndex: groundFunctionIdx, Value: value})
}

func (r *Repository) InternEffectStrips(positive bool, atomIdx int) int {
	return r.EffectsStrips.Intern(EffectStrips{Positive: positive, AtomIdx: atomIdx})
}

func (r *Repository) InternEffectConditional(paramIdxs, conditionIdxs []int, positive bool, atomIdx int) int {
	pStart, pLen := r.children.Put(paramIdxs)
	cStart, cLen := r.children.Put(sortedInts(conditionIdxs))
	return r.EffectsConditional.Intern(EffectConditional{
		ParamsStart: pStart, ParamsLen: pLen,
		ConditionStart: cStart, ConditionLen: cLen,
		Positive: positive, AtomIdx: atomIdx,
	})
}

// ActionSpec carries the variable-length fields of an action under
// construction, before they are committed to the shared child pool and
// hash-consed.
type ActionSpec struct {
	Name                  string
	ParamIdxs             []int
	PreconditionIdxs      []int // Literal indices, sorted on intern
	StripsEffectIdxs      []int // EffectStrips indices
	ConditionalEffectIdxs []int // EffectConditional indices
	CostExprIndex         int   // -1 if absent
}

func (r *Repository) InternAction(spec ActionSpec) int {
	pStart, pLen := r.children.Put(spec.ParamIdxs)
	preStart, preLen := r.children.Put(sortedInts(spec.PreconditionIdxs))
	sStart, sLen := r.children.Put(sortedInts(spec.StripsEffectIdxs))
	cStart, cLen := r.children.Put(sortedInts(spec.ConditionalEffectIdxs))
	return r.Actions.Intern(Action{
		Name:                    spec.Name,
		ParamsStart:             pStart, ParamsLen: pLen,
		PreconditionStart:       preStart, PreconditionLen: preLen,
		StripsEffectsStart:      sStart, StripsEffectsLen: sLen,
		ConditionalEffectsStart: cStart, ConditionalEffectsLen: cLen,
		CostExprIndex: spec.CostExprIndex,
	})
}

func (r *Repository) InternAxiom(paramIdxs []int, headAtomIdx int, bodyIdxs []int) int {
	pStart, pLen := r.children.Put(paramIdxs)
	bStart, bLen := r.children.Put(sortedInts(bodyIdxs))
	return r.Axioms.Intern(Axiom{ParamsStart: pStart, ParamsLen: pLen, HeadAtomIdx: headAtomIdx, BodyStart: bStart, BodyLen: bLen})
}

func (r *Repository) InternMetric(minimize bool, exprIdx int) int {
	return r.Metrics.Intern(OptimizationMetric{Minimize: minimize, ExprIndex: exprIdx})
}

// ActionParams, Precondition, StripsEffects, ConditionalEffects, AxiomParams
// and AxiomBody resolve an Action/Axiom's child ranges back to id slices.
func (r *Repository) ActionParams(a Action) []int    { return r.children.Get(a.ParamsStart, a.ParamsLen) }
func (r *Repository) Precondition(a Action) []int    { return r.children.Get(a.PreconditionStart, a.PreconditionLen) }
func (r *Repository) StripsEffects(a Action) []int    { return r.children.Get(a.StripsEffectsStart, a.StripsEffectsLen) }
func (r *Repository) ConditionalEffects(a Action) []int {
	return r.children.Get(a.ConditionalEffectsStart, a.ConditionalEffectsLen)
}
func (r *Repository) AxiomParams(a Axiom) []int { return r.children.Get(a.ParamsStart, a.ParamsLen) }
func (r *Repository) AxiomBody(a Axiom) []int   { return r.children.Get(a.BodyStart, a.BodyLen) }
