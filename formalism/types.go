package formalism

// Requirements is the bitset of PDDL requirement flags a domain declares
// (:typing, :negative-preconditions, and so on). It gates which translators
// in package translate are obligatory versus no-ops.
type Requirements struct {
	Flags uint32
}

const (
	ReqTyping Requirements = 1 << iota
	ReqNegativePreconditions
	ReqDisjunctivePreconditions
	ReqEquality
	ReqExistentialPreconditions
	ReqUniversalPreconditions
	ReqConditionalEffects
	ReqNumericFluents
	ReqDerivedPredicates
)

func (r Requirements) Has(flag Requirements) bool { return r.Flags&flag.Flags != 0 }

// Variable is a PDDL parameter variable, e.g. ?x.
type Variable struct {
	Name string
}

// Object is a PDDL constant or problem object.
type Object struct {
	Name string
}

// TermKind discriminates the two cases of the Term variant.
type TermKind uint8

const (
	TermVariable TermKind = iota
	TermObject
)

// Term is a variant over Variable|Object, as in §3.
type Term struct {
	Kind  TermKind
	Index int // into Repository.variables or Repository.objects, by Kind
}

// PredicateKind discriminates the three predicate families the symbolic
// front-end distinguishes: those defined only by the initial state, those
// that action effects may change, and those defined entirely by axioms.
//
// The source models this as Predicate<P> with a type-level P; here it is a
// runtime tag on an otherwise identical struct, which is the "tagged
// enum/sum-type replacing virtual dispatch" adaptation named in §9 — a
// generic Go type parameterized per P would force three separate Factory
// instantiations for what is, structurally, one family of values that
// merely needs to avoid being confused with each other during interning.
type PredicateKind uint8

const (
	PredicateStatic PredicateKind = iota
	PredicateFluent
	PredicateDerived
)

// Predicate<P> (§3).
type Predicate struct {
	Kind  PredicateKind
	Name  string
	Arity int
}

// Atom<P>: a predicate applied to terms (possibly variables).
type Atom struct {
	Kind           PredicateKind
	PredicateIndex int
	TermsStart     int
	TermsLen       int
}

// GroundAtom<P>: a predicate applied to objects only.
type GroundAtom struct {
	Kind           PredicateKind
	PredicateIndex int
	ObjectsStart   int
	ObjectsLen     int
}

// Literal<P>: a (possibly negated) Atom.
type Literal struct {
	Positive bool
	AtomKind PredicateKind
	AtomIdx  int
}

// GroundLiteral<P>: a (possibly negated) GroundAtom.
type GroundLiteral struct {
	Positive      bool
	AtomKind      PredicateKind
	GroundAtomIdx int
}

// FunctionSkeletonKind discriminates the numeric-fluent families: those
// fixed by the initial state, those action effects may change, and
// auxiliary ones used only inside an optimization metric.
type FunctionSkeletonKind uint8

const (
	FunctionStatic FunctionSkeletonKind = iota
	FunctionFluent
	FunctionAuxiliary
)

// FunctionSkeleton<F> (§3).
type FunctionSkeleton struct {
	Kind  FunctionSkeletonKind
	Name  string
	Arity int
}

// Function<F>: a function skeleton applied to terms.
type Function struct {
	Kind           FunctionSkeletonKind
	SkeletonIndex  int
	TermsStart     int
	TermsLen       int
}

// GroundFunction<F>: a function skeleton applied to objects.
type GroundFunction struct {
	Kind          FunctionSkeletonKind
	SkeletonIndex int
	ObjectsStart  int
	ObjectsLen    int
}

// FuncExprKind discriminates the FunctionExpression variant's cases.
type FuncExprKind uint8

const (
	ExprNumber FuncExprKind = iota
	ExprBinaryOp
	ExprMultiOp
	ExprMinus
	ExprFunctionRef
)

// BinaryOpKind is the commutative-or-not operator tag for BinaryOp/MultiOp.
type BinaryOpKind uint8

const (
	OpAdd BinaryOpKind = iota
	OpSub
	OpMul
	OpDiv
)

// Commutative reports whether operand order is insignificant, which is
// exactly the condition under which the repository canonicalizes operand
// order per §4.G.
func (k BinaryOpKind) Commutative() bool { return k == OpAdd || k == OpMul }

// FunctionExpression is the variant Number | BinaryOp | MultiOp | Minus |
// FunctionRef (§3). Exactly the fields relevant to Kind are meaningful.
type FunctionExpression struct {
	Kind FuncExprKind

	Number float64 // ExprNumber

	BinOp       BinaryOpKind // ExprBinaryOp
	Left, Right int          // indices into the same FunctionExpression factory

	MultiOp            BinaryOpKind // ExprMultiOp
	OperandsStart, Len int          // indices into the same factory

	Operand int // ExprMinus: index into the same factory

	FunctionIndex int // ExprFunctionRef: into Repository.functions
}

// GroundFunctionExpression mirrors FunctionExpression but over ground
// functions; it is a distinct factory so lifted and ground expression trees
// never collide despite sharing field shapes.
type GroundFunctionExpression struct {
	Kind FuncExprKind

	Number float64

	BinOp       BinaryOpKind
	Left, Right int

	MultiOp            BinaryOpKind
	OperandsStart, Len int

	Operand int

	GroundFunctionIndex int
}

// NumericFluent records one ground function's initial numeric value.
type NumericFluent struct {
	GroundFunctionIndex int
	Value               float64
}

// EffectStrips is an unconditional simple effect: add or delete one ground
// atom. Lifted action bodies reference the lifted Atom; grounding produces
// the ground-level counterpart consumed by the search layer (§6).
type EffectStrips struct {
	Positive bool
	AtomIdx  int
}

// EffectConditional is a (possibly universally quantified, possibly
// conditional) simple effect, the homogeneous shape effect-normal-form
// (§4.I.4) rewrites every action effect into.
type EffectConditional struct {
	ParamsStart, ParamsLen       int // quantified Variable indices
	ConditionStart, ConditionLen int // guarding Literal indices
	Positive                     bool
	AtomIdx                      int
}

// Action (§3).
type Action struct {
	Name                                            string
	ParamsStart, ParamsLen                          int // Variable indices
	PreconditionStart, PreconditionLen              int // Literal indices
	StripsEffectsStart, StripsEffectsLen             int // EffectStrips indices
	ConditionalEffectsStart, ConditionalEffectsLen   int // EffectConditional indices
	CostExprIndex                                    int // index into FunctionExpression factory, -1 if absent
}

// Axiom (§3 / GLOSSARY: "A rule that sets a derived literal true when its
// body holds").
type Axiom struct {
	ParamsStart, ParamsLen int // Variable indices
	HeadAtomIdx            int // derived-predicate Atom
	BodyStart, BodyLen     int // condition Literal indices
}

// OptimizationMetric (§3).
type OptimizationMetric struct {
	Minimize  bool
	ExprIndex int
}

// Domain (§3).
type Domain struct {
	Name                                     string
	RequirementsIdx                          int
	TypesStart, TypesLen                     int // pre remove-types: Object indices standing for type names
	StaticPredicatesStart, StaticPredicatesLen     int
	FluentPredicatesStart, FluentPredicatesLen     int
	DerivedPredicatesStart, DerivedPredicatesLen   int
	FunctionSkeletonsStart, FunctionSkeletonsLen   int
	ConstantsStart, ConstantsLen              int // Object indices
	ActionsStart, ActionsLen                  int
	AxiomsStart, AxiomsLen                    int
}

// Problem (§3).
type Problem struct {
	Name                                     string
	DomainIdx                                int
	ObjectsStart, ObjectsLen                 int
	InitialLiteralsStart, InitialLiteralsLen int // GroundLiteral indices, canonically sorted
	InitialValuesStart, InitialValuesLen     int // NumericFluent indices
	GoalStart, GoalLen                       int // GroundLiteral indices, canonically sorted
	MetricIdx                                int // -1 if absent
}
