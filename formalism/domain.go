package formalism

// DomainSpec carries a Domain's variable-length fields prior to interning.
type DomainSpec struct {
	Name                string
	RequirementsIdx     int
	TypeIdxs            []int // Object indices standing for type names, pre remove-types
	StaticPredicateIdxs  []int
	FluentPredicateIdxs  []int
	DerivedPredicateIdxs []int
	FunctionSkeletonIdxs []int
	ConstantIdxs         []int
	ActionIdxs           []int
	AxiomIdxs            []int
}

func (r *Repository) InternDomain(spec DomainSpec) int {
	tStart, tLen := r.children.Put(spec.TypeIdxs)
	spStart, spLen := r.children.Put(sortedInts(spec.StaticPredicateIdxs))
	fpStart, fpLen := r.children.Put(sortedInts(spec.FluentPredicateIdxs))
	dpStart, dpLen := r.children.Put(sortedInts(spec.DerivedPredicateIdxs))
	fsStart, fsLen := r.children.Put(sortedInts(spec.FunctionSkeletonIdxs))
	cStart, cLen := r.children.Put(sortedInts(spec.ConstantIdxs))
	aStart, aLen := r.children.Put(spec.ActionIdxs)
	axStart, axLen := r.children.Put(spec.AxiomIdxs)
	return r.Domains.Intern(Domain{
		Name:                   spec.Name,
		RequirementsIdx:        spec.RequirementsIdx,
		TypesStart:             tStart, TypesLen: tLen,
		StaticPredicatesStart:  spStart, StaticPredicatesLen: spLen,
		FluentPredicatesStart:  fpStart, FluentPredicatesLen: fpLen,
		DerivedPredicatesStart: dpStart, DerivedPredicatesLen: dpLen,
		FunctionSkeletonsStart: fsStart, FunctionSkeletonsLen: fsLen,
		ConstantsStart:         cStart, ConstantsLen: cLen,
		ActionsStart:           aStart, ActionsLen: aLen,
		AxiomsStart:            axStart, AxiomsLen: axLen,
	})
}

func (r *Repository) DomainConstants(d Domain) []int {
	return r.children.Get(d.ConstantsStart, d.ConstantsLen)
}
func (r *Repository) DomainActions(d Domain) []int { return r.children.Get(d.ActionsStart, d.ActionsLen) }
func (r *Repository) DomainAxioms(d Domain) []int  { return r.children.Get(d.AxiomsStart, d.AxiomsLen) }
func (r *Repository) DomainStaticPredicates(d Domain) []int {
	return r.children.Get(d.StaticPredicatesStart, d.StaticPredicatesLen)
}
func (r *Repository) DomainFluentPredicates(d Domain) []int {
	return r.children.Get(d.FluentPredicatesStart, d.FluentPredicatesLen)
}
func (r *Repository) DomainDerivedPredicates(d Domain) []int {
	return r.children.Get(d.DerivedPredicatesStart, d.DerivedPredicatesLen)
}
func (r *Repository) DomainFunctionSkeletons(d Domain) []int {
	return r.children.Get(d.FunctionSkeletonsStart, d.FunctionSkeletonsLen)
}
func (r *Repository) DomainTypes(d Domain) []int { return r.children.Get(d.TypesStart, d.TypesLen) }

// ProblemSpec carries a Problem's variable-length fields prior to interning.
// Initial-state literals and the goal are canonicalized (sorted) on intern,
// per §3's "initial/goal literal lists ... sorted by child index".
type ProblemSpec struct {
	Name               string
	DomainIdx          int
	ObjectIdxs         []int
	InitialLiteralIdxs []int // GroundLiteral indices
	InitialValueIdxs   []int // NumericFluent indices
	GoalIdxs           []int // GroundLiteral indices
	MetricIdx          int   // -1 if absent
}

func (r *Repository) InternProblem(spec ProblemSpec) int {
	oStart, oLen := r.children.Put(spec.ObjectIdxs)
	ilStart, ilLen := r.children.Put(sortedInts(spec.InitialLiteralIdxs))
	ivStart, ivLen := r.children.Put(sortedInts(spec.InitialValueIdxs))
	gStart, gLen := r.children.Put(sortedInts(spec.GoalIdxs))
	return r.Problems.Intern(Problem{
		Name:                 spec.Name,
		DomainIdx:            spec.DomainIdx,
		ObjectsStart:         oStart, ObjectsLen: oLen,
		InitialLiteralsStart: ilStart, InitialLiteralsLen: ilLen,
		InitialValuesStart:   ivStart, InitialValuesLen: ivLen,
		GoalStart:            gStart, GoalLen: gLen,
		MetricIdx:            spec.MetricIdx,
	})
}

func (r *Repository) ProblemObjects(p Problem) []int {
	return r.children.Get(p.ObjectsStart, p.ObjectsLen)
}
func (r *Repository) ProblemInitialLiterals(p Problem) []int {
	return r.children.Get(p.InitialLiteralsStart, p.InitialLiteralsLen)
}
func (r *Repository) ProblemInitialValues(p Problem) []int {
	return r.children.Get(p.InitialValuesStart, p.InitialValuesLen)
}
func (r *Repository) ProblemGoal(p Problem) []int { return r.children.Get(p.GoalStart, p.GoalLen) }
