package formalism_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/formalism"
)

func TestStructuralEqualityImpliesSameIndex(t *testing.T) {
	r := formalism.NewRepository()

	p1 := r.InternPredicate(formalism.PredicateStatic, "on", 2)
	p2 := r.InternPredicate(formalism.PredicateStatic, "on", 2)
	require.Equal(t, p1, p2)

	o1 := r.InternObject("a")
	o2 := r.InternObject("b")
	t1 := r.InternObjectTerm(o1)
	t2 := r.InternObjectTerm(o2)

	a1 := r.InternGroundAtom(formalism.PredicateStatic, p1, []int{o1, o2})
	a2 := r.InternGroundAtom(formalism.PredicateStatic, p1, []int{o1, o2})
	require.Equal(t, a1, a2)

	a3 := r.InternGroundAtom(formalism.PredicateStatic, p1, []int{o2, o1})
	require.NotEqual(t, a1, a3, "argument order is significant for a non-commutative predicate")

	_ = t1
	_ = t2
}

func TestCommutativeBinaryOpCanonicalizesOperandOrder(t *testing.T) {
	r := formalism.NewRepository()
	n1 := r.InternNumber(1)
	n2 := r.InternNumber(2)

	e1 := r.InternBinaryOp(formalism.OpAdd, n1, n2)
	e2 := r.InternBinaryOp(formalism.OpAdd, n2, n1)
	require.Equal(t, e1, e2)

	sub1 := r.InternBinaryOp(formalism.OpSub, n1, n2)
	sub2 := r.InternBinaryOp(formalism.OpSub, n2, n1)
	require.NotEqual(t, sub1, sub2, "subtraction is not commutative")
}

func TestMultiOpSortsOperandsWhenCommutative(t *testing.T) {
	r := formalism.NewRepository()
	n1 := r.InternNumber(1)
	n2 := r.InternNumber(2)
	n3 := r.InternNumber(3)

	e1 := r.InternMultiOp(formalism.OpMul, []int{n3, n1, n2})
	e2 := r.InternMultiOp(formalism.OpMul, []int{n1, n2, n3})
	require.Equal(t, e1, e2)
}

func TestLiteralListIsSortedOnIntern(t *testing.T) {
	r := formalism.NewRepository()
	p := r.InternPredicate(formalism.PredicateStatic, "p", 0)
	a := r.InternAtom(formalism.PredicateStatic, p, nil)
	l1 := r.InternLiteral(true, formalism.PredicateStatic, a)
	l2 := r.InternLiteral(false, formalism.PredicateStatic, a)

	s1, n1 := r.InternLiteralList([]int{l2, l1})
	s2, n2 := r.InternLiteralList([]int{l1, l2})
	require.Equal(t, r.LiteralList(s1, n1), r.LiteralList(s2, n2))
}

func TestCloneCopiesInternedEntitiesUnderFreshID(t *testing.T) {
	r := formalism.NewRepository()
	p := r.InternPredicate(formalism.PredicateStatic, "on", 1)
	a := r.InternAtom(formalism.PredicateStatic, p, []int{r.InternObjectTerm(r.InternObject("a"))})
	l := r.InternLiteral(true, formalism.PredicateStatic, a)

	clone, err := r.Clone()
	require.NoError(t, err)
	require.NotEqual(t, r.ID, clone.ID)

	cloneP := clone.InternPredicate(formalism.PredicateStatic, "on", 1)
	require.Equal(t, p, cloneP)
	cloneA := clone.InternAtom(formalism.PredicateStatic, cloneP, []int{clone.InternObjectTerm(clone.InternObject("a"))})
	require.Equal(t, a, cloneA)
	cloneL := clone.InternLiteral(true, formalism.PredicateStatic, cloneA)
	require.Equal(t, l, cloneL)
}

func TestChildPoolRoundTrip(t *testing.T) {
	r := formalism.NewRepository()
	pool := r.Children()
	start, length := pool.Put([]int{5, 6, 7})
	require.Equal(t, []int{5, 6, 7}, pool.Get(start, length))

	start2, length2 := pool.Put(nil)
	require.Equal(t, 0, length2)
	require.Nil(t, pool.Get(start2, length2))
}
