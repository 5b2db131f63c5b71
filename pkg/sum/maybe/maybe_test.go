package maybe

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/ib-77/sumtype/pkg/sum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func identity[T any](v T) T { return v }

func samples() []Maybe[int] {
	return []Maybe[int]{Just(7), Just(-3), Just(0), Nothing[int]()}
}

func TestJustAndNothing(t *testing.T) {
	t.Parallel()

	j := Just(5)
	v, ok := j.Get()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.True(t, j.IsJust())
	assert.False(t, j.IsNothing())

	n := Nothing[int]()
	_, ok = n.Get()
	assert.False(t, ok)
	assert.True(t, n.IsNothing())

	var zero Maybe[int]
	assert.True(t, zero.Equal(n))
}

func TestJust_PanicsOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Just[*int](nil) })
	assert.Panics(t, func() { Just[error](nil) })
	assert.NotPanics(t, func() { Just([]int(nil)) })
}

func TestCoercions(t *testing.T) {
	t.Parallel()

	assert.True(t, FromUnit[string](sum.None).IsNothing())

	x := 4
	assert.True(t, FromPointer(&x).Equal(Just(4)))
	assert.True(t, FromPointer[int](nil).IsNothing())

	m := map[string]int{"a": 1}
	v, ok := m["a"]
	assert.True(t, Of(v, ok).Equal(Just(1)))
	v, ok = m["b"]
	assert.True(t, Of(v, ok).IsNothing())
	assert.True(t, Of[*int](nil, true).IsNothing())
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.True(t, Map(Just(2), strconv.Itoa).Equal(Just("2")))

	called := false
	out := Map(Nothing[int](), func(v int) string {
		called = true
		return strconv.Itoa(v)
	})
	assert.True(t, out.IsNothing())
	assert.False(t, called)
}

func TestFunctorLaws(t *testing.T) {
	t.Parallel()

	f := func(v int) int { return v * 2 }
	g := func(v int) string { return fmt.Sprint(v + 1) }

	for _, x := range samples() {
		assert.True(t, Map(x, identity[int]).Equal(x), "identity for %v", x)
		assert.True(t, Map(Map(x, f), g).Equal(Map(x, func(v int) string { return g(f(v)) })),
			"composition for %v", x)
	}
}

func TestMonadLaws(t *testing.T) {
	t.Parallel()

	half := func(v int) Maybe[int] {
		if v%2 != 0 {
			return Nothing[int]()
		}
		return Just(v / 2)
	}
	positive := func(v int) Maybe[int] { return Just(v).Filter(func(v int) bool { return v > 0 }) }

	for _, v := range []int{8, 3, 0, -4} {
		assert.True(t, Bind(Just(v), half).Equal(half(v)), "left identity for %d", v)
	}

	for _, x := range samples() {
		assert.True(t, Bind(x, Just[int]).Equal(x), "right identity for %v", x)

		left := Bind(Bind(x, half), positive)
		right := Bind(x, func(v int) Maybe[int] { return Bind(half(v), positive) })
		assert.True(t, left.Equal(right), "associativity for %v", x)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }

	assert.True(t, Just(5).Filter(positive).Equal(Just(5)))
	assert.True(t, Just(-1).Filter(positive).Equal(Nothing[int]()))
	assert.True(t, Nothing[int]().Filter(positive).IsNothing())
}

func TestCombine(t *testing.T) {
	t.Parallel()

	assert.True(t, Combine(Just(1), Just("next")).Equal(Just("next")))
	assert.True(t, Combine(Just(1), Nothing[string]()).IsNothing())
	assert.True(t, Combine(Nothing[int](), Just("next")).IsNothing())
}

func TestReduce(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Nothing[int]().Reduce(42))
	assert.Equal(t, 7, Just(7).Reduce(42))

	calls := 0
	alt := func() int {
		calls++
		return 42
	}
	assert.Equal(t, 7, Just(7).ReduceFunc(alt))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 42, Nothing[int]().ReduceFunc(alt))
	assert.Equal(t, 1, calls)
}

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", Fold(Just(7), "none", strconv.Itoa))
	assert.Equal(t, "none", Fold(Nothing[int](), "none", strconv.Itoa))
	assert.Equal(t, "lazy", FoldFunc(Nothing[int](), func() string { return "lazy" }, strconv.Itoa))
	assert.Equal(t, "3", FoldFunc(Just(3), func() string { panic("not called") }, strconv.Itoa))
}

func TestOfType(t *testing.T) {
	t.Parallel()

	var s fmt.Stringer = sum.None
	assert.True(t, OfType[string](Just[any]("x")).Equal(Just("x")))
	assert.True(t, OfType[string](Just[any](1)).IsNothing())
	assert.True(t, OfType[int](Nothing[any]()).IsNothing())
	assert.True(t, OfType[sum.Unit](Just(s)).Equal(Just(sum.None)))
}

func TestEnumeration(t *testing.T) {
	t.Parallel()

	j := Just(9)
	assert.Equal(t, []int{9}, slices.Collect(j.All()))
	// restartable
	assert.Equal(t, []int{9}, slices.Collect(j.All()))
	assert.Equal(t, []int{9}, j.Slice())

	n := Nothing[int]()
	assert.Empty(t, slices.Collect(n.All()))
	assert.Empty(t, n.Slice())

	total := 0
	for v := range j.All() {
		total += v
	}
	assert.Equal(t, 9, total)
}

func TestEquality(t *testing.T) {
	t.Parallel()

	values := []Maybe[[]int]{Just([]int{1, 2}), Just([]int{1, 2}), Just([]int{3}), Nothing[[]int]()}

	for _, a := range values {
		assert.True(t, a.Equal(a), "reflexive %v", a)
		for _, b := range values {
			assert.Equal(t, a.Equal(b), b.Equal(a), "symmetric %v %v", a, b)
			if a.Equal(b) {
				assert.Equal(t, a.Hash(), b.Hash(), "hash %v %v", a, b)
			}
			for _, c := range values {
				if a.Equal(b) && b.Equal(c) {
					assert.True(t, a.Equal(c), "transitive %v %v %v", a, b, c)
				}
			}
		}
	}

	assert.Equal(t, uint64(0), Nothing[string]().Hash())
	assert.Equal(t, sum.Hash(11), Just(11).Hash())
	assert.False(t, Just(0).Equal(Nothing[int]()))
}

func TestNestedMaybeEquality(t *testing.T) {
	t.Parallel()

	a := Just(Just(1))
	b := Just(Just(1))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(Just(Nothing[int]())))
}

func TestAbsentMarker(t *testing.T) {
	t.Parallel()

	assert.True(t, sum.None.Equal(Nothing[int]()))
	assert.True(t, sum.None.Equal(Nothing[string]()))
	assert.True(t, sum.None.Equal(Nothing[[]byte]()))
	assert.False(t, sum.None.Equal(Just(1)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Just<int>(5)", Just(5).String())
	assert.Equal(t, "Nothing<int>", Nothing[int]().String())
	assert.Equal(t, "Just<string>(hi)", fmt.Sprint(Just("hi")))
}

func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	shared := Just(21)
	nothing := Nothing[int]()

	var g errgroup.Group
	for range 32 {
		g.Go(func() error {
			for range 100 {
				doubled := Map(shared, func(v int) int { return v * 2 })
				if !doubled.Equal(Just(42)) || !sum.None.Equal(nothing) {
					return fmt.Errorf("unexpected %v", doubled)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestNaNPayload(t *testing.T) {
	t.Parallel()

	x := Just(math.NaN())
	assert.True(t, x.Equal(x))
	assert.True(t, Map(x, identity[float64]).Equal(x))
	assert.Equal(t, x.Hash(), Map(x, identity[float64]).Hash())
	assert.False(t, x.Equal(Just(1.0)))
}

func TestHash_EqualMethodPayloadsShareTypeHash(t *testing.T) {
	t.Parallel()

	noon := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sameInstant := Just(noon.In(time.FixedZone("plus2", 7200)))

	assert.True(t, Just(noon).Equal(sameInstant))
	assert.Equal(t, Just(noon).Hash(), sameInstant.Hash())
	assert.Equal(t, Just(noon).Hash(), Just(noon.Add(time.Hour)).Hash())
}
