package builder_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/symlath/builder"
	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/number"
	"github.com/stretchr/testify/require"
)

func TestBuilder_InterningSharesNodes(t *testing.T) {
	b := builder.New()
	x1 := b.Variable("x")
	x2 := b.Variable("x")
	require.Same(t, x1, x2)

	s1 := b.Add(x1, b.Int(1))
	s2 := b.Add(x2, b.Int(1))
	require.Same(t, s1, s2)
	require.True(t, expr.FastEq(s1, s2))
}

func TestBuilder_AddIdentities(t *testing.T) {
	b := builder.New()
	x := b.Variable("x")

	// x + 0 and 0 + x return the handle for x itself.
	require.Same(t, x, b.Add(x, b.Int(0)))
	require.Same(t, x, b.Add(b.Int(0), x))

	// x + x collapses to 2 * x.
	require.Equal(t, "2 * x", b.Add(x, x).String())
}

func TestBuilder_MultiplyIdentities(t *testing.T) {
	b := builder.New()
	x := b.Variable("x")

	require.Same(t, x, b.Multiply(x, b.Int(1)))
	require.Same(t, x, b.Multiply(b.Int(1), x))
	require.Equal(t, "0", b.Multiply(x, b.Int(0)).String())
	require.Equal(t, "0", b.Multiply(b.Int(0), x).String())
	require.Equal(t, "-x", b.Multiply(b.Int(-1), x).String())
}

func TestBuilder_SubtractIdentities(t *testing.T) {
	b := builder.New()
	x := b.Variable("x")

	require.Same(t, x, b.Subtract(x, b.Int(0)))
	require.Equal(t, "0", b.Subtract(x, x).String())
	require.Equal(t, "-x", b.Subtract(b.Int(0), x).String())
}

func TestBuilder_DivideIdentities(t *testing.T) {
	b := builder.New()
	x := b.Variable("x")

	require.Same(t, x, b.Divide(x, b.Int(1)))
	require.Equal(t, "1", b.Divide(x, x).String())

	// 0/0 must not collapse to 1.
	zz := b.Divide(b.Int(0), b.Int(0))
	require.Equal(t, expr.NodeBinary, zz.Expr().Kind())

	// x/0 stays a node; resolution is not construction's business.
	require.Equal(t, "x / 0", b.Divide(x, b.Int(0)).String())
}

func TestBuilder_PowerIdentities(t *testing.T) {
	b := builder.New()
	x := b.Variable("x")

	require.Equal(t, "1", b.Power(x, b.Int(0)).String())
	require.Same(t, x, b.Power(x, b.Int(1)))
	require.Equal(t, "1", b.Power(b.Int(1), x).String())
	require.Equal(t, "x ^ 2", b.Power(x, b.Int(2)).String())
}

func TestBuilder_NegateAndAbs(t *testing.T) {
	b := builder.New()
	x := b.Variable("x")

	neg := b.Negate(x)
	require.Same(t, x, b.Negate(neg))
	require.Same(t, x, b.Plus(x))

	// Literal negation folds.
	require.Equal(t, "-3", b.Negate(b.Int(3)).String())

	abs := b.Abs(x)
	require.Same(t, abs, b.Abs(abs))
	require.Equal(t, "5", b.Abs(b.Int(-5)).String())
}

func TestBuilder_NilSafety(t *testing.T) {
	b := builder.New()
	require.Nil(t, b.Add(nil, b.Int(1)))
	require.Nil(t, b.Negate(nil))
	require.Nil(t, b.Function("sin", nil))
}

func TestBuilder_FunctionsAndConstants(t *testing.T) {
	b := builder.New()
	x := b.Variable("x")
	require.Equal(t, "sin(x)", b.Sin(x).String())
	require.Equal(t, "sqrt(2)", b.Sqrt(b.Int(2)).String())
	require.Equal(t, "π", b.Pi().String())
	require.Same(t, b.Pi(), b.Pi())
	require.Equal(t, "1/3", b.Rational(2, 6).String())
	require.True(t, number.Equal(b.Float(0.5).Expr().Number(), number.Float(0.5)))
}

func TestPool_HitMissCounters(t *testing.T) {
	p := builder.NewPool()
	b := builder.NewWithPool(p)

	before := p.Stats()
	lhs := b.Add(b.Variable("u"), b.Int(7))
	rhs := b.Add(b.Variable("u"), b.Int(7))
	require.Same(t, lhs, rhs)

	after := p.Stats()
	require.Greater(t, after.CacheHits, before.CacheHits)
	require.Greater(t, after.CacheMisses, before.CacheMisses)
}

func TestPool_CleanupEvictsOrphans(t *testing.T) {
	p := builder.NewPool()
	b := builder.NewWithPool(p)

	tmp := b.Add(b.Variable("orphan"), b.Int(9))
	n := p.Len()
	require.Greater(t, n, 0)

	// Drop the only outside references, then clean.
	tmp.Expr().Left().Release()  // the Variable handle we made inline
	tmp.Expr().Right().Release() // the Int handle we made inline
	tmp.Release()
	evicted := p.Cleanup()
	require.Greater(t, evicted, 0)
	require.Less(t, p.Len(), n)
}

func TestPool_SharingDisabled(t *testing.T) {
	b := builder.New(builder.WithSharingDisabled())
	a := b.Variable("x")
	c := b.Variable("x")
	require.NotSame(t, a, c)
	require.True(t, expr.Equal(a, c))
}

func TestPool_MakeMutCountsCowTriggers(t *testing.T) {
	p := builder.NewPool()
	b := builder.NewWithPool(p)

	n := b.Negate(b.Variable("q"))
	n.Clone() // alias forces a copy
	m := p.MakeMut(n)
	require.NotSame(t, n, m)
	require.Equal(t, uint64(1), p.Stats().CowTriggers)

	// Unique handles trigger no copy.
	require.Same(t, m, p.MakeMut(m))
	require.Equal(t, uint64(1), p.Stats().CowTriggers)
}

func TestMonitor_IntervalGate(t *testing.T) {
	p := builder.NewPool(builder.WithCleanupInterval(time.Hour))
	m := p.Monitor()

	// Interval has not elapsed since pool creation.
	require.Nil(t, m.Check())

	m.SetInterval(time.Nanosecond)
	time.Sleep(time.Millisecond)
	s := m.Check()
	require.NotNil(t, s)
	require.False(t, s.LastUpdated.IsZero())

	m.Disable()
	require.Nil(t, m.Check())
	m.Enable()
	require.True(t, m.Enabled())
}

func TestMonitor_StatsSnapshot(t *testing.T) {
	p := builder.NewPool(builder.WithMonitorDisabled())
	b := builder.NewWithPool(p)
	require.Nil(t, p.Monitor().Check())

	x := b.Variable("x")
	_ = b.Add(x, b.Int(1))
	s := p.Monitor().Stats()
	require.Greater(t, s.ActiveExpressions, 0)
	require.Greater(t, s.EstimatedMemoryUsage, 0)
}
