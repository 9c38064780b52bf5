package expr_test

import (
	"testing"

	"github.com/katalvlaran/symlath/expr"
	"github.com/katalvlaran/symlath/number"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ExactArithmetic(t *testing.T) {
	x := expr.NewVariable("x")
	e := expr.NewBinary(expr.OpAdd,
		expr.NewBinary(expr.OpMul, x, num(3)),
		expr.NewNumber(number.Rational(1, 3)),
	)
	v, err := e.Evaluate(map[string]number.Value{"x": number.Rational(2, 9)})
	require.NoError(t, err)
	require.True(t, number.Equal(v, number.One()))
}

func TestEvaluate_UndefinedVariable(t *testing.T) {
	e := expr.NewBinary(expr.OpAdd, expr.NewVariable("x"), num(1))
	_, err := e.Evaluate(nil)
	require.ErrorIs(t, err, expr.ErrUndefinedVariable)
	require.Contains(t, err.Error(), "x")

	// Binding it and retrying recovers.
	v, err := e.Evaluate(map[string]number.Value{"x": number.Int(4)})
	require.NoError(t, err)
	require.True(t, number.Equal(v, number.Int(5)))
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	e := expr.NewBinary(expr.OpDiv, num(5), num(0))
	_, err := e.Evaluate(nil)
	require.ErrorIs(t, err, number.ErrDivisionByZero)
}

func TestEvaluate_DomainErrors(t *testing.T) {
	_, err := expr.NewFunction("sqrt", num(-4)).Evaluate(nil)
	require.ErrorIs(t, err, expr.ErrDomain)

	_, err = expr.NewBinary(expr.OpPow, num(0), num(-1)).Evaluate(nil)
	require.ErrorIs(t, err, expr.ErrDomain)
}

func TestEvaluate_FloatOverflow(t *testing.T) {
	big := expr.NewNumber(number.Float(1e308))
	_, err := expr.NewBinary(expr.OpMul, big, big).Evaluate(nil)
	require.ErrorIs(t, err, expr.ErrOverflow)
}

func TestEvaluate_SqrtExactAndSymbolic(t *testing.T) {
	v, err := expr.NewFunction("sqrt", num(4)).Evaluate(nil)
	require.NoError(t, err)
	require.True(t, number.Equal(v, number.Two()))
	require.Equal(t, "2", v.String())

	v, err = expr.NewFunction("sqrt", num(2)).Evaluate(nil)
	require.NoError(t, err)
	require.Equal(t, number.KindSymbolic, v.Kind())
	require.Equal(t, "sqrt(2)", v.String())
}

func TestEvaluate_TrigStaysSymbolic(t *testing.T) {
	v, err := expr.NewFunction("sin", num(1)).Evaluate(nil)
	require.NoError(t, err)
	require.Equal(t, number.KindSymbolic, v.Kind())
}

func TestEvaluate_Constants(t *testing.T) {
	v, err := expr.NewConstant(expr.ConstI).Evaluate(nil)
	require.NoError(t, err)
	require.True(t, number.Equal(v, number.ImaginaryUnit()))

	v, err = expr.NewConstant(expr.ConstPi).Evaluate(nil)
	require.NoError(t, err)
	require.Equal(t, number.KindSymbolic, v.Kind())
}

func TestEvaluate_UnaryOps(t *testing.T) {
	v, err := expr.NewUnary(expr.UnaryNeg, num(3)).Evaluate(nil)
	require.NoError(t, err)
	require.True(t, number.Equal(v, number.Int(-3)))

	v, err = expr.NewUnary(expr.UnaryAbs, num(-3)).Evaluate(nil)
	require.NoError(t, err)
	require.True(t, number.Equal(v, number.Int(3)))

	v, err = expr.NewUnary(expr.UnaryPlus, num(7)).Evaluate(nil)
	require.NoError(t, err)
	require.True(t, number.Equal(v, number.Int(7)))
}
