// Package number: canonical textual rendering.
package number

import (
	"fmt"
	"strconv"
)

// String renders v in its canonical form: integers without a decimal
// point, rationals as num/den, complex values as a+bi with the unit
// written as i or -i when the coefficient is ±1.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return v.i.String()
	case KindRational:
		return v.r.Num().String() + "/" + v.r.Denom().String()
	case KindReal:
		return v.d.String()
	case KindComplex:
		return v.formatComplex()
	case KindFloat:
		return formatFloat(v.f)
	case KindSymbolic:
		return v.s
	default:
		return "?"
	}
}

func (v Value) formatComplex() string {
	im := imaginaryPart(*v.im)
	if v.re.IsZero() {
		return im
	}
	if im[0] == '-' {
		return v.re.String() + im
	}
	return v.re.String() + "+" + im
}

// imaginaryPart renders the imaginary component: i, -i, or the
// coefficient followed by i.
func imaginaryPart(im Value) string {
	if im.IsOne() {
		return "i"
	}
	if Neg(im).IsOne() {
		return "-i"
	}
	return im.String() + "i"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// GoString implements fmt.GoStringer for debugging output.
func (v Value) GoString() string {
	return fmt.Sprintf("number.Value(%s %s)", v.kind, v.String())
}
