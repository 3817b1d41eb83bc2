package halomath

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// IncompleteGamma returns the upper incomplete gamma function Gamma(a, x),
// extended to non-positive shape parameters a by the recurrence
//
//	Gamma(a, x) = (Gamma(a+1, x) - x^a e^-x) / a
//
// with Gamma(0, x) = E1(x). For a > 0 the regularized complementary gamma is
// used directly. x must be positive when a <= 0; otherwise NaN is returned.
func IncompleteGamma(a, x float64) float64 {
	switch {
	case a < 0:
		return (IncompleteGamma(a+1, x) - math.Pow(x, a)*math.Exp(-x)) / a
	case a == 0:
		return expIntE1(x)
	default:
		return mathext.GammaIncRegComp(a, x) * math.Gamma(a)
	}
}

// expIntE1 returns the exponential integral E1(x) for x > 0, via the power
// series for small arguments and a modified Lentz continued fraction
// otherwise.
func expIntE1(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	if x <= 1 {
		const euler = 0.5772156649015329
		sum := -euler - math.Log(x)
		term := 1.0
		for k := 1; k <= 40; k++ {
			term *= -x / float64(k)
			sum -= term / float64(k)
			if math.Abs(term/float64(k)) < 1e-17*math.Abs(sum) {
				break
			}
		}
		return sum
	}

	b := x + 1
	c := math.MaxFloat64
	d := 1 / b
	h := d
	for k := 1; k <= 200; k++ {
		an := -float64(k) * float64(k)
		b += 2
		d = 1 / (an*d + b)
		c = b + an/c
		del := c * d
		h *= del
		if math.Abs(del-1) < 1e-15 {
			break
		}
	}
	return h * math.Exp(-x)
}
