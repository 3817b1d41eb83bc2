package halomath

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Polynomial errors.
var (
	ErrLengthMismatch = errors.New("halomath: abcissa and ordinates must have the same length")
	ErrEmptyInput     = errors.New("halomath: empty input")
)

// PolynomialCoefficients solves for the coefficients of the unique,
// minimum-degree polynomial passing through the given abcissa/ordinate pairs.
// Element i of the result is the degree-i coefficient. The solve goes through
// the Vandermonde system of the abcissa, so repeated abcissa values make the
// system singular and fail.
func PolynomialCoefficients(abcissa, ordinates []float64) ([]float64, error) {
	if len(abcissa) != len(ordinates) {
		return nil, ErrLengthMismatch
	}
	n := len(abcissa)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	v := mat.NewDense(n, n, nil)
	for i, x := range abcissa {
		p := 1.0
		for j := 0; j < n; j++ {
			v.Set(i, j, p)
			p *= x
		}
	}

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(v, mat.NewVecDense(n, append([]float64(nil), ordinates...))); err != nil {
		return nil, fmt.Errorf("halomath: singular abcissa table: %w", err)
	}

	out := make([]float64, n)
	copy(out, coeffs.RawVector().Data)
	return out, nil
}

// PolynomialFromTable evaluates, at each point of x, the minimum-degree
// polynomial determined by the abcissa/ordinate table.
func PolynomialFromTable(abcissa, ordinates, x []float64) ([]float64, error) {
	coeffs, err := PolynomialCoefficients(abcissa, ordinates)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, xi := range x {
		var sum float64
		for n, c := range coeffs {
			sum += c * math.Pow(xi, float64(n))
		}
		out[i] = sum
	}
	return out, nil
}
