package smhm

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cosmostat/halokit/halomath"
)

// Scatter errors.
var (
	ErrLengthMismatch = errors.New("smhm: input arrays must have the same length")
	ErrNegativeLevel  = errors.New("smhm: scatter level must be non-negative")
)

// DefaultScatterLevel is the canonical constant scatter of the
// stellar-to-halo-mass relation, in dex.
const DefaultScatterLevel = 0.2

// LogNormalScatter models log-normal scatter around a mean galaxy-property
// relation. The scatter level in dex is given as a function of log10 halo
// mass by the minimum-degree polynomial through an abcissa/ordinate table,
// so a single table entry yields mass-independent scatter.
type LogNormalScatter struct {
	abcissa   []float64
	ordinates []float64
}

// NewLogNormalScatter builds a scatter model from a table of log10 halo mass
// abcissa and scatter ordinates (dex).
func NewLogNormalScatter(abcissa, ordinates []float64) (*LogNormalScatter, error) {
	if len(abcissa) != len(ordinates) {
		return nil, ErrLengthMismatch
	}
	for _, v := range ordinates {
		if v < 0 {
			return nil, ErrNegativeLevel
		}
	}
	return &LogNormalScatter{
		abcissa:   append([]float64(nil), abcissa...),
		ordinates: append([]float64(nil), ordinates...),
	}, nil
}

// ConstantScatter returns a mass-independent scatter model of the given
// level in dex.
func ConstantScatter(level float64) (*LogNormalScatter, error) {
	return NewLogNormalScatter([]float64{12}, []float64{level})
}

// Level returns the scatter level in dex at each log10 halo mass.
func (s *LogNormalScatter) Level(logM []float64) ([]float64, error) {
	return halomath.PolynomialFromTable(s.abcissa, s.ordinates, logM)
}

// Realize adds a Monte Carlo realization of the scatter to logProp, the
// log10 galaxy property co-indexed with log10 halo masses logM. The inputs
// are not modified. A nil src falls back to a fixed-seed source.
func (s *LogNormalScatter) Realize(logProp, logM []float64, src rand.Source) ([]float64, error) {
	if len(logProp) != len(logM) {
		return nil, ErrLengthMismatch
	}

	levels, err := s.Level(logM)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewPCG(1, 1)
	}

	out := make([]float64, len(logProp))
	for i, v := range logProp {
		if levels[i] <= 0 {
			out[i] = v
			continue
		}
		dist := distuv.Normal{Mu: 0, Sigma: levels[i], Src: src}
		out[i] = v + dist.Rand()
	}
	return out, nil
}
