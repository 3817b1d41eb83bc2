package smhm

import "math"

// Moster13Params are the best-fit parameters of the Moster et al. (2013)
// stellar-to-halo-mass relation. Each quantity q scales with redshift as
// q(z) = q0 + q1*z/(1+z).
type Moster13Params struct {
	M10     float64 // log10 characteristic halo mass at z=0
	M11     float64
	N10     float64 // normalization of the mass ratio at z=0
	N11     float64
	Beta10  float64 // low-mass slope at z=0
	Beta11  float64
	Gamma10 float64 // high-mass slope at z=0
	Gamma11 float64
}

// DefaultMoster13Params returns the published best-fit values
// (Moster et al. 2013, Table 1).
func DefaultMoster13Params() Moster13Params {
	return Moster13Params{
		M10:     11.590,
		M11:     1.195,
		N10:     0.0351,
		N11:     -0.0247,
		Beta10:  1.376,
		Beta11:  -0.826,
		Gamma10: 0.608,
		Gamma11: 0.329,
	}
}

// Moster13 is the double-power-law stellar-to-halo-mass relation
//
//	mstar/mhalo = 2 N(z) / ((mhalo/M1(z))^-beta(z) + (mhalo/M1(z))^gamma(z))
//
// of Moster et al. (2013).
type Moster13 struct {
	Params Moster13Params
}

// NewMoster13 returns the relation initialized to the published best-fit
// parameters.
func NewMoster13() *Moster13 {
	return &Moster13{Params: DefaultMoster13Params()}
}

// MeanStellarMass returns the mean stellar mass in Msun/h hosted by a halo of
// mass haloMass (Msun/h) at redshift z.
func (m *Moster13) MeanStellarMass(haloMass, z float64) float64 {
	x := z / (1 + z)
	m1 := math.Pow(10, m.Params.M10+m.Params.M11*x)
	n := m.Params.N10 + m.Params.N11*x
	beta := m.Params.Beta10 + m.Params.Beta11*x
	gamma := m.Params.Gamma10 + m.Params.Gamma11*x

	r := haloMass / m1
	return haloMass * 2 * n / (math.Pow(r, -beta) + math.Pow(r, gamma))
}

// MeanStellarMasses evaluates MeanStellarMass on a halo mass array.
func (m *Moster13) MeanStellarMasses(haloMass []float64, z float64) []float64 {
	out := make([]float64, len(haloMass))
	for i, mh := range haloMass {
		out[i] = m.MeanStellarMass(mh, z)
	}
	return out
}
