package catalog

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSim is returned when a simulation name is not recognized.
var ErrUnsupportedSim = errors.New("catalog: unsupported simulation")

// Cosmology holds the flat-LCDM parameters a simulation was run with.
type Cosmology struct {
	Name   string
	H0     float64 // Hubble constant in km/s/Mpc
	OmegaM float64 // present-day matter density
}

// Parameter sets of the cosmologies used by the supported simulations.
var (
	WMAP5    = Cosmology{Name: "WMAP5", H0: 70.2, OmegaM: 0.277}
	Planck13 = Cosmology{Name: "Planck13", H0: 67.77, OmegaM: 0.3071}
)

// Simulation is a container for the specs of a supported N-body simulation.
// Lengths are in h=1 units: LBox in Mpc/h, ParticleMass in Msun/h, and
// Softening in kpc/h.
type Simulation struct {
	Name            string
	LBox            float64
	ParticleMass    float64
	NumPtclPerDim   int
	Softening       float64
	InitialRedshift float64
	Cosmology       Cosmology
}

// Specs of the supported simulations. For detailed descriptions see
// cosmosim.org (Bolshoi, Bolshoi-Planck, MultiDark) and the LasDamas project
// pages (Consuelo).
var (
	Bolshoi = Simulation{
		Name:            "bolshoi",
		LBox:            250,
		ParticleMass:    1.35e8,
		NumPtclPerDim:   2048,
		Softening:       1,
		InitialRedshift: 80,
		Cosmology:       WMAP5,
	}

	BolPlanck = Simulation{
		Name:            "bolplanck",
		LBox:            250,
		ParticleMass:    1.35e8,
		NumPtclPerDim:   2048,
		Softening:       1,
		InitialRedshift: 80,
		Cosmology:       Planck13,
	}

	MultiDark = Simulation{
		Name:            "multidark",
		LBox:            1000,
		ParticleMass:    8.721e9,
		NumPtclPerDim:   2048,
		Softening:       7,
		InitialRedshift: 65,
		Cosmology:       WMAP5,
	}

	Consuelo = Simulation{
		Name:            "consuelo",
		LBox:            420,
		ParticleMass:    1.87e9,
		NumPtclPerDim:   1400,
		Softening:       8,
		InitialRedshift: 99,
		Cosmology:       WMAP5,
	}
)

// Simulations lists the supported simulations.
var Simulations = []Simulation{Bolshoi, BolPlanck, MultiDark, Consuelo}

// BySimName looks up a supported simulation by its nickname.
func BySimName(name string) (Simulation, error) {
	for _, sim := range Simulations {
		if sim.Name == name {
			return sim, nil
		}
	}
	return Simulation{}, fmt.Errorf("%w: %q", ErrUnsupportedSim, name)
}
