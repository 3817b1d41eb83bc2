package abunmatch

import (
	"math"
	"testing"

	"github.com/cosmostat/halokit/internal/testutil"
)

func TestGaussCache(t *testing.T) {
	g := newGaussCache()
	scatter := 0.2

	for _, dm := range []float64{0, 0.05, -0.05, 0.3, -0.42, 1.2} {
		want := math.Exp(-0.5*(dm/scatter)*(dm/scatter)) / (math.Sqrt(2*math.Pi) * scatter)
		got := gaussCache(dm, scatter, g)
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("gaussCache(%v) = %v, want %v", dm, got, want)
		}
	}
}

func TestGaussCacheOutOfRange(t *testing.T) {
	g := newGaussCache()

	// Beyond +/- 8 sigma the cache reports exactly zero.
	if got := gaussCache(1.7, 0.2, g); got != 0 {
		t.Errorf("gaussCache(+8.5 sigma) = %v, want 0", got)
	}
	if got := gaussCache(-1.7, 0.2, g); got != 0 {
		t.Errorf("gaussCache(-8.5 sigma) = %v, want 0", got)
	}
}

// testRelation builds a declining log-linear abundance relation together with
// a trial mass assignment and the consistent subhalo mass function: each bin
// carries the abundance the relation tabulates between successive trial
// masses, so the trial is already the zero-scatter matching solution.
func testRelation() (rel Relation, smm, mf []float64) {
	const nRel = 20
	rel.Key = make([]float64, nRel)
	rel.Value = make([]float64, nRel)
	for i := range rel.Key {
		rel.Key[i] = 8 + 4*float64(i)/float64(nRel-1)
		rel.Value[i] = -2 - 3*float64(i)/float64(nRel-1)
	}

	// Cumulative number density above s for the log-linear relation.
	cum := func(s float64) float64 {
		return (math.Pow(10, -2-0.75*(s-8)) - 1e-5) / (0.75 * math.Ln10)
	}

	const nBins = 25
	smm = make([]float64, nBins)
	mf = make([]float64, nBins)
	for i := range smm {
		smm[i] = 8.2 + 3.5*float64(i)/float64(nBins-1)
	}
	for i := range mf {
		if i == nBins-1 {
			mf[i] = cum(smm[i])
		} else {
			mf[i] = cum(smm[i]) - cum(smm[i+1])
		}
	}
	return rel, smm, mf
}

func TestConvolvedFitNoop(t *testing.T) {
	rel, smm, mf := testRelation()
	orig := append([]float64(nil), smm...)

	ConvolvedFit(rel.Key, rel.Value, smm, mf, 0, 40, 0.01)
	testutil.RequireSliceEqual(t, smm, orig)

	ConvolvedFit(rel.Key, rel.Value, smm, mf, 0.2, 0, 0.01)
	testutil.RequireSliceEqual(t, smm, orig)
}

func TestConvolvedFit(t *testing.T) {
	rel, smm, mf := testRelation()

	ConvolvedFit(rel.Key, rel.Value, smm, mf, 0.2, 5, 0.01)

	if len(smm) != len(mf) {
		t.Fatalf("smm length changed to %d", len(smm))
	}
	testutil.RequireFinite(t, smm)

	// The fit must actually refine the assignment.
	_, orig, _ := testRelation()
	same := true
	for i := range smm {
		if smm[i] != orig[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("fit left the trial assignment unchanged")
	}
}

func TestConvolvedFitDeterministic(t *testing.T) {
	rel, smm1, mf := testRelation()
	_, smm2, _ := testRelation()

	ConvolvedFit(rel.Key, rel.Value, smm1, mf, 0.2, 3, 0.01)
	ConvolvedFit(rel.Key, rel.Value, smm2, mf, 0.2, 3, 0.01)
	testutil.RequireSliceEqual(t, smm1, smm2)
}

func BenchmarkConvolvedFit(b *testing.B) {
	rel, smm, mf := testRelation()
	work := make([]float64, len(smm))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, smm)
		ConvolvedFit(rel.Key, rel.Value, work, mf, 0.2, 5, 0.01)
	}
}
