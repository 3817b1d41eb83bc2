package abunmatch

import (
	"errors"
	"math"
	"testing"

	"github.com/cosmostat/halokit/internal/testutil"
)

// recordingFit captures the arguments the wrapper forwards and optionally
// mutates smm like a real fit would.
type recordingFit struct {
	key, value, smm, mf []float64
	scatter, step       float64
	repeat              int
	addToSmm            float64
	called              bool
}

func (r *recordingFit) fit(key, value, smm, mf []float64, scatter float64, repeat int, step float64) {
	r.called = true
	r.key = append([]float64(nil), key...)
	r.value = append([]float64(nil), value...)
	r.smm = append([]float64(nil), smm...)
	r.mf = append([]float64(nil), mf...)
	r.scatter = scatter
	r.repeat = repeat
	r.step = step
	for i := range smm {
		smm[i] += r.addToSmm
	}
}

func TestDeconvolveLengthMismatch(t *testing.T) {
	rel := Relation{Key: []float64{-1, 2, 3}, Value: []float64{1, 1, 1}}
	key := append([]float64(nil), rel.Key...)
	smm := []float64{0.5, 1.5, 2.5}
	smmOrig := append([]float64(nil), smm...)
	mf := []float64{2, 3}

	rec := &recordingFit{}
	opts := DefaultDeconvOptions()
	opts.Fit = rec.fit

	_, err := Deconvolve(rel, smm, mf, 0.2, opts)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if rec.called {
		t.Fatal("fit must not be called on invalid input")
	}

	// No partial work: inputs untouched.
	testutil.RequireSliceEqual(t, rel.Key, key)
	testutil.RequireSliceEqual(t, smm, smmOrig)
}

func TestDeconvolveInputErrors(t *testing.T) {
	tests := []struct {
		name string
		rel  Relation
		smm  []float64
		mf   []float64
		want error
	}{
		{
			name: "relation shape",
			rel:  Relation{Key: []float64{1, 2}, Value: []float64{1}},
			smm:  []float64{1},
			mf:   []float64{1},
			want: ErrRelationShape,
		},
		{
			name: "short relation",
			rel:  Relation{Key: []float64{1}, Value: []float64{1}},
			smm:  []float64{1},
			mf:   []float64{1},
			want: ErrShortRelation,
		},
		{
			name: "empty mass function",
			rel:  Relation{Key: []float64{1, 2}, Value: []float64{1, 1}},
			smm:  nil,
			mf:   nil,
			want: ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deconvolve(tt.rel, tt.smm, tt.mf, 0.2, DefaultDeconvOptions())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDeconvolveNoOffset(t *testing.T) {
	rel := Relation{Key: []float64{9, 10, 11}, Value: []float64{-2, -3, -4}}
	keyOrig := append([]float64(nil), rel.Key...)
	smm := []float64{8.5, 9.5}
	mf := []float64{2, 3}

	rec := &recordingFit{addToSmm: 0.25}
	opts := DefaultDeconvOptions()
	opts.Fit = rec.fit

	result, err := Deconvolve(rel, smm, mf, 0.2, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// All-positive inputs: no offset, key bit-identical before and after.
	testutil.RequireSliceEqual(t, rel.Key, keyOrig)
	testutil.RequireSliceEqual(t, rec.key, keyOrig)
	testutil.RequireSliceEqual(t, rec.smm, []float64{8.5, 9.5})
	testutil.RequireSliceEqual(t, result, []float64{8.75, 9.75})

	if len(result) != len(mf) {
		t.Fatalf("result length %d, want %d", len(result), len(mf))
	}
}

func TestDeconvolveOffset(t *testing.T) {
	// min(key, smm) = -1, so offset = 0.01 - (-1) = 1.01.
	rel := Relation{Key: []float64{-1, 2, 3}, Value: []float64{1, 1, 1}}
	smm := []float64{0.5, 1.5}
	mf := []float64{2, 3}

	rec := &recordingFit{addToSmm: 1}
	opts := DefaultDeconvOptions()
	opts.Fit = rec.fit

	result, err := Deconvolve(rel, smm, mf, 0.2, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The fit must see the shifted, strictly positive arrays.
	testutil.RequireSliceNearlyEqual(t, rec.key, []float64{0.01, 3.01, 4.01}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, rec.smm, []float64{1.51, 2.51}, 1e-12)

	// The caller must see the original scale again.
	testutil.RequireSliceNearlyEqual(t, rel.Key, []float64{-1, 2, 3}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, result, []float64{1.5, 2.5}, 1e-12)
}

func TestDeconvolveNegativeStep(t *testing.T) {
	rel := Relation{Key: []float64{-1, 2, 3}, Value: []float64{1, 1, 1}}
	smm := []float64{0.5, 1.5}
	mf := []float64{2, 3}

	rec := &recordingFit{}
	opts := DeconvOptions{Repeat: 10, Step: -0.01, Fit: rec.fit}

	_, err := Deconvolve(rel, smm, mf, 0.2, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A negative step is silently treated as positive.
	if rec.step != 0.01 {
		t.Fatalf("fit received step %v, want 0.01", rec.step)
	}
	testutil.RequireSliceNearlyEqual(t, rec.key, []float64{0.01, 3.01, 4.01}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, rel.Key, []float64{-1, 2, 3}, 1e-12)
}

func TestDeconvolveZeroOptions(t *testing.T) {
	rel := Relation{Key: []float64{9, 10}, Value: []float64{-2, -3}}
	smm := []float64{8.5}
	mf := []float64{2}

	rec := &recordingFit{}
	_, err := Deconvolve(rel, smm, mf, 0.2, DeconvOptions{Fit: rec.fit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.repeat != 40 {
		t.Errorf("fit received repeat %d, want default 40", rec.repeat)
	}
	if rec.step != 0.01 {
		t.Errorf("fit received step %v, want default 0.01", rec.step)
	}
	if rec.scatter != 0.2 {
		t.Errorf("fit received scatter %v, want 0.2", rec.scatter)
	}
}

func TestDeconvolveDefaultFitRoundTrip(t *testing.T) {
	// With scatter 0 the fiducial fit is a no-op, so the offset step must
	// round-trip both key and smm exactly up to floating-point tolerance.
	rel := Relation{Key: []float64{-1, 2, 3}, Value: []float64{1, 1, 1}}
	smm := []float64{0.5, 1.5}

	result, err := Deconvolve(rel, smm, []float64{2, 3}, 0, DefaultDeconvOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, rel.Key, []float64{-1, 2, 3}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, result, []float64{0.5, 1.5}, 1e-12)
}

func TestDeconvolveResultAliasesSmm(t *testing.T) {
	rel := Relation{Key: []float64{9, 10}, Value: []float64{-2, -3}}
	smm := []float64{8.5, 9.5}

	rec := &recordingFit{}
	opts := DefaultDeconvOptions()
	opts.Fit = rec.fit

	result, err := Deconvolve(rel, smm, []float64{2, 3}, 0.2, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if &result[0] != &smm[0] {
		t.Fatal("result must alias the caller's smm slice")
	}
	if math.IsNaN(result[0]) {
		t.Fatal("unexpected NaN")
	}
}
