package catalog

import (
	"errors"
	"testing"

	"github.com/cosmostat/halokit/internal/testutil"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New(Metadata{SimName: "bolshoi", HaloFinder: "rockstar", Redshift: 0})
	if err := c.AddInt("halo_id", []int64{10, 11, 12, 13}); err != nil {
		t.Fatalf("AddInt: %v", err)
	}
	if err := c.AddInt("halo_upid", []int64{-1, 10, -1, -1}); err != nil {
		t.Fatalf("AddInt: %v", err)
	}
	if err := c.AddFloat("halo_mvir", []float64{1e12, 1e11, 5e13, 2e12}); err != nil {
		t.Fatalf("AddFloat: %v", err)
	}
	return c
}

func TestCatalogAddAndGet(t *testing.T) {
	c := testCatalog(t)

	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}

	names := c.ColumnNames()
	want := []string{"halo_id", "halo_upid", "halo_mvir"}
	if len(names) != len(want) {
		t.Fatalf("ColumnNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ColumnNames() = %v, want %v", names, want)
		}
	}

	mvir, err := c.Float("halo_mvir")
	if err != nil {
		t.Fatalf("Float: %v", err)
	}
	testutil.RequireSliceEqual(t, mvir, []float64{1e12, 1e11, 5e13, 2e12})

	ids, err := c.Int("halo_id")
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	if ids[2] != 12 {
		t.Errorf("halo_id[2] = %d, want 12", ids[2])
	}

	if !c.HasColumn("halo_upid") || c.HasColumn("halo_vmax") {
		t.Error("HasColumn misreports")
	}
}

func TestCatalogAddErrors(t *testing.T) {
	c := testCatalog(t)

	if err := c.AddFloat("halo_mvir", []float64{1, 2, 3, 4}); !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("expected ErrDuplicateColumn, got %v", err)
	}
	if err := c.AddFloat("halo_vmax", []float64{1, 2}); !errors.Is(err, ErrColumnLength) {
		t.Errorf("expected ErrColumnLength, got %v", err)
	}

	// Kinds share one namespace.
	if err := c.AddInt("halo_mvir", []int64{1, 2, 3, 4}); !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("expected ErrDuplicateColumn across kinds, got %v", err)
	}
}

func TestCatalogUnknownColumn(t *testing.T) {
	c := testCatalog(t)

	if _, err := c.Float("halo_vmax"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
	// A float column is not reachable as int and vice versa.
	if _, err := c.Int("halo_mvir"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestCatalogSelect(t *testing.T) {
	c := testCatalog(t)

	sub, err := c.Select([]bool{true, false, false, true})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sub.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", sub.Len())
	}
	if sub.Meta.SimName != "bolshoi" {
		t.Errorf("metadata not carried over: %+v", sub.Meta)
	}

	mvir, err := sub.Float("halo_mvir")
	if err != nil {
		t.Fatalf("Float: %v", err)
	}
	testutil.RequireSliceEqual(t, mvir, []float64{1e12, 2e12})

	ids, err := sub.Int("halo_id")
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	if ids[0] != 10 || ids[1] != 13 {
		t.Errorf("ids = %v, want [10 13]", ids)
	}

	// Selection copies: mutating the subsample leaves the parent alone.
	mvir[0] = -1
	orig, _ := c.Float("halo_mvir")
	if orig[0] != 1e12 {
		t.Error("Select aliased the parent column")
	}

	if _, err := c.Select([]bool{true}); !errors.Is(err, ErrMaskLength) {
		t.Errorf("expected ErrMaskLength, got %v", err)
	}
}

func TestCheckConsistency(t *testing.T) {
	c := testCatalog(t)
	expected := Metadata{SimName: "bolshoi", HaloFinder: "rockstar", Redshift: 0}

	if err := c.CheckConsistency(expected); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Redshift within tolerance still passes.
	close := expected
	close.Redshift = 0.005
	if err := c.CheckConsistency(close); err != nil {
		t.Errorf("redshift inside tolerance failed: %v", err)
	}

	tests := []struct {
		name string
		meta Metadata
	}{
		{"redshift", Metadata{SimName: "bolshoi", HaloFinder: "rockstar", Redshift: 0.5}},
		{"simname", Metadata{SimName: "consuelo", HaloFinder: "rockstar", Redshift: 0}},
		{"halo finder", Metadata{SimName: "bolshoi", HaloFinder: "bdm", Redshift: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.CheckConsistency(tt.meta); !errors.Is(err, ErrInconsistentMetadata) {
				t.Errorf("expected ErrInconsistentMetadata, got %v", err)
			}
		})
	}
}
