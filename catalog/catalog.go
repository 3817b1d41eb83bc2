package catalog

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by catalog operations.
var (
	ErrColumnLength         = errors.New("catalog: column length does not match catalog length")
	ErrDuplicateColumn      = errors.New("catalog: duplicate column name")
	ErrUnknownColumn        = errors.New("catalog: unknown column")
	ErrMaskLength           = errors.New("catalog: mask length does not match catalog length")
	ErrInconsistentMetadata = errors.New("catalog: catalog metadata is inconsistent")
)

// redshiftTol is the tolerance used when comparing catalog redshifts.
const redshiftTol = 0.01

// Metadata describes the provenance of a catalog.
type Metadata struct {
	SimName         string
	HaloFinder      string
	Redshift        float64
	CutsDescription string
}

// Catalog is a columnar table of halo properties. All columns have equal
// length; float64 columns hold physical properties and int64 columns hold
// identifiers and counts.
type Catalog struct {
	Meta Metadata

	order []string
	fcols map[string][]float64
	icols map[string][]int64
	rows  int
	empty bool
}

// New returns an empty catalog carrying the given metadata. The first column
// added fixes the catalog length.
func New(meta Metadata) *Catalog {
	return &Catalog{
		Meta:  meta,
		fcols: make(map[string][]float64),
		icols: make(map[string][]int64),
		empty: true,
	}
}

// Len returns the number of rows.
func (c *Catalog) Len() int { return c.rows }

// ColumnNames returns the column names in insertion order.
func (c *Catalog) ColumnNames() []string {
	return append([]string(nil), c.order...)
}

// HasColumn reports whether the catalog has a column of the given name.
func (c *Catalog) HasColumn(name string) bool {
	_, f := c.fcols[name]
	_, i := c.icols[name]
	return f || i
}

func (c *Catalog) admit(name string, length int) error {
	if c.HasColumn(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
	}
	if c.empty {
		c.rows = length
		c.empty = false
	} else if length != c.rows {
		return fmt.Errorf("%w: column %s has length %d, catalog has %d rows",
			ErrColumnLength, name, length, c.rows)
	}
	c.order = append(c.order, name)
	return nil
}

// AddFloat adds a float64 column. The slice is stored without copying.
func (c *Catalog) AddFloat(name string, data []float64) error {
	if err := c.admit(name, len(data)); err != nil {
		return err
	}
	c.fcols[name] = data
	return nil
}

// AddInt adds an int64 column. The slice is stored without copying.
func (c *Catalog) AddInt(name string, data []int64) error {
	if err := c.admit(name, len(data)); err != nil {
		return err
	}
	c.icols[name] = data
	return nil
}

// Float returns the float64 column of the given name.
func (c *Catalog) Float(name string) ([]float64, error) {
	col, ok := c.fcols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	return col, nil
}

// Int returns the int64 column of the given name.
func (c *Catalog) Int(name string) ([]int64, error) {
	col, ok := c.icols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	return col, nil
}

// Select returns a new catalog holding the rows where mask is true. Column
// data is copied; metadata is carried over.
func (c *Catalog) Select(mask []bool) (*Catalog, error) {
	if len(mask) != c.rows {
		return nil, ErrMaskLength
	}
	var idx []int
	for i, keep := range mask {
		if keep {
			idx = append(idx, i)
		}
	}
	return c.takeRows(idx), nil
}

// takeRows builds a new catalog from the given row indices.
func (c *Catalog) takeRows(idx []int) *Catalog {
	out := New(c.Meta)
	for _, name := range c.order {
		if col, ok := c.fcols[name]; ok {
			data := make([]float64, len(idx))
			for i, j := range idx {
				data[i] = col[j]
			}
			out.AddFloat(name, data) //nolint:errcheck // names and lengths come from a valid catalog
			continue
		}
		col := c.icols[name]
		data := make([]int64, len(idx))
		for i, j := range idx {
			data[i] = col[j]
		}
		out.AddInt(name, data) //nolint:errcheck // names and lengths come from a valid catalog
	}
	return out
}

// CheckConsistency verifies that the catalog's metadata agrees with the
// expected values, typically those inferred from a catalog filename. A
// mismatch indicates a bug during catalog generation and fails with
// ErrInconsistentMetadata.
func (c *Catalog) CheckConsistency(expected Metadata) error {
	if math.Abs(c.Meta.Redshift-expected.Redshift) > redshiftTol {
		return fmt.Errorf("%w: redshift %.3f does not match expected %.3f",
			ErrInconsistentMetadata, c.Meta.Redshift, expected.Redshift)
	}
	if c.Meta.SimName != expected.SimName {
		return fmt.Errorf("%w: simname %q does not match expected %q",
			ErrInconsistentMetadata, c.Meta.SimName, expected.SimName)
	}
	if c.Meta.HaloFinder != expected.HaloFinder {
		return fmt.Errorf("%w: halo finder %q does not match expected %q",
			ErrInconsistentMetadata, c.Meta.HaloFinder, expected.HaloFinder)
	}
	return nil
}
