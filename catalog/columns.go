package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Schema errors.
var (
	ErrHeaderMismatch = errors.New("catalog: header does not match schema")
	ErrRowWidth       = errors.New("catalog: row has wrong number of fields")
)

// Kind is the storage kind of a schema column.
type Kind int

const (
	// KindFloat columns hold physical properties as float64.
	KindFloat Kind = iota
	// KindInt columns hold identifiers and counts as int64.
	KindInt
)

// Column maps one ASCII catalog field to a canonical halo_* column.
type Column struct {
	Name string
	Kind Kind
}

// Schema declares the column layout of a published ASCII halo catalog.
type Schema struct {
	// Name identifies the halo finder and catalog vintage.
	Name string

	// Header is the raw header line of the published ASCII files, kept
	// verbatim for validation against downloaded catalogs.
	Header string

	// Columns lists the canonical columns in file order.
	Columns []Column
}

// Index returns the position of the named column in the schema, or -1.
func (s Schema) Index(name string) int {
	for i, col := range s.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// ParseHeaderFields splits a catalog header line into its field names,
// stripping a leading comment marker and the trailing (N) column indices
// that some catalog vintages carry.
func ParseHeaderFields(header string) []string {
	header = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), "#"))
	fields := strings.Fields(header)
	for i, f := range fields {
		if j := strings.LastIndexByte(f, '('); j > 0 && strings.HasSuffix(f, ")") {
			if _, err := strconv.Atoi(f[j+1 : len(f)-1]); err == nil {
				fields[i] = f[:j]
			}
		}
	}
	return fields
}

// ValidateHeader checks that a downloaded catalog's header line carries the
// same number of fields as the schema. Field names are not compared, since
// published headers abbreviate inconsistently across vintages; a width
// mismatch is the reliable signal that the wrong schema was chosen.
func (s Schema) ValidateHeader(header string) error {
	fields := ParseHeaderFields(header)
	if len(fields) != len(s.Columns) {
		return fmt.Errorf("%w: header has %d fields, schema %s has %d columns",
			ErrHeaderMismatch, len(fields), s.Name, len(s.Columns))
	}
	return nil
}

// ReadASCII reads a whitespace-separated ASCII halo catalog into a Catalog,
// binding each field to its schema column. Lines starting with '#' are
// treated as comments; the first comment line, if present, is validated
// against the schema header.
func ReadASCII(r io.Reader, s Schema, meta Metadata) (*Catalog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	fdata := make([][]float64, len(s.Columns))
	idata := make([][]int64, len(s.Columns))

	line := 0
	sawHeader := false
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			if !sawHeader {
				sawHeader = true
				if err := s.ValidateHeader(text); err != nil {
					return nil, err
				}
			}
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != len(s.Columns) {
			return nil, fmt.Errorf("%w: line %d has %d fields, schema %s has %d columns",
				ErrRowWidth, line, len(fields), s.Name, len(s.Columns))
		}

		for i, col := range s.Columns {
			switch col.Kind {
			case KindInt:
				v, err := strconv.ParseInt(fields[i], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("catalog: line %d, column %s: %w", line, col.Name, err)
				}
				idata[i] = append(idata[i], v)
			default:
				v, err := strconv.ParseFloat(fields[i], 64)
				if err != nil {
					return nil, fmt.Errorf("catalog: line %d, column %s: %w", line, col.Name, err)
				}
				fdata[i] = append(fdata[i], v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalog: reading ASCII catalog: %w", err)
	}

	rows := 0
	for i, col := range s.Columns {
		if col.Kind == KindInt {
			rows = len(idata[i])
		} else {
			rows = len(fdata[i])
		}
		break
	}

	c := New(meta)
	for i, col := range s.Columns {
		if col.Kind == KindInt {
			if idata[i] == nil {
				idata[i] = make([]int64, 0, rows)
			}
			if err := c.AddInt(col.Name, idata[i]); err != nil {
				return nil, err
			}
			continue
		}
		if fdata[i] == nil {
			fdata[i] = make([]float64, 0, rows)
		}
		if err := c.AddFloat(col.Name, fdata[i]); err != nil {
			return nil, err
		}
	}
	return c, nil
}
