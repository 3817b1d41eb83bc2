// Package catalog manages tabular halo catalogs: a columnar table type with
// simulation metadata, declarative column schemas for the published Rockstar
// and BDM ASCII catalog formats, specifications of the supported N-body
// simulations, and common sample selections (host/subhalo splits, property
// cuts, percentile splits, and ID crossmatching).
//
// A catalog stores equal-length named columns of float64 or int64 values.
// Halo properties follow the canonical halo_* naming convention, e.g.
// halo_mvir, halo_upid, halo_x.
//
// Catalog cache management and downloading are out of scope; catalogs enter
// the package either column-by-column or through [ReadASCII].
package catalog
