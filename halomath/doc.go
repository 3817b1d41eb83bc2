// Package halomath collects small numerical helpers shared by the empirical
// model and catalog packages: nearest-value lookup, minimum-degree polynomial
// interpolation, an incomplete gamma function extended to non-positive shape
// parameters, periodic box wrapping, and random sampling utilities.
package halomath
