// Package smhm models the stellar-to-halo-mass relation of central galaxies.
//
// [Moster13] implements the parametric relation of Moster et al. (2013),
// arXiv:1205.5807, including its redshift scaling. [LogNormalScatter] adds
// log-normal scatter around any mean relation, with a scatter level that may
// vary with halo mass through a polynomial abcissa/ordinate table.
package smhm
