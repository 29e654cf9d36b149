// Package gridkit provides coordinates, sparse grids, grid path search and
// axis-aligned box algebra for discrete 2D and 3D spaces.
//
// It exposes four main pieces:
//
//   - Coord: a comparable 2D or 3D integer vector.
//   - Grid: a bounded, coordinate-keyed sparse array with slicing,
//     neighbor enumeration and ordered iteration.
//   - Search and Stepper: cheapest orthogonal path over a grid whose cell
//     values are entry costs, run to completion or one expansion at a time.
//   - Box and BoxSet: half-open cuboids with intersection and disjoint
//     set difference, and a union kept as disjoint boxes.
//
// Nothing in the package is safe for concurrent use; each Grid, Stepper and
// BoxSet has a single owner.
package gridkit
