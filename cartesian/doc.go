// Package cartesian enumerates Cartesian products of integer sets and reduces
// them in parallel.
//
// Sum walks every tuple of S1 × S2 × … × Sn and adds up the elements of each
// tuple. The work is partitioned on the elements of the first set and fanned
// out with an errgroup, so the result is identical to a sequential pass.
// ClosedFormSum computes the same number without enumeration and is used to
// check the parallel path.
package cartesian
