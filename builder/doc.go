// Package builder constructs canonical transition matrices for tests,
// examples, and benchmarks. It lives alongside the decomposition and
// stochastic packages to keep chain construction DRY, deterministic,
// and consistent.
//
// The package offers the following constructors:
//
//   - TwoState(a, b):          the 2-state chain with switch rates a and b;
//     closed-form spectrum {1, 1−a−b} and stationary (b, a)/(a+b).
//   - BirthDeath(n, p, q):     nearest-neighbour chain on a line of n states;
//     reversible by construction (detailed balance on the tridiagonal band).
//   - LazyRandomWalk(n, hold): walk on the n-cycle with a self-loop mass;
//     doubly stochastic, so the stationary distribution is uniform.
//   - Metastable(blocks, size, coupling): block-diagonal chain with weak
//     inter-block leakage; its slow eigenvalues cluster near one, which is
//     the shape implied-timescale analysis exists for.
//   - RandomStochastic(n, seed): seeded random row-stochastic matrix for
//     fuzz-style property tests.
//
// Guarantees:
//
//   - Every returned matrix is exactly row-stochastic up to float64
//     round-off (rows are normalized by their computed sums).
//   - Fast-fail on invalid parameters via sentinel errors (ErrBadSize,
//     ErrBadProbability); constructors never panic.
//   - Full determinism: identical arguments (and seed) reproduce identical
//     matrices, entry for entry.
//
// See individual constructor documentation for parameter domains and
// structural properties.
package builder
