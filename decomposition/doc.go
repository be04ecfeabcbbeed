// Package decomposition computes spectral properties of Markov transition
// matrices: stationary distributions, eigenvalue spectra, joint
// right/diagonal/left (RDL) eigen-decompositions, and implied relaxation
// timescales.
//
// The decomposition package provides:
//
//   - BackwardIteration — inverse-iteration refinement of an eigenvector
//     for a known approximate eigenvalue.
//   - StationaryFromBackwardIteration / StationaryFromEigenvector — two
//     independent strategies for the normalized stationary vector, plus a
//     StationaryDistribution convenience that tries the fast path first.
//   - Eigenvalues / Eigenvectors — spectra ordered by decreasing
//     magnitude, with optional reversible symmetrization and k/index
//     selection.
//   - RDLDecomposition — co-indexed (R, D, L) triple under a standard or
//     reversible normalization, with an auto mode driven by an injected
//     ReversibilityChecker.
//   - Timescales / TimescalesFromEigenvalues — implied relaxation
//     timescales t = −τ/ln|λ| with typed Diagnostic records for complex
//     or degenerate spectra.
//
// Transition matrices are *mat.Dense values assumed row-stochastic (rows
// sum to 1, entries ≥ 0); the routines do not enforce stochasticity —
// callers own that contract (see package stochastic for predicates).
// Dense eigen-decomposition, LU factorization, and linear solves are
// consumed from gonum as black-box primitives.
//
// All functions are pure: immutable inputs, freshly allocated outputs, no
// shared state. Concurrent calls are safe as long as each call owns its
// input/output arrays.
package decomposition
