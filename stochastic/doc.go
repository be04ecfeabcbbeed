// Package stochastic offers structural predicates over Markov transition
// matrices and probability vectors.
//
// The stochastic package provides:
//
//   - IsTransitionMatrix — square, non-negative, rows summing to one.
//   - IsDistribution — non-negative entries summing to one.
//   - IsReversible — detailed balance μᵢ·Tᵢⱼ = μⱼ·Tⱼᵢ against a supplied
//     stationary vector.
//
// The package is a deliberate leaf: it never computes stationary vectors
// itself, so higher layers (package decomposition) can consume
// IsReversible as an injected capability without import cycles.
//
// All checks are pure, deterministic, and tolerance-driven; they report,
// never repair.
package stochastic
