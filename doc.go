// Package spectral is your in-memory toolbox for the spectral analysis of
// discrete-time Markov chains — from stationary distributions to implied
// relaxation timescales.
//
// 🚀 What is spectral?
//
//	A focused, deterministic library that brings together:
//		• Stationary distributions: inverse (backward) iteration & eigen-decomposition
//		• Spectra: eigenvalues/eigenvectors with reversible symmetrization
//		• RDL: joint right/diagonal/left eigen-decomposition (two norms)
//		• Timescales: implied relaxation timescales with typed diagnostics
//		• Predicates: transition-matrix and detailed-balance checks
//		• Builders: canonical chains (birth–death, metastable, lazy walks)
//
// ✨ Why choose spectral?
//
//   - Numerically honest – the eigenvalue-1 mode is extracted by inverse
//     iteration against a controlled perturbation, not by hoping the
//     solver returns exactly 1
//   - Explicit diagnostics – complex or degenerate spectra surface as
//     typed records, never as ambient warning state
//   - Pure functions – every call maps immutable inputs to fresh outputs;
//     safe for concurrent use with independent arrays
//   - Black-box primitives – dense eigen/LU/solve work is delegated to
//     gonum, never re-implemented
//
// Under the hood, everything is organized under three subpackages:
//
//	decomposition/ — stationary vectors, spectra, RDL, implied timescales
//	stochastic/    — transition-matrix & reversibility predicates
//	builder/       — deterministic chain constructors for tests and demos
//
// Quick ASCII example:
//
//	    0.9      0.7
//	    ⟲    0.1  ⟲
//	   (A) ─────▶ (B)
//	    ▲          │
//	    └──────────┘
//	        0.3
//
//	a two-state chain: eigenvalues {1, 0.6}, one finite implied timescale.
//
// Dive into the package docs and examples for the full API surface.
//
//	go get github.com/katalvlaran/spectral
package spectral
