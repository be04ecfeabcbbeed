package stochastic

import "errors"

var (
	// ErrNilMatrix indicates a nil or empty matrix argument.
	ErrNilMatrix = errors.New("stochastic: nil matrix")
	// ErrNonSquare indicates a non-square matrix where a transition matrix is required.
	ErrNonSquare = errors.New("stochastic: matrix is not square")
	// ErrDimensionMismatch indicates a stationary vector whose length does not match the matrix.
	ErrDimensionMismatch = errors.New("stochastic: dimension mismatch")
)
