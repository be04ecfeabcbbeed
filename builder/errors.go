// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrBadSize indicates a state count below the constructor's minimum
// (e.g. n < 2 for BirthDeath, blocks < 2 for Metastable).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrBadProbability indicates a probability parameter outside its valid
// domain, either a rate escaping [0,1] or a row budget exceeding one
// (e.g. BirthDeath with p+q > 1).
// Usage: if errors.Is(err, ErrBadProbability) { /* fix rates */ }.
var ErrBadProbability = errors.New("builder: probability out of range")
