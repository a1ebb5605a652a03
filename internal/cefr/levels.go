// Package cefr defines the canonical CEFR levels and the CEFR-J label set.
package cefr

import (
	"fmt"
	"strings"
)

// Level is one of the six canonical CEFR levels (A1..C2).
type Level string

// Canonical CEFR levels, in ascending difficulty order.
const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// Levels lists the canonical levels in ascending order.
var Levels = []Level{A1, A2, B1, B2, C1, C2}

var difficulties = map[Level]float64{
	A1: 1,
	A2: 2,
	B1: 3,
	B2: 4,
	C1: 5,
	C2: 6,
}

// Difficulty maps a level to its numeric difficulty (A1=1 .. C2=6).
// Unknown levels map to 0.
func Difficulty(l Level) float64 {
	return difficulties[l]
}

// Parse normalizes a user-provided level string. The empty return error
// carries the accepted set so callers can surface it verbatim.
func Parse(raw string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := difficulties[l]; !ok {
		return "", fmt.Errorf("invalid CEFR level %q (accepted: A1, A2, B1, B2, C1, C2)", raw)
	}
	return l, nil
}

// Valid reports whether l is one of the six canonical levels.
func Valid(l Level) bool {
	_, ok := difficulties[l]
	return ok
}
