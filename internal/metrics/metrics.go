// Package metrics computes the eight linguistic measures that feed the
// CEFR-J difficulty estimate.
package metrics

import (
	"fmt"
	"strings"

	"github.com/straygizmo/gocefrizer/internal/nlp"
	"github.com/straygizmo/gocefrizer/internal/resources"
)

// Input carries one annotated document through metric extraction.
type Input struct {
	Doc   *nlp.Document
	Text  string
	Store *resources.Store
}

// Definition describes one metric and how to compute it.
type Definition struct {
	Name        string
	Description string
	Compute     func(in Input) (float64, error)
}

// CalculationError reports a metric that could not be computed.
type CalculationError struct {
	Metric string
	Err    error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculating %s: %v", e.Metric, e.Err)
}

func (e *CalculationError) Unwrap() error { return e.Err }

var registry = []Definition{
	{
		Name:        "AvrDiff",
		Description: "Mean CEFR difficulty of content words found in the dictionary.",
		Compute:     avrDiff,
	},
	{
		Name:        "BperA",
		Description: "Ratio of B-level to A-level content words.",
		Compute:     bPerA,
	},
	{
		Name:        "CVV1",
		Description: "Verb token count over the square root of twice the verb type count.",
		Compute:     cvv1,
	},
	{
		Name:        "AvrFreqRank",
		Description: "Mean corpus frequency rank after dropping the three rarest tokens.",
		Compute:     avrFreqRank,
	},
	{
		Name:        "ARI",
		Description: "Automated readability index of the raw text.",
		Compute:     ari,
	},
	{
		Name:        "VperSent",
		Description: "Mean verb count per sentence.",
		Compute:     verbsPerSentence,
	},
	{
		Name:        "POStypes",
		Description: "Mean distinct part-of-speech count per sentence.",
		Compute:     posTypes,
	},
	{
		Name:        "LenNP",
		Description: "Mean token length of noun phrases.",
		Compute:     nounPhraseLength,
	},
}

// All returns the metric definitions in canonical order.
func All() []Definition {
	return append([]Definition(nil), registry...)
}

// Names returns the metric names in canonical order.
func Names() []string {
	names := make([]string, len(registry))
	for i, def := range registry {
		names[i] = def.Name
	}
	return names
}

// Lookup finds a metric by name, case-insensitively.
func Lookup(name string) (Definition, bool) {
	for _, def := range registry {
		if strings.EqualFold(def.Name, strings.TrimSpace(name)) {
			return def, true
		}
	}
	return Definition{}, false
}

// ComputeAll evaluates every metric against the input. A failing metric
// aborts with a *CalculationError, except ARI, which degrades to 0 so
// one readability hiccup cannot sink a whole analysis.
func ComputeAll(in Input) (map[string]float64, error) {
	out := make(map[string]float64, len(registry))
	for _, def := range registry {
		v, err := def.Compute(in)
		if err != nil {
			if def.Name == "ARI" {
				out[def.Name] = 0
				continue
			}
			return nil, &CalculationError{Metric: def.Name, Err: err}
		}
		out[def.Name] = v
	}
	return out, nil
}
