// Package mapping converts raw metric values into CEFR scores and the
// final CEFR-J level label.
package mapping

import (
	"fmt"
	"math"
	"sort"
)

// coefficient holds the fitted linear regression for one metric.
type coefficient struct {
	slope     float64
	intercept float64
}

var coefficients = map[string]coefficient{
	"AvrDiff":     {6.417, -7.184},
	"BperA":       {13.146, 0.428},
	"CVV1":        {1.1059, -1.208},
	"AvrFreqRank": {0.004, -0.608},
	"ARI":         {0.607, -1.632},
	"VperSent":    {2.203, -2.486},
	"POStypes":    {1.768, -12.006},
	"LenNP":       {2.629, -6.697},
}

// maxScore caps regression output. Scores are not floored: a strongly
// negative value still drags the trimmed mean down.
const maxScore = 7.0

// Score maps one raw metric value to its CEFR score.
func Score(metric string, raw float64) (float64, error) {
	c, ok := coefficients[metric]
	if !ok {
		return 0, fmt.Errorf("unknown metric %q", metric)
	}
	score := c.slope*raw + c.intercept
	if score > maxScore {
		score = maxScore
	}
	return score, nil
}

// ScoreAll maps every raw metric value to a CEFR score rounded to two
// decimals, keyed "<Metric>_CEFR". Rounding happens before aggregation
// so reported per-metric scores and the final level stay consistent.
func ScoreAll(raw map[string]float64) (map[string]float64, error) {
	scores := make(map[string]float64, len(raw))
	for metric, value := range raw {
		score, err := Score(metric, value)
		if err != nil {
			return nil, err
		}
		scores[metric+"_CEFR"] = round2(score)
	}
	return scores, nil
}

// FinalScore aggregates per-metric CEFR scores with a trimmed mean:
// with more than two scores the single lowest and single highest are
// dropped. Two or fewer scores are averaged as-is; none yields 0.
func FinalScore(scores map[string]float64) float64 {
	values := make([]float64, 0, len(scores))
	for _, v := range scores {
		values = append(values, v)
	}
	switch len(values) {
	case 0:
		return 0
	case 1, 2:
		return mean(values)
	}

	sort.Float64s(values)
	return mean(values[1 : len(values)-1])
}

// boundaries maps a final score to the 12-level CEFR-J scale. Each
// entry holds the exclusive upper bound of its level.
var boundaries = []struct {
	limit float64
	level string
}{
	{0.5, "preA1"},
	{0.84, "A1.1"},
	{1.17, "A1.2"},
	{1.5, "A1.3"},
	{2.0, "A2.1"},
	{2.5, "A2.2"},
	{3.0, "B1.1"},
	{3.5, "B1.2"},
	{4.0, "B2.1"},
	{4.5, "B2.2"},
	{5.5, "C1"},
	{math.Inf(1), "C2"},
}

// LevelFor returns the CEFR-J label for a final score.
func LevelFor(score float64) string {
	for _, b := range boundaries {
		if score < b.limit {
			return b.level
		}
	}
	return "C2"
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
