package trends

import (
	"math"
	"sort"

	"github.com/lifelog-app/lifelog-backend/pkg/utils"
)

// Statistic helpers over small in-memory series. All of them are total:
// empty input yields the documented zero value, never an error.

// Mean returns the average rounded to one decimal, 0 for an empty series.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return utils.RoundToOneDecimal(sum / float64(len(xs)))
}

// Median returns the middle value (average of the two middle values for an
// even-length series), 0 when empty.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// StdDev returns the sample standard deviation (Bessel-corrected, n-1
// divisor), 0 when fewer than two values are present.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return math.Sqrt(sq / float64(len(xs)-1))
}

// PercentileRank is the fraction of the population strictly below value,
// in [0, 1]. Ties do not count toward the rank; that keeps the rank
// monotonic when many users share the same score. 0 for an empty population.
func PercentileRank(value float64, population []float64) float64 {
	if len(population) == 0 {
		return 0
	}
	below := 0
	for _, x := range population {
		if x < value {
			below++
		}
	}
	return float64(below) / float64(len(population))
}

type TokenCount struct {
	Token string
	Count int
}

// TopK counts token frequencies and returns at most k tokens ordered by
// count descending. Equally frequent tokens keep their first-occurrence
// order, so repeated calls over the same input are byte-identical.
func TopK(tokens []string, k int) []TokenCount {
	counts := make(map[string]int, len(tokens))
	var order []string
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	ranked := make([]TokenCount, 0, len(order))
	for _, t := range order {
		ranked = append(ranked, TokenCount{Token: t, Count: counts[t]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if k >= 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// BucketRound snaps a normalized score onto the integer 1..5 scale used by
// mood-distribution histograms.
func BucketRound(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 1 {
		return 1
	}
	if rounded > 5 {
		return 5
	}
	return rounded
}
