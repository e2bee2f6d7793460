package trends

import "strconv"

// Mood scores span three historical schema versions: the original two-level
// 'good'/'bad' tokens, numeric strings written by the star-rating client,
// and missing values. ParseScore is the single place that classifies a raw
// column value; everything downstream switches on the closed variant.

type ScoreKind int

const (
	ScoreAbsent ScoreKind = iota
	ScoreNumeric
	ScoreLegacyGood
	ScoreLegacyBad
	ScoreUnparseable
)

type RawScore struct {
	Kind  ScoreKind
	Value float64
}

func ParseScore(raw *string) RawScore {
	if raw == nil || *raw == "" {
		return RawScore{Kind: ScoreAbsent}
	}
	switch *raw {
	case "good":
		return RawScore{Kind: ScoreLegacyGood}
	case "bad":
		return RawScore{Kind: ScoreLegacyBad}
	}
	if v, err := strconv.ParseFloat(*raw, 64); err == nil {
		return RawScore{Kind: ScoreNumeric, Value: v}
	}
	return RawScore{Kind: ScoreUnparseable}
}

// Normalize maps a raw score onto the canonical 1..5 scale. The legacy
// tokens sit at the midpoints of their old halves: good=4, bad=2.
// Unparseable and absent values report ok=false and are simply excluded
// from numeric series; a bad row never fails a whole report.
func (s RawScore) Normalize() (float64, bool) {
	switch s.Kind {
	case ScoreNumeric:
		return s.Value, true
	case ScoreLegacyGood:
		return 4.0, true
	case ScoreLegacyBad:
		return 2.0, true
	default:
		return 0, false
	}
}

const (
	BucketPositive = "positive"
	BucketNeutral  = "neutral"
	BucketNegative = "negative"
)

// BucketFor classifies a normalized score. The whole entry lands in exactly
// one bucket; tag attribution follows the entry, never individual tags.
func BucketFor(score float64) string {
	switch {
	case score >= 4:
		return BucketPositive
	case score <= 2:
		return BucketNegative
	default:
		return BucketNeutral
	}
}
