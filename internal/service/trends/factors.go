package trends

import (
	"github.com/lifelog-app/lifelog-backend/internal/entity"
)

// defaultFactorLimit caps each bucket of the mood-factor ranking.
const defaultFactorLimit = 5

// neutralDefaultScore stands in for entries that carry tags but no rating;
// a diary can name feelings without scoring the day.
const neutralDefaultScore = 3.0

// MoodFactors ranks the emoji tags by how often they appear on positive,
// neutral and negative days. An entry's tags all follow the entry's single
// score bucket; three tags on a positive day are three positive counts.
// Entries without tags are ignored entirely, including in TotalEntries.
func (a *Analyzer) MoodFactors(entries []entity.Diary, p Period, limit int) entity.MoodFactorsReport {
	if limit <= 0 {
		limit = defaultFactorLimit
	}

	var positive, negative, neutral []string
	considered := 0

	for _, d := range entries {
		if len(d.MoodTags) == 0 {
			continue
		}
		considered++

		score, ok := ParseScore(d.MoodScore).Normalize()
		if !ok {
			score = neutralDefaultScore
		}

		switch BucketFor(score) {
		case BucketPositive:
			positive = append(positive, d.MoodTags...)
		case BucketNegative:
			negative = append(negative, d.MoodTags...)
		default:
			neutral = append(neutral, d.MoodTags...)
		}
	}

	return entity.MoodFactorsReport{
		Period:       string(p.Kind),
		Positive:     a.rankTags(positive, limit),
		Negative:     a.rankTags(negative, limit),
		Neutral:      a.rankTags(neutral, limit),
		TotalEntries: considered,
	}
}

func (a *Analyzer) rankTags(tags []string, limit int) []entity.TagCount {
	ranked := TopK(tags, limit)
	out := make([]entity.TagCount, 0, len(ranked))
	for _, tc := range ranked {
		out = append(out, entity.TagCount{
			Tag:   tc.Token,
			Label: a.catalog.TagLabel(tc.Token),
			Count: tc.Count,
		})
	}
	return out
}
