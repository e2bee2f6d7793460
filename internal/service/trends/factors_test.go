package trends

import (
	"testing"

	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodFactorsBucketsByEntryScore(t *testing.T) {
	p := weekOf("2025-07-16")
	entries := []entity.Diary{
		diaryOn("2025-07-14", "5", "😊", "🚀"),
		diaryOn("2025-07-15", "4", "😊"),
		diaryOn("2025-07-16", "1", "😫"),
		diaryOn("2025-07-17", "3", "🤔"),
		diaryOn("2025-07-18", "5"), // no tags, ignored entirely
	}

	report := testAnalyzer().MoodFactors(entries, p, 5)

	assert.Equal(t, 4, report.TotalEntries, "tagless entries are not counted")

	require.Len(t, report.Positive, 2)
	assert.Equal(t, entity.TagCount{Tag: "😊", Label: "happy", Count: 2}, report.Positive[0])
	assert.Equal(t, 1, report.Positive[1].Count)

	require.Len(t, report.Negative, 1)
	assert.Equal(t, "😫", report.Negative[0].Tag)

	require.Len(t, report.Neutral, 1)
	assert.Equal(t, "🤔", report.Neutral[0].Tag)
	// unknown tags pass through as their own label
	assert.Equal(t, "🤔", report.Neutral[0].Label)
}

func TestMoodFactorsUnscoredEntriesAreNeutral(t *testing.T) {
	entries := []entity.Diary{
		diaryOn("2025-07-14", "", "😊"),
		diaryOn("2025-07-15", "garbage", "😊"),
	}

	report := testAnalyzer().MoodFactors(entries, weekOf("2025-07-16"), 5)

	assert.Empty(t, report.Positive)
	assert.Empty(t, report.Negative)
	require.Len(t, report.Neutral, 1)
	assert.Equal(t, 2, report.Neutral[0].Count)
}

func TestMoodFactorsLimit(t *testing.T) {
	entries := []entity.Diary{
		diaryOn("2025-07-14", "5", "a", "b", "c", "d"),
		diaryOn("2025-07-15", "5", "a", "b"),
		diaryOn("2025-07-16", "5", "a"),
	}

	report := testAnalyzer().MoodFactors(entries, weekOf("2025-07-16"), 2)

	require.Len(t, report.Positive, 2)
	assert.Equal(t, "a", report.Positive[0].Tag)
	assert.Equal(t, 3, report.Positive[0].Count)
	assert.Equal(t, "b", report.Positive[1].Tag)

	// non-positive limits fall back to the default
	report = testAnalyzer().MoodFactors(entries, weekOf("2025-07-16"), 0)
	assert.Len(t, report.Positive, 4)
}
