package trends

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekOf(date string) Period {
	return Resolve(PeriodWeek, 0, mustDate(date))
}

func TestMoodTrendImproving(t *testing.T) {
	p := weekOf("2025-07-16")
	entries := []entity.Diary{
		diaryOn("2025-07-14", "3.0"),
		diaryOn("2025-07-15", "3.5"),
		diaryOn("2025-07-16", "4.0"),
		diaryOn("2025-07-17", "4.5"),
		diaryOn("2025-07-18", "5.0"),
	}

	report := testAnalyzer().MoodTrend(entries, nil, p)

	assert.Equal(t, "week", report.Period)
	assert.Equal(t, "2025-07-14", report.StartDate)
	assert.Equal(t, "2025-07-20", report.EndDate)
	assert.Equal(t, 4.0, report.Average)
	assert.Equal(t, 4.0, report.Median)
	assert.InDelta(t, 0.79, report.StdDev, 1e-9)
	assert.Equal(t, TrendImproving, report.Trend)
	assert.Equal(t, 5, report.TotalEntries)
	assert.Equal(t, 5, report.LoggedDays)
	assert.Equal(t, 7, report.TotalDays)
	assert.Nil(t, report.TrendDiff, "no previous window data")
	require.Len(t, report.Daily, 5)
	assert.Equal(t, entity.MoodPoint{Date: "2025-07-14", Score: 3.0}, report.Daily[0])
}

func TestMoodTrendLegacyAndBrokenScores(t *testing.T) {
	p := weekOf("2025-07-16")
	entries := []entity.Diary{
		diaryOn("2025-07-14", "good"),
		diaryOn("2025-07-15", "bad"),
		diaryOn("2025-07-16", "mystery"),
		diaryOn("2025-07-17", ""),
	}

	report := testAnalyzer().MoodTrend(entries, nil, p)

	// good=4, bad=2; the unparseable and absent rows are dropped
	assert.Equal(t, 2, report.TotalEntries)
	assert.Equal(t, 3.0, report.Average)
	assert.Equal(t, TrendStable, report.Trend, "too few points to call a direction")
}

func TestMoodTrendOrdersUnsortedInput(t *testing.T) {
	p := weekOf("2025-07-16")
	entries := []entity.Diary{
		diaryOn("2025-07-18", "5"),
		diaryOn("2025-07-14", "1"),
		diaryOn("2025-07-16", "3"),
	}

	report := testAnalyzer().MoodTrend(entries, nil, p)

	require.Len(t, report.Daily, 3)
	assert.Equal(t, "2025-07-14", report.Daily[0].Date)
	assert.Equal(t, "2025-07-16", report.Daily[1].Date)
	assert.Equal(t, "2025-07-18", report.Daily[2].Date)
}

func TestMoodTrendDiff(t *testing.T) {
	p := weekOf("2025-07-16")
	entries := []entity.Diary{
		diaryOn("2025-07-14", "4"),
		diaryOn("2025-07-15", "4"),
	}
	prev := []entity.Diary{
		diaryOn("2025-07-07", "3"),
		diaryOn("2025-07-08", "3"),
	}

	report := testAnalyzer().MoodTrend(entries, prev, p)

	require.NotNil(t, report.TrendDiff)
	assert.Equal(t, 1.0, *report.TrendDiff)
}

func TestMoodTrendEmpty(t *testing.T) {
	report := testAnalyzer().MoodTrend(nil, nil, weekOf("2025-07-16"))

	assert.Equal(t, 0.0, report.Average)
	assert.Equal(t, TrendStable, report.Trend)
	assert.Equal(t, 0, report.TotalEntries)
	assert.Empty(t, report.Daily)
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, TrendStable, classifyTrend([]float64{5, 1, 5}), "short series is always stable")
	assert.Equal(t, TrendImproving, classifyTrend([]float64{2, 2, 3, 3}))
	assert.Equal(t, TrendDeclining, classifyTrend([]float64{4, 4, 3, 3}))
	assert.Equal(t, TrendStable, classifyTrend([]float64{3, 3, 3.4, 3.4}))
	// floor split hands the odd element to the second half
	assert.Equal(t, TrendImproving, classifyTrend([]float64{3, 3.5, 4, 4.5, 5}))
}

func TestCommunityMoodPercentile(t *testing.T) {
	me := uuid.Must(uuid.NewV4())
	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())

	p := weekOf("2025-07-16")
	entries := []entity.Diary{
		diaryBy(me, "2025-07-14", "3"),
		diaryBy(alice, "2025-07-14", "1"),
		diaryBy(alice, "2025-07-15", "2"),
		diaryBy(bob, "2025-07-14", "4"),
		diaryBy(bob, "2025-07-15", "5"),
	}

	report := testAnalyzer().CommunityMood(entries, nil, me, p)

	// my average 3 sits above 2 of the 5 individual scores
	require.NotNil(t, report.PercentileOfMe)
	assert.Equal(t, 0.4, *report.PercentileOfMe)
	assert.Equal(t, 5, report.TotalEntries)
}

func TestCommunityMoodWithoutOwnEntries(t *testing.T) {
	me := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	report := testAnalyzer().CommunityMood([]entity.Diary{
		diaryBy(other, "2025-07-14", "4"),
	}, nil, me, weekOf("2025-07-16"))

	assert.Nil(t, report.PercentileOfMe)
}
