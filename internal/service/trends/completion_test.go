package trends

import (
	"testing"

	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionEmpty(t *testing.T) {
	report := testAnalyzer().Completion(nil, weekOf("2025-07-16"))

	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0.0, report.OverallRate)
	assert.NotNil(t, report.Data)
	assert.Empty(t, report.Data)
	assert.NotNil(t, report.Daily)
	assert.Empty(t, report.Daily)
	assert.Nil(t, report.TopCategoryOfCompleted)
}

func TestCompletionOverallRate(t *testing.T) {
	var activities []entity.Activity
	for i := 0; i < 2; i++ {
		activities = append(activities, activityOn("2025-07-14", "done"))
	}
	for i := 0; i < 9; i++ {
		activities = append(activities, activityOn("2025-07-14", "normal"))
	}

	report := testAnalyzer().Completion(activities, weekOf("2025-07-16"))

	assert.Equal(t, 11, report.Total)
	assert.Equal(t, 2, report.Completed)
	assert.Equal(t, 18.2, report.OverallRate)
}

func TestCompletionStatusSlices(t *testing.T) {
	var activities []entity.Activity
	for i := 0; i < 4; i++ {
		activities = append(activities, activityOn("2025-07-14", "done"))
	}
	for i := 0; i < 3; i++ {
		activities = append(activities, activityOn("2025-07-14", "normal"))
	}
	for i := 0; i < 2; i++ {
		activities = append(activities, activityOn("2025-07-14", "urgent"))
	}

	report := testAnalyzer().Completion(activities, weekOf("2025-07-16"))

	require.Len(t, report.Data, 3)
	assert.Equal(t, "done", report.Data[0].Status)
	assert.Equal(t, "Done", report.Data[0].Label)
	assert.Equal(t, 44.4, report.Data[0].Percentage)
	assert.Equal(t, 33.3, report.Data[1].Percentage)
	assert.Equal(t, 22.2, report.Data[2].Percentage)

	assert.Equal(t, 5, report.InProgress, "normal and urgent both count as in progress")
	assert.Equal(t, 2, report.Urgent)
}

func TestCompletionUnknownStatusFoldsToNormal(t *testing.T) {
	activities := []entity.Activity{
		activityOn("2025-07-14", "postponed"),
		activityOn("2025-07-14", ""),
	}

	report := testAnalyzer().Completion(activities, weekOf("2025-07-16"))

	assert.Equal(t, 2, report.InProgress)
	require.Len(t, report.Data, 1)
	assert.Equal(t, "normal", report.Data[0].Status)
}

func TestDailyCompletionAndStreak(t *testing.T) {
	var activities []entity.Activity
	addDay := func(date string, done, rest int) {
		for i := 0; i < done; i++ {
			activities = append(activities, activityOn(date, "done"))
		}
		for i := 0; i < rest; i++ {
			activities = append(activities, activityOn(date, "normal"))
		}
	}
	// rates: 60, 70, 40, 80, 90
	addDay("2025-07-14", 6, 4)
	addDay("2025-07-15", 7, 3)
	addDay("2025-07-16", 4, 6)
	addDay("2025-07-17", 8, 2)
	addDay("2025-07-18", 9, 1)

	report := testAnalyzer().Completion(activities, weekOf("2025-07-16"))

	require.Len(t, report.Daily, 5)
	assert.Equal(t, entity.DailyCompletion{Date: "2025-07-14", Total: 10, Done: 6, Rate: 60}, report.Daily[0])
	assert.Equal(t, 40.0, report.Daily[2].Rate)
	assert.Equal(t, 2, report.StreakBest, "the 40% day breaks the streak")
}

func TestBestStreakSkipsMissingDays(t *testing.T) {
	// a day with no rows at all neither extends nor breaks the run
	daily := []entity.DailyCompletion{
		{Date: "2025-07-14", Rate: 100},
		{Date: "2025-07-16", Rate: 50},
		{Date: "2025-07-18", Rate: 100},
	}
	assert.Equal(t, 3, bestStreak(daily))

	assert.Equal(t, 0, bestStreak(nil))
	assert.Equal(t, 0, bestStreak([]entity.DailyCompletion{{Rate: 49.9}}))
}

func TestTopCategoryOfCompleted(t *testing.T) {
	activities := []entity.Activity{
		categorized("2025-07-14", "done", "work"),
		categorized("2025-07-15", "done", "work"),
		categorized("2025-07-15", "done", "study"),
		categorized("2025-07-16", "normal", "study"),
		activityOn("2025-07-16", "done"), // uncategorized, ignored
	}

	report := testAnalyzer().Completion(activities, weekOf("2025-07-16"))

	require.NotNil(t, report.TopCategoryOfCompleted)
	assert.Equal(t, "Work", *report.TopCategoryOfCompleted)
}

func TestTopCategoryNilWhenNoneCompleted(t *testing.T) {
	report := testAnalyzer().Completion([]entity.Activity{
		categorized("2025-07-14", "normal", "work"),
	}, weekOf("2025-07-16"))

	assert.Nil(t, report.TopCategoryOfCompleted)
}
