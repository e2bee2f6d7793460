package trends

import (
	"testing"

	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternHeatmap(t *testing.T) {
	mine := []entity.Activity{
		timedActivity("2025-07-14", "09:00:00"), // Monday morning
		timedActivity("2025-07-14", "09:30:00"),
		timedActivity("2025-07-20", "22:00:00"), // Sunday night
	}

	report := testAnalyzer().Pattern(mine, nil, weekOf("2025-07-16"))

	assert.Equal(t, 3, report.TotalTimed)
	assert.Equal(t, 2, report.Heatmap[0][9], "Monday is row 0")
	assert.Equal(t, 1, report.Heatmap[6][22], "Sunday is row 6")
}

func TestPatternSkipsAllDayAndBrokenTimes(t *testing.T) {
	bad := timedActivity("2025-07-14", "not-a-time")
	allDay := activityOn("2025-07-14", "normal")
	allDay.AllDay = true

	report := testAnalyzer().Pattern([]entity.Activity{bad, allDay}, nil, weekOf("2025-07-16"))

	assert.Equal(t, 0, report.TotalTimed)
	assert.Empty(t, report.PeakSummary)
}

func TestPatternPeakSlots(t *testing.T) {
	mine := []entity.Activity{
		timedActivity("2025-07-14", "06:00"),
		timedActivity("2025-07-14", "10:00"),
		timedActivity("2025-07-15", "12:00"),
		timedActivity("2025-07-16", "18:00"),
		timedActivity("2025-07-17", "02:00"),
		timedActivity("2025-07-17", "16:00"), // the 15-16 gap belongs to night
	}

	report := testAnalyzer().Pattern(mine, nil, weekOf("2025-07-16"))

	require.Len(t, report.PeakTimes, 4)
	counts := map[string]int{}
	for _, slot := range report.PeakTimes {
		counts[slot.Slot] = slot.Count
	}
	assert.Equal(t, 2, counts["morning"])
	assert.Equal(t, 1, counts["noon"])
	assert.Equal(t, 1, counts["evening"])
	assert.Equal(t, 2, counts["night"])

	assert.Contains(t, report.PeakSummary, "ช่วงเช้า", "dominant slot leads the summary")
}

func TestPatternCommunityCategoryMix(t *testing.T) {
	community := []entity.Activity{
		categorized("2025-07-14", "normal", "work"),
		categorized("2025-07-14", "normal", "work"),
		categorized("2025-07-15", "normal", "study"),
		activityOn("2025-07-15", "normal"), // uncategorized -> "other"
	}

	report := testAnalyzer().Pattern(nil, community, weekOf("2025-07-16"))

	require.Len(t, report.CategoryMix, 3)
	assert.Equal(t, "work", report.CategoryMix[0].Category)
	assert.Equal(t, 50.0, report.CategoryMix[0].Percentage)
	assert.Equal(t, "other", report.CategoryMix[2].Category)
}

func TestPatternCategoryMixCapped(t *testing.T) {
	var community []entity.Activity
	for _, cat := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		community = append(community, categorized("2025-07-14", "normal", cat))
	}

	report := testAnalyzer().Pattern(nil, community, weekOf("2025-07-16"))

	assert.Len(t, report.CategoryMix, 6)
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 0, isoWeekday(mustDate("2025-07-14"))) // Monday
	assert.Equal(t, 6, isoWeekday(mustDate("2025-07-20"))) // Sunday
}

func TestSlotForHour(t *testing.T) {
	assert.Equal(t, "morning", slotForHour(5))
	assert.Equal(t, "morning", slotForHour(10))
	assert.Equal(t, "noon", slotForHour(11))
	assert.Equal(t, "noon", slotForHour(14))
	assert.Equal(t, "night", slotForHour(15))
	assert.Equal(t, "evening", slotForHour(17))
	assert.Equal(t, "evening", slotForHour(20))
	assert.Equal(t, "night", slotForHour(21))
	assert.Equal(t, "night", slotForHour(0))
	assert.Equal(t, "night", slotForHour(4))
}
