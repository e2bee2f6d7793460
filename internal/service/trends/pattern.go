package trends

import (
	"fmt"
	"time"

	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/pkg/utils"
)

// categoryMixLimit caps the community category mix.
const categoryMixLimit = 6

type peakSlot struct {
	key   string
	label string
}

// Bucket order is fixed for the chart legend. Morning is 5-10, noon 11-14,
// evening 17-20; everything else, including the small hours, is night.
var peakSlots = []peakSlot{
	{"morning", "ช่วงเช้า"},
	{"noon", "ช่วงกลางวัน"},
	{"evening", "ช่วงเย็น"},
	{"night", "ช่วงกลางคืน"},
}

// Pattern builds the weekday/hour heatmap and the coarse time-of-day split
// from the caller's own timed activities, plus a community-wide category mix
// for the same window. All-day activities and malformed times are skipped,
// never fatal.
func (a *Analyzer) Pattern(mine, community []entity.Activity, p Period) entity.ActivityPatternReport {
	report := entity.ActivityPatternReport{
		Period:      string(p.Kind),
		StartDate:   utils.FormatDate(p.Start),
		EndDate:     utils.FormatDate(p.End),
		PeakTimes:   []entity.PeakSlot{},
		CategoryMix: []entity.CategoryShare{},
	}

	slotCounts := map[string]int{}
	for _, act := range mine {
		hour, ok := activityHour(act)
		if !ok {
			continue
		}
		report.Heatmap[isoWeekday(act.Date)][hour]++
		report.TotalTimed++
		slotCounts[slotForHour(hour)]++
	}

	dominant := entity.PeakSlot{}
	for _, slot := range peakSlots {
		count := slotCounts[slot.key]
		share := 0.0
		if report.TotalTimed > 0 {
			share = utils.RoundToOneDecimal(float64(count) / float64(report.TotalTimed) * 100)
		}
		ps := entity.PeakSlot{Slot: slot.key, Label: slot.label, Count: count, Percentage: share}
		report.PeakTimes = append(report.PeakTimes, ps)
		if count > dominant.Count {
			dominant = ps
		}
	}
	if dominant.Count > 0 {
		report.PeakSummary = fmt.Sprintf("คุณมักทำกิจกรรม%sมากที่สุด (%.1f%%)",
			dominant.Label, dominant.Percentage)
	}

	if len(community) > 0 {
		categories := make([]string, 0, len(community))
		for _, act := range community {
			category := a.catalog.OtherCategory
			if act.Category != nil && *act.Category != "" {
				category = *act.Category
			}
			categories = append(categories, category)
		}
		for _, tc := range TopK(categories, categoryMixLimit) {
			report.CategoryMix = append(report.CategoryMix, entity.CategoryShare{
				Category:   tc.Token,
				Label:      a.catalog.CategoryLabel(tc.Token),
				Count:      tc.Count,
				Percentage: utils.RoundToOneDecimal(float64(tc.Count) / float64(len(community)) * 100),
			})
		}
	}

	return report
}

// activityHour extracts the hour of a timed activity. All-day rows and
// unparseable time strings report ok=false.
func activityHour(act entity.Activity) (int, bool) {
	if act.AllDay || act.Time == nil || *act.Time == "" {
		return 0, false
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, *act.Time); err == nil {
			return t.Hour(), true
		}
	}
	return 0, false
}

// isoWeekday maps time.Weekday onto 0=Monday..6=Sunday.
func isoWeekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

func slotForHour(hour int) string {
	switch {
	case hour >= 5 && hour <= 10:
		return "morning"
	case hour >= 11 && hour <= 14:
		return "noon"
	case hour >= 17 && hour <= 20:
		return "evening"
	default:
		return "night"
	}
}
