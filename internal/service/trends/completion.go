package trends

import (
	"sort"

	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/pkg/utils"
)

// streakRateThreshold is the per-day completion rate that keeps a streak
// alive.
const streakRateThreshold = 50.0

// Completion summarizes activity discipline for the window: status counts,
// the overall completion rate, a per-day breakdown and the best streak of
// qualifying days. Unknown statuses fold into "normal" instead of failing.
func (a *Analyzer) Completion(activities []entity.Activity, p Period) entity.CompletionReport {
	report := entity.CompletionReport{
		Period: string(p.Kind),
		Data:   []entity.StatusSlice{},
		Daily:  []entity.DailyCompletion{},
	}

	total := len(activities)
	if total == 0 {
		return report
	}

	counts := map[string]int{}
	for _, act := range activities {
		counts[entity.NormalizeActivityStatus(act.Status)]++
	}

	report.Total = total
	report.Completed = counts[entity.ActivityStatusDone]
	report.InProgress = counts[entity.ActivityStatusNormal] + counts[entity.ActivityStatusUrgent]
	report.Cancelled = counts[entity.ActivityStatusCancelled]
	report.Urgent = counts[entity.ActivityStatusUrgent]
	report.OverallRate = utils.RoundToOneDecimal(float64(report.Completed) / float64(total) * 100)

	for _, status := range []string{
		entity.ActivityStatusDone,
		entity.ActivityStatusNormal,
		entity.ActivityStatusUrgent,
		entity.ActivityStatusCancelled,
	} {
		count := counts[status]
		if count == 0 {
			continue
		}
		style := a.catalog.Statuses[status]
		report.Data = append(report.Data, entity.StatusSlice{
			Status:     status,
			Label:      style.Label,
			Count:      count,
			Percentage: utils.RoundToOneDecimal(float64(count) / float64(total) * 100),
			Color:      style.Color,
		})
	}
	sort.SliceStable(report.Data, func(i, j int) bool {
		return report.Data[i].Count > report.Data[j].Count
	})

	report.Daily = dailyCompletion(activities)
	report.StreakBest = bestStreak(report.Daily)
	report.TopCategoryOfCompleted = a.topCompletedCategory(activities)

	return report
}

func dailyCompletion(activities []entity.Activity) []entity.DailyCompletion {
	type tally struct{ total, done int }
	perDay := map[string]*tally{}
	for _, act := range activities {
		date := utils.FormatDate(act.Date)
		t := perDay[date]
		if t == nil {
			t = &tally{}
			perDay[date] = t
		}
		t.total++
		if entity.NormalizeActivityStatus(act.Status) == entity.ActivityStatusDone {
			t.done++
		}
	}

	dates := make([]string, 0, len(perDay))
	for date := range perDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	daily := make([]entity.DailyCompletion, 0, len(dates))
	for _, date := range dates {
		t := perDay[date]
		daily = append(daily, entity.DailyCompletion{
			Date:  date,
			Total: t.total,
			Done:  t.done,
			Rate:  utils.RoundToOneDecimal(float64(t.done) / float64(t.total) * 100),
		})
	}
	return daily
}

// bestStreak finds the longest run of consecutive per-day rows at or above
// the rate threshold. Days with no activities produce no row at all, so they
// neither extend nor break a streak; the streak counts qualifying logged
// days, not calendar days.
func bestStreak(daily []entity.DailyCompletion) int {
	best, current := 0, 0
	for _, day := range daily {
		if day.Rate >= streakRateThreshold {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	return best
}

func (a *Analyzer) topCompletedCategory(activities []entity.Activity) *string {
	var categories []string
	for _, act := range activities {
		if entity.NormalizeActivityStatus(act.Status) != entity.ActivityStatusDone {
			continue
		}
		if act.Category == nil || *act.Category == "" {
			continue
		}
		categories = append(categories, *act.Category)
	}

	ranked := TopK(categories, 1)
	if len(ranked) == 0 {
		return nil
	}
	label := a.catalog.CategoryLabel(ranked[0].Token)
	return &label
}
