package trends

import (
	"sort"

	"github.com/gofrs/uuid"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/pkg/utils"
)

const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"

	// trendMinEntries is the minimum series length before the half-split
	// comparison carries any signal.
	trendMinEntries = 4
	// trendThreshold is the half-to-half average difference that separates
	// stable from improving/declining.
	trendThreshold = 0.5
)

// Analyzer runs the trend computations. It holds only the display catalog;
// every method is a pure function of its inputs.
type Analyzer struct {
	catalog Catalog
}

func NewAnalyzer(catalog Catalog) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// MoodTrend builds the mood line-chart report for one pre-fetched window.
// Entries whose score cannot be normalized are dropped from the series but
// never fail the report. prev carries the immediately preceding window and
// feeds the period-over-period delta.
func (a *Analyzer) MoodTrend(entries, prev []entity.Diary, p Period) entity.MoodTrendReport {
	daily, scores := moodSeries(entries)

	report := entity.MoodTrendReport{
		Period:       string(p.Kind),
		StartDate:    utils.FormatDate(p.Start),
		EndDate:      utils.FormatDate(p.End),
		Daily:        daily,
		Average:      Mean(scores),
		Median:       utils.RoundToTwoDecimals(Median(scores)),
		StdDev:       utils.RoundToTwoDecimals(StdDev(scores)),
		Trend:        classifyTrend(scores),
		TotalEntries: len(daily),
		LoggedDays:   distinctDates(daily),
		TotalDays:    p.Days(),
	}

	if _, prevScores := moodSeries(prev); len(prevScores) > 0 {
		diff := utils.RoundToTwoDecimals(report.Average - Mean(prevScores))
		report.TrendDiff = &diff
	}

	return report
}

// CommunityMood is the all-users variant of MoodTrend. On top of the shared
// aggregate it ranks the calling user's own average within the population's
// individual entry scores.
func (a *Analyzer) CommunityMood(entries, prev []entity.Diary, me uuid.UUID, p Period) entity.CommunityMoodReport {
	report := entity.CommunityMoodReport{
		MoodTrendReport: a.MoodTrend(entries, prev, p),
	}

	_, population := moodSeries(entries)
	var mine []float64
	for _, d := range entries {
		if d.UserID != me {
			continue
		}
		if score, ok := ParseScore(d.MoodScore).Normalize(); ok {
			mine = append(mine, score)
		}
	}

	if len(mine) > 0 && len(population) > 0 {
		rank := PercentileRank(Mean(mine), population)
		report.PercentileOfMe = &rank
	}

	return report
}

// moodSeries normalizes and orders the entries chronologically, returning
// the chart points and the bare score series.
func moodSeries(entries []entity.Diary) ([]entity.MoodPoint, []float64) {
	ordered := make([]entity.Diary, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	var daily []entity.MoodPoint
	var scores []float64
	for _, d := range ordered {
		score, ok := ParseScore(d.MoodScore).Normalize()
		if !ok {
			continue
		}
		daily = append(daily, entity.MoodPoint{Date: utils.FormatDate(d.Date), Score: score})
		scores = append(scores, score)
	}
	return daily, scores
}

// classifyTrend compares the first and second half of the chronological
// series. The floor split hands the odd element to the second half. Short
// series default to stable: four points is the least that says anything.
func classifyTrend(scores []float64) string {
	if len(scores) < trendMinEntries {
		return TrendStable
	}

	mid := len(scores) / 2
	firstHalf := rawMean(scores[:mid])
	secondHalf := rawMean(scores[mid:])

	switch {
	case secondHalf > firstHalf+trendThreshold:
		return TrendImproving
	case secondHalf < firstHalf-trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func rawMean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func distinctDates(points []entity.MoodPoint) int {
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		seen[p.Date] = struct{}{}
	}
	return len(seen)
}
