package trends

import (
	"fmt"

	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/pkg/utils"
)

const (
	// imbalanceThreshold flags a single category eating most of the window.
	imbalanceThreshold = 60.0
	// healthMinShare / healthMinTotal gate the under-investment nudge so a
	// near-empty week does not produce health advice.
	healthMinShare = 10.0
	healthMinTotal = 10
)

// LifeBalance breaks the window's activities down by category and attaches
// heuristic warnings. The first warning generated is surfaced as the primary
// one; Warnings keeps them all.
func (a *Analyzer) LifeBalance(activities []entity.Activity, p Period) entity.LifeBalanceReport {
	report := entity.LifeBalanceReport{
		Period:   string(p.Kind),
		Data:     []entity.CategorySlice{},
		Warnings: []string{},
	}

	total := len(activities)
	if total == 0 {
		return report
	}
	report.Total = total

	categories := make([]string, 0, total)
	for _, act := range activities {
		category := a.catalog.OtherCategory
		if act.Category != nil && *act.Category != "" {
			category = *act.Category
		}
		categories = append(categories, category)
	}

	for _, tc := range TopK(categories, -1) {
		style := a.catalog.CategoryStyle(tc.Token)
		report.Data = append(report.Data, entity.CategorySlice{
			Category:   tc.Token,
			Label:      style.Label,
			Emoji:      style.Emoji,
			Color:      style.Color,
			Count:      tc.Count,
			Percentage: utils.RoundToOneDecimal(float64(tc.Count) / float64(total) * 100),
		})
	}

	for _, item := range report.Data {
		if item.Percentage >= imbalanceThreshold {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"คุณใช้เวลากับ%sมากเกินไป (%.1f%%) ลองสร้างสมดุลชีวิตบ้างนะ",
				item.Label, item.Percentage))
			break
		}
	}

	healthShare := 0.0
	for _, item := range report.Data {
		if a.catalog.IsHealthCategory(item.Category) {
			healthShare = item.Percentage
			break
		}
	}
	if healthShare < healthMinShare && total >= healthMinTotal {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"คุณใช้เวลาดูแลสุขภาพแค่ %.1f%% ลองเพิ่มกิจกรรมออกกำลังกายบ้างนะ",
			healthShare))
	}

	if len(report.Warnings) > 0 {
		report.Warning = &report.Warnings[0]
	}

	return report
}
