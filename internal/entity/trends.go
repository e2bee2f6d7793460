package entity

// Report payloads produced by the trends engine. Field names follow the
// dashboard API contract consumed by the mobile client.

type MoodPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

type MoodTrendReport struct {
	Period       string      `json:"period"`
	StartDate    string      `json:"start_date"`
	EndDate      string      `json:"end_date"`
	Daily        []MoodPoint `json:"daily"`
	Average      float64     `json:"average"`
	Median       float64     `json:"median"`
	StdDev       float64     `json:"stddev"`
	Trend        string      `json:"trend"`
	TrendDiff    *float64    `json:"trend_diff"`
	TotalEntries int         `json:"total_entries"`
	LoggedDays   int         `json:"logged_days"`
	TotalDays    int         `json:"total_days"`
}

type CommunityMoodReport struct {
	MoodTrendReport
	PercentileOfMe *float64 `json:"percentile_of_me"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type MoodFactorsReport struct {
	Period       string     `json:"period"`
	Positive     []TagCount `json:"positive"`
	Negative     []TagCount `json:"negative"`
	Neutral      []TagCount `json:"neutral"`
	TotalEntries int        `json:"total_entries"`
}

type StatusSlice struct {
	Status     string  `json:"status"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type DailyCompletion struct {
	Date  string  `json:"date"`
	Total int     `json:"total"`
	Done  int     `json:"done"`
	Rate  float64 `json:"rate"`
}

type CompletionReport struct {
	Period                 string            `json:"period"`
	OverallRate            float64           `json:"overall_rate"`
	Total                  int               `json:"total"`
	Completed              int               `json:"completed"`
	InProgress             int               `json:"in_progress"`
	Cancelled              int               `json:"cancelled"`
	Urgent                 int               `json:"urgent"`
	Data                   []StatusSlice     `json:"data"`
	Daily                  []DailyCompletion `json:"daily"`
	StreakBest             int               `json:"streak_best"`
	TopCategoryOfCompleted *string           `json:"top_category_of_completed"`
}

type CategorySlice struct {
	Category   string  `json:"category"`
	Label      string  `json:"label"`
	Emoji      string  `json:"emoji"`
	Color      string  `json:"color"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type LifeBalanceReport struct {
	Period   string          `json:"period"`
	Total    int             `json:"total"`
	Data     []CategorySlice `json:"data"`
	Warning  *string         `json:"warning"`
	Warnings []string        `json:"warnings"`
}

type PeakSlot struct {
	Slot       string  `json:"slot"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type CategoryShare struct {
	Category   string  `json:"category"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ActivityPatternReport struct {
	Period      string          `json:"period"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Heatmap     [7][24]int      `json:"heatmap"`
	TotalTimed  int             `json:"total_timed"`
	PeakTimes   []PeakSlot      `json:"peak_times"`
	PeakSummary string          `json:"peak_summary"`
	CategoryMix []CategoryShare `json:"category_mix"`
}

// DashboardSummary bundles every trends report so the client can render the
// whole dashboard from one request.
type DashboardSummary struct {
	Mood          MoodTrendReport       `json:"mood"`
	CommunityMood CommunityMoodReport   `json:"community_mood"`
	MoodFactors   MoodFactorsReport     `json:"mood_factors"`
	Completion    CompletionReport      `json:"completion"`
	LifeBalance   LifeBalanceReport     `json:"life_balance"`
	Pattern       ActivityPatternReport `json:"pattern"`
}
