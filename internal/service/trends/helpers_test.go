package trends

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func diaryOn(date, score string, tags ...string) entity.Diary {
	d := entity.Diary{Date: mustDate(date), MoodTags: pq.StringArray(tags)}
	if score != "" {
		d.MoodScore = strPtr(score)
	}
	return d
}

func diaryBy(userID uuid.UUID, date, score string) entity.Diary {
	d := diaryOn(date, score)
	d.UserID = userID
	return d
}

func activityOn(date, status string) entity.Activity {
	return entity.Activity{Date: mustDate(date), Status: status}
}

func timedActivity(date, clock string) entity.Activity {
	act := activityOn(date, entity.ActivityStatusNormal)
	act.Time = strPtr(clock)
	return act
}

func categorized(date, status, category string) entity.Activity {
	act := activityOn(date, status)
	act.Category = strPtr(category)
	return act
}

func testCatalog() Catalog {
	return Catalog{
		TagLabels: map[string]string{"😊": "happy", "😫": "stressed"},
		Categories: map[string]CategoryStyle{
			"work":   {Label: "Work", Emoji: "💼", Color: "#2196f3"},
			"health": {Label: "Health", Emoji: "❤️", Color: "#4caf50"},
			"study":  {Label: "Study", Emoji: "📚", Color: "#00bcd4"},
			"other":  {Label: "Other", Emoji: "📋", Color: "#9e9e9e"},
		},
		DefaultCategory: CategoryStyle{Label: "Other", Emoji: "📋", Color: "#9e9e9e"},
		HealthKeys:      []string{"health"},
		OtherCategory:   "other",
		Statuses: map[string]StatusStyle{
			"done":      {Label: "Done", Color: "#52c41a"},
			"normal":    {Label: "Pending", Color: "#595959"},
			"urgent":    {Label: "Urgent", Color: "#faad14"},
			"cancelled": {Label: "Cancelled", Color: "#ff4d4f"},
		},
	}
}

func testAnalyzer() *Analyzer {
	return NewAnalyzer(testCatalog())
}
