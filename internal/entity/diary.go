package entity

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"
)

// Diary is one journal entry. mood_score is a legacy multi-typed column:
// it may hold 'good'/'bad' tokens from the old 2-level system or a numeric
// string '1'..'5' from the star rating. The trends package owns the parsing.
type Diary struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	UserID        uuid.UUID      `json:"userId" db:"user_id"`
	Date          time.Time      `json:"date" db:"date"`
	Time          string         `json:"time" db:"time"`
	Title         string         `json:"title" db:"title"`
	Detail        *string        `json:"detail,omitempty" db:"detail"`
	MoodScore     *string        `json:"moodScore,omitempty" db:"mood_score"`
	MoodTags      pq.StringArray `json:"moodTags,omitempty" db:"mood_tags"`
	PositiveScore *int           `json:"positiveScore,omitempty" db:"positive_score"`
	NegativeScore *int           `json:"negativeScore,omitempty" db:"negative_score"`
	Tags          *string        `json:"tags,omitempty" db:"tags"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty" db:"updated_at"`
}

type DiaryFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
