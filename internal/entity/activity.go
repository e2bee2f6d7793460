package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	ActivityStatusNormal    = "normal"
	ActivityStatusUrgent    = "urgent"
	ActivityStatusDone      = "done"
	ActivityStatusCancelled = "cancelled"
)

// NormalizeActivityStatus folds unrecognized or empty statuses into "normal".
// Old clients wrote free-form statuses; the fallback is a documented contract,
// not a validation error.
func NormalizeActivityStatus(status string) string {
	switch status {
	case ActivityStatusNormal, ActivityStatusUrgent, ActivityStatusDone, ActivityStatusCancelled:
		return status
	default:
		return ActivityStatusNormal
	}
}

// Activity is a planned task or event. Time is nil for all-day activities.
type Activity struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	Date      time.Time  `json:"date" db:"date"`
	AllDay    bool       `json:"allDay" db:"all_day"`
	Time      *string    `json:"time,omitempty" db:"time"`
	Title     string     `json:"title" db:"title"`
	Category  *string    `json:"category,omitempty" db:"category"`
	Status    string     `json:"status" db:"status"`
	Notes     *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}

type ActivityFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
