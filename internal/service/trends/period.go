package trends

import "time"

type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

// ParsePeriodKind validates a raw period query value. Request syntax is the
// HTTP layer's problem; the resolver itself only ever sees valid kinds.
func ParsePeriodKind(raw string) (PeriodKind, bool) {
	switch PeriodKind(raw) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return PeriodKind(raw), true
	default:
		return "", false
	}
}

// Period is one whole calendar unit. Offset 0 is the unit containing the
// reference date, negative offsets step backward.
type Period struct {
	Kind   PeriodKind `json:"period"`
	Offset int        `json:"offset"`
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`
}

// Resolve maps (kind, offset) to an inclusive [start, end] date window
// relative to the reference date. Weeks run Monday through Sunday. Months
// are normalized iteratively with explicit year carry so large negative
// offsets land on the right (year, month) pair.
func Resolve(kind PeriodKind, offset int, reference time.Time) Period {
	ref := dateOnly(reference)

	var start, end time.Time
	switch kind {
	case PeriodWeek:
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = ref.AddDate(0, 0, -(weekday-1)+7*offset)
		end = start.AddDate(0, 0, 6)
	case PeriodMonth:
		month := int(ref.Month()) + offset
		year := ref.Year()
		for month < 1 {
			month += 12
			year--
		}
		for month > 12 {
			month -= 12
			year++
		}
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, ref.Location())
		// day before the 1st of the next month handles 28/29/30/31-day months
		end = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	default: // year
		year := ref.Year() + offset
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, ref.Location())
		end = time.Date(year, time.December, 31, 0, 0, 0, 0, ref.Location())
	}

	return Period{Kind: kind, Offset: offset, Start: start, End: end}
}

// Previous resolves the same kind of window one step further back from the
// same reference date.
func Previous(p Period, reference time.Time) Period {
	return Resolve(p.Kind, p.Offset-1, reference)
}

// Days is the inclusive day count of the window.
func (p Period) Days() int {
	days := 0
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

func (p Period) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
