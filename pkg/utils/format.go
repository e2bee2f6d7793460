package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatPeriod(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", FormatDate(start), FormatDate(end))
}
