package weather

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days. Start is never after End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = calendarDay(start), calendarDay(end)
	if start.After(end) {
		return DateRange{}, inputError(MsgStartAfterEnd, nil)
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDate parses a YYYY-MM-DD value into a calendar day.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, inputError(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", value), nil)
	}
	return t, nil
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
