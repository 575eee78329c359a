package audit

import (
	"fmt"
	"math"
	"time"
)

// FormatRelative renders a timestamp as a human label relative to the
// wall clock at call time ("Just now", "5 minutes ago", "2 hours ago").
// Beyond a week it falls back to an absolute date, omitting the year when
// it matches the current year. Callers must re-evaluate on each render or
// poll; the result goes stale as time passes.
func FormatRelative(t time.Time) string {
	return formatRelativeAt(t, time.Now())
}

func formatRelativeAt(t time.Time, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		// Clock skew between writers can put a record slightly in the
		// future; render it as current rather than negative.
		d = 0
	}

	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return pluralAgo(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return pluralAgo(int(math.Round(d.Hours())), "hour")
	case d < 7*24*time.Hour:
		return pluralAgo(int(math.Round(d.Hours()/24)), "day")
	}

	dateFormat := "2 Jan 2006"
	if t.Year() == now.Year() {
		dateFormat = "2 Jan"
	}

	return t.Format(dateFormat) + " at " + t.Format("15:04")
}

func pluralAgo(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}

	return fmt.Sprintf("%d %ss ago", n, unit)
}
