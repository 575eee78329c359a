package audit

import (
	"testing"
	"time"
)

func TestFormatRelativeAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same instant", now, "Just now"},
		{"45 seconds", now.Add(-45 * time.Second), "Just now"},
		{"just under a minute", now.Add(-59 * time.Second), "Just now"},
		{"one minute", now.Add(-time.Minute), "1 minute ago"},
		{"five minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"59 minutes", now.Add(-59 * time.Minute), "59 minutes ago"},
		{"one hour", now.Add(-time.Hour), "1 hour ago"},
		{"90 minutes rounds to 2 hours", now.Add(-90 * time.Minute), "2 hours ago"},
		{"23 hours", now.Add(-23 * time.Hour), "23 hours ago"},
		{"one day", now.Add(-24 * time.Hour), "1 day ago"},
		{"36 hours rounds to 2 days", now.Add(-36 * time.Hour), "2 days ago"},
		{"six days", now.Add(-6 * 24 * time.Hour), "6 days ago"},
		{"seven days falls back to date", now.Add(-7 * 24 * time.Hour), "8 Mar at 14:00"},
		{"previous year includes year", time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC), "2 Nov 2025 at 09:30"},
		{"future timestamp clamps to now", now.Add(2 * time.Minute), "Just now"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatRelativeAt(tc.t, now); got != tc.want {
				t.Errorf("formatRelativeAt(%v): got %q, want %q", tc.t, got, tc.want)
			}
		})
	}
}
