// Package humanize derives the human-readable presentation strings shown on
// the dashboard: relative times, short dates and conversation titles.
//
// The backend emits isoformat timestamp strings that may lack a timezone,
// be missing entirely, or be malformed. Nothing in this package panics or
// returns an error to render paths; bad input degrades to a placeholder.
package humanize

import (
	"fmt"
	"strings"
	"time"
)

const (
	unknownDate = "Unknown date"
	invalidDate = "Invalid date"
)

// timestampLayouts are tried in order. Naive layouts (no zone) are read as UTC,
// matching the backend which stamps records with utcnow().
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp string.
func ParseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: %w", trimmed, lastErr)
}

// RelTime maps a timestamp to a relative description of how long ago it was.
// now is injected so the bucketing is deterministic and testable. Buckets use
// whole-unit floor division; negative elapsed time (clock skew, future
// timestamps) lands in the "Just now" bucket rather than going negative.
func RelTime(timestamp string, now time.Time) string {
	if strings.TrimSpace(timestamp) == "" {
		return unknownDate
	}
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return invalidDate
	}

	elapsed := now.Sub(t)
	if elapsed < time.Minute {
		return "Just now"
	}
	if elapsed < time.Hour {
		minutes := int(elapsed / time.Minute)
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	}
	if elapsed < 24*time.Hour {
		hours := int(elapsed / time.Hour)
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(elapsed / (24 * time.Hour))
	switch {
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 14:
		return "1 week ago"
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	}

	// A month or more out, fall back to an absolute date. The year is only
	// shown when it differs from now's year.
	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}

// ShortDate renders an absolute date as month abbreviation, day and
// four-digit year, e.g. "Jun 15, 2025".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
