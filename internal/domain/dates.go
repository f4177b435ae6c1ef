package domain

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTimestamp leniently parses an ISO-8601-like timestamp.
// Values without a zone are read as UTC. The result is always in UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// FormatTimestamp renders t as a UTC RFC 3339 timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ArtifactTimestamp renders t in the compact UTC form used in artifact file names.
func ArtifactTimestamp(t time.Time) string {
	return t.UTC().Format("20060102T150405")
}
