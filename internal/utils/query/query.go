// Package utils parses catalog query-string values. Malformed input never
// fails the request: it falls back to "not set".
package utils

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParseLimit returns a positive integer or 0.
func ParseLimit(s string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || limit <= 0 {
		return 0
	}

	return limit
}

// ParseList collects a parameter given repeatedly and/or comma separated.
func ParseList(values url.Values, key string) []string {
	out := make([]string, 0)
	for _, v := range values[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ParseBool accepts the usual strconv spellings; anything else is false.
func ParseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// ParseDate accepts RFC 3339 or YYYY-MM-DD. With endOfDay a bare date means
// its last nanosecond, so an upper bound covers the whole day.
func ParseDate(s string, endOfDay bool) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return &t
}

// ParseID returns nil for an empty value.
func ParseID(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
