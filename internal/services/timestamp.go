package services

import (
	"time"
)

// Layouts accepted for timestamps on the wire. RFC3339 covers the canonical
// "Z"-suffixed form the clients send; the zone-less forms cover older exports.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// parseTimestamp parses an ISO-8601 timestamp, falling back to the current
// UTC time when the value is missing or unparsable. The fallback is
// intentional leniency, not an error: a bad timestamp must never fail a
// request or a bulk item.
func parseTimestamp(value string) time.Time {
	if value != "" {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Now().UTC()
}
