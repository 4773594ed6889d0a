package utils

import "time"

const isoTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NowMs returns the current wall clock time in milliseconds since epoch.
func NowMs() int64 {
	return time.Now().UnixMilli()
}

// ToISOTimestamp renders milliseconds since epoch as an ISO 8601 timestamp.
// Zero renders as the empty string, meaning "not yet happened".
func ToISOTimestamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(isoTimestampLayout)
}
