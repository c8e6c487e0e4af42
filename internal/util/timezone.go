package util

import "time"

// ResolveTodayDate formats the current date as YYYY-MM-DD as observed in the
// given IANA timezone. An unknown or empty identifier falls back to UTC
// instead of failing: a malformed client timezone must never block the
// default daily challenge.
func ResolveTodayDate(timezone string) string {
	return resolveDateAt(time.Now(), timezone)
}

func resolveDateAt(now time.Time, timezone string) string {
	loc := time.UTC
	if timezone != "" {
		if parsed, err := time.LoadLocation(timezone); err == nil {
			loc = parsed
		}
	}
	return now.In(loc).Format(DateFormat)
}
