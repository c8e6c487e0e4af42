package util

import (
	"testing"
	"time"
)

func TestResolveDateAtAcrossTimezones(t *testing.T) {
	// 23:30 UTC on March 1st: still March 1st in UTC, already March 2nd in
	// Harare (UTC+2).
	now := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)

	cases := []struct {
		timezone string
		want     string
	}{
		{"UTC", "2026-03-01"},
		{"Africa/Harare", "2026-03-02"},
		{"America/Los_Angeles", "2026-03-01"},
		{"Pacific/Auckland", "2026-03-02"},
	}

	for _, tc := range cases {
		if got := resolveDateAt(now, tc.timezone); got != tc.want {
			t.Errorf("resolveDateAt(%q) = %q, want %q", tc.timezone, got, tc.want)
		}
	}
}

func TestResolveDateAtFallsBackToUTC(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	utc := resolveDateAt(now, "UTC")

	for _, tz := range []string{"", "Not/AZone", "garbage", "GMT+25"} {
		if got := resolveDateAt(now, tz); got != utc {
			t.Errorf("resolveDateAt(%q) = %q, want UTC fallback %q", tz, got, utc)
		}
	}
}

func TestResolveTodayDateShape(t *testing.T) {
	got := ResolveTodayDate("Africa/Harare")
	if !DateKeyPattern.MatchString(got) {
		t.Fatalf("expected YYYY-MM-DD, got %q", got)
	}
}

func TestDateKeyPattern(t *testing.T) {
	valid := []string{"2026-01-01", "1999-12-31", "2026-02-29"}
	invalid := []string{"2026-1-1", "01-01-2026", "2026/01/01", "2026-01-01T00:00:00Z", "tomorrow", ""}

	for _, v := range valid {
		if !DateKeyPattern.MatchString(v) {
			t.Errorf("expected %q to match", v)
		}
	}
	for _, v := range invalid {
		if DateKeyPattern.MatchString(v) {
			t.Errorf("expected %q not to match", v)
		}
	}
}
