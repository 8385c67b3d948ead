// Package timefmt converts between seconds, display durations, and the
// clock strings carried on time entries.
package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Duration renders seconds as "1h 30m", or "45m" when under an hour.
// Seconds are never shown.
func Duration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Clock renders seconds as zero-padded "HH:MM:SS". Hours are not
// reduced modulo 24, so a long-running timer keeps counting up.
func Clock(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// DurationInput renders seconds in the editable "H:MM" form.
func DurationInput(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	return fmt.Sprintf("%d:%02d", h, m)
}

var (
	hourToken   = regexp.MustCompile(`(\d+)\s*h`)
	minuteToken = regexp.MustCompile(`(\d+)\s*m`)
)

// ParseDurationInput reads either the "H:MM" colon form or free text
// with "Nh" and/or "Nm" tokens ("1h 30m", "45m"). Sub-minute precision
// is not representable. ok is false when neither form matches; callers
// must leave prior state unchanged in that case.
func ParseDurationInput(text string) (int64, bool) {
	parts := strings.Split(text, ":")
	if len(parts) == 2 {
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH == nil && errM == nil && h >= 0 && m >= 0 {
			return int64(h)*3600 + int64(m)*60, true
		}
	}

	hMatch := hourToken.FindStringSubmatch(text)
	mMatch := minuteToken.FindStringSubmatch(text)
	if hMatch == nil && mMatch == nil {
		return 0, false
	}
	var h, m int
	if hMatch != nil {
		h, _ = strconv.Atoi(hMatch[1])
	}
	if mMatch != nil {
		m, _ = strconv.Atoi(mMatch[1])
	}
	return int64(h)*3600 + int64(m)*60, true
}

var clockHourToken = regexp.MustCompile(`(\d+):`)

// ClockHour extracts the 24-hour bucket index from a display clock
// string like "02:00 PM" ("12 AM" is 0, "12 PM" stays 12). ok is false
// when no hour can be read.
func ClockHour(clock string) (int, bool) {
	m := clockHourToken.FindStringSubmatch(clock)
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if strings.Contains(clock, "PM") && h != 12 {
		h += 12
	}
	if strings.Contains(clock, "AM") && h == 12 {
		h = 0
	}
	if h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// Date renders t as the YYYY-MM-DD partition key.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClockTime renders t as the display clock carried on entries.
func ClockTime(t time.Time) string {
	return t.Format("03:04 PM")
}
