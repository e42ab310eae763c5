package utils

import (
	"time"
)

// JakartaTZ is the site-local zone. All "same day" and "today" decisions
// run on this calendar.
var JakartaTZ = time.FixedZone("WIB", 7*60*60)

func JakartaNow() time.Time {
	return time.Now().In(JakartaTZ)
}

// MustParseDate parses a date-only value. Dates are carried at UTC midnight
// so DATE columns round-trip without a day shift.
func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	return t
}
