package util

import "time"

// ISODate is the calendar-date layout used for cache keys and series keys.
const ISODate = "2006-01-02"

// DateOf formats t as a UTC ISO calendar date.
func DateOf(t time.Time) string {
	return t.UTC().Format(ISODate)
}

// DateOfMillis buckets a millisecond unix timestamp to its UTC calendar date.
func DateOfMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(ISODate)
}

// Window returns `days` consecutive UTC calendar dates ending at `end`,
// oldest first.
func Window(end time.Time, days int) []string {
	if days <= 0 {
		return nil
	}
	dates := make([]string, 0, days)
	day := end.UTC().Truncate(24 * time.Hour)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, day.AddDate(0, 0, -i).Format(ISODate))
	}
	return dates
}
