package contact

import (
	"fmt"
	"time"
)

// LastContactedLabel buckets a last-contacted timestamp relative to now:
// "Never" when unset, "Today", "Yesterday", "N days ago" for 2-6 calendar
// days, and an absolute date ("Jan 2") beyond that. The difference is
// calendar days (midnight to midnight in now's zone), not elapsed hours,
// so any time earlier today buckets to "Today".
func LastContactedLabel(last *time.Time, now time.Time) string {
	if last == nil {
		return "Never"
	}

	days := calendarDaysBetween(*last, now)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days >= 2 && days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		// 7+ days out, or a timestamp in the future.
		return last.In(now.Location()).Format("Jan 2")
	}
}

// calendarDaysBetween returns how many local midnights lie between t and
// now. Negative when t is after now.
func calendarDaysBetween(t, now time.Time) int {
	loc := now.Location()
	t = t.In(loc)
	tMidnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	nowMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return int(nowMidnight.Sub(tMidnight) / (24 * time.Hour))
}
