package activity

import "time"

// DueGroupLabel returns the heading under which an activity is grouped in
// the agenda view: "No Date", "Today", "Tomorrow", or a spelled-out date
// like "Monday, January 2". Grouping is by calendar day in now's zone.
func DueGroupLabel(due *time.Time, now time.Time) string {
	if due == nil {
		return "No Date"
	}

	loc := now.Location()
	d := due.In(loc)
	dueDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch dueDay.Sub(today) {
	case 0:
		return "Today"
	case 24 * time.Hour:
		return "Tomorrow"
	}
	return d.Format("Monday, January 2")
}
