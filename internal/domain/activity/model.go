package activity

import "time"

// Type represents the kind of activity.
type Type string

const (
	TypeCall    Type = "call"
	TypeEmail   Type = "email"
	TypeMeeting Type = "meeting"
	TypeTask    Type = "task"
)

// Valid reports whether t is one of the recognized activity types.
func (t Type) Valid() bool {
	switch t {
	case TypeCall, TypeEmail, TypeMeeting, TypeTask:
		return true
	}
	return false
}

// Priority represents an activity's urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the recognized priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Activity represents a scheduled or completed piece of work. ContactName
// and DealTitle are query-time projections, never stored.
type Activity struct {
	ID          int64      `json:"id"`
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ContactID   *int64     `json:"contact_id,omitempty"`
	DealID      *int64     `json:"deal_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	ContactName string     `json:"contact_name,omitempty"`
	DealTitle   string     `json:"deal_title,omitempty"`
}

// Overdue reports whether the activity has a due date in the past and is
// not completed. Activities without a due date are never overdue.
func (a *Activity) Overdue(now time.Time) bool {
	if a.DueDate == nil || a.Completed {
		return false
	}
	return a.DueDate.Before(now)
}

// DueToday reports whether the activity is pending and due on now's
// calendar day.
func (a *Activity) DueToday(now time.Time) bool {
	if a.DueDate == nil || a.Completed {
		return false
	}
	due := a.DueDate.In(now.Location())
	return due.Year() == now.Year() && due.YearDay() == now.YearDay()
}

// Summary holds the partition counts for the activities view.
type Summary struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	DueToday  int `json:"due_today"`
}
