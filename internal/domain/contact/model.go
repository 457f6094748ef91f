package contact

import "time"

// Status represents a contact's relationship status.
type Status string

const (
	StatusActive   Status = "active"
	StatusLead     Status = "lead"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusLead, StatusInactive:
		return true
	}
	return false
}

// Contact represents a person tracked in the CRM. CompanyName is a
// query-time projection of the owning company, never stored.
type Contact struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Title         string     `json:"title,omitempty"`
	CompanyID     *int64     `json:"company_id,omitempty"`
	Status        Status     `json:"status"`
	AvatarColor   string     `json:"avatar_color,omitempty"`
	LastContacted *time.Time `json:"last_contacted,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompanyName   string     `json:"company_name,omitempty"`
}

// DisplayName returns the contact's full name as rendered in lists.
func (c *Contact) DisplayName() string {
	return c.FirstName + " " + c.LastName
}
