package note

import "time"

// Note is a free-text annotation optionally attached to a contact or deal.
type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	ContactID *int64    `json:"contact_id,omitempty"`
	DealID    *int64    `json:"deal_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
