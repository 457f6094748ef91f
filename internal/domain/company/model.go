package company

import "time"

// Company represents an organization tracked in the CRM.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry,omitempty"`
	Website   string    `json:"website,omitempty"`
	Size      string    `json:"size,omitempty"`
	Revenue   string    `json:"revenue,omitempty"`
	Location  string    `json:"location,omitempty"`
	LogoColor string    `json:"logo_color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Overview is a company with rollups for the listing view: number of
// contacts, number of deals, and total value of deals that are not lost.
type Overview struct {
	Company
	ContactCount   int     `json:"contact_count"`
	DealCount      int     `json:"deal_count"`
	TotalDealValue float64 `json:"total_deal_value"`
}
