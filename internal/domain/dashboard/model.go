package dashboard

import (
	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/deal"
)

// Stats holds the headline numbers for the dashboard. Field names follow
// the JSON contract of the dashboard endpoint.
type Stats struct {
	TotalContacts         int     `json:"totalContacts"`
	TotalCompanies        int     `json:"totalCompanies"`
	TotalDealValue        float64 `json:"totalDealValue"`
	WonDealsValue         float64 `json:"wonDealsValue"`
	WeightedPipelineValue float64 `json:"weightedPipelineValue"`
	PendingActivities     int     `json:"pendingActivities"`
}

// StageSummary is one pipeline stage's deal count and total value.
type StageSummary struct {
	Stage deal.Stage `json:"stage"`
	Count int        `json:"count"`
	Value float64    `json:"value"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Stats              Stats               `json:"stats"`
	DealsByStage       []StageSummary      `json:"dealsByStage"`
	RecentDeals        []deal.Deal         `json:"recentDeals"`
	UpcomingActivities []activity.Activity `json:"upcomingActivities"`
	RecentContacts     []contact.Contact   `json:"recentContacts"`
}
