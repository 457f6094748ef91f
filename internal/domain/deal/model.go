package deal

import "time"

// Stage represents a deal's position in the sales pipeline.
type Stage string

const (
	StageLead        Stage = "lead"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
)

// PipelineStages is the fixed display order for stage summaries. Lost is
// excluded: closed-lost deals are not part of the pipeline view.
var PipelineStages = []Stage{StageLead, StageQualified, StageProposal, StageNegotiation, StageWon}

// Valid reports whether s is one of the recognized stages.
func (s Stage) Valid() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageNegotiation, StageWon, StageLost:
		return true
	}
	return false
}

// Closed reports whether the stage is terminal.
func (s Stage) Closed() bool {
	return s == StageWon || s == StageLost
}

// Deal represents a sales opportunity. ContactName and CompanyName are
// query-time projections, never stored.
type Deal struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Value         *float64   `json:"value"`
	Stage         Stage      `json:"stage"`
	Probability   int        `json:"probability"`
	ContactID     *int64     `json:"contact_id,omitempty"`
	CompanyID     *int64     `json:"company_id,omitempty"`
	ExpectedClose *time.Time `json:"expected_close,omitempty"`
	Description   string     `json:"description,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ContactName   string     `json:"contact_name,omitempty"`
	CompanyName   string     `json:"company_name,omitempty"`
}

// WeightedValue is the deal's value scaled by its win probability. A nil
// value contributes 0.
func (d *Deal) WeightedValue() float64 {
	if d.Value == nil {
		return 0
	}
	return *d.Value * float64(d.Probability) / 100
}
