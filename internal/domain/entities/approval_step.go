package entities

import "time"

// StepStatus is the state of one approval workflow step.
//
// Skipped is terminal: a rejected step never returns to pending, and it
// never counts toward full approval.
type StepStatus string

const (
	StepStatusPending  StepStatus = "pending"
	StepStatusComplete StepStatus = "complete"
	StepStatusSkipped  StepStatus = "skipped"
)

// ApprovalStep is one entry in the estimate's ordered approval sequence.
// Only the first pending step whose predecessors are all complete is
// actionable at any time.
type ApprovalStep struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      StepStatus `json:"status"`
	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
