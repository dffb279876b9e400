package response

import (
	"time"

	"preconstruct/internal/domain/entities"
	"preconstruct/internal/domain/estimating"
)

type EstimateResponse struct {
	EstimateID    string                     `json:"estimate_id"`
	ID            string                     `json:"id"`
	ProjectName   string                     `json:"project_name"`
	CSIDivision   string                     `json:"csi_division,omitempty"`
	GrossSF       float64                    `json:"gross_sf"`
	NetSF         float64                    `json:"net_sf"`
	Rates         entities.MarkupRates       `json:"rates"`
	Categories    []entities.CostCategory    `json:"categories"`
	ApprovalSteps []entities.ApprovalStep    `json:"approval_steps"`
	BidSelections map[string]string          `json:"bid_selections"`
	Documents     []entities.ProjectDocument `json:"documents,omitempty"`
	Allowances    []entities.Allowance       `json:"allowances,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
	Status        string                     `json:"status"`

	// Derived fields, recomputed on every response.
	ProgressPercent    float64 `json:"progress_percent"`
	IsFullyApproved    bool    `json:"is_fully_approved"`
	CurrentStepIndex   int     `json:"current_step_index"`
	CategoriesSubtotal float64 `json:"categories_subtotal"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	progress := estimating.ComputeApprovalProgress(e.ApprovalSteps)
	breakdown := estimating.ComputeCostBreakdown(e.Categories, e.Rates, e.GrossSF, e.NetSF)

	return EstimateResponse{
		EstimateID:         e.ID,
		ID:                 e.ID,
		ProjectName:        e.ProjectName,
		CSIDivision:        e.CSIDivision,
		GrossSF:            e.GrossSF,
		NetSF:              e.NetSF,
		Rates:              e.Rates,
		Categories:         e.Categories,
		ApprovalSteps:      e.ApprovalSteps,
		BidSelections:      e.BidSelections,
		Documents:          e.Documents,
		Allowances:         e.Allowances,
		Notes:              e.Notes,
		Status:             string(e.Status),
		ProgressPercent:    progress.ProgressPercent,
		IsFullyApproved:    progress.IsFullyApproved,
		CurrentStepIndex:   estimating.NextActionableIndex(e.ApprovalSteps),
		CategoriesSubtotal: breakdown.Subtotal,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

type BreakdownResponse struct {
	Subtotal         float64 `json:"subtotal"`
	Overhead         float64 `json:"overhead"`
	Profit           float64 `json:"profit"`
	Contingency      float64 `json:"contingency"`
	Total            float64 `json:"total"`
	MarkupPercentage float64 `json:"markup_percentage"`
	CostPerGrossSF   float64 `json:"cost_per_gross_sf"`
	CostPerNetSF     float64 `json:"cost_per_net_sf"`
}

func FromBreakdown(b estimating.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Subtotal:         b.Subtotal,
		Overhead:         b.Overhead,
		Profit:           b.Profit,
		Contingency:      b.Contingency,
		Total:            b.Total,
		MarkupPercentage: b.MarkupPercentage,
		CostPerGrossSF:   b.CostPerGrossSF,
		CostPerNetSF:     b.CostPerNetSF,
	}
}

type ApprovalProgressResponse struct {
	ProgressPercent float64 `json:"progress_percent"`
	IsFullyApproved bool    `json:"is_fully_approved"`
}

func FromApprovalProgress(p estimating.ApprovalProgress) ApprovalProgressResponse {
	return ApprovalProgressResponse{
		ProgressPercent: p.ProgressPercent,
		IsFullyApproved: p.IsFullyApproved,
	}
}
