package response

import (
	"testing"
	"time"

	"preconstruct/internal/domain/entities"
	"preconstruct/internal/domain/estimating"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:          "est-1",
		ProjectName: "Office Tower",
		GrossSF:     100,
		NetSF:       80,
		Rates:       entities.DefaultMarkupRates(),
		Categories:  []entities.CostCategory{{Name: "Sitework", Amount: 1000}},
		ApprovalSteps: []entities.ApprovalStep{
			{ID: "s1", Status: entities.StepStatusComplete},
			{ID: "s2", Status: entities.StepStatusPending},
		},
		BidSelections: map[string]string{"concrete": "b1"},
		Status:        entities.EstimateStatusInReview,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.EstimateID != "est-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "in_review" {
		t.Fatalf("unexpected status: %q", res.Status)
	}
	if res.ProgressPercent != 50 || res.IsFullyApproved {
		t.Fatalf("unexpected progress: %+v", res)
	}
	if res.CurrentStepIndex != 1 {
		t.Fatalf("expected current step 1, got %d", res.CurrentStepIndex)
	}
	if res.CategoriesSubtotal != 1000 {
		t.Fatalf("expected subtotal 1000, got %v", res.CategoriesSubtotal)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromBreakdown(t *testing.T) {
	b := estimating.Breakdown{
		Subtotal: 1000, Overhead: 100, Profit: 80, Contingency: 50,
		Total: 1230, MarkupPercentage: 23, CostPerGrossSF: 12.3, CostPerNetSF: 15.375,
	}
	res := FromBreakdown(b)
	if res.Total != 1230 || res.MarkupPercentage != 23 {
		t.Fatalf("unexpected breakdown response: %+v", res)
	}
	if res.CostPerGrossSF != 12.3 || res.CostPerNetSF != 15.375 {
		t.Fatalf("unexpected per-SF fields: %+v", res)
	}
}

func TestFromBidTab(t *testing.T) {
	res := FromBidTab(nil)
	if len(res) != 0 {
		t.Fatalf("expected empty tab, got %d", len(res))
	}
}

func TestFromVendorBid(t *testing.T) {
	now := time.Now().UTC()
	b := entities.VendorBid{
		ID:          "b1",
		EstimateID:  "est-1",
		VendorName:  "Atlas Concrete",
		Trade:       "concrete",
		TotalAmount: 485000,
		Confidence:  85,
		Status:      entities.BidStatusSelected,
		SubmittedAt: now,
	}
	res := FromVendorBid(b)
	if res.BidID != "b1" || res.ID != "b1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "selected" || res.TotalAmount != 485000 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.SubmittedAt.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}
