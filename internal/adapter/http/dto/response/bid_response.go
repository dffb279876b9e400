package response

import (
	"time"

	"preconstruct/internal/adapter/export"
	"preconstruct/internal/domain/entities"
	"preconstruct/internal/domain/estimating"
)

type BidResponse struct {
	BidID       string              `json:"bid_id"`
	ID          string              `json:"id"`
	EstimateID  string              `json:"estimate_id"`
	VendorName  string              `json:"vendor_name"`
	Trade       string              `json:"trade"`
	TotalAmount float64             `json:"total_amount"`
	LineItems   []entities.LineItem `json:"line_items,omitempty"`
	Confidence  int                 `json:"confidence"`
	Status      string              `json:"status"`
	Inclusions  []string            `json:"inclusions,omitempty"`
	Exclusions  []string            `json:"exclusions,omitempty"`
	SubmittedAt time.Time           `json:"submitted_at"`
}

func FromVendorBid(b entities.VendorBid) BidResponse {
	return BidResponse{
		BidID:       b.ID,
		ID:          b.ID,
		EstimateID:  b.EstimateID,
		VendorName:  b.VendorName,
		Trade:       b.Trade,
		TotalAmount: b.TotalAmount,
		LineItems:   b.LineItems,
		Confidence:  b.Confidence,
		Status:      string(b.Status),
		Inclusions:  b.Inclusions,
		Exclusions:  b.Exclusions,
		SubmittedAt: b.SubmittedAt,
	}
}

func FromVendorBids(bids []entities.VendorBid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, FromVendorBid(b))
	}
	return out
}

type VarianceResponse struct {
	VariancePercent float64 `json:"variance_percent"`
	RiskLevel       string  `json:"risk_level"`
}

func FromVariance(v estimating.VarianceResult) VarianceResponse {
	return VarianceResponse{
		VariancePercent: v.VariancePercent,
		RiskLevel:       string(v.RiskLevel),
	}
}

type TradeTabResponse struct {
	Trade         string           `json:"trade"`
	Bids          []BidResponse    `json:"bids"`
	Variance      VarianceResponse `json:"variance"`
	SelectedBidID string           `json:"selected_bid_id,omitempty"`
}

func FromBidTab(tab []export.TradeTab) []TradeTabResponse {
	out := make([]TradeTabResponse, 0, len(tab))
	for _, t := range tab {
		out = append(out, TradeTabResponse{
			Trade:         t.Trade,
			Bids:          FromVendorBids(t.Bids),
			Variance:      FromVariance(t.Variance),
			SelectedBidID: t.SelectedBidID,
		})
	}
	return out
}
