package request

import (
	"errors"
	"strings"
	"time"

	"preconstruct/internal/domain/entities"
)

var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrInvalidLineItem   = errors.New("invalid line item")
	ErrInvalidConfidence = errors.New("invalid confidence score")
)

// LineItemRequest is one takeoff row inside a bid payload. The stored total
// is ignored; totals are recomputed downstream.
type LineItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
}

// BidRequest is one vendor bid row of a replace-collection payload.
type BidRequest struct {
	ID          string            `json:"id"`
	VendorName  string            `json:"vendor_name" binding:"required"`
	TotalAmount float64           `json:"total_amount"`
	Confidence  int               `json:"confidence"`
	Status      string            `json:"status"`
	Inclusions  []string          `json:"inclusions"`
	Exclusions  []string          `json:"exclusions"`
	LineItems   []LineItemRequest `json:"line_items"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// BidsRequest replaces a trade's whole bid set.
type BidsRequest struct {
	Bids []BidRequest `json:"bids"`
}

// ResolveBids validates and converts the payload: vendor names must be
// non-empty, amounts non-negative, confidence within 0-100. This is the
// numeric-validation boundary; the engine assumes clean inputs.
func (r BidsRequest) ResolveBids() ([]entities.VendorBid, error) {
	out := make([]entities.VendorBid, 0, len(r.Bids))
	for _, b := range r.Bids {
		vendor := strings.TrimSpace(b.VendorName)
		if vendor == "" || b.TotalAmount < 0 {
			return nil, ErrInvalidBid
		}
		if b.Confidence < 0 || b.Confidence > 100 {
			return nil, ErrInvalidConfidence
		}

		items := make([]entities.LineItem, 0, len(b.LineItems))
		for _, it := range b.LineItems {
			if it.Quantity < 0 || it.UnitPrice < 0 {
				return nil, ErrInvalidLineItem
			}
			items = append(items, entities.LineItem{
				ID:          strings.TrimSpace(it.ID),
				Description: strings.TrimSpace(it.Description),
				Quantity:    it.Quantity,
				Unit:        entities.Unit(strings.ToUpper(strings.TrimSpace(it.Unit))),
				UnitPrice:   it.UnitPrice,
			})
		}

		out = append(out, entities.VendorBid{
			ID:          strings.TrimSpace(b.ID),
			VendorName:  vendor,
			TotalAmount: b.TotalAmount,
			Confidence:  b.Confidence,
			Status:      entities.BidStatus(b.Status),
			Inclusions:  b.Inclusions,
			Exclusions:  b.Exclusions,
			LineItems:   items,
			SubmittedAt: b.SubmittedAt,
		})
	}
	return out, nil
}
