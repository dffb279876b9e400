package entities

import "time"

// BidStatus represents the review lifecycle of a vendor bid.
type BidStatus string

const (
	BidStatusReceived BidStatus = "received"
	BidStatusReviewed BidStatus = "reviewed"
	BidStatusSelected BidStatus = "selected"
	BidStatusRejected BidStatus = "rejected"
)

// VendorBid is a vendor's priced proposal for one trade of the estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - queried by estimate_id + trade for bid leveling
//
// Inclusions/exclusions are ordered free-text scope labels used during bid
// leveling to normalize scope across vendors.
type VendorBid struct {
	ID          string     `json:"id"`
	EstimateID  string     `json:"estimate_id"`
	VendorName  string     `json:"vendor_name"`
	Trade       string     `json:"trade"`
	TotalAmount float64    `json:"total_amount"`
	LineItems   []LineItem `json:"line_items,omitempty"`
	Confidence  int        `json:"confidence"`
	Status      BidStatus  `json:"status"`
	Inclusions  []string   `json:"inclusions,omitempty"`
	Exclusions  []string   `json:"exclusions,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
}
