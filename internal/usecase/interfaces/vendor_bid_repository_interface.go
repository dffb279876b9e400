package interfaces

import (
	"context"

	"preconstruct/internal/domain/entities"
)

//go:generate mockgen -source=vendor_bid_repository_interface.go -destination=mocks/vendor_bid_repository_mock.go -package=mock_interfaces

// IVendorBidRepository abstracts DynamoDB persistence for VendorBid.
//
// Bid leveling replaces the whole bid set of a trade at once, so the
// repository exposes a ReplaceForTrade that deletes the prior set and writes
// the new one.

type IVendorBidRepository interface {
	ReplaceForTrade(ctx context.Context, estimateID, trade string, bids []entities.VendorBid) ([]entities.VendorBid, error)
	ListByEstimateAndTrade(ctx context.Context, estimateID, trade string) ([]entities.VendorBid, error)
	ListByEstimate(ctx context.Context, estimateID string) ([]entities.VendorBid, error)
	UpdateStatus(ctx context.Context, id string, status entities.BidStatus) (entities.VendorBid, error)
}
