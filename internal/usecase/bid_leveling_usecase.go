package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"preconstruct/internal/adapter/export"
	"preconstruct/internal/domain/entities"
	"preconstruct/internal/domain/estimating"
	"preconstruct/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTrade      = errors.New("invalid trade")
	ErrInvalidBidID      = errors.New("invalid bid id")
	ErrInvalidBidAmount  = errors.New("invalid bid amount")
	ErrInvalidConfidence = errors.New("invalid confidence score")
)

//go:generate mockgen -source=bid_leveling_usecase.go -destination=../adapter/http/handlers/mocks/bid_leveling_usecase_mock.go -package=mocks

// IBidLevelingUseCase exposes bid intake, leveling and tabulation.
//
// Bids for a trade are replaced as a whole set (the UI edits the trade's bid
// table and submits it back). Selection follows the one-selected-bid-per-trade
// rule; a selection of an unknown bid is a guarded no-op, never an error the
// caller sees as a new selection.

type IBidLevelingUseCase interface {
	ReplaceBidsForTrade(ctx context.Context, estimateID, trade string, bids []entities.VendorBid) ([]entities.VendorBid, error)
	ListBidsForTrade(ctx context.Context, estimateID, trade string) ([]entities.VendorBid, error)
	GetVarianceForTrade(ctx context.Context, estimateID, trade string) (estimating.VarianceResult, error)
	SelectBid(ctx context.Context, estimateID, trade, bidID string) (entities.Estimate, error)
	BidTab(ctx context.Context, estimateID string) ([]export.TradeTab, error)
	ExportBidTabXLSX(ctx context.Context, estimateID string) ([]byte, error)
}

type BidLevelingUseCase struct {
	bidRepo      interfaces.IVendorBidRepository
	estimateRepo interfaces.IEstimateRepository
}

var _ IBidLevelingUseCase = (*BidLevelingUseCase)(nil)

func NewBidLevelingUseCase(bidRepo interfaces.IVendorBidRepository, estimateRepo interfaces.IEstimateRepository) *BidLevelingUseCase {
	return &BidLevelingUseCase{bidRepo: bidRepo, estimateRepo: estimateRepo}
}

func (u *BidLevelingUseCase) ReplaceBidsForTrade(ctx context.Context, estimateID, trade string, bids []entities.VendorBid) ([]entities.VendorBid, error) {
	estimateID = strings.TrimSpace(estimateID)
	trade = strings.TrimSpace(trade)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	if trade == "" {
		return nil, ErrInvalidTrade
	}

	e, err := u.loadEstimate(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	next := make([]entities.VendorBid, len(bids))
	for i, b := range bids {
		if b.TotalAmount < 0 {
			return nil, ErrInvalidBidAmount
		}
		if b.Confidence < 0 || b.Confidence > 100 {
			return nil, ErrInvalidConfidence
		}
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		b.EstimateID = estimateID
		b.Trade = trade
		if b.Status == "" {
			b.Status = entities.BidStatusReceived
		}
		if b.SubmittedAt.IsZero() {
			b.SubmittedAt = now
		}
		// A bid entered as line items carries its recomputed takeoff total.
		if b.TotalAmount == 0 && len(b.LineItems) > 0 {
			b.TotalAmount = estimating.SumLineItems(b.LineItems)
		}
		next[i] = b
	}

	saved, err := u.bidRepo.ReplaceForTrade(ctx, estimateID, trade, next)
	if err != nil {
		return nil, err
	}

	// Drop a stale selection when the selected bid did not survive the
	// replacement.
	if selected, ok := e.BidSelections[trade]; ok {
		found := false
		for _, b := range saved {
			if b.ID == selected {
				found = true
				break
			}
		}
		if !found {
			delete(e.BidSelections, trade)
			e.UpdatedAt = now
			if _, err := u.estimateRepo.Save(ctx, e); err != nil {
				return nil, err
			}
		}
	}

	return saved, nil
}

func (u *BidLevelingUseCase) ListBidsForTrade(ctx context.Context, estimateID, trade string) ([]entities.VendorBid, error) {
	estimateID = strings.TrimSpace(estimateID)
	trade = strings.TrimSpace(trade)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}
	if trade == "" {
		return nil, ErrInvalidTrade
	}
	return u.bidRepo.ListByEstimateAndTrade(ctx, estimateID, trade)
}

func (u *BidLevelingUseCase) GetVarianceForTrade(ctx context.Context, estimateID, trade string) (estimating.VarianceResult, error) {
	bids, err := u.ListBidsForTrade(ctx, estimateID, trade)
	if err != nil {
		return estimating.VarianceResult{}, err
	}
	return estimating.ComputeBidVariance(bids), nil
}

func (u *BidLevelingUseCase) SelectBid(ctx context.Context, estimateID, trade, bidID string) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	trade = strings.TrimSpace(trade)
	bidID = strings.TrimSpace(bidID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if trade == "" {
		return entities.Estimate{}, ErrInvalidTrade
	}
	if bidID == "" {
		return entities.Estimate{}, ErrInvalidBidID
	}

	e, err := u.loadEstimate(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	bids, err := u.bidRepo.ListByEstimateAndTrade(ctx, estimateID, trade)
	if err != nil {
		return entities.Estimate{}, err
	}

	previous := e.BidSelections[trade]
	next := estimating.SelectBidForTrade(e.BidSelections, map[string][]entities.VendorBid{trade: bids}, trade, bidID)
	if next[trade] == previous {
		// Unknown bid or re-selecting the current one: nothing to persist.
		return e, nil
	}

	if previous != "" {
		if _, err := u.bidRepo.UpdateStatus(ctx, previous, entities.BidStatusReviewed); err != nil {
			return entities.Estimate{}, err
		}
	}
	if _, err := u.bidRepo.UpdateStatus(ctx, bidID, entities.BidStatusSelected); err != nil {
		return entities.Estimate{}, err
	}

	e.BidSelections = next
	e.UpdatedAt = time.Now().UTC()
	return u.estimateRepo.Save(ctx, e)
}

func (u *BidLevelingUseCase) BidTab(ctx context.Context, estimateID string) ([]export.TradeTab, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidEstimateID
	}

	e, err := u.loadEstimate(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	bids, err := u.bidRepo.ListByEstimate(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	byTrade := make(map[string][]entities.VendorBid)
	for _, b := range bids {
		byTrade[b.Trade] = append(byTrade[b.Trade], b)
	}

	trades := make([]string, 0, len(byTrade))
	for t := range byTrade {
		trades = append(trades, t)
	}
	sort.Strings(trades)

	tab := make([]export.TradeTab, 0, len(trades))
	for _, t := range trades {
		tab = append(tab, export.TradeTab{
			Trade:         t,
			Bids:          byTrade[t],
			Variance:      estimating.ComputeBidVariance(byTrade[t]),
			SelectedBidID: e.BidSelections[t],
		})
	}
	return tab, nil
}

func (u *BidLevelingUseCase) ExportBidTabXLSX(ctx context.Context, estimateID string) ([]byte, error) {
	e, err := u.loadEstimate(ctx, strings.TrimSpace(estimateID))
	if err != nil {
		return nil, err
	}

	tab, err := u.BidTab(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	return export.GenerateBidTabXLSX(export.BidTabSheet{
		ProjectName: e.ProjectName,
		GeneratedAt: time.Now().UTC(),
		Trades:      tab,
	})
}

func (u *BidLevelingUseCase) loadEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := u.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if e.BidSelections == nil {
		e.BidSelections = map[string]string{}
	}
	return e, nil
}
