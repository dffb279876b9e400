// Package estimating holds the pure cost roll-up and bid-leveling rules.
//
// Every function here is a deterministic function of its arguments: no
// internal state, no mutation of inputs, no I/O. Numeric inputs are assumed
// pre-validated (non-negative) by the calling layer; the only numeric hazards
// handled here are the division-by-zero guards, which return 0 instead of
// NaN/Inf.
package estimating

import (
	"time"

	"preconstruct/internal/domain/entities"
)

// RiskLevel is the discrete classification of bid spread within a trade.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Variance thresholds, in percent. Business constants: a trade whose bid
// spread is below 15% is low risk, below 30% medium, otherwise high.
const (
	varianceMediumThreshold = 15.0
	varianceHighThreshold   = 30.0
)

// Breakdown is the approval-ready cost summary derived from category amounts.
type Breakdown struct {
	Subtotal         float64 `json:"subtotal"`
	Overhead         float64 `json:"overhead"`
	Profit           float64 `json:"profit"`
	Contingency      float64 `json:"contingency"`
	Total            float64 `json:"total"`
	MarkupPercentage float64 `json:"markup_percentage"`
	CostPerGrossSF   float64 `json:"cost_per_gross_sf"`
	CostPerNetSF     float64 `json:"cost_per_net_sf"`
}

// VarianceResult is the per-trade bid spread and its risk classification.
type VarianceResult struct {
	VariancePercent float64   `json:"variance_percent"`
	RiskLevel       RiskLevel `json:"risk_level"`
}

// ApprovalProgress summarizes an approval step sequence.
type ApprovalProgress struct {
	ProgressPercent float64 `json:"progress_percent"`
	IsFullyApproved bool    `json:"is_fully_approved"`
}

// ComputeCostBreakdown rolls category amounts up into the full cost summary.
//
// Each markup is computed off the subtotal independently (not compounded).
// When the subtotal is zero the markup percentage is 0, and when an area
// denominator is zero or negative the per-SF metric is 0.
func ComputeCostBreakdown(categories []entities.CostCategory, rates entities.MarkupRates, grossSF, netSF float64) Breakdown {
	var subtotal float64
	for _, c := range categories {
		subtotal += c.Amount
	}

	overhead := subtotal * rates.Overhead
	profit := subtotal * rates.Profit
	contingency := subtotal * rates.Contingency
	total := subtotal + overhead + profit + contingency

	b := Breakdown{
		Subtotal:    subtotal,
		Overhead:    overhead,
		Profit:      profit,
		Contingency: contingency,
		Total:       total,
	}
	if subtotal > 0 {
		b.MarkupPercentage = (overhead + profit + contingency) / subtotal * 100
	}
	if grossSF > 0 {
		b.CostPerGrossSF = total / grossSF
	}
	if netSF > 0 {
		b.CostPerNetSF = total / netSF
	}
	return b
}

// ComputeBidVariance levels the bids of one trade: spread between the highest
// and lowest total, relative to the lowest, classified by the fixed risk
// thresholds.
//
// With zero or one bid there is no spread: {0, low}. A zero minimum bid makes
// the ratio undefined; that case reports {0, high} since a free bid in the
// tab always warrants scrutiny.
func ComputeBidVariance(bids []entities.VendorBid) VarianceResult {
	if len(bids) <= 1 {
		return VarianceResult{VariancePercent: 0, RiskLevel: RiskLow}
	}

	min, max := bids[0].TotalAmount, bids[0].TotalAmount
	for _, b := range bids[1:] {
		if b.TotalAmount < min {
			min = b.TotalAmount
		}
		if b.TotalAmount > max {
			max = b.TotalAmount
		}
	}

	if min == 0 {
		return VarianceResult{VariancePercent: 0, RiskLevel: RiskHigh}
	}

	variance := (max - min) / min * 100
	return VarianceResult{VariancePercent: variance, RiskLevel: classifyVariance(variance)}
}

func classifyVariance(variance float64) RiskLevel {
	switch {
	case variance < varianceMediumThreshold:
		return RiskLow
	case variance < varianceHighThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// ComputeApprovalProgress reports how far the approval sequence has advanced.
// Only complete steps count: a skipped step contributes nothing, so a
// sequence containing a skip can never be fully approved.
func ComputeApprovalProgress(steps []entities.ApprovalStep) ApprovalProgress {
	if len(steps) == 0 {
		return ApprovalProgress{ProgressPercent: 0, IsFullyApproved: false}
	}

	complete := 0
	for _, s := range steps {
		if s.Status == entities.StepStatusComplete {
			complete++
		}
	}

	progress := float64(complete) / float64(len(steps)) * 100
	return ApprovalProgress{
		ProgressPercent: progress,
		IsFullyApproved: complete == len(steps),
	}
}

// NextActionableIndex returns the index of the only step eligible for a user
// action: the first pending step whose predecessors are all complete.
// Returns -1 when no step is actionable (sequence finished, or blocked by a
// skipped step).
func NextActionableIndex(steps []entities.ApprovalStep) int {
	for i, s := range steps {
		switch s.Status {
		case entities.StepStatusComplete:
			continue
		case entities.StepStatusPending:
			return i
		default:
			// A skipped step blocks everything after it.
			return -1
		}
	}
	return -1
}

// ApproveStep marks the step at idx complete, recording the actor and time.
// The input slice is never mutated; a fresh copy is returned. When idx is not
// the actionable index the call is a silent no-op and the original sequence
// is returned unchanged.
func ApproveStep(steps []entities.ApprovalStep, idx int, actor string, at time.Time) []entities.ApprovalStep {
	if idx != NextActionableIndex(steps) || idx < 0 {
		return steps
	}
	out := cloneSteps(steps)
	completedAt := at
	out[idx].Status = entities.StepStatusComplete
	out[idx].CompletedBy = actor
	out[idx].CompletedAt = &completedAt
	return out
}

// RejectStep marks the step at idx skipped. Skipped is terminal: no actor or
// timestamp is recorded and the step never returns to pending. Same no-op
// contract as ApproveStep for a non-actionable idx.
func RejectStep(steps []entities.ApprovalStep, idx int) []entities.ApprovalStep {
	if idx != NextActionableIndex(steps) || idx < 0 {
		return steps
	}
	out := cloneSteps(steps)
	out[idx].Status = entities.StepStatusSkipped
	out[idx].CompletedBy = ""
	out[idx].CompletedAt = nil
	return out
}

func cloneSteps(steps []entities.ApprovalStep) []entities.ApprovalStep {
	out := make([]entities.ApprovalStep, len(steps))
	copy(out, steps)
	return out
}

// SelectBidForTrade records bidID as the selected bid for tradeID.
//
// Exactly one bid may be selected per trade; a new selection silently
// replaces the previous one (last write wins, no history). Selecting a bid
// that is not among the trade's bids is a no-op — no ghost entry is created.
// The input selection map is never mutated.
func SelectBidForTrade(selection map[string]string, bidsByTrade map[string][]entities.VendorBid, tradeID, bidID string) map[string]string {
	out := make(map[string]string, len(selection)+1)
	for k, v := range selection {
		out[k] = v
	}

	for _, b := range bidsByTrade[tradeID] {
		if b.ID == bidID {
			out[tradeID] = bidID
			break
		}
	}
	return out
}

// LineItemTotal recomputes a takeoff row total. The stored total is never
// authoritative.
func LineItemTotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// SumLineItems totals a takeoff, recomputing every row.
func SumLineItems(items []entities.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += LineItemTotal(it.Quantity, it.UnitPrice)
	}
	return sum
}

// SumAllowances totals the carried allowances; resolved allowances drop out
// of the carry.
func SumAllowances(allowances []entities.Allowance) float64 {
	var sum float64
	for _, a := range allowances {
		if a.Status == entities.AllowanceStatusCarried {
			sum += a.Amount
		}
	}
	return sum
}
