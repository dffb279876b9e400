package entities

import "time"

// EstimateStatus represents the lifecycle of a pre-construction estimate.
//
// Domain notes:
//   - The estimating-service is the source of truth for estimate state.
//   - An estimate moves to "approved" only when every approval step in its
//     workflow sequence is complete (a skipped step never approves).

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusInReview EstimateStatus = "in_review"
	EstimateStatusApproved EstimateStatus = "approved"
)

// CategoryStatus is the lifecycle of a single cost category within an estimate.
type CategoryStatus string

const (
	CategoryStatusDraft    CategoryStatus = "draft"
	CategoryStatusPending  CategoryStatus = "pending"
	CategoryStatusComplete CategoryStatus = "complete"
)

// CostCategory is one roll-up bucket of the estimate (e.g. "Concrete",
// "GC & GR", "Allowances"). Amount is the authoritative figure; derived
// totals are always recomputed from it, never stored.
type CostCategory struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Amount    float64        `json:"amount"`
	Status    CategoryStatus `json:"status"`
	ItemCount int            `json:"item_count"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// MarkupRates are the fixed markup fractions applied to the category subtotal.
// Each is applied to the subtotal independently, not compounded.
type MarkupRates struct {
	Overhead    float64 `json:"overhead"`
	Profit      float64 `json:"profit"`
	Contingency float64 `json:"contingency"`
}

// DefaultMarkupRates returns the product defaults: 10% overhead, 8% profit,
// 5% contingency.
func DefaultMarkupRates() MarkupRates {
	return MarkupRates{Overhead: 0.10, Profit: 0.08, Contingency: 0.05}
}

// Estimate is the estimating session aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Mutation model: collections (categories, approval steps, documents,
// allowances) are replaced whole on update. There is no field-level locking;
// callers must serialize writes to a given estimate.
type Estimate struct {
	ID            string            `json:"id"`
	ProjectName   string            `json:"project_name"`
	CSIDivision   string            `json:"csi_division,omitempty"`
	GrossSF       float64           `json:"gross_sf"`
	NetSF         float64           `json:"net_sf"`
	Rates         MarkupRates       `json:"rates"`
	Categories    []CostCategory    `json:"categories"`
	ApprovalSteps []ApprovalStep    `json:"approval_steps"`
	BidSelections map[string]string `json:"bid_selections"`
	Documents     []ProjectDocument `json:"documents"`
	Allowances    []Allowance       `json:"allowances"`
	Notes         string            `json:"notes"`
	Status        EstimateStatus    `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
