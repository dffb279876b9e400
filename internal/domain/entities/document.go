package entities

// ProjectDocument is one row of the estimate's drawing/spec document log.
//
// The field order below matches the fixed CSV interchange schema:
// sheet number, description, date issued, date received, category, notes,
// revision. Dates are kept as strings because the log mirrors whatever the
// issuing architect printed on the sheet.
type ProjectDocument struct {
	ID           string `json:"id"`
	SheetNumber  string `json:"sheet_number"`
	Description  string `json:"description"`
	DateIssued   string `json:"date_issued"`
	DateReceived string `json:"date_received"`
	Category     string `json:"category"`
	Notes        string `json:"notes"`
	Revision     string `json:"revision"`
}

// AllowanceStatus is the lifecycle of a carried allowance.
type AllowanceStatus string

const (
	AllowanceStatusCarried  AllowanceStatus = "carried"
	AllowanceStatusResolved AllowanceStatus = "resolved"
)

// Allowance is a placeholder sum carried in the estimate for scope that is
// not yet fully designed or bought out.
type Allowance struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Status      AllowanceStatus `json:"status"`
	Notes       string          `json:"notes,omitempty"`
}
