package request

import (
	"errors"
	"strings"

	"preconstruct/internal/domain/entities"
)

var (
	ErrInvalidDocument  = errors.New("invalid document")
	ErrInvalidAllowance = errors.New("invalid allowance")
)

// DocumentRequest is one document-log row of a replace-collection payload.
type DocumentRequest struct {
	ID           string `json:"id"`
	SheetNumber  string `json:"sheet_number"`
	Description  string `json:"description"`
	DateIssued   string `json:"date_issued"`
	DateReceived string `json:"date_received"`
	Category     string `json:"category"`
	Notes        string `json:"notes"`
	Revision     string `json:"revision"`
}

// DocumentsRequest replaces the estimate's whole document log.
type DocumentsRequest struct {
	Documents []DocumentRequest `json:"documents"`
}

// ResolveDocuments rejects rows that carry neither a sheet number nor a
// description; everything else is accepted as-entered.
func (r DocumentsRequest) ResolveDocuments() ([]entities.ProjectDocument, error) {
	out := make([]entities.ProjectDocument, 0, len(r.Documents))
	for _, d := range r.Documents {
		sheet := strings.TrimSpace(d.SheetNumber)
		desc := strings.TrimSpace(d.Description)
		if sheet == "" && desc == "" {
			return nil, ErrInvalidDocument
		}
		out = append(out, entities.ProjectDocument{
			ID:           strings.TrimSpace(d.ID),
			SheetNumber:  sheet,
			Description:  desc,
			DateIssued:   strings.TrimSpace(d.DateIssued),
			DateReceived: strings.TrimSpace(d.DateReceived),
			Category:     strings.TrimSpace(d.Category),
			Notes:        d.Notes,
			Revision:     strings.TrimSpace(d.Revision),
		})
	}
	return out, nil
}

// AllowanceRequest is one allowance row of a replace-collection payload.
type AllowanceRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
}

// AllowancesRequest replaces the estimate's whole allowance set.
type AllowancesRequest struct {
	Allowances []AllowanceRequest `json:"allowances"`
}

func (r AllowancesRequest) ResolveAllowances() ([]entities.Allowance, error) {
	out := make([]entities.Allowance, 0, len(r.Allowances))
	for _, a := range r.Allowances {
		desc := strings.TrimSpace(a.Description)
		if desc == "" || a.Amount < 0 {
			return nil, ErrInvalidAllowance
		}
		out = append(out, entities.Allowance{
			ID:          strings.TrimSpace(a.ID),
			Description: desc,
			Amount:      a.Amount,
			Status:      entities.AllowanceStatus(a.Status),
			Notes:       a.Notes,
		})
	}
	return out, nil
}
