package request

import (
	"errors"
	"strings"

	"preconstruct/internal/domain/entities"
)

var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidRates       = errors.New("invalid markup rates")
	ErrInvalidProjectName = errors.New("invalid project name")
)

// CreateEstimateRequest starts a new estimating session.
type CreateEstimateRequest struct {
	ProjectName string  `json:"project_name" binding:"required"`
	CSIDivision string  `json:"csi_division"`
	GrossSF     float64 `json:"gross_sf"`
	NetSF       float64 `json:"net_sf"`
}

func (r CreateEstimateRequest) ResolveProjectName() (string, error) {
	name := strings.TrimSpace(r.ProjectName)
	if name == "" {
		return "", ErrInvalidProjectName
	}
	return name, nil
}

// CategoryRequest is one cost category row of a replace-collection payload.
type CategoryRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" binding:"required"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	ItemCount int     `json:"item_count"`
}

// CategoriesRequest replaces the estimate's whole category set.
type CategoriesRequest struct {
	Categories []CategoryRequest `json:"categories"`
}

// ResolveCategories validates and converts the payload. Negative amounts and
// blank names are rejected here so the pure engine below never sees them.
func (r CategoriesRequest) ResolveCategories() ([]entities.CostCategory, error) {
	out := make([]entities.CostCategory, 0, len(r.Categories))
	for _, c := range r.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" || c.Amount < 0 {
			return nil, ErrInvalidCategory
		}
		out = append(out, entities.CostCategory{
			ID:        strings.TrimSpace(c.ID),
			Name:      name,
			Amount:    c.Amount,
			Status:    entities.CategoryStatus(c.Status),
			ItemCount: c.ItemCount,
		})
	}
	return out, nil
}

// RatesRequest updates the markup rates and area denominators.
type RatesRequest struct {
	Overhead    float64 `json:"overhead"`
	Profit      float64 `json:"profit"`
	Contingency float64 `json:"contingency"`
	GrossSF     float64 `json:"gross_sf"`
	NetSF       float64 `json:"net_sf"`
}

// ResolveRates accepts markup fractions in [0,1].
func (r RatesRequest) ResolveRates() (entities.MarkupRates, error) {
	for _, rate := range []float64{r.Overhead, r.Profit, r.Contingency} {
		if rate < 0 || rate > 1 {
			return entities.MarkupRates{}, ErrInvalidRates
		}
	}
	return entities.MarkupRates{Overhead: r.Overhead, Profit: r.Profit, Contingency: r.Contingency}, nil
}

// ApprovalActionRequest carries the acting user for an approve action.
type ApprovalActionRequest struct {
	Actor string `json:"actor" binding:"required"`
}

// NotesRequest replaces the estimate's free-text notes.
type NotesRequest struct {
	Notes string `json:"notes"`
}
