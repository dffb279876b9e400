package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"preconstruct/internal/domain/entities"
	"preconstruct/internal/domain/estimating"
	"preconstruct/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrInvalidProjectName    = errors.New("invalid project name")
	ErrInvalidCategoryAmount = errors.New("invalid category amount")
	ErrInvalidMarkupRates    = errors.New("invalid markup rates")
	ErrInvalidArea           = errors.New("invalid area")
	ErrNoActionableStep      = errors.New("no actionable approval step")
)

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/estimate_usecase_mock.go -package=mocks

// IEstimateUseCase exposes the estimate session operations.
//
// Mutations follow replace-collection semantics: the caller sends the whole
// category set and the aggregate is saved back in one write. The cost
// breakdown is never stored; it is recomputed from the aggregate on demand.

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, projectName, csiDivision string, grossSF, netSF float64) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ReplaceCategories(ctx context.Context, id string, categories []entities.CostCategory) (entities.Estimate, error)
	UpdateRates(ctx context.Context, id string, rates entities.MarkupRates, grossSF, netSF float64) (entities.Estimate, error)
	GetBreakdown(ctx context.Context, id string) (estimating.Breakdown, error)
	GetApprovalProgress(ctx context.Context, id string) (estimating.ApprovalProgress, error)
	ApproveCurrentStep(ctx context.Context, id, actor string) (entities.Estimate, error)
	RejectCurrentStep(ctx context.Context, id string) (entities.Estimate, error)
	UpdateNotes(ctx context.Context, id, notes string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

// defaultApprovalSequence is the four-step workflow every new estimate
// starts with. Order matters: only the first pending step is actionable.
func defaultApprovalSequence() []entities.ApprovalStep {
	titles := []struct {
		title string
		desc  string
	}{
		{"Estimator review", "Line items, takeoff quantities and category roll-up verified"},
		{"Senior estimator review", "Markup rates, allowances and bid selections verified"},
		{"Operations review", "Constructability and GC/GR coverage verified"},
		{"Executive approval", "Final sign-off for submission"},
	}
	steps := make([]entities.ApprovalStep, len(titles))
	for i, t := range titles {
		steps[i] = entities.ApprovalStep{
			ID:          uuid.NewString(),
			Title:       t.title,
			Description: t.desc,
			Status:      entities.StepStatusPending,
		}
	}
	return steps
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, projectName, csiDivision string, grossSF, netSF float64) (entities.Estimate, error) {
	projectName = strings.TrimSpace(projectName)
	if projectName == "" {
		return entities.Estimate{}, ErrInvalidProjectName
	}
	if grossSF < 0 || netSF < 0 {
		return entities.Estimate{}, ErrInvalidArea
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:            uuid.NewString(),
		ProjectName:   projectName,
		CSIDivision:   strings.TrimSpace(csiDivision),
		GrossSF:       grossSF,
		NetSF:         netSF,
		Rates:         entities.DefaultMarkupRates(),
		Categories:    []entities.CostCategory{},
		ApprovalSteps: defaultApprovalSequence(),
		BidSelections: map[string]string{},
		Status:        entities.EstimateStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return u.load(ctx, id)
}

func (u *EstimateUseCase) ReplaceCategories(ctx context.Context, id string, categories []entities.CostCategory) (entities.Estimate, error) {
	for _, c := range categories {
		if c.Amount < 0 {
			return entities.Estimate{}, ErrInvalidCategoryAmount
		}
	}

	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	next := make([]entities.CostCategory, len(categories))
	for i, c := range categories {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Status == "" {
			c.Status = entities.CategoryStatusDraft
		}
		c.UpdatedAt = now
		next[i] = c
	}

	e.Categories = next
	e.UpdatedAt = now
	return u.repo.Save(ctx, e)
}

func (u *EstimateUseCase) UpdateRates(ctx context.Context, id string, rates entities.MarkupRates, grossSF, netSF float64) (entities.Estimate, error) {
	if !validRate(rates.Overhead) || !validRate(rates.Profit) || !validRate(rates.Contingency) {
		return entities.Estimate{}, ErrInvalidMarkupRates
	}
	if grossSF < 0 || netSF < 0 {
		return entities.Estimate{}, ErrInvalidArea
	}

	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	e.Rates = rates
	e.GrossSF = grossSF
	e.NetSF = netSF
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, e)
}

// validRate accepts fractions in [0,1]; rates are never whole percentages at
// this boundary.
func validRate(r float64) bool {
	return r >= 0 && r <= 1
}

func (u *EstimateUseCase) GetBreakdown(ctx context.Context, id string) (estimating.Breakdown, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return estimating.Breakdown{}, err
	}
	return estimating.ComputeCostBreakdown(e.Categories, e.Rates, e.GrossSF, e.NetSF), nil
}

func (u *EstimateUseCase) GetApprovalProgress(ctx context.Context, id string) (estimating.ApprovalProgress, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return estimating.ApprovalProgress{}, err
	}
	return estimating.ComputeApprovalProgress(e.ApprovalSteps), nil
}

func (u *EstimateUseCase) ApproveCurrentStep(ctx context.Context, id, actor string) (entities.Estimate, error) {
	actor = strings.TrimSpace(actor)

	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	idx := estimating.NextActionableIndex(e.ApprovalSteps)
	if idx < 0 {
		return entities.Estimate{}, ErrNoActionableStep
	}

	now := time.Now().UTC()
	e.ApprovalSteps = estimating.ApproveStep(e.ApprovalSteps, idx, actor, now)
	e.Status = statusFromProgress(estimating.ComputeApprovalProgress(e.ApprovalSteps))
	e.UpdatedAt = now
	return u.repo.Save(ctx, e)
}

func (u *EstimateUseCase) RejectCurrentStep(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	idx := estimating.NextActionableIndex(e.ApprovalSteps)
	if idx < 0 {
		return entities.Estimate{}, ErrNoActionableStep
	}

	now := time.Now().UTC()
	e.ApprovalSteps = estimating.RejectStep(e.ApprovalSteps, idx)
	e.Status = statusFromProgress(estimating.ComputeApprovalProgress(e.ApprovalSteps))
	e.UpdatedAt = now
	return u.repo.Save(ctx, e)
}

// statusFromProgress maps workflow progress onto the estimate lifecycle:
// only a fully complete sequence yields approved, anything touched is
// in_review.
func statusFromProgress(p estimating.ApprovalProgress) entities.EstimateStatus {
	if p.IsFullyApproved {
		return entities.EstimateStatusApproved
	}
	return entities.EstimateStatusInReview
}

func (u *EstimateUseCase) UpdateNotes(ctx context.Context, id, notes string) (entities.Estimate, error) {
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	e.Notes = notes
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, e)
}

func (u *EstimateUseCase) load(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
