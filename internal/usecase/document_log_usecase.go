package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"preconstruct/internal/adapter/export"
	"preconstruct/internal/domain/entities"
	"preconstruct/internal/domain/estimating"
	"preconstruct/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAllowanceAmount = errors.New("invalid allowance amount")
)

// allowancesCategoryName is the roll-up category fed by the allowance log.
const allowancesCategoryName = "Allowances"

//go:generate mockgen -source=document_log_usecase.go -destination=../adapter/http/handlers/mocks/document_log_usecase_mock.go -package=mocks

// IDocumentLogUseCase manages the estimate's document log and allowances.
//
// The document log is a plain register of issued drawings/specs; its CSV
// import/export follows the fixed column order owned by the export adapter.
// Allowances additionally feed the "Allowances" cost category so the carried
// sum flows into the roll-up.

type IDocumentLogUseCase interface {
	ListDocuments(ctx context.Context, estimateID string) ([]entities.ProjectDocument, error)
	ReplaceDocuments(ctx context.Context, estimateID string, docs []entities.ProjectDocument) (entities.Estimate, error)
	ImportDocumentsCSV(ctx context.Context, estimateID string, r io.Reader) (entities.Estimate, []export.RowError, error)
	ExportDocumentsCSV(ctx context.Context, estimateID string) ([]byte, error)
	ReplaceAllowances(ctx context.Context, estimateID string, allowances []entities.Allowance) (entities.Estimate, error)
	ExportAllowancesCSV(ctx context.Context, estimateID string) ([]byte, error)
}

type DocumentLogUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IDocumentLogUseCase = (*DocumentLogUseCase)(nil)

func NewDocumentLogUseCase(repo interfaces.IEstimateRepository) *DocumentLogUseCase {
	return &DocumentLogUseCase{repo: repo}
}

func (u *DocumentLogUseCase) ListDocuments(ctx context.Context, estimateID string) ([]entities.ProjectDocument, error) {
	e, err := u.load(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	return e.Documents, nil
}

func (u *DocumentLogUseCase) ReplaceDocuments(ctx context.Context, estimateID string, docs []entities.ProjectDocument) (entities.Estimate, error) {
	e, err := u.load(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	next := make([]entities.ProjectDocument, len(docs))
	for i, d := range docs {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		next[i] = d
	}

	e.Documents = next
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, e)
}

func (u *DocumentLogUseCase) ImportDocumentsCSV(ctx context.Context, estimateID string, r io.Reader) (entities.Estimate, []export.RowError, error) {
	docs, rowErrs, err := export.ParseDocumentsCSV(r)
	if err != nil {
		return entities.Estimate{}, nil, err
	}

	e, err := u.ReplaceDocuments(ctx, estimateID, docs)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	return e, rowErrs, nil
}

func (u *DocumentLogUseCase) ExportDocumentsCSV(ctx context.Context, estimateID string) ([]byte, error) {
	e, err := u.load(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	return export.DocumentsCSV(e.Documents)
}

func (u *DocumentLogUseCase) ReplaceAllowances(ctx context.Context, estimateID string, allowances []entities.Allowance) (entities.Estimate, error) {
	for _, a := range allowances {
		if a.Amount < 0 {
			return entities.Estimate{}, ErrInvalidAllowanceAmount
		}
	}

	e, err := u.load(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	next := make([]entities.Allowance, len(allowances))
	for i, a := range allowances {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if a.Status == "" {
			a.Status = entities.AllowanceStatusCarried
		}
		next[i] = a
	}

	e.Allowances = next
	e.Categories = upsertAllowancesCategory(e.Categories, estimating.SumAllowances(next), len(next), now)
	e.UpdatedAt = now
	return u.repo.Save(ctx, e)
}

func (u *DocumentLogUseCase) ExportAllowancesCSV(ctx context.Context, estimateID string) ([]byte, error) {
	e, err := u.load(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	return export.AllowancesCSV(e.Allowances)
}

// upsertAllowancesCategory keeps the "Allowances" roll-up category in sync
// with the carried allowance sum. The category is created on first use and
// updated in place afterwards.
func upsertAllowancesCategory(categories []entities.CostCategory, amount float64, count int, now time.Time) []entities.CostCategory {
	out := make([]entities.CostCategory, len(categories))
	copy(out, categories)

	for i, c := range out {
		if c.Name == allowancesCategoryName {
			out[i].Amount = amount
			out[i].ItemCount = count
			out[i].UpdatedAt = now
			return out
		}
	}
	return append(out, entities.CostCategory{
		ID:        uuid.NewString(),
		Name:      allowancesCategoryName,
		Amount:    amount,
		Status:    entities.CategoryStatusPending,
		ItemCount: count,
		UpdatedAt: now,
	})
}

func (u *DocumentLogUseCase) load(ctx context.Context, id string) (entities.Estimate, error) {
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
