package usecase

import (
	"context"
	"errors"
	"testing"

	"preconstruct/internal/domain/entities"
	mock_interfaces "preconstruct/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEstimateUseCase_CreateEstimate(t *testing.T) {
	t.Run("invalid project name", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.CreateEstimate(context.Background(), "   ", "", 1000, 900)
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("negative area", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.CreateEstimate(context.Background(), "Office Tower", "", -1, 900)
		if !errors.Is(err, ErrInvalidArea) {
			t.Fatalf("expected ErrInvalidArea, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.ProjectName != "Office Tower" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Status != entities.EstimateStatusDraft {
					t.Fatalf("expected draft status, got %s", e.Status)
				}
				if e.Rates != entities.DefaultMarkupRates() {
					t.Fatalf("expected default markup rates, got %+v", e.Rates)
				}
				if len(e.ApprovalSteps) != 4 {
					t.Fatalf("expected 4 approval steps, got %d", len(e.ApprovalSteps))
				}
				for _, s := range e.ApprovalSteps {
					if s.Status != entities.StepStatusPending {
						t.Fatalf("expected pending steps, got %s", s.Status)
					}
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		res, err := uc.CreateEstimate(context.Background(), " Office Tower ", "MasterFormat 2020", 148800, 121000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "est-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_ReplaceCategories(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.ReplaceCategories(context.Background(), "est-1", []entities.CostCategory{{Name: "Sitework", Amount: -1}})
		if !errors.Is(err, ErrInvalidCategoryAmount) {
			t.Fatalf("expected ErrInvalidCategoryAmount, got %v", err)
		}
	})

	t.Run("replace fills ids and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if len(e.Categories) != 2 {
					t.Fatalf("expected 2 categories, got %d", len(e.Categories))
				}
				for _, c := range e.Categories {
					if c.ID == "" {
						t.Fatalf("expected generated category id")
					}
					if c.UpdatedAt.IsZero() {
						t.Fatalf("expected category timestamp")
					}
				}
				if e.Categories[0].Status != entities.CategoryStatusDraft {
					t.Fatalf("expected default draft status, got %s", e.Categories[0].Status)
				}
				if e.Categories[1].Status != entities.CategoryStatusComplete {
					t.Fatalf("expected complete status kept, got %s", e.Categories[1].Status)
				}
				return e, nil
			},
		)

		_, err := uc.ReplaceCategories(context.Background(), "est-1", []entities.CostCategory{
			{Name: "Sitework", Amount: 285000},
			{Name: "Building Construction", Amount: 1425000, Status: entities.CategoryStatusComplete},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_UpdateRates(t *testing.T) {
	t.Run("rate above one", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.UpdateRates(context.Background(), "est-1", entities.MarkupRates{Overhead: 1.5}, 1000, 900)
		if !errors.Is(err, ErrInvalidMarkupRates) {
			t.Fatalf("expected ErrInvalidMarkupRates, got %v", err)
		}
	})

	t.Run("negative rate", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.UpdateRates(context.Background(), "est-1", entities.MarkupRates{Profit: -0.1}, 1000, 900)
		if !errors.Is(err, ErrInvalidMarkupRates) {
			t.Fatalf("expected ErrInvalidMarkupRates, got %v", err)
		}
	})

	t.Run("negative area", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.UpdateRates(context.Background(), "est-1", entities.DefaultMarkupRates(), -1, 900)
		if !errors.Is(err, ErrInvalidArea) {
			t.Fatalf("expected ErrInvalidArea, got %v", err)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		rates := entities.MarkupRates{Overhead: 0.12, Profit: 0.06, Contingency: 0.03}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Rates != rates {
					t.Fatalf("unexpected rates: %+v", e.Rates)
				}
				if e.GrossSF != 150000 || e.NetSF != 120000 {
					t.Fatalf("unexpected areas: %v/%v", e.GrossSF, e.NetSF)
				}
				return e, nil
			},
		)

		_, err := uc.UpdateRates(context.Background(), "est-1", rates, 150000, 120000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_GetBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewEstimateUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{
		ID:         "est-1",
		Rates:      entities.DefaultMarkupRates(),
		Categories: []entities.CostCategory{{Name: "Sitework", Amount: 1000}},
	}, nil)

	b, err := uc.GetBreakdown(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Subtotal != 1000 || b.Total != 1230 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestEstimateUseCase_ApprovalFlow(t *testing.T) {
	steps := func() []entities.ApprovalStep {
		return []entities.ApprovalStep{
			{ID: "s1", Title: "Estimator review", Status: entities.StepStatusPending},
			{ID: "s2", Title: "Executive approval", Status: entities.StepStatusPending},
		}
	}

	t.Run("approve records actor and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", ApprovalSteps: steps()}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ApprovalSteps[0].Status != entities.StepStatusComplete {
					t.Fatalf("expected first step complete, got %s", e.ApprovalSteps[0].Status)
				}
				if e.ApprovalSteps[0].CompletedBy != "dana" || e.ApprovalSteps[0].CompletedAt == nil {
					t.Fatalf("expected actor and timestamp recorded")
				}
				if e.Status != entities.EstimateStatusInReview {
					t.Fatalf("expected in_review, got %s", e.Status)
				}
				return e, nil
			},
		)

		_, err := uc.ApproveCurrentStep(context.Background(), "est-1", "dana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approving last step marks estimate approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		partial := steps()
		partial[0].Status = entities.StepStatusComplete
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", ApprovalSteps: partial}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Status != entities.EstimateStatusApproved {
					t.Fatalf("expected approved, got %s", e.Status)
				}
				return e, nil
			},
		)

		_, err := uc.ApproveCurrentStep(context.Background(), "est-1", "dana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reject skips step and records nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", ApprovalSteps: steps()}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ApprovalSteps[0].Status != entities.StepStatusSkipped {
					t.Fatalf("expected skipped, got %s", e.ApprovalSteps[0].Status)
				}
				if e.ApprovalSteps[0].CompletedBy != "" || e.ApprovalSteps[0].CompletedAt != nil {
					t.Fatalf("reject must not record actor or timestamp")
				}
				return e, nil
			},
		)

		_, err := uc.RejectCurrentStep(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no actionable step after skip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		blocked := steps()
		blocked[0].Status = entities.StepStatusSkipped
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", ApprovalSteps: blocked}, nil)

		_, err := uc.ApproveCurrentStep(context.Background(), "est-1", "dana")
		if !errors.Is(err, ErrNoActionableStep) {
			t.Fatalf("expected ErrNoActionableStep, got %v", err)
		}
	})
}

func TestEstimateUseCase_UpdateNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	uc := NewEstimateUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
		func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
			if e.Notes != "pending addendum 3" {
				t.Fatalf("unexpected notes: %q", e.Notes)
			}
			return e, nil
		},
	)

	_, err := uc.UpdateNotes(context.Background(), "est-1", "pending addendum 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
