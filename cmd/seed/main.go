package main

import (
	"context"
	"log"
	"time"

	repository2 "preconstruct/internal/adapter/persistence/repository"
	"preconstruct/internal/config"
	"preconstruct/internal/domain/entities"
	"preconstruct/internal/infrastructure/database"
	"preconstruct/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

// seedEstimateID keeps the seeder idempotent: re-running it against the same
// tables is a no-op once the sample estimate exists.
const seedEstimateID = "00000000-0000-0000-0000-00000000seed"

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ddb := database.ConnectDynamoDB(cfg)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	bidRepo := repository2.NewVendorBidDynamoRepository(ddb)

	existing, err := estimateRepo.GetByID(ctx, seedEstimateID)
	if err != nil {
		log.Fatalf("Failed to check for existing seed estimate: %v", err)
	}
	if existing.ID != "" {
		logger.Info("seed estimate already present, nothing to do", zap.String("estimate_id", seedEstimateID))
		return
	}

	now := time.Now().UTC()
	estimate := entities.Estimate{
		ID:          seedEstimateID,
		ProjectName: "Riverside Medical Office Building",
		CSIDivision: "MasterFormat 2020",
		GrossSF:     148800,
		NetSF:       121000,
		Rates:       entities.DefaultMarkupRates(),
		Categories: []entities.CostCategory{
			{ID: uuid.NewString(), Name: "Building Construction", Amount: 1425000, Status: entities.CategoryStatusComplete, ItemCount: 42, UpdatedAt: now},
			{ID: uuid.NewString(), Name: "General Conditions", Amount: 63500, Status: entities.CategoryStatusComplete, ItemCount: 12, UpdatedAt: now},
			{ID: uuid.NewString(), Name: "General Requirements", Amount: 56000, Status: entities.CategoryStatusPending, ItemCount: 9, UpdatedAt: now},
			{ID: uuid.NewString(), Name: "Sitework", Amount: 285000, Status: entities.CategoryStatusDraft, ItemCount: 17, UpdatedAt: now},
		},
		ApprovalSteps: []entities.ApprovalStep{
			{ID: uuid.NewString(), Title: "Estimator review", Description: "Line items, takeoff quantities and category roll-up verified", Status: entities.StepStatusPending},
			{ID: uuid.NewString(), Title: "Senior estimator review", Description: "Markup rates, allowances and bid selections verified", Status: entities.StepStatusPending},
			{ID: uuid.NewString(), Title: "Operations review", Description: "Constructability and GC/GR coverage verified", Status: entities.StepStatusPending},
			{ID: uuid.NewString(), Title: "Executive approval", Description: "Final sign-off for submission", Status: entities.StepStatusPending},
		},
		BidSelections: map[string]string{},
		Documents: []entities.ProjectDocument{
			{ID: uuid.NewString(), SheetNumber: "A1.1", Description: "Floor Plan - Level 1", DateIssued: "2025-05-12", DateReceived: "2025-05-14", Category: "Architectural", Revision: "2"},
			{ID: uuid.NewString(), SheetNumber: "S2.0", Description: "Foundation Plan", DateIssued: "2025-05-12", DateReceived: "2025-05-14", Category: "Structural", Revision: "1"},
			{ID: uuid.NewString(), SheetNumber: "E3.1", Description: "Power Plan - Level 1", DateIssued: "2025-05-20", DateReceived: "2025-05-22", Category: "Electrical", Revision: "0", Notes: "Issued for pricing"},
		},
		Allowances: []entities.Allowance{
			{ID: uuid.NewString(), Description: "Signage allowance", Amount: 25000, Status: entities.AllowanceStatusCarried},
			{ID: uuid.NewString(), Description: "Landscaping allowance", Amount: 40000, Status: entities.AllowanceStatusCarried},
		},
		Status:    entities.EstimateStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := estimateRepo.Create(ctx, estimate); err != nil {
		log.Fatalf("Failed to create seed estimate: %v", err)
	}
	logger.Info("seeded estimate", zap.String("estimate_id", estimate.ID), zap.String("project", estimate.ProjectName))

	bids := map[string][]entities.VendorBid{
		"concrete": {
			{VendorName: "Atlas Concrete", TotalAmount: 485000, Confidence: 85, Inclusions: []string{"Formwork", "Rebar", "Pump"}, Exclusions: []string{"Winter protection"}},
			{VendorName: "Pinnacle Structures", TotalAmount: 520000, Confidence: 92, Inclusions: []string{"Formwork", "Rebar", "Pump", "Winter protection"}},
			{VendorName: "Metro Form & Pour", TotalAmount: 465000, Confidence: 68, Exclusions: []string{"Pump", "Winter protection"}},
		},
		"electrical": {
			{VendorName: "Valley Electric", TotalAmount: 425000, Confidence: 80, Inclusions: []string{"Gear", "Branch wiring"}},
			{VendorName: "Current Electrical", TotalAmount: 380000, Confidence: 75, Exclusions: []string{"Low voltage"}},
			{VendorName: "Summit Power", TotalAmount: 550000, Confidence: 95, Inclusions: []string{"Gear", "Branch wiring", "Low voltage", "Fire alarm"}},
		},
	}

	for trade, set := range bids {
		for i := range set {
			set[i].ID = uuid.NewString()
			set[i].EstimateID = estimate.ID
			set[i].Trade = trade
			set[i].Status = entities.BidStatusReceived
			set[i].SubmittedAt = now
		}
		if _, err := bidRepo.ReplaceForTrade(ctx, estimate.ID, trade, set); err != nil {
			log.Fatalf("Failed to seed %s bids: %v", trade, err)
		}
		logger.Info("seeded bids", zap.String("trade", trade), zap.Int("count", len(set)))
	}

	logger.Info("seeding complete")
}
