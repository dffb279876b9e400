package request

import (
	"errors"
	"testing"

	"preconstruct/internal/domain/entities"
)

func TestCreateEstimateRequest_ResolveProjectName(t *testing.T) {
	r := CreateEstimateRequest{ProjectName: " Office Tower "}
	name, err := r.ResolveProjectName()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Office Tower" {
		t.Fatalf("expected Office Tower, got %q", name)
	}

	r2 := CreateEstimateRequest{ProjectName: "   "}
	if _, err := r2.ResolveProjectName(); !errors.Is(err, ErrInvalidProjectName) {
		t.Fatalf("expected ErrInvalidProjectName, got %v", err)
	}
}

func TestCategoriesRequest_ResolveCategories(t *testing.T) {
	r := CategoriesRequest{Categories: []CategoryRequest{
		{Name: " Sitework ", Amount: 285000, Status: "complete", ItemCount: 17},
		{Name: "General Conditions", Amount: 63500},
	}}
	categories, err := r.ResolveCategories()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "Sitework" || categories[0].Status != entities.CategoryStatusComplete {
		t.Fatalf("unexpected category: %+v", categories[0])
	}

	r2 := CategoriesRequest{Categories: []CategoryRequest{{Name: "  ", Amount: 10}}}
	if _, err := r2.ResolveCategories(); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	r3 := CategoriesRequest{Categories: []CategoryRequest{{Name: "Sitework", Amount: -1}}}
	if _, err := r3.ResolveCategories(); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestRatesRequest_ResolveRates(t *testing.T) {
	r := RatesRequest{Overhead: 0.12, Profit: 0.06, Contingency: 0.03}
	rates, err := r.ResolveRates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates.Overhead != 0.12 || rates.Profit != 0.06 || rates.Contingency != 0.03 {
		t.Fatalf("unexpected rates: %+v", rates)
	}

	// Whole percentages are not accepted at this boundary.
	r2 := RatesRequest{Overhead: 10}
	if _, err := r2.ResolveRates(); !errors.Is(err, ErrInvalidRates) {
		t.Fatalf("expected ErrInvalidRates, got %v", err)
	}

	r3 := RatesRequest{Profit: -0.05}
	if _, err := r3.ResolveRates(); !errors.Is(err, ErrInvalidRates) {
		t.Fatalf("expected ErrInvalidRates, got %v", err)
	}
}

func TestBidsRequest_ResolveBids(t *testing.T) {
	r := BidsRequest{Bids: []BidRequest{{
		VendorName: " Atlas Concrete ",
		Confidence: 85,
		LineItems: []LineItemRequest{
			{Description: "Footings", Quantity: 100, Unit: " cy ", UnitPrice: 250},
		},
	}}}
	bids, err := r.ResolveBids()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bids[0].VendorName != "Atlas Concrete" {
		t.Fatalf("unexpected vendor: %q", bids[0].VendorName)
	}
	if bids[0].LineItems[0].Unit != entities.UnitCY {
		t.Fatalf("expected unit normalized to CY, got %q", bids[0].LineItems[0].Unit)
	}

	r2 := BidsRequest{Bids: []BidRequest{{VendorName: "  "}}}
	if _, err := r2.ResolveBids(); !errors.Is(err, ErrInvalidBid) {
		t.Fatalf("expected ErrInvalidBid, got %v", err)
	}

	r3 := BidsRequest{Bids: []BidRequest{{VendorName: "Atlas Concrete", Confidence: 101}}}
	if _, err := r3.ResolveBids(); !errors.Is(err, ErrInvalidConfidence) {
		t.Fatalf("expected ErrInvalidConfidence, got %v", err)
	}

	r4 := BidsRequest{Bids: []BidRequest{{
		VendorName: "Atlas Concrete",
		LineItems:  []LineItemRequest{{Quantity: -1, UnitPrice: 5}},
	}}}
	if _, err := r4.ResolveBids(); !errors.Is(err, ErrInvalidLineItem) {
		t.Fatalf("expected ErrInvalidLineItem, got %v", err)
	}
}

func TestDocumentsRequest_ResolveDocuments(t *testing.T) {
	r := DocumentsRequest{Documents: []DocumentRequest{
		{SheetNumber: " A1.1 ", Description: "Floor Plan"},
		{Description: "Spec section 03 30 00"},
	}}
	docs, err := r.ResolveDocuments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 || docs[0].SheetNumber != "A1.1" {
		t.Fatalf("unexpected documents: %+v", docs)
	}

	r2 := DocumentsRequest{Documents: []DocumentRequest{{Category: "Architectural"}}}
	if _, err := r2.ResolveDocuments(); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestAllowancesRequest_ResolveAllowances(t *testing.T) {
	r := AllowancesRequest{Allowances: []AllowanceRequest{
		{Description: " Signage allowance ", Amount: 25000, Status: "carried"},
	}}
	allowances, err := r.ResolveAllowances()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowances[0].Description != "Signage allowance" || allowances[0].Status != entities.AllowanceStatusCarried {
		t.Fatalf("unexpected allowance: %+v", allowances[0])
	}

	r2 := AllowancesRequest{Allowances: []AllowanceRequest{{Description: "Signage", Amount: -1}}}
	if _, err := r2.ResolveAllowances(); !errors.Is(err, ErrInvalidAllowance) {
		t.Fatalf("expected ErrInvalidAllowance, got %v", err)
	}
}
