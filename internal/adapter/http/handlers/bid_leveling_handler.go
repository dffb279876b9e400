package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "preconstruct/internal/adapter/http/dto/request"
	response "preconstruct/internal/adapter/http/dto/response"
	"preconstruct/internal/usecase"
	"preconstruct/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)
)

// BidLevelingHandler handles HTTP requests for vendor bid intake, leveling
// and the bid tabulation export.

type BidLevelingHandler struct {
	usecase usecase.IBidLevelingUseCase
}

func NewBidLevelingHandler(uc usecase.IBidLevelingUseCase) *BidLevelingHandler {
	return &BidLevelingHandler{usecase: uc}
}

// ReplaceBidsForTrade swaps a trade's whole bid set in one write.
func (h *BidLevelingHandler) ReplaceBidsForTrade(c *gin.Context) {
	var payload request.BidsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bids, err := payload.ResolveBids()
	if err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.ReplaceBidsForTrade(c.Request.Context(), c.Param("estimate_id"), c.Param("trade"), bids)
	if err != nil {
		appErr := mapBidLevelingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendorBids(saved))
}

func (h *BidLevelingHandler) ListBidsForTrade(c *gin.Context) {
	bids, err := h.usecase.ListBidsForTrade(c.Request.Context(), c.Param("estimate_id"), c.Param("trade"))
	if err != nil {
		appErr := mapBidLevelingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendorBids(bids))
}

// GetVarianceForTrade returns the trade's bid spread and risk classification.
func (h *BidLevelingHandler) GetVarianceForTrade(c *gin.Context) {
	variance, err := h.usecase.GetVarianceForTrade(c.Request.Context(), c.Param("estimate_id"), c.Param("trade"))
	if err != nil {
		appErr := mapBidLevelingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVariance(variance))
}

// SelectBid marks a bid as the trade's selected one. Selecting an unknown
// bid leaves the current selection untouched.
func (h *BidLevelingHandler) SelectBid(c *gin.Context) {
	estimate, err := h.usecase.SelectBid(c.Request.Context(), c.Param("estimate_id"), c.Param("trade"), c.Param("bid_id"))
	if err != nil {
		appErr := mapBidLevelingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *BidLevelingHandler) GetBidTab(c *gin.Context) {
	tab, err := h.usecase.BidTab(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapBidLevelingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBidTab(tab))
}

// ExportBidTab streams the bid tabulation workbook as an XLSX attachment.
func (h *BidLevelingHandler) ExportBidTab(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	book, err := h.usecase.ExportBidTabXLSX(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapBidLevelingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="bid-tab-%s.xlsx"`, estimateID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}

func mapBidLevelingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidTrade),
		errors.Is(err, usecase.ErrInvalidBidID),
		errors.Is(err, usecase.ErrInvalidBidAmount),
		errors.Is(err, usecase.ErrInvalidConfidence):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
