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
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
	errInvalidCSVPayload      = pkg.NewDomainErrorSimple("INVALID_CSV", "Invalid CSV payload", http.StatusBadRequest)
)

// DocumentLogHandler handles HTTP requests for the project document log and
// the allowance register, including CSV import/export.

type DocumentLogHandler struct {
	usecase usecase.IDocumentLogUseCase
}

func NewDocumentLogHandler(uc usecase.IDocumentLogUseCase) *DocumentLogHandler {
	return &DocumentLogHandler{usecase: uc}
}

func (h *DocumentLogHandler) ListDocuments(c *gin.Context) {
	docs, err := h.usecase.ListDocuments(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapDocumentLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, docs)
}

// ReplaceDocuments swaps the estimate's whole document log in one write.
func (h *DocumentLogHandler) ReplaceDocuments(c *gin.Context) {
	var payload request.DocumentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	docs, err := payload.ResolveDocuments()
	if err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.ReplaceDocuments(c.Request.Context(), c.Param("estimate_id"), docs)
	if err != nil {
		appErr := mapDocumentLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ImportDocumentsCSV replaces the document log from a CSV body. Bad rows are
// skipped and reported; a bad header fails the whole import.
func (h *DocumentLogHandler) ImportDocumentsCSV(c *gin.Context) {
	estimate, rowErrs, err := h.usecase.ImportDocumentsCSV(c.Request.Context(), c.Param("estimate_id"), c.Request.Body)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidEstimateID) || errors.Is(err, usecase.ErrEstimateNotFound) {
			appErr := mapDocumentLogError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(errInvalidCSVPayload.HTTPStatus, errInvalidCSVPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ImportResultResponse{
		Imported:  len(estimate.Documents),
		RowErrors: rowErrs,
	})
}

// ExportDocumentsCSV streams the document log as a CSV attachment.
func (h *DocumentLogHandler) ExportDocumentsCSV(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	data, err := h.usecase.ExportDocumentsCSV(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapDocumentLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="document-log-%s.csv"`, estimateID))
	c.Data(http.StatusOK, "text/csv", data)
}

// ReplaceAllowances swaps the allowance register and refreshes the Allowances
// roll-up category.
func (h *DocumentLogHandler) ReplaceAllowances(c *gin.Context) {
	var payload request.AllowancesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	allowances, err := payload.ResolveAllowances()
	if err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.ReplaceAllowances(c.Request.Context(), c.Param("estimate_id"), allowances)
	if err != nil {
		appErr := mapDocumentLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ExportAllowancesCSV streams the allowance register as a CSV attachment.
func (h *DocumentLogHandler) ExportAllowancesCSV(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	data, err := h.usecase.ExportAllowancesCSV(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapDocumentLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="allowances-%s.csv"`, estimateID))
	c.Data(http.StatusOK, "text/csv", data)
}

func mapDocumentLogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidAllowanceAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
