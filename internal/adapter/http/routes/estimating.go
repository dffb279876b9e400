package routes

import (
	"preconstruct/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

func addEstimatingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, bidHandler *handlers.BidLevelingHandler, documentHandler *handlers.DocumentLogHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.PUT("/:estimate_id/categories", estimateHandler.ReplaceCategories)
		estimates.PUT("/:estimate_id/rates", estimateHandler.UpdateRates)
		estimates.PUT("/:estimate_id/notes", estimateHandler.UpdateNotes)
		estimates.GET("/:estimate_id/breakdown", estimateHandler.GetBreakdown)
		estimates.GET("/:estimate_id/approval", estimateHandler.GetApprovalProgress)
		estimates.PATCH("/:estimate_id/approve", estimateHandler.ApproveCurrentStep)
		estimates.PATCH("/:estimate_id/reject", estimateHandler.RejectCurrentStep)

		estimates.PUT("/:estimate_id/trades/:trade/bids", bidHandler.ReplaceBidsForTrade)
		estimates.GET("/:estimate_id/trades/:trade/bids", bidHandler.ListBidsForTrade)
		estimates.GET("/:estimate_id/trades/:trade/variance", bidHandler.GetVarianceForTrade)
		estimates.PATCH("/:estimate_id/trades/:trade/bids/:bid_id/select", bidHandler.SelectBid)
		estimates.GET("/:estimate_id/bid-tab", bidHandler.GetBidTab)
		estimates.GET("/:estimate_id/bid-tab/export", bidHandler.ExportBidTab)

		estimates.GET("/:estimate_id/documents", documentHandler.ListDocuments)
		estimates.PUT("/:estimate_id/documents", documentHandler.ReplaceDocuments)
		estimates.POST("/:estimate_id/documents/import", documentHandler.ImportDocumentsCSV)
		estimates.GET("/:estimate_id/documents/export", documentHandler.ExportDocumentsCSV)
		estimates.PUT("/:estimate_id/allowances", documentHandler.ReplaceAllowances)
		estimates.GET("/:estimate_id/allowances/export", documentHandler.ExportAllowancesCSV)
	}
}
