package response

import "preconstruct/internal/adapter/export"

// ImportResultResponse reports the outcome of a document-log CSV import.
type ImportResultResponse struct {
	Imported  int               `json:"imported"`
	RowErrors []export.RowError `json:"row_errors,omitempty"`
}
