// Package export owns the data-interchange boundary of the estimating
// service: the fixed-column CSV schemas used by the document log and
// allowance exports, and the bid tabulation workbook.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"preconstruct/internal/domain/entities"
)

// documentHeader is the fixed interchange column order for document-log
// rows. Import rejects files whose header does not match it.
var documentHeader = []string{
	"Sheet Number",
	"Description",
	"Date Issued",
	"Date Received",
	"Category",
	"Notes",
	"Revision",
}

var allowanceHeader = []string{
	"Description",
	"Amount",
	"Status",
	"Notes",
}

// RowError is a single rejected row from an import, 1-based and counted
// after the header row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// DocumentsCSV serializes the document log in the fixed column order.
// encoding/csv applies double-quote escaping for embedded quotes and commas.
func DocumentsCSV(docs []entities.ProjectDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(documentHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, d := range docs {
		rec := []string{d.SheetNumber, d.Description, d.DateIssued, d.DateReceived, d.Category, d.Notes, d.Revision}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseDocumentsCSV reads a document-log CSV with the fixed header order.
// Malformed rows are reported per row and skipped; only a missing or
// mismatched header fails the whole import.
func ParseDocumentsCSV(r io.Reader) ([]entities.ProjectDocument, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("file must contain a header row")
	}
	if err := checkHeader(rows[0], documentHeader); err != nil {
		return nil, nil, err
	}

	var (
		docs    []entities.ProjectDocument
		rowErrs []RowError
	)
	for i, rec := range rows[1:] {
		rowNum := i + 1
		if len(rec) != len(documentHeader) {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Message: fmt.Sprintf("expected %d columns, got %d", len(documentHeader), len(rec))})
			continue
		}
		d := entities.ProjectDocument{
			SheetNumber:  strings.TrimSpace(rec[0]),
			Description:  strings.TrimSpace(rec[1]),
			DateIssued:   strings.TrimSpace(rec[2]),
			DateReceived: strings.TrimSpace(rec[3]),
			Category:     strings.TrimSpace(rec[4]),
			Notes:        rec[5],
			Revision:     strings.TrimSpace(rec[6]),
		}
		if d.SheetNumber == "" && d.Description == "" {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Message: "sheet number and description both empty"})
			continue
		}
		docs = append(docs, d)
	}
	return docs, rowErrs, nil
}

// AllowancesCSV serializes carried allowances with the same escaping
// conventions as the document log.
func AllowancesCSV(allowances []entities.Allowance) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(allowanceHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, a := range allowances {
		rec := []string{a.Description, strconv.FormatFloat(a.Amount, 'f', 2, 64), string(a.Status), a.Notes}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkHeader(got, want []string) error {
	if len(got) < len(want) {
		return fmt.Errorf("header has %d columns, expected %d", len(got), len(want))
	}
	for i, col := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), col) {
			return fmt.Errorf("unexpected column %q at position %d, expected %q", got[i], i+1, col)
		}
	}
	return nil
}
