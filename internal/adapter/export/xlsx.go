package export

import (
	"fmt"
	"time"

	"preconstruct/internal/domain/entities"
	"preconstruct/internal/domain/estimating"

	"github.com/xuri/excelize/v2"
)

// TradeTab is one trade's column of the bid tabulation: its bids, spread
// classification and current selection.
type TradeTab struct {
	Trade         string                    `json:"trade"`
	Bids          []entities.VendorBid      `json:"bids"`
	Variance      estimating.VarianceResult `json:"variance"`
	SelectedBidID string                    `json:"selected_bid_id,omitempty"`
}

// BidTabSheet is the input to the bid tabulation workbook.
type BidTabSheet struct {
	ProjectName string
	GeneratedAt time.Time
	Trades      []TradeTab
}

// GenerateBidTabXLSX renders the bid tabulation as an Excel workbook and
// returns the file contents.
func GenerateBidTabXLSX(sheet BidTabSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := "Bid Tab"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := map[string]float64{"A": 22, "B": 26, "C": 16, "D": 12, "E": 12, "F": 10}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	tradeStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create trade style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	row := 1
	if err := f.SetCellValue(sheetName, cell("A", row), sheet.ProjectName+" - Bid Tabulation"); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, cell("A", row), cell("A", row), titleStyle); err != nil {
		return nil, err
	}
	row++
	if !sheet.GeneratedAt.IsZero() {
		if err := f.SetCellValue(sheetName, cell("A", row), "Generated "+sheet.GeneratedAt.Format("2006-01-02")); err != nil {
			return nil, err
		}
	}
	row += 2

	for _, trade := range sheet.Trades {
		if err := f.SetCellValue(sheetName, cell("A", row), trade.Trade); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell("A", row), cell("A", row), tradeStyle); err != nil {
			return nil, err
		}
		row++

		headers := []string{"Vendor", "Total", "Confidence", "Status", "Selected"}
		cols := []string{"B", "C", "D", "E", "F"}
		for i, h := range headers {
			if err := f.SetCellValue(sheetName, cell(cols[i], row), h); err != nil {
				return nil, err
			}
		}
		if err := f.SetCellStyle(sheetName, cell("B", row), cell("F", row), headerStyle); err != nil {
			return nil, err
		}
		row++

		for _, b := range trade.Bids {
			if err := f.SetCellValue(sheetName, cell("B", row), b.VendorName); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell("C", row), b.TotalAmount); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheetName, cell("C", row), cell("C", row), moneyStyle); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell("D", row), b.Confidence); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell("E", row), string(b.Status)); err != nil {
				return nil, err
			}
			if b.ID == trade.SelectedBidID {
				if err := f.SetCellValue(sheetName, cell("F", row), "X"); err != nil {
					return nil, err
				}
			}
			row++
		}

		variance := fmt.Sprintf("Variance %.2f%% - risk %s", trade.Variance.VariancePercent, trade.Variance.RiskLevel)
		if err := f.SetCellValue(sheetName, cell("B", row), variance); err != nil {
			return nil, err
		}
		row += 2
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
