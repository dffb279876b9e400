package entities

// Unit is the unit-of-measure token used by takeoff line items.
type Unit string

const (
	UnitSF  Unit = "SF"  // square feet
	UnitSY  Unit = "SY"  // square yards
	UnitLF  Unit = "LF"  // linear feet
	UnitEA  Unit = "EA"  // each
	UnitCY  Unit = "CY"  // cubic yards
	UnitLS  Unit = "LS"  // lump sum
	UnitHR  Unit = "HR"  // hours
	UnitTON Unit = "TON" // tons
)

// LineItem is a quantity-takeoff row. Total is always recomputed as
// quantity x unit price and is never independently authoritative.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        Unit    `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}
