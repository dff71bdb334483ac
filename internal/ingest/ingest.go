// Package ingest turns exported spreadsheet rows into canonical pool and
// loan records. Two source layouts are supported: the original servicing
// tape ("Loan Number" / "Pool Name" / "Borrower" full name / state
// abbreviations) and the acquisition tape ("Loan ID" / "Pool" / split
// borrower name / "House number" + "Street").
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"loanpool-backend/pkg/rate"
	"loanpool-backend/pkg/states"

	"github.com/shopspring/decimal"
)

// Row is one normalized loan record ready for loading. InterestRate is a
// fraction and monetary values are rounded to 2 decimal places.
type Row struct {
	ID                uint64
	PoolName          string
	LoanDate          time.Time
	OriginalPrincipal float64
	InterestRate      float64
	Payment           float64
	CurrentPrincipal  float64
	PropertyValue     float64
	BorrowerFirstName string
	BorrowerLastName  string
	Address           string
	City              string
	State             string
	Zip               string
}

// columnAliases maps lower-cased source headers from both layouts to
// canonical column names.
var columnAliases = map[string]string{
	"loan number": "id",
	"loan id":     "id",

	"pool name": "pool_name",
	"pool":      "pool_name",

	"origination date": "loan_date",
	"note date":        "loan_date",

	"original principal": "original_principal",
	"original balance":   "original_principal",

	"rate":     "interest_rate",
	"interest": "interest_rate",

	"payment": "payment",
	"p&i pmt": "payment",

	"current principal": "current_principal",
	"upb":               "current_principal",

	"prop value": "property_value",
	"appraisal":  "property_value",

	"borrower":   "borrower",
	"first name": "borrower_first_name",
	"last name":  "borrower_last_name",

	"address":      "address",
	"house number": "house_number",
	"street":       "street",
	"city":         "city",
	"state":        "state",
	"zip code":     "zip",
	"zip":          "zip",
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02 15:04:05",
}

// ParseCSV reads one source file and normalizes every row. Rows with an
// empty loan id are skipped; any other malformed value fails the whole
// file so a bad tape never half-loads.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		key := strings.ToLower(strings.TrimSpace(col))
		if canonical, ok := columnAliases[key]; ok {
			colIdx[canonical] = i
		}
	}
	for _, col := range []string{"id", "pool_name", "loan_date", "original_principal",
		"interest_rate", "payment", "current_principal", "property_value"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	cell := func(record []string, col string) string {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []Row
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		rawID := cell(record, "id")
		if rawID == "" {
			continue
		}
		row, err := normalize(rawID, record, cell)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func normalize(rawID string, record []string, cell func([]string, string) string) (Row, error) {
	var row Row
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return row, fmt.Errorf("loan id %q: %w", rawID, err)
	}
	row.ID = id

	row.PoolName = strings.ToUpper(cell(record, "pool_name"))
	if row.PoolName == "" {
		return row, fmt.Errorf("loan %d: empty pool name", id)
	}

	row.LoanDate, err = parseDate(cell(record, "loan_date"))
	if err != nil {
		return row, fmt.Errorf("loan %d: %w", id, err)
	}

	for _, m := range []struct {
		col string
		dst *float64
	}{
		{"original_principal", &row.OriginalPrincipal},
		{"payment", &row.Payment},
		{"current_principal", &row.CurrentPrincipal},
		{"property_value", &row.PropertyValue},
	} {
		v, err := parseMoney(cell(record, m.col))
		if err != nil {
			return row, fmt.Errorf("loan %d: %s: %w", id, m.col, err)
		}
		*m.dst = v
	}

	row.InterestRate, err = rate.Parse(cell(record, "interest_rate"))
	if err != nil {
		return row, fmt.Errorf("loan %d: %w", id, err)
	}

	first, last := borrowerName(record, cell)
	row.BorrowerFirstName = strings.ToUpper(first)
	row.BorrowerLastName = strings.ToUpper(last)

	row.Address = address(record, cell)
	row.City = cell(record, "city")
	row.State = expandState(cell(record, "state"))
	row.Zip = cell(record, "zip")
	return row, nil
}

// borrowerName splits a full "First Last" column on the first space when
// the layout doesn't carry separate name columns.
func borrowerName(record []string, cell func([]string, string) string) (first, last string) {
	if full := cell(record, "borrower"); full != "" {
		parts := strings.SplitN(full, " ", 2)
		first = parts[0]
		if len(parts) > 1 {
			last = parts[1]
		}
		return first, last
	}
	return cell(record, "borrower_first_name"), cell(record, "borrower_last_name")
}

func address(record []string, cell func([]string, string) string) string {
	if a := cell(record, "address"); a != "" {
		return a
	}
	return strings.TrimSpace(cell(record, "house_number") + " " + cell(record, "street"))
}

func expandState(s string) string {
	if len(s) == 2 {
		if name, ok := states.Expand(s); ok {
			return name
		}
	}
	return s
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func parseMoney(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("money %q: %w", raw, err)
	}
	f, _ := d.Round(2).Float64()
	return f, nil
}
