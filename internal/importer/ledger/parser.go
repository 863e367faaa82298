package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	enc "github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/encoding"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

// statusAplicado is the default for layouts without a status column.
const statusAplicado = "aplicado"

// Parser reads payment ledger CSV exports and produces payment params.
// It auto-detects which layout (auxiliar, estado de cuenta) is being used
// by matching column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]proforma.PaymentParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching ledger format found: expected columns for auxiliar or estado de cuenta")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts payments from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]proforma.PaymentParams, error) {
	var payments []proforma.PaymentParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, cols[p.DateCol])
		if !ok {
			// Footer or subtotal row.
			continue
		}

		id, err := uuid.Parse(cellValue(row, cols[p.ProformaCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid proforma id: %w", rowNum, err)
		}

		amount, err := parseAmount(cellValue(row, cols[p.AmountCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount: %w", rowNum, err)
		}

		if amount <= 0 {
			continue
		}

		payments = append(payments, proforma.PaymentParams{
			ProformaID:  id,
			Amount:      amount,
			PaymentDate: date,
			Status:      parseStatus(p, cols, row),
		})
	}

	return payments, nil
}

// parseDate tries to parse a date from the given cell index.
// Returns false for empty cells or unparseable values (footer rows, etc).
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseStatus reads the status column when the profile has one, defaulting
// to "aplicado" otherwise.
func parseStatus(p *Profile, cols colIndex, row []string) string {
	if p.StatusCol == "" {
		return statusAplicado
	}

	s := strings.ToLower(cellValue(row, cols[p.StatusCol]))
	if s == "" {
		return statusAplicado
	}

	return s
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
