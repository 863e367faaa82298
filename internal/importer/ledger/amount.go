package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a Mexican-formatted amount string into cents.
// Format examples: "$1,234.56" -> 123456, "1,234.56 MXN" -> 123456,
// "500.00" -> 50000.
func parseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.ReplaceAll(clean, "$", "")
	clean = strings.TrimSuffix(clean, "MXN")
	clean = strings.TrimSpace(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
