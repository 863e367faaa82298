package materiality

import (
	"math"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

// Tier is the display tier for payment progress.
type Tier string

const (
	TierUnpaid  Tier = "unpaid"
	TierPartial Tier = "partial"
	TierPaid    Tier = "paid"
)

// PaymentPercent aggregates the payment ledger into a whole-number
// percentage of the proforma total, clamped to [0, 100]. A non-positive
// total yields 0 rather than dividing by zero.
func PaymentPercent(payments []proforma.Payment, amountTotal int64) int {
	if amountTotal <= 0 {
		return 0
	}

	var paid int64
	for _, p := range payments {
		paid += p.Amount
	}

	percent := int(math.Round(float64(paid) / float64(amountTotal) * 100))
	if percent > 100 {
		return 100
	}

	if percent < 0 {
		return 0
	}

	return percent
}

// TierFor maps a percentage to its display tier: 0 is unpaid, 100 is paid,
// anything between is partial.
func TierFor(percent int) Tier {
	switch {
	case percent <= 0:
		return TierUnpaid
	case percent >= 100:
		return TierPaid
	default:
		return TierPartial
	}
}
