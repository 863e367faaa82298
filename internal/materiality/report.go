package materiality

import (
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

// Report summarizes compliance across a portfolio of proformas.
type Report struct {
	// FullyMaterialized counts proformas whose evidence sub-process has
	// nothing outstanding. Evidence is the terminal materiality signal: the
	// other sub-processes feed it but do not gate this count on their own.
	FullyMaterialized int

	// PendingContracts counts approved proformas whose contract sub-process
	// is not yet done.
	PendingContracts int

	// Approved counts proformas in APROBADA, the denominator for
	// PendingContracts.
	Approved int

	// TotalQuoted is the portfolio sum of proforma totals, in cents.
	TotalQuoted int64
}

// Summarize aggregates snapshots into a report. Pure and recomputed in full
// on every call; there is no incremental state to go stale.
func Summarize(snapshots []Snapshot) Report {
	var r Report

	for _, s := range snapshots {
		if s.Evidence.Completion != CompletionMissing {
			r.FullyMaterialized++
		}

		if s.Status == proforma.StatusAprobada {
			r.Approved++

			if !s.Contract.Completion.Done() {
				r.PendingContracts++
			}
		}

		r.TotalQuoted += s.AmountTotal
	}

	return r
}
