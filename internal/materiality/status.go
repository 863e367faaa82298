package materiality

import (
	"strings"
	"time"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

// SubProcess identifies one of the four status-bearing materiality tracks.
// Payment progress is a percentage, not a status, and is handled separately.
type SubProcess string

const (
	SubProcessQuotation SubProcess = "quotation"
	SubProcessContract  SubProcess = "contract"
	SubProcessInvoice   SubProcess = "invoice"
	SubProcessEvidence  SubProcess = "evidence"
)

// pendingStatus is the marker derived for a required sub-process that has
// neither a cached status nor detail rows. It is never "complete".
const pendingStatus = "solicitada"

// EffectiveQuotationStatus resolves the formal-quotation status: the cached
// related_quotation_status when set, else the pending marker when the
// sub-process is required, else empty.
func EffectiveQuotationStatus(p *proforma.Proforma) string {
	if p.QuotationStatus != "" {
		return string(p.QuotationStatus)
	}

	if QuotationRequired(p) {
		return pendingStatus
	}

	return ""
}

// EffectiveContractStatus resolves the contract status. Precedence: the
// cached contract_status; else a status inferred from the first contract row
// (contract rows carry no status column, so a stored file means signed and
// anything else means under review); else the pending marker when required.
func EffectiveContractStatus(p *proforma.Proforma, rows []proforma.Contract) string {
	if p.ContractStatus != "" {
		return string(p.ContractStatus)
	}

	if len(rows) > 0 {
		if rows[0].FileURL != "" {
			return string(proforma.ContractFirmado)
		}

		return string(proforma.ContractEnRevision)
	}

	if ContractRequired(p) {
		return pendingStatus
	}

	return ""
}

// EffectiveInvoiceStatus resolves the invoice status. When invoice rows
// exist, the status of the most recently touched row wins and the cached
// invoice_status is bypassed entirely. This asymmetry with the contract rule
// is deliberate: invoice rows carry a real workflow status of their own and
// the cancellation flow inserts fresh request rows, so the newest row is the
// live one. Without rows, the cached field applies, then the pending marker
// when required.
func EffectiveInvoiceStatus(p *proforma.Proforma, rows []proforma.Invoice) string {
	if len(rows) > 0 {
		return string(latestInvoice(rows).Status)
	}

	if p.InvoiceStatus != "" {
		return string(p.InvoiceStatus)
	}

	if InvoiceRequired(p) {
		return pendingStatus
	}

	return ""
}

// EffectiveEvidenceStatus resolves the evidence status: the cached
// evidence_status when set, else the pending marker when required.
func EffectiveEvidenceStatus(p *proforma.Proforma) string {
	if p.EvidenceStatus != "" {
		return string(p.EvidenceStatus)
	}

	if EvidenceRequired(p) {
		return pendingStatus
	}

	return ""
}

// latestInvoice picks the row with the most recent updated_at, falling back
// to created_at for rows never updated. Ties keep the earlier row.
func latestInvoice(rows []proforma.Invoice) proforma.Invoice {
	latest := rows[0]

	for _, row := range rows[1:] {
		if invoiceTouchedAt(row).After(invoiceTouchedAt(latest)) {
			latest = row
		}
	}

	return latest
}

func invoiceTouchedAt(inv proforma.Invoice) time.Time {
	if inv.UpdatedAt != nil {
		return *inv.UpdatedAt
	}

	return inv.CreatedAt
}

// activeStatuses is the per-sub-process allow-list for the "lit" state.
// Membership is tested case-insensitively because invoice tokens are
// uppercase while the other vocabularies are lowercase.
var activeStatuses = map[SubProcess][]string{
	SubProcessQuotation: {string(proforma.QuotationAceptada), string(proforma.QuotationCompletada)},
	SubProcessContract:  {string(proforma.ContractFirmado), string(proforma.ContractCompletado)},
	SubProcessInvoice:   {strings.ToLower(string(proforma.InvoiceEmitida)), strings.ToLower(string(proforma.InvoiceTimbrada))},
	SubProcessEvidence:  {string(proforma.EvidenceCompletada), string(proforma.EvidenceEntregada)},
}

// Active decides whether a sub-process indicator is lit. The status string
// and the detail rows are independent signals that can disagree when the
// denormalized cache drifts from the rows; this function is the single place
// where both are consulted, in this precedence order:
//
//  1. the effective status is in the sub-process's allow-list, or
//  2. at least one detail row exists, or
//  3. for the quotation sub-process only, the proforma itself is APROBADA.
//
// Note that active is computed from the effective status but does not imply
// it: a sub-process can show a non-active status string while being lit
// because rows exist.
func Active(sub SubProcess, effectiveStatus string, detailRows int, lifecycle proforma.Status) bool {
	status := strings.ToLower(effectiveStatus)
	for _, allowed := range activeStatuses[sub] {
		if status == allowed {
			return true
		}
	}

	if detailRows > 0 {
		return true
	}

	return sub == SubProcessQuotation && lifecycle == proforma.StatusAprobada
}
