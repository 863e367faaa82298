package materiality

import (
	"github.com/google/uuid"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

// SubState is the derived state of one sub-process.
type SubState struct {
	Status     string // effective status, "" when the sub-process has none
	Active     bool
	Required   bool
	Completion Completion
}

// Snapshot is the full derived materiality state of one proforma.
type Snapshot struct {
	ProformaID  uuid.UUID
	Folio       string
	Status      proforma.Status
	ClientName  string
	AmountTotal int64
	Currency    string

	Quotation SubState
	Contract  SubState
	Invoice   SubState
	Evidence  SubState

	PaymentPercent int
	PaymentTier    Tier
}

// Build derives the snapshot for one proforma from its detail-row
// collections. Nil slices in children are treated as empty. metrics may be
// nil; when set, multi-row contract/invoice anomalies are counted.
func Build(p *proforma.Proforma, children proforma.Children, metrics *Metrics) Snapshot {
	if len(children.Contracts) > 1 {
		metrics.ObserveMultiRowContracts()
	}

	if len(children.Invoices) > 1 {
		metrics.ObserveMultiRowInvoices()
	}

	var rfc string
	if p.Organization != nil {
		rfc = p.Organization.RFC
	}

	req := Require(p)
	percent := PaymentPercent(children.Payments, p.AmountTotal)

	return Snapshot{
		ProformaID:  p.ID,
		Folio:       Folio(rfc, p.CreatedAt, p.ProformaNumber),
		Status:      p.Status,
		ClientName:  p.ClientName,
		AmountTotal: p.AmountTotal,
		Currency:    p.Currency,

		Quotation: subState(SubProcessQuotation, EffectiveQuotationStatus(p), 0, p.Status, req.Quotation),
		Contract:  subState(SubProcessContract, EffectiveContractStatus(p, children.Contracts), len(children.Contracts), p.Status, req.Contract),
		Invoice:   subState(SubProcessInvoice, EffectiveInvoiceStatus(p, children.Invoices), len(children.Invoices), p.Status, req.Invoice),
		Evidence:  subState(SubProcessEvidence, EffectiveEvidenceStatus(p), len(children.Evidence), p.Status, req.Evidence),

		PaymentPercent: percent,
		PaymentTier:    TierFor(percent),
	}
}

func subState(sub SubProcess, status string, rows int, lifecycle proforma.Status, required bool) SubState {
	active := Active(sub, status, rows, lifecycle)

	return SubState{
		Status:     status,
		Active:     active,
		Required:   required,
		Completion: Evaluate(active, required),
	}
}
