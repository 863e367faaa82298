package materiality

import (
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

// Requirement says, per sub-process, whether the proforma must materialize it.
type Requirement struct {
	Quotation bool
	Contract  bool
	Invoice   bool
	Evidence  bool
}

// Require resolves the four requirement flags. The defaults are deliberately
// asymmetric: quotation and evidence are presumed necessary unless the flag
// explicitly waives them, while contract and direct invoice must be
// explicitly requested.
func Require(p *proforma.Proforma) Requirement {
	return Requirement{
		Quotation: QuotationRequired(p),
		Contract:  ContractRequired(p),
		Invoice:   InvoiceRequired(p),
		Evidence:  EvidenceRequired(p),
	}
}

// QuotationRequired is true unless req_quotation is explicitly false.
func QuotationRequired(p *proforma.Proforma) bool {
	return p.ReqQuotation == nil || *p.ReqQuotation
}

// EvidenceRequired is true unless req_evidence is explicitly false.
func EvidenceRequired(p *proforma.Proforma) bool {
	return p.ReqEvidence == nil || *p.ReqEvidence
}

// ContractRequired is true only when is_contract_required is explicitly true.
func ContractRequired(p *proforma.Proforma) bool {
	return p.ContractRequired != nil && *p.ContractRequired
}

// InvoiceRequired is true only when request_direct_invoice is explicitly true.
func InvoiceRequired(p *proforma.Proforma) bool {
	return p.DirectInvoice != nil && *p.DirectInvoice
}
