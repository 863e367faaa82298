package proforma

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a proforma.
type Status string

const (
	StatusPendiente Status = "PENDIENTE"
	StatusAprobada  Status = "APROBADA"
	StatusExpirada  Status = "EXPIRADA"
)

// InvoiceStatus is the workflow state of an invoice request. Invoice tokens
// are uppercase in the source data, unlike the other sub-process vocabularies.
type InvoiceStatus string

const (
	InvoiceSolicitud          InvoiceStatus = "SOLICITUD"
	InvoicePrefacturaPend     InvoiceStatus = "PREFACTURA_PENDIENTE"
	InvoicePrefacturaCand     InvoiceStatus = "PREFACTURA_CANDIDATA"
	InvoiceEnRevisionVendedor InvoiceStatus = "EN_REVISION_VENDEDOR"
	InvoiceEnCaptura          InvoiceStatus = "EN_CAPTURA"
	InvoicePorTimbrar         InvoiceStatus = "POR_TIMBRAR"
	InvoiceValidada           InvoiceStatus = "VALIDADA"
	InvoiceEmitida            InvoiceStatus = "EMITIDA"
	InvoiceTimbrada           InvoiceStatus = "TIMBRADA"
	InvoiceTimbradaIncompleta InvoiceStatus = "TIMBRADA_INCOMPLETA"
	InvoiceRechazada          InvoiceStatus = "RECHAZADA"
	InvoiceCancelada          InvoiceStatus = "CANCELADA"
)

// ContractStatus is the workflow state of a contract.
type ContractStatus string

const (
	ContractSolicitada ContractStatus = "solicitada"
	ContractEnRevision ContractStatus = "en_revision"
	ContractNegociando ContractStatus = "negociando"
	ContractFirmado    ContractStatus = "firmado"
	ContractCompletado ContractStatus = "completado"
	ContractRechazado  ContractStatus = "rechazado"
	ContractCancelado  ContractStatus = "cancelado"
)

// QuotationStatus is the workflow state of the formal quotation.
type QuotationStatus string

const (
	QuotationSolicitada QuotationStatus = "solicitada"
	QuotationEnviada    QuotationStatus = "enviada"
	QuotationAceptada   QuotationStatus = "aceptada"
	QuotationCompletada QuotationStatus = "completada"
	QuotationRechazada  QuotationStatus = "rechazada"
)

// EvidenceStatus is the workflow state of delivery evidence.
type EvidenceStatus string

const (
	EvidenceSolicitada EvidenceStatus = "solicitada"
	EvidenceBoceto     EvidenceStatus = "boceto"
	EvidenceEnRevision EvidenceStatus = "en_revision"
	EvidenceEntregada  EvidenceStatus = "entregada"
	EvidenceCompletada EvidenceStatus = "completada"
	EvidenceRechazada  EvidenceStatus = "rechazada"
)

// Proforma is the commercial quote record anchoring one client engagement
// and its fiscal-materiality sub-processes.
//
// The requirement flags are pointers because absence carries meaning:
// quotation and evidence are required unless explicitly waived, contract and
// direct invoice are not required unless explicitly requested.
//
// The four cached sub-process status fields are denormalized copies written
// by out-of-band workflows; detail rows are the source of truth where they
// exist. An empty string means the field was never set.
type Proforma struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	ClientName     string
	Description    string
	AmountTotal    int64 // Amount in cents
	Currency       string
	Status         Status
	ProformaNumber int

	ReqQuotation     *bool
	ContractRequired *bool
	ReqEvidence      *bool
	DirectInvoice    *bool

	QuotationStatus QuotationStatus
	ContractStatus  ContractStatus
	InvoiceStatus   InvoiceStatus
	EvidenceStatus  EvidenceStatus

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time

	Organization *Organization // Loaded via JOIN
}

// Organization supplies the RFC (tax id) used as the folio prefix.
type Organization struct {
	ID   uuid.UUID
	RFC  string
	Name string
}

// Contract is a contract document attached to a proforma. Intended 1:1 but
// stored 1:N; re-submissions after rejection produce extra rows.
type Contract struct {
	ID         uuid.UUID
	ProformaID uuid.UUID
	FileURL    string
	Signed     bool
	CreatedAt  time.Time
}

// Invoice is an invoice request row owned by a proforma.
type Invoice struct {
	ID          uuid.UUID
	ProformaID  uuid.UUID
	Status      InvoiceStatus
	FileURL     string
	AmountTotal int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Evidence is a proof-of-delivery record owned by an invoice or a contract.
type Evidence struct {
	ID          uuid.UUID
	ProformaID  uuid.UUID
	InvoiceID   *uuid.UUID
	ContractID  *uuid.UUID
	Type        string
	FileURL     string
	Metadata    map[string]any
	ContentHash string
	CreatedAt   time.Time
}

// Payment is one entry in a proforma's payment ledger.
type Payment struct {
	ID          uuid.UUID
	ProformaID  uuid.UUID
	Amount      int64 // Amount in cents
	PaymentDate time.Time
	Status      string
	CreatedAt   time.Time
}

// Children bundles a proforma's detail-row collections, normalized to
// always-array slices regardless of how the underlying joins came back.
// Any of the slices may be nil; the derivation engine treats nil as empty.
type Children struct {
	Contracts []Contract
	Invoices  []Invoice
	Evidence  []Evidence
	Payments  []Payment
}
