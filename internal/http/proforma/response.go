package proforma

import (
	"time"

	"github.com/google/uuid"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

type proformaResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	ClientName     string          `json:"client_name"`
	Description    string          `json:"description,omitempty"`
	AmountTotal    int64           `json:"amount_total"`
	Currency       string          `json:"currency"`
	Status         proforma.Status `json:"status"`
	ProformaNumber int             `json:"proforma_number"`

	ReqQuotation     *bool `json:"req_quotation,omitempty"`
	ContractRequired *bool `json:"contract_required,omitempty"`
	ReqEvidence      *bool `json:"req_evidence,omitempty"`
	DirectInvoice    *bool `json:"direct_invoice,omitempty"`

	QuotationStatus proforma.QuotationStatus `json:"quotation_status,omitempty"`
	ContractStatus  proforma.ContractStatus  `json:"contract_status,omitempty"`
	InvoiceStatus   proforma.InvoiceStatus   `json:"invoice_status,omitempty"`
	EvidenceStatus  proforma.EvidenceStatus  `json:"evidence_status,omitempty"`

	Organization *organizationResponse `json:"organization,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type organizationResponse struct {
	ID   uuid.UUID `json:"id"`
	RFC  string    `json:"rfc"`
	Name string    `json:"name"`
}

type paymentResponse struct {
	ID          uuid.UUID `json:"id"`
	ProformaID  uuid.UUID `json:"proforma_id"`
	Amount      int64     `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(p *proforma.Proforma) proformaResponse {
	resp := proformaResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		ClientName:     p.ClientName,
		Description:    p.Description,
		AmountTotal:    p.AmountTotal,
		Currency:       p.Currency,
		Status:         p.Status,
		ProformaNumber: p.ProformaNumber,

		ReqQuotation:     p.ReqQuotation,
		ContractRequired: p.ContractRequired,
		ReqEvidence:      p.ReqEvidence,
		DirectInvoice:    p.DirectInvoice,

		QuotationStatus: p.QuotationStatus,
		ContractStatus:  p.ContractStatus,
		InvoiceStatus:   p.InvoiceStatus,
		EvidenceStatus:  p.EvidenceStatus,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.Organization != nil {
		resp.Organization = &organizationResponse{
			ID:   p.Organization.ID,
			RFC:  p.Organization.RFC,
			Name: p.Organization.Name,
		}
	}

	return resp
}

func toResponseList(ps []*proforma.Proforma) []proformaResponse {
	resp := make([]proformaResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}

func toPaymentResponse(p *proforma.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		ProformaID:  p.ProformaID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}
