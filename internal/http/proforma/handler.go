package proforma

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

type Handler struct {
	svc *proforma.Service
}

func NewHandler(svc *proforma.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/status", h.updateStatus)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/payments", h.registerPayment)
}

type createProformaRequest struct {
	OrganizationID   uuid.UUID `json:"organization_id"`
	ClientName       string    `json:"client_name"`
	Description      string    `json:"description"`
	AmountTotal      int64     `json:"amount_total"`
	Currency         string    `json:"currency"`
	ProformaNumber   int       `json:"proforma_number"`
	ReqQuotation     *bool     `json:"req_quotation"`
	ContractRequired *bool     `json:"contract_required"`
	ReqEvidence      *bool     `json:"req_evidence"`
	DirectInvoice    *bool     `json:"direct_invoice"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProformaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), proforma.CreateParams{
		OrganizationID:   req.OrganizationID,
		ClientName:       req.ClientName,
		Description:      req.Description,
		AmountTotal:      req.AmountTotal,
		Currency:         req.Currency,
		ProformaNumber:   req.ProformaNumber,
		ReqQuotation:     req.ReqQuotation,
		ContractRequired: req.ContractRequired,
		ReqEvidence:      req.ReqEvidence,
		DirectInvoice:    req.DirectInvoice,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := proforma.ListFilter{}

	if s := r.URL.Query().Get("organization_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid organization_id", http.StatusBadRequest)
			return
		}

		filter.OrganizationID = &id
	}

	if s := r.URL.Query().Get("status"); s != "" {
		st := proforma.Status(s)
		filter.Status = &st
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	ps, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(ps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, proforma.ErrNotFound) {
			http.Error(w, "proforma not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateProformaRequest struct {
	ClientName       *string `json:"client_name,omitempty"`
	Description      *string `json:"description,omitempty"`
	AmountTotal      *int64  `json:"amount_total,omitempty"`
	Currency         *string `json:"currency,omitempty"`
	ReqQuotation     *bool   `json:"req_quotation,omitempty"`
	ContractRequired *bool   `json:"contract_required,omitempty"`
	ReqEvidence      *bool   `json:"req_evidence,omitempty"`
	DirectInvoice    *bool   `json:"direct_invoice,omitempty"`

	QuotationStatus *proforma.QuotationStatus `json:"quotation_status,omitempty"`
	ContractStatus  *proforma.ContractStatus  `json:"contract_status,omitempty"`
	InvoiceStatus   *proforma.InvoiceStatus   `json:"invoice_status,omitempty"`
	EvidenceStatus  *proforma.EvidenceStatus  `json:"evidence_status,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateProformaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, proforma.ErrNotFound) {
			http.Error(w, "proforma not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}

	if req.Description != nil {
		p.Description = *req.Description
	}

	if req.AmountTotal != nil {
		p.AmountTotal = *req.AmountTotal
	}

	if req.Currency != nil {
		p.Currency = *req.Currency
	}

	if req.ReqQuotation != nil {
		p.ReqQuotation = req.ReqQuotation
	}

	if req.ContractRequired != nil {
		p.ContractRequired = req.ContractRequired
	}

	if req.ReqEvidence != nil {
		p.ReqEvidence = req.ReqEvidence
	}

	if req.DirectInvoice != nil {
		p.DirectInvoice = req.DirectInvoice
	}

	if req.QuotationStatus != nil {
		p.QuotationStatus = *req.QuotationStatus
	}

	if req.ContractStatus != nil {
		p.ContractStatus = *req.ContractStatus
	}

	if req.InvoiceStatus != nil {
		p.InvoiceStatus = *req.InvoiceStatus
	}

	if req.EvidenceStatus != nil {
		p.EvidenceStatus = *req.EvidenceStatus
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status proforma.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type registerPaymentRequest struct {
	Amount      int64     `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
}

func (h *Handler) registerPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req registerPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	p, err := h.svc.RegisterPayment(r.Context(), proforma.PaymentParams{
		ProformaID:  id,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Status:      req.Status,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toPaymentResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
