package materiality

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/board"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/materiality"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

type Handler struct {
	svc *board.Service
}

func NewHandler(svc *board.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/board", h.board)
	r.Get("/report", h.report)
}

type subStateResponse struct {
	Status     string                 `json:"status,omitempty"`
	Active     bool                   `json:"active"`
	Required   bool                   `json:"required"`
	Completion materiality.Completion `json:"completion"`
}

type snapshotResponse struct {
	ProformaID  uuid.UUID        `json:"proforma_id"`
	Folio       string           `json:"folio"`
	Status      proforma.Status  `json:"status"`
	ClientName  string           `json:"client_name"`
	AmountTotal int64            `json:"amount_total"`
	Currency    string           `json:"currency"`
	Quotation   subStateResponse `json:"quotation"`
	Contract    subStateResponse `json:"contract"`
	Invoice     subStateResponse `json:"invoice"`
	Evidence    subStateResponse `json:"evidence"`

	PaymentPercent int              `json:"payment_percent"`
	PaymentTier    materiality.Tier `json:"payment_tier"`
}

type reportResponse struct {
	FullyMaterialized int   `json:"fully_materialized"`
	PendingContracts  int   `json:"pending_contracts"`
	Approved          int   `json:"approved"`
	TotalQuoted       int64 `json:"total_quoted"`
}

func (h *Handler) board(w http.ResponseWriter, r *http.Request) {
	orgID, ok := scopeFromQuery(w, r)
	if !ok {
		return
	}

	snapshots, err := h.svc.Board(r.Context(), orgID)
	if err != nil {
		if errors.Is(err, board.ErrStale) {
			http.Error(w, "superseded by a newer request", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	resp := make([]snapshotResponse, len(snapshots))
	for i, s := range snapshots {
		resp[i] = toSnapshotResponse(s)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	orgID, ok := scopeFromQuery(w, r)
	if !ok {
		return
	}

	report, err := h.svc.Report(r.Context(), orgID)
	if err != nil {
		if errors.Is(err, board.ErrStale) {
			http.Error(w, "superseded by a newer request", http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := reportResponse{
		FullyMaterialized: report.FullyMaterialized,
		PendingContracts:  report.PendingContracts,
		Approved:          report.Approved,
		TotalQuoted:       report.TotalQuoted,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func scopeFromQuery(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	s := r.URL.Query().Get("organization_id")
	if s == "" {
		http.Error(w, "organization_id is required", http.StatusBadRequest)
		return uuid.Nil, false
	}

	orgID, err := uuid.Parse(s)
	if err != nil {
		http.Error(w, "invalid organization_id", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return orgID, true
}

func toSnapshotResponse(s materiality.Snapshot) snapshotResponse {
	return snapshotResponse{
		ProformaID:  s.ProformaID,
		Folio:       s.Folio,
		Status:      s.Status,
		ClientName:  s.ClientName,
		AmountTotal: s.AmountTotal,
		Currency:    s.Currency,
		Quotation:   toSubStateResponse(s.Quotation),
		Contract:    toSubStateResponse(s.Contract),
		Invoice:     toSubStateResponse(s.Invoice),
		Evidence:    toSubStateResponse(s.Evidence),

		PaymentPercent: s.PaymentPercent,
		PaymentTier:    s.PaymentTier,
	}
}

func toSubStateResponse(s materiality.SubState) subStateResponse {
	return subStateResponse{
		Status:     s.Status,
		Active:     s.Active,
		Required:   s.Required,
		Completion: s.Completion,
	}
}
