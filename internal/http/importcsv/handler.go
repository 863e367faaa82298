package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/importer"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

type Handler struct {
	importSvc   *importer.Service
	proformaSvc *proforma.Service
}

func NewHandler(importSvc *importer.Service, proformaSvc *proforma.Service) *Handler {
	return &Handler{
		importSvc:   importSvc,
		proformaSvc: proformaSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/payments", h.importPayments)
}

type paymentResponse struct {
	ID          uuid.UUID `json:"id"`
	ProformaID  uuid.UUID `json:"proforma_id"`
	Amount      int64     `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type importSuccessResponse struct {
	Imported int               `json:"imported"`
	Payments []paymentResponse `json:"payments"`
}

type paymentParamsDTO struct {
	ProformaID  uuid.UUID `json:"proforma_id"`
	Amount      int64     `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
}

type conflictDTO struct {
	Incoming paymentParamsDTO `json:"incoming"`
	Existing paymentResponse  `json:"existing"`
}

type importConflictResponse struct {
	New       []paymentParamsDTO `json:"new"`
	Conflicts []conflictDTO      `json:"conflicts"`
}

func (h *Handler) importPayments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceLedger
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.proformaSvc.ImportPayments(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]paymentParamsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}
		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toPaymentResponse(c.Existing),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(result.Imported)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(payments []*proforma.Payment) importSuccessResponse {
	responses := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, toPaymentResponse(p))
	}

	return importSuccessResponse{
		Imported: len(payments),
		Payments: responses,
	}
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

func toParamsDTO(p proforma.PaymentParams) paymentParamsDTO {
	return paymentParamsDTO{
		ProformaID:  p.ProformaID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Status:      p.Status,
	}
}
