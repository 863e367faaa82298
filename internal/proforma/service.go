package proforma

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a proforma does not exist or was soft-deleted.
var ErrNotFound = errors.New("proforma not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=proforma
type Repository interface {
	CreateProforma(ctx context.Context, p *Proforma) error
	GetProforma(ctx context.Context, id uuid.UUID) (*Proforma, error)
	UpdateProforma(ctx context.Context, p *Proforma) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteProforma(ctx context.Context, id uuid.UUID) error

	ListProformas(ctx context.Context, filter ListFilter) ([]*Proforma, error)

	// The List*For methods return detail rows grouped by owning proforma id,
	// always as slices: the engine never sees single-object join shapes.
	ListContractsFor(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID][]Contract, error)
	ListInvoicesFor(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID][]Invoice, error)
	ListEvidenceFor(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID][]Evidence, error)
	ListPaymentsFor(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID][]Payment, error)

	CreatePayment(ctx context.Context, p *Payment) error

	BeginPaymentImport(ctx context.Context, minDate, maxDate time.Time) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, params []PaymentParams) ([]*Payment, error)
	CreatePayments(ctx context.Context, payments []*Payment) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	OrganizationID   uuid.UUID
	ClientName       string
	Description      string
	AmountTotal      int64
	Currency         string
	ProformaNumber   int
	ReqQuotation     *bool
	ContractRequired *bool
	ReqEvidence      *bool
	DirectInvoice    *bool
}

type ListFilter struct {
	OrganizationID *uuid.UUID
	Status         *Status
	StartDate      *time.Time
	EndDate        *time.Time
}

type PaymentParams struct {
	ProformaID  uuid.UUID
	Amount      int64
	PaymentDate time.Time
	Status      string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Proforma, error) {
	p := &Proforma{
		OrganizationID:   params.OrganizationID,
		ClientName:       params.ClientName,
		Description:      params.Description,
		AmountTotal:      params.AmountTotal,
		Currency:         params.Currency,
		Status:           StatusPendiente,
		ProformaNumber:   params.ProformaNumber,
		ReqQuotation:     params.ReqQuotation,
		ContractRequired: params.ContractRequired,
		ReqEvidence:      params.ReqEvidence,
		DirectInvoice:    params.DirectInvoice,
	}
	if err := s.repo.CreateProforma(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Proforma, error) {
	return s.repo.GetProforma(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Proforma, error) {
	return s.repo.ListProformas(ctx, filter)
}

func (s *Service) Update(ctx context.Context, p *Proforma) error {
	return s.repo.UpdateProforma(ctx, p)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProforma(ctx, id)
}

func (s *Service) RegisterPayment(ctx context.Context, params PaymentParams) (*Payment, error) {
	p := &Payment{
		ProformaID:  params.ProformaID,
		Amount:      params.Amount,
		PaymentDate: params.PaymentDate,
		Status:      params.Status,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

type ImportResult struct {
	Imported  []*Payment
	New       []PaymentParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming PaymentParams
	Existing *Payment
}

// ImportPayments inserts a batch of ledger entries inside one locked
// transaction. If any incoming entry collides with an existing payment on
// (proforma, date, amount), nothing is written and the conflicts are
// returned for review.
func (s *Service) ImportPayments(ctx context.Context, params []PaymentParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	minDate, maxDate := dateRange(params)

	itx, err := s.repo.BeginPaymentImport(ctx, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	type dupKey struct {
		ProformaID uuid.UUID
		Date       string
		Amount     int64
	}

	lookup := make(map[dupKey]*Payment, len(duplicates))

	for _, d := range duplicates {
		k := dupKey{
			ProformaID: d.ProformaID,
			Date:       d.PaymentDate.Format(time.DateOnly),
			Amount:     d.Amount,
		}
		lookup[k] = d
	}

	var newParams []PaymentParams

	var conflicts []Conflict

	for _, p := range params {
		k := dupKey{
			ProformaID: p.ProformaID,
			Date:       p.PaymentDate.Format(time.DateOnly),
			Amount:     p.Amount,
		}

		existing, found := lookup[k]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	payments := paramsToPayments(newParams)
	if err := itx.CreatePayments(ctx, payments); err != nil {
		return nil, fmt.Errorf("create payments: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: payments}, nil
}

func dateRange(params []PaymentParams) (time.Time, time.Time) {
	minDate := params[0].PaymentDate
	maxDate := params[0].PaymentDate

	for _, p := range params[1:] {
		if p.PaymentDate.Before(minDate) {
			minDate = p.PaymentDate
		}

		if p.PaymentDate.After(maxDate) {
			maxDate = p.PaymentDate
		}
	}

	return minDate, maxDate
}

func paramsToPayments(params []PaymentParams) []*Payment {
	payments := make([]*Payment, len(params))
	for i, p := range params {
		payments[i] = &Payment{
			ProformaID:  p.ProformaID,
			Amount:      p.Amount,
			PaymentDate: p.PaymentDate,
			Status:      p.Status,
		}
	}

	return payments
}
