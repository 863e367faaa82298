// Package board composes the persistence layer with the materiality engine:
// it fetches a scope's proformas and their detail rows, derives one snapshot
// per proforma and aggregates portfolio reports.
package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/materiality"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

// ErrStale is returned when a fetch completes after a newer scope was
// requested. Callers must discard the result instead of merging it.
var ErrStale = errors.New("board fetch superseded by newer scope")

type Service struct {
	repo    proforma.Repository
	metrics *materiality.Metrics
	scopes  *scopeGuard
}

func NewService(repo proforma.Repository, metrics *materiality.Metrics) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		scopes:  newScopeGuard(),
	}
}

// Board derives the materiality snapshot of every proforma in the
// organization. The five fetches run concurrently; a child fetch coming back
// empty just means no rows for that sub-process. Freshness is
// last-requested-wins: when a newer call for the same consumer supersedes
// this one before its fetches complete, the result is dropped with ErrStale
// so a slow fetch can never overwrite a newer selection.
func (s *Service) Board(ctx context.Context, orgID uuid.UUID) ([]materiality.Snapshot, error) {
	ticket := s.scopes.begin(orgID)

	var (
		proformas []*proforma.Proforma
		contracts map[uuid.UUID][]proforma.Contract
		invoices  map[uuid.UUID][]proforma.Invoice
		evidence  map[uuid.UUID][]proforma.Evidence
		payments  map[uuid.UUID][]proforma.Payment
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		proformas, err = s.repo.ListProformas(gctx, proforma.ListFilter{OrganizationID: &orgID})
		if err != nil {
			return fmt.Errorf("fetch proformas: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		contracts, err = s.repo.ListContractsFor(gctx, orgID)
		if err != nil {
			return fmt.Errorf("fetch contracts: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		invoices, err = s.repo.ListInvoicesFor(gctx, orgID)
		if err != nil {
			return fmt.Errorf("fetch invoices: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		evidence, err = s.repo.ListEvidenceFor(gctx, orgID)
		if err != nil {
			return fmt.Errorf("fetch evidence: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		payments, err = s.repo.ListPaymentsFor(gctx, orgID)
		if err != nil {
			return fmt.Errorf("fetch payments: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !s.scopes.current(ticket) {
		return nil, ErrStale
	}

	snapshots := make([]materiality.Snapshot, 0, len(proformas))

	for _, p := range proformas {
		children := proforma.Children{
			Contracts: contracts[p.ID],
			Invoices:  invoices[p.ID],
			Evidence:  evidence[p.ID],
			Payments:  payments[p.ID],
		}
		snapshots = append(snapshots, materiality.Build(p, children, s.metrics))
	}

	return snapshots, nil
}

// Report aggregates the organization's snapshots into portfolio statistics.
// Recomputed in full on every call.
func (s *Service) Report(ctx context.Context, orgID uuid.UUID) (materiality.Report, error) {
	snapshots, err := s.Board(ctx, orgID)
	if err != nil {
		return materiality.Report{}, err
	}

	return materiality.Summarize(snapshots), nil
}
