package board_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/board"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/materiality"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

func boolPtr(b bool) *bool { return &b }

func orgFilter(orgID uuid.UUID) proforma.ListFilter {
	return proforma.ListFilter{OrganizationID: &orgID}
}

func TestService_Board(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	created := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	complete := &proforma.Proforma{
		ID:               uuid.New(),
		OrganizationID:   orgID,
		AmountTotal:      100_000_00,
		Status:           proforma.StatusAprobada,
		ProformaNumber:   7,
		ContractRequired: boolPtr(true),
		EvidenceStatus:   proforma.EvidenceEntregada,
		CreatedAt:        created,
		Organization:     &proforma.Organization{ID: orgID, RFC: "MAGV850101XX1"},
	}
	bare := &proforma.Proforma{
		ID:             uuid.New(),
		OrganizationID: orgID,
		AmountTotal:    40_000_00,
		Status:         proforma.StatusPendiente,
		CreatedAt:      created,
	}

	repo := proforma.NewMockRepository(ctrl)
	repo.EXPECT().
		ListProformas(gomock.Any(), gomock.Eq(orgFilter(orgID))).
		Return([]*proforma.Proforma{complete, bare}, nil)
	repo.EXPECT().
		ListContractsFor(gomock.Any(), orgID).
		Return(map[uuid.UUID][]proforma.Contract{
			complete.ID: {{FileURL: "https://files/contrato.pdf"}},
		}, nil)
	repo.EXPECT().
		ListInvoicesFor(gomock.Any(), orgID).
		Return(map[uuid.UUID][]proforma.Invoice{
			complete.ID: {{Status: proforma.InvoiceTimbrada, CreatedAt: created}},
		}, nil)
	repo.EXPECT().
		ListEvidenceFor(gomock.Any(), orgID).
		Return(nil, nil)
	repo.EXPECT().
		ListPaymentsFor(gomock.Any(), orgID).
		Return(map[uuid.UUID][]proforma.Payment{
			complete.ID: {{Amount: 50_000_00}},
		}, nil)

	svc := board.NewService(repo, nil)

	snaps, err := svc.Board(context.Background(), orgID)
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	first := snaps[0]
	assert.Equal(t, complete.ID, first.ProformaID)
	assert.Equal(t, "MAGV-050324-07", first.Folio)
	assert.Equal(t, materiality.CompletionComplete, first.Contract.Completion)
	assert.Equal(t, materiality.CompletionOptionalDone, first.Invoice.Completion)
	assert.Equal(t, materiality.CompletionComplete, first.Evidence.Completion)
	assert.Equal(t, 50, first.PaymentPercent)
	assert.Equal(t, materiality.TierPartial, first.PaymentTier)

	// The second proforma has no children at all: every fetch gap degrades
	// to empty collections and pending markers.
	second := snaps[1]
	assert.Equal(t, "PF-050324-01", second.Folio)
	assert.Equal(t, materiality.CompletionMissing, second.Quotation.Completion)
	assert.Equal(t, materiality.CompletionNotApplicable, second.Contract.Completion)
	assert.Equal(t, 0, second.PaymentPercent)
}

func TestService_Board_FetchErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	repo := proforma.NewMockRepository(ctrl)
	repo.EXPECT().ListProformas(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().ListContractsFor(gomock.Any(), orgID).Return(nil, errors.New("connection reset")).AnyTimes()
	repo.EXPECT().ListInvoicesFor(gomock.Any(), orgID).Return(nil, nil).AnyTimes()
	repo.EXPECT().ListEvidenceFor(gomock.Any(), orgID).Return(nil, nil).AnyTimes()
	repo.EXPECT().ListPaymentsFor(gomock.Any(), orgID).Return(nil, nil).AnyTimes()

	svc := board.NewService(repo, nil)

	_, err := svc.Board(context.Background(), orgID)
	assert.ErrorContains(t, err, "fetch contracts")
}

// A slow fetch for one organization must not survive a newer request for
// another: the first call's result is dropped as stale.
func TestService_Board_StaleScopeDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgA := uuid.New()
	orgB := uuid.New()

	repo := proforma.NewMockRepository(ctrl)
	svc := board.NewService(repo, nil)

	// Second scope: plain empty fetches.
	repo.EXPECT().ListProformas(gomock.Any(), gomock.Eq(orgFilter(orgB))).Return(nil, nil)
	repo.EXPECT().ListContractsFor(gomock.Any(), orgB).Return(nil, nil)
	repo.EXPECT().ListInvoicesFor(gomock.Any(), orgB).Return(nil, nil)
	repo.EXPECT().ListEvidenceFor(gomock.Any(), orgB).Return(nil, nil)
	repo.EXPECT().ListPaymentsFor(gomock.Any(), orgB).Return(nil, nil)

	// First scope: while its payment fetch is still in flight, the consumer
	// switches to orgB and that fetch completes first.
	repo.EXPECT().ListProformas(gomock.Any(), gomock.Eq(orgFilter(orgA))).Return(nil, nil)
	repo.EXPECT().ListContractsFor(gomock.Any(), orgA).Return(nil, nil)
	repo.EXPECT().ListInvoicesFor(gomock.Any(), orgA).Return(nil, nil)
	repo.EXPECT().ListEvidenceFor(gomock.Any(), orgA).Return(nil, nil)
	repo.EXPECT().
		ListPaymentsFor(gomock.Any(), orgA).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) (map[uuid.UUID][]proforma.Payment, error) {
			_, err := svc.Board(ctx, orgB)
			require.NoError(t, err)
			return nil, nil
		})

	_, err := svc.Board(context.Background(), orgA)
	assert.ErrorIs(t, err, board.ErrStale)
}
