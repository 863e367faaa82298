package proforma_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params proforma.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *proforma.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: proforma.CreateParams{
					OrganizationID: uuid.New(),
					ClientName:     "Comercializadora del Norte",
					AmountTotal:    150_000_00,
					Currency:       "MXN",
					ProformaNumber: 3,
				},
			},
			setupMock: func(m *proforma.MockRepository) {
				m.EXPECT().
					CreateProforma(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *proforma.Proforma) error {
						p.ID = uuid.New()
						p.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			args: args{
				params: proforma.CreateParams{AmountTotal: 500},
			},
			setupMock: func(m *proforma.MockRepository) {
				m.EXPECT().
					CreateProforma(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := proforma.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := proforma.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, proforma.StatusPendiente, got.Status)
		})
	}
}

func TestService_RegisterPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := proforma.NewMockRepository(ctrl)
	repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *proforma.Payment) error {
			p.ID = uuid.New()
			p.CreatedAt = time.Now()
			return nil
		})

	svc := proforma.NewService(repo)

	got, err := svc.RegisterPayment(context.Background(), proforma.PaymentParams{
		ProformaID:  uuid.New(),
		Amount:      25_000_00,
		PaymentDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:      "aplicado",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, int64(25_000_00), got.Amount)
}

func TestService_ImportPayments(t *testing.T) {
	proformaID := uuid.New()
	day := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	params := []proforma.PaymentParams{
		{ProformaID: proformaID, Amount: 10_000_00, PaymentDate: day},
		{ProformaID: proformaID, Amount: 5_000_00, PaymentDate: day.AddDate(0, 0, 3)},
	}

	type testCase struct {
		name          string
		params        []proforma.PaymentParams
		setupMock     func(m *proforma.MockRepository, itx *proforma.MockImportTx)
		wantImported  int
		wantConflicts int
		wantErr       bool
	}

	tests := []testCase{
		{
			name:   "AllNew",
			params: params,
			setupMock: func(m *proforma.MockRepository, itx *proforma.MockImportTx) {
				m.EXPECT().
					BeginPaymentImport(gomock.Any(), day, day.AddDate(0, 0, 3)).
					Return(itx, nil)
				itx.EXPECT().FindDuplicates(gomock.Any(), params).Return(nil, nil)
				itx.EXPECT().CreatePayments(gomock.Any(), gomock.Len(2)).Return(nil)
				itx.EXPECT().Commit().Return(nil)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantImported: 2,
		},
		{
			name:   "ConflictStopsImport",
			params: params,
			setupMock: func(m *proforma.MockRepository, itx *proforma.MockImportTx) {
				m.EXPECT().
					BeginPaymentImport(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(itx, nil)
				itx.EXPECT().
					FindDuplicates(gomock.Any(), params).
					Return([]*proforma.Payment{
						{ID: uuid.New(), ProformaID: proformaID, Amount: 10_000_00, PaymentDate: day},
					}, nil)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantConflicts: 1,
		},
		{
			name:   "BeginError",
			params: params,
			setupMock: func(m *proforma.MockRepository, _ *proforma.MockImportTx) {
				m.EXPECT().
					BeginPaymentImport(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("lock timeout"))
			},
			wantErr: true,
		},
		{
			name:      "EmptyBatchIsNoop",
			params:    nil,
			setupMock: func(_ *proforma.MockRepository, _ *proforma.MockImportTx) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := proforma.NewMockRepository(ctrl)
			itx := proforma.NewMockImportTx(ctrl)
			tt.setupMock(repo, itx)

			svc := proforma.NewService(repo)
			got, err := svc.ImportPayments(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Len(t, got.Imported, tt.wantImported)
			assert.Len(t, got.Conflicts, tt.wantConflicts)
		})
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := proforma.NewMockRepository(ctrl)
	repo.EXPECT().
		GetProforma(gomock.Any(), id).
		Return(nil, proforma.ErrNotFound)

	svc := proforma.NewService(repo)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, proforma.ErrNotFound)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	filter := proforma.ListFilter{OrganizationID: &orgID}

	repo := proforma.NewMockRepository(ctrl)
	repo.EXPECT().
		ListProformas(gomock.Any(), filter).
		Return([]*proforma.Proforma{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	svc := proforma.NewService(repo)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
