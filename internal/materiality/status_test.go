package materiality_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/materiality"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestEffectiveContractStatus(t *testing.T) {
	type testCase struct {
		name string
		p    proforma.Proforma
		rows []proforma.Contract
		want string
	}

	tests := []testCase{
		{
			name: "CachedFieldWins",
			p:    proforma.Proforma{ContractStatus: proforma.ContractNegociando},
			rows: []proforma.Contract{{FileURL: "https://files/c.pdf"}},
			want: "negociando",
		},
		{
			name: "RowWithFileDerivesFirmado",
			p:    proforma.Proforma{},
			rows: []proforma.Contract{{FileURL: "https://files/c.pdf"}},
			want: "firmado",
		},
		{
			name: "RowWithoutFileDerivesEnRevision",
			p:    proforma.Proforma{},
			rows: []proforma.Contract{{}},
			want: "en_revision",
		},
		{
			name: "FirstRowBreaksTies",
			p:    proforma.Proforma{},
			rows: []proforma.Contract{{}, {FileURL: "https://files/late.pdf"}},
			want: "en_revision",
		},
		{
			name: "NoRowsRequiredDerivesSolicitada",
			p:    proforma.Proforma{ContractRequired: boolPtr(true)},
			want: "solicitada",
		},
		{
			name: "NoRowsNotRequiredDerivesNothing",
			p:    proforma.Proforma{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, materiality.EffectiveContractStatus(&tt.p, tt.rows))
		})
	}
}

func TestEffectiveInvoiceStatus(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name string
		p    proforma.Proforma
		rows []proforma.Invoice
		want string
	}

	tests := []testCase{
		{
			name: "RowStatusBypassesCachedField",
			p:    proforma.Proforma{InvoiceStatus: proforma.InvoiceTimbrada},
			rows: []proforma.Invoice{{Status: proforma.InvoiceSolicitud, CreatedAt: base}},
			want: "SOLICITUD",
		},
		{
			name: "NewestRowByUpdatedAtWins",
			p:    proforma.Proforma{},
			rows: []proforma.Invoice{
				{Status: proforma.InvoiceValidada, CreatedAt: base, UpdatedAt: timePtr(base.Add(time.Hour))},
				{Status: proforma.InvoiceRechazada, CreatedAt: base, UpdatedAt: timePtr(base.Add(2 * time.Hour))},
			},
			want: "RECHAZADA",
		},
		{
			name: "CreatedAtBacksUpMissingUpdatedAt",
			p:    proforma.Proforma{},
			rows: []proforma.Invoice{
				{Status: proforma.InvoiceValidada, CreatedAt: base, UpdatedAt: timePtr(base.Add(time.Hour))},
				{Status: proforma.InvoiceCancelada, CreatedAt: base.Add(3 * time.Hour)},
			},
			want: "CANCELADA",
		},
		{
			name: "NoRowsFallsBackToCachedField",
			p:    proforma.Proforma{InvoiceStatus: proforma.InvoicePorTimbrar},
			want: "POR_TIMBRAR",
		},
		{
			name: "NoRowsNoCacheRequiredDerivesSolicitada",
			p:    proforma.Proforma{DirectInvoice: boolPtr(true)},
			want: "solicitada",
		},
		{
			name: "NoRowsNoCacheNotRequestedDerivesNothing",
			p:    proforma.Proforma{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, materiality.EffectiveInvoiceStatus(&tt.p, tt.rows))
		})
	}
}

func TestEffectiveQuotationAndEvidenceStatus(t *testing.T) {
	cached := proforma.Proforma{
		QuotationStatus: proforma.QuotationEnviada,
		EvidenceStatus:  proforma.EvidenceBoceto,
	}
	assert.Equal(t, "enviada", materiality.EffectiveQuotationStatus(&cached))
	assert.Equal(t, "boceto", materiality.EffectiveEvidenceStatus(&cached))

	required := proforma.Proforma{}
	assert.Equal(t, "solicitada", materiality.EffectiveQuotationStatus(&required))
	assert.Equal(t, "solicitada", materiality.EffectiveEvidenceStatus(&required))

	waived := proforma.Proforma{
		ReqQuotation: boolPtr(false),
		ReqEvidence:  boolPtr(false),
	}
	assert.Equal(t, "", materiality.EffectiveQuotationStatus(&waived))
	assert.Equal(t, "", materiality.EffectiveEvidenceStatus(&waived))
}

func TestActive(t *testing.T) {
	type testCase struct {
		name      string
		sub       materiality.SubProcess
		status    string
		rows      int
		lifecycle proforma.Status
		want      bool
	}

	tests := []testCase{
		{
			name:   "ContractFirmadoIsActive",
			sub:    materiality.SubProcessContract,
			status: "firmado",
			want:   true,
		},
		{
			name:   "ContractCompletadoIsActive",
			sub:    materiality.SubProcessContract,
			status: "completado",
			want:   true,
		},
		{
			name:   "ContractSolicitadaIsNotActive",
			sub:    materiality.SubProcessContract,
			status: "solicitada",
			want:   false,
		},
		{
			name: "RowsLightUpWithoutStatus",
			sub:  materiality.SubProcessContract,
			rows: 1,
			want: true,
		},
		{
			name:   "InvoiceTimbradaMatchesCaseInsensitively",
			sub:    materiality.SubProcessInvoice,
			status: "TIMBRADA",
			want:   true,
		},
		{
			name:   "InvoiceEmitidaIsActive",
			sub:    materiality.SubProcessInvoice,
			status: "EMITIDA",
			want:   true,
		},
		{
			name:   "InvoiceValidadaIsNotActive",
			sub:    materiality.SubProcessInvoice,
			status: "VALIDADA",
			want:   false,
		},
		{
			name:   "EvidenceEntregadaIsActive",
			sub:    materiality.SubProcessEvidence,
			status: "entregada",
			want:   true,
		},
		{
			name:   "QuotationAceptadaIsActive",
			sub:    materiality.SubProcessQuotation,
			status: "aceptada",
			want:   true,
		},
		{
			name:      "QuotationLitByApprovedProforma",
			sub:       materiality.SubProcessQuotation,
			status:    "solicitada",
			lifecycle: proforma.StatusAprobada,
			want:      true,
		},
		{
			name:      "ApprovedProformaDoesNotLightOtherSubProcesses",
			sub:       materiality.SubProcessEvidence,
			status:    "solicitada",
			lifecycle: proforma.StatusAprobada,
			want:      false,
		},
		{
			name:   "EmptyStatusNoRowsIsNotActive",
			sub:    materiality.SubProcessInvoice,
			status: "",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, materiality.Active(tt.sub, tt.status, tt.rows, tt.lifecycle))
		})
	}
}

// Active and the effective status are independent lookups: a stale cached
// status outside the allow-list still lights the indicator when rows exist.
func TestActive_DriftBetweenCacheAndRows(t *testing.T) {
	p := proforma.Proforma{ContractStatus: proforma.ContractNegociando}
	rows := []proforma.Contract{{FileURL: "https://files/signed.pdf"}}

	status := materiality.EffectiveContractStatus(&p, rows)
	assert.Equal(t, "negociando", status)

	// Status string says negotiating, but the row's existence wins for the
	// active flag.
	assert.True(t, materiality.Active(materiality.SubProcessContract, status, len(rows), p.Status))
}
