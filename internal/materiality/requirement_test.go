package materiality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/materiality"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

func boolPtr(b bool) *bool { return &b }

func TestRequire_Defaults(t *testing.T) {
	// All flags unset: quotation and evidence default to required, contract
	// and invoice default to not required.
	got := materiality.Require(&proforma.Proforma{})

	assert.Equal(t, materiality.Requirement{
		Quotation: true,
		Evidence:  true,
		Contract:  false,
		Invoice:   false,
	}, got)
}

func TestRequire_ExplicitFlags(t *testing.T) {
	type testCase struct {
		name string
		p    proforma.Proforma
		want materiality.Requirement
	}

	tests := []testCase{
		{
			name: "QuotationWaived",
			p:    proforma.Proforma{ReqQuotation: boolPtr(false)},
			want: materiality.Requirement{Quotation: false, Evidence: true},
		},
		{
			name: "QuotationExplicitlyTrue",
			p:    proforma.Proforma{ReqQuotation: boolPtr(true)},
			want: materiality.Requirement{Quotation: true, Evidence: true},
		},
		{
			name: "EvidenceWaived",
			p:    proforma.Proforma{ReqEvidence: boolPtr(false)},
			want: materiality.Requirement{Quotation: true, Evidence: false},
		},
		{
			name: "ContractRequested",
			p:    proforma.Proforma{ContractRequired: boolPtr(true)},
			want: materiality.Requirement{Quotation: true, Evidence: true, Contract: true},
		},
		{
			name: "ContractExplicitlyFalse",
			p:    proforma.Proforma{ContractRequired: boolPtr(false)},
			want: materiality.Requirement{Quotation: true, Evidence: true, Contract: false},
		},
		{
			name: "DirectInvoiceRequested",
			p:    proforma.Proforma{DirectInvoice: boolPtr(true)},
			want: materiality.Requirement{Quotation: true, Evidence: true, Invoice: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, materiality.Require(&tt.p))
		})
	}
}
