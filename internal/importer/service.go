package importer

import (
	"fmt"
	"io"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/importer/ledger"
	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

type Service struct {
	ledgerImporter Importer
}

func NewService() *Service {
	return &Service{
		ledgerImporter: ledger.NewParser(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]proforma.PaymentParams, error) {
	var imp Importer

	switch source {
	case SourceLedger:
		imp = s.ledgerImporter
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return imp.Parse(r)
}
