package importer

import (
	"io"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

// Source identifies the file layout a payment extract came from.
type Source string

const (
	SourceLedger Source = "ledger"
)

type Importer interface {
	Parse(r io.Reader) ([]proforma.PaymentParams, error)
}
