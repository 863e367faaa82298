// Package materiality derives fiscal-materiality compliance state for
// proformas: which sub-processes (formal quotation, contract, invoice,
// evidence, payment) are required, what their effective status is, and
// whether the engagement counts as fully materialized.
//
// Everything in this package is a pure function over already-fetched data.
// Functions are total for missing, nil and zero inputs and never panic;
// absent collections mean "no rows", not an error.
package materiality

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// folioPrefix matches the issuer prefix of a Mexican RFC: the leading run of
// three or four uppercase letters (or &, legal in company RFCs).
var folioPrefix = regexp.MustCompile(`^[A-Z&]{3,4}`)

// Folio renders the canonical human-readable proforma identifier:
// "{PREFIX}-{DDMMYY}-{NN}".
//
// The prefix comes from the organization RFC, falling back to "PF" when the
// RFC is empty or malformed. A sequence number below 1 is treated as absent
// and defaults to 1; numbers past 99 widen to their natural width rather
// than truncating. Deterministic for a given (rfc, createdAt, seq) triple,
// but uniqueness is not enforced here.
func Folio(rfc string, createdAt time.Time, seq int) string {
	prefix := folioPrefix.FindString(strings.TrimSpace(rfc))
	if prefix == "" {
		prefix = "PF"
	}

	if seq < 1 {
		seq = 1
	}

	return fmt.Sprintf("%s-%s-%02d", prefix, createdAt.Format("020106"), seq)
}
