package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/mariomaganacastaneda-wq/b2b-materialidad-v2-sub000/internal/proforma"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectProformaColumns = `
	p.id, p.organization_id, p.client_name, p.description, p.amount_total, p.currency,
	p.status, p.proforma_number,
	p.req_quotation, p.is_contract_required, p.req_evidence, p.request_direct_invoice,
	p.related_quotation_status, p.contract_status, p.invoice_status, p.evidence_status,
	p.created_at, p.updated_at, p.deleted_at,
	o.rfc, o.name
`

// scanProforma reads one proforma row, including the joined organization.
// Column order must match selectProformaColumns.
func scanProforma(s scanner) (*proforma.Proforma, error) {
	var p proforma.Proforma

	var statusStr string

	var reqQuotation, contractRequired, reqEvidence, directInvoice sql.NullBool

	var quotationStatus, contractStatus, invoiceStatus, evidenceStatus sql.NullString

	var orgRFC, orgName sql.NullString

	if err := s.Scan(
		&p.ID, &p.OrganizationID, &p.ClientName, &p.Description, &p.AmountTotal, &p.Currency,
		&statusStr, &p.ProformaNumber,
		&reqQuotation, &contractRequired, &reqEvidence, &directInvoice,
		&quotationStatus, &contractStatus, &invoiceStatus, &evidenceStatus,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		&orgRFC, &orgName,
	); err != nil {
		return nil, err
	}

	p.Status = proforma.Status(statusStr)
	p.ReqQuotation = nullableBool(reqQuotation)
	p.ContractRequired = nullableBool(contractRequired)
	p.ReqEvidence = nullableBool(reqEvidence)
	p.DirectInvoice = nullableBool(directInvoice)
	p.QuotationStatus = proforma.QuotationStatus(quotationStatus.String)
	p.ContractStatus = proforma.ContractStatus(contractStatus.String)
	p.InvoiceStatus = proforma.InvoiceStatus(invoiceStatus.String)
	p.EvidenceStatus = proforma.EvidenceStatus(evidenceStatus.String)

	if orgRFC.Valid || orgName.Valid {
		p.Organization = &proforma.Organization{
			ID:   p.OrganizationID,
			RFC:  orgRFC.String,
			Name: orgName.String,
		}
	}

	return &p, nil
}

func nullableBool(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}

	return &b.Bool
}

func nullString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func (s *Store) CreateProforma(ctx context.Context, p *proforma.Proforma) error {
	query := `
		INSERT INTO proformas (
			organization_id, client_name, description, amount_total, currency,
			status, proforma_number,
			req_quotation, is_contract_required, req_evidence, request_direct_invoice,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.OrganizationID,
		p.ClientName,
		p.Description,
		p.AmountTotal,
		p.Currency,
		p.Status,
		p.ProformaNumber,
		p.ReqQuotation,
		p.ContractRequired,
		p.ReqEvidence,
		p.DirectInvoice,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating proforma: %w", err)
	}

	return nil
}

func (s *Store) GetProforma(ctx context.Context, id uuid.UUID) (*proforma.Proforma, error) {
	query := `SELECT ` + selectProformaColumns + `
		FROM proformas p
		LEFT JOIN organizations o ON p.organization_id = o.id
		WHERE p.id = $1 AND p.deleted_at IS NULL`

	p, err := scanProforma(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, proforma.ErrNotFound
		}

		return nil, fmt.Errorf("getting proforma: %w", err)
	}

	return p, nil
}

func (s *Store) ListProformas(ctx context.Context, filter proforma.ListFilter) ([]*proforma.Proforma, error) {
	query := `SELECT ` + selectProformaColumns + `
		FROM proformas p
		LEFT JOIN organizations o ON p.organization_id = o.id
		WHERE p.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.OrganizationID != nil {
		query += fmt.Sprintf(" AND p.organization_id = $%d", argIdx)

		args = append(args, *filter.OrganizationID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND p.created_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND p.created_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY p.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing proformas: %w", err)
	}
	defer rows.Close()

	var ps []*proforma.Proforma

	for rows.Next() {
		p, err := scanProforma(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning proforma: %w", err)
		}

		ps = append(ps, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proforma rows: %w", err)
	}

	return ps, nil
}

func (s *Store) UpdateProforma(ctx context.Context, p *proforma.Proforma) error {
	query := `
		UPDATE proformas
		SET client_name = $1, description = $2, amount_total = $3, currency = $4,
			proforma_number = $5,
			req_quotation = $6, is_contract_required = $7, req_evidence = $8,
			request_direct_invoice = $9,
			related_quotation_status = $10, contract_status = $11,
			invoice_status = $12, evidence_status = $13,
			updated_at = NOW()
		WHERE id = $14 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ClientName,
		p.Description,
		p.AmountTotal,
		p.Currency,
		p.ProformaNumber,
		p.ReqQuotation,
		p.ContractRequired,
		p.ReqEvidence,
		p.DirectInvoice,
		nullString(string(p.QuotationStatus)),
		nullString(string(p.ContractStatus)),
		nullString(string(p.InvoiceStatus)),
		nullString(string(p.EvidenceStatus)),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating proforma: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status proforma.Status) error {
	query := `
		UPDATE proformas
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	return nil
}

func (s *Store) DeleteProforma(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE proformas
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting proforma: %w", err)
	}

	return nil
}

// ListContractsFor returns contract rows for every proforma of the
// organization, grouped by proforma id. Proformas without contracts simply
// have no entry; callers get an always-array shape either way.
func (s *Store) ListContractsFor(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID][]proforma.Contract, error) {
	query := `
		SELECT c.id, c.proforma_id, COALESCE(c.file_url, ''), c.signed, c.created_at
		FROM contracts c
		JOIN proformas p ON c.proforma_id = p.id
		WHERE p.organization_id = $1 AND p.deleted_at IS NULL
		ORDER BY c.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]proforma.Contract)

	for rows.Next() {
		var c proforma.Contract
		if err := rows.Scan(&c.ID, &c.ProformaID, &c.FileURL, &c.Signed, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		grouped[c.ProformaID] = append(grouped[c.ProformaID], c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contract rows: %w", err)
	}

	return grouped, nil
}

func (s *Store) ListInvoicesFor(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID][]proforma.Invoice, error) {
	query := `
		SELECT i.id, i.proforma_id, i.status, COALESCE(i.file_url, ''), i.amount_total,
			i.created_at, i.updated_at
		FROM invoices i
		JOIN proformas p ON i.proforma_id = p.id
		WHERE p.organization_id = $1 AND p.deleted_at IS NULL
		ORDER BY i.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]proforma.Invoice)

	for rows.Next() {
		var inv proforma.Invoice

		var statusStr string

		if err := rows.Scan(&inv.ID, &inv.ProformaID, &statusStr, &inv.FileURL, &inv.AmountTotal,
			&inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		inv.Status = proforma.InvoiceStatus(statusStr)
		grouped[inv.ProformaID] = append(grouped[inv.ProformaID], inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return grouped, nil
}

// ListEvidenceFor resolves evidence to its proforma through whichever parent
// it hangs off (invoice or contract).
func (s *Store) ListEvidenceFor(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID][]proforma.Evidence, error) {
	query := `
		SELECT e.id, COALESCE(i.proforma_id, c.proforma_id), e.invoice_id, e.contract_id,
			e.type, COALESCE(e.file_url, ''), e.metadata, COALESCE(e.content_hash, ''), e.created_at
		FROM evidence e
		LEFT JOIN invoices i ON e.invoice_id = i.id
		LEFT JOIN contracts c ON e.contract_id = c.id
		JOIN proformas p ON p.id = COALESCE(i.proforma_id, c.proforma_id)
		WHERE p.organization_id = $1 AND p.deleted_at IS NULL
		ORDER BY e.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing evidence: %w", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]proforma.Evidence)

	for rows.Next() {
		var ev proforma.Evidence

		var metadata []byte

		if err := rows.Scan(&ev.ID, &ev.ProformaID, &ev.InvoiceID, &ev.ContractID,
			&ev.Type, &ev.FileURL, &metadata, &ev.ContentHash, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning evidence: %w", err)
		}

		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &ev.Metadata); err != nil {
				return nil, fmt.Errorf("decoding evidence metadata: %w", err)
			}
		}

		grouped[ev.ProformaID] = append(grouped[ev.ProformaID], ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evidence rows: %w", err)
	}

	return grouped, nil
}

func (s *Store) ListPaymentsFor(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID][]proforma.Payment, error) {
	query := `
		SELECT py.id, py.proforma_id, py.amount, py.payment_date, COALESCE(py.status, ''), py.created_at
		FROM proforma_payments py
		JOIN proformas p ON py.proforma_id = p.id
		WHERE p.organization_id = $1 AND p.deleted_at IS NULL
		ORDER BY py.payment_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]proforma.Payment)

	for rows.Next() {
		var py proforma.Payment
		if err := rows.Scan(&py.ID, &py.ProformaID, &py.Amount, &py.PaymentDate, &py.Status, &py.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		grouped[py.ProformaID] = append(grouped[py.ProformaID], py)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return grouped, nil
}

func (s *Store) CreatePayment(ctx context.Context, py *proforma.Payment) error {
	query := `
		INSERT INTO proforma_payments (proforma_id, amount, payment_date, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		py.ProformaID,
		py.Amount,
		py.PaymentDate,
		py.Status,
	).Scan(&py.ID, &py.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func importLockKey(minDate, maxDate time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(minDate.Format("2006-01-02")))
	h.Write([]byte{0})
	h.Write([]byte(maxDate.Format("2006-01-02")))

	return int64(h.Sum64())
}

type importTx struct {
	tx *sql.Tx
}

// BeginPaymentImport opens a transaction holding an advisory lock over the
// import's date range so two concurrent uploads of the same ledger extract
// cannot both pass duplicate detection.
func (s *Store) BeginPaymentImport(ctx context.Context, minDate, maxDate time.Time) (proforma.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	lockKey := importLockKey(minDate, maxDate)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindDuplicates(ctx context.Context, params []proforma.PaymentParams) ([]*proforma.Payment, error) {
	if len(params) == 0 {
		return nil, nil
	}

	type lookupKey struct {
		ProformaID uuid.UUID
		Date       string
		Amount     int64
	}

	minDate := params[0].PaymentDate
	maxDate := params[0].PaymentDate
	keySet := make(map[lookupKey]struct{}, len(params))

	for _, p := range params {
		if p.PaymentDate.Before(minDate) {
			minDate = p.PaymentDate
		}

		if p.PaymentDate.After(maxDate) {
			maxDate = p.PaymentDate
		}

		keySet[lookupKey{
			ProformaID: p.ProformaID,
			Date:       p.PaymentDate.Format("2006-01-02"),
			Amount:     p.Amount,
		}] = struct{}{}
	}

	query := `
		SELECT id, proforma_id, amount, payment_date, COALESCE(status, ''), created_at
		FROM proforma_payments
		WHERE payment_date >= $1 AND payment_date <= $2
		ORDER BY payment_date ASC
	`

	rows, err := itx.tx.QueryContext(ctx, query, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	defer rows.Close()

	var duplicates []*proforma.Payment

	for rows.Next() {
		var py proforma.Payment
		if err := rows.Scan(&py.ID, &py.ProformaID, &py.Amount, &py.PaymentDate, &py.Status, &py.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		k := lookupKey{
			ProformaID: py.ProformaID,
			Date:       py.PaymentDate.Format("2006-01-02"),
			Amount:     py.Amount,
		}

		_, found := keySet[k]
		if !found {
			continue
		}

		duplicates = append(duplicates, &py)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating duplicate rows: %w", err)
	}

	return duplicates, nil
}

func (itx *importTx) CreatePayments(ctx context.Context, payments []*proforma.Payment) error {
	query := `
		INSERT INTO proforma_payments (proforma_id, amount, payment_date, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	for _, py := range payments {
		err := itx.tx.QueryRowContext(ctx, query,
			py.ProformaID,
			py.Amount,
			py.PaymentDate,
			py.Status,
		).Scan(&py.ID, &py.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating payment: %w", err)
		}
	}

	return nil
}
