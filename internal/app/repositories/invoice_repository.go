package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/dberrors"
)

// IInvoiceRepository is the invoice surface used by the services
type IInvoiceRepository interface {
	Upsert(ctx context.Context, invoice *models.Invoice) (bool, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Invoice, error)
}

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db db.DBTX
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(conn db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: conn}
}

// Upsert writes the student's invoice and reports whether it was created
func (r *InvoiceRepository) Upsert(ctx context.Context, invoice *models.Invoice) (bool, error) {
	query := `
		INSERT INTO invoice (student_id, total_fees, amount_paid, holds)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT invoice_student_id_key
		DO UPDATE SET total_fees = EXCLUDED.total_fees, amount_paid = EXCLUDED.amount_paid, holds = EXCLUDED.holds
		RETURNING id, (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query,
		invoice.StudentID, invoice.TotalFees, invoice.AmountPaid, nullIfEmpty(invoice.Holds),
	).Scan(&invoice.ID, &inserted)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "invoice_student_id_fkey") {
			return false, apperrors.ErrStudentNotFound
		}
		return false, fmt.Errorf("error upserting invoice: %w", err)
	}
	return inserted, nil
}

// GetByStudentID returns the student's invoice, or nil when there is none
func (r *InvoiceRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, total_fees, amount_paid, COALESCE(holds, '')
		FROM invoice
		WHERE student_id = $1
	`, studentID).Scan(&inv.ID, &inv.StudentID, &inv.TotalFees, &inv.AmountPaid, &inv.Holds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting invoice: %w", err)
	}
	return &inv, nil
}
