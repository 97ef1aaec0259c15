package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pasteleria/internal/domain"
	apperrors "pasteleria/internal/errors"
	"pasteleria/internal/infrastructure/database"
)

const inquiryColumns = `id, name, email, event_date, guests, details, status, created_at`

type SQLInquiryRepository struct {
	db *sql.DB
}

func NewSQLInquiryRepository(db *sql.DB) *SQLInquiryRepository {
	return &SQLInquiryRepository{db: db}
}

func (r *SQLInquiryRepository) Insert(ctx context.Context, inq domain.Inquiry) (uint, error) {
	query := `
		INSERT INTO custom_inquiries (name, email, event_date, guests, details, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		inq.Name, inq.Email, inq.EventDate.Format(domain.DateLayout),
		inq.Guests, inq.Details, inq.Status, inq.CreatedAt,
	)
	if err != nil {
		return 0, database.Classify(err, "inserting inquiry")
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *SQLInquiryRepository) FindAll(ctx context.Context) ([]domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM custom_inquiries ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []domain.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, inq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inquiry rows: %w", err)
	}

	return inquiries, nil
}

func (r *SQLInquiryRepository) FindByID(ctx context.Context, id uint) (*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM custom_inquiries WHERE id = ?`

	inq, err := scanInquiry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("inquiry with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying inquiry by id: %w", err)
	}

	return &inq, nil
}

func (r *SQLInquiryRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE custom_inquiries SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return database.Classify(err, "updating inquiry status")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("inquiry with id %d not found", id))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInquiry(row rowScanner) (domain.Inquiry, error) {
	var (
		inq     domain.Inquiry
		guests  sql.NullString
		details sql.NullString
	)
	err := row.Scan(
		&inq.ID, &inq.Name, &inq.Email, &inq.EventDate,
		&guests, &details, &inq.Status, &inq.CreatedAt,
	)
	if err != nil {
		return domain.Inquiry{}, err
	}
	if guests.Valid {
		inq.Guests = &guests.String
	}
	if details.Valid {
		inq.Details = &details.String
	}
	inq.EventDate = inq.EventDate.UTC()
	return inq, nil
}
