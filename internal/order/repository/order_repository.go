package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pasteleria/internal/domain"
	"pasteleria/internal/errors"
	"pasteleria/internal/infrastructure/database"
)

const orderColumns = `id, customer_name, customer_email, order_code, status, total, created_at, updated_at`

type SQLOrderRepository struct {
	db *sql.DB
}

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{db: db}
}

func (r *SQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO orders (customer_name, customer_email, order_code, status, total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.CustomerName, order.CustomerEmail, order.OrderCode, order.Status, order.Total,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return 0, database.Classify(err, "inserting order")
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *SQLOrderRepository) UpdateCode(ctx context.Context, tx *sql.Tx, id uint, code string) error {
	query := `UPDATE orders SET order_code = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, code, id)
	if err != nil {
		return database.Classify(err, "updating order code")
	}

	return requireRow(result, id)
}

// AddToTotal increments the stored total in a single statement, so
// concurrent additions to the same order never overwrite each other. The
// increment is refused when the new total would not fit DECIMAL(10,2).
func (r *SQLOrderRepository) AddToTotal(ctx context.Context, tx *sql.Tx, id uint, amount decimal.Decimal, at time.Time) error {
	query := `
		UPDATE orders
		SET total = ROUND(total + CAST(? AS DECIMAL(10,2)), 2), updated_at = ?
		WHERE id = ? AND total + CAST(? AS DECIMAL(10,2)) <= 99999999.99
	`

	result, err := tx.ExecContext(ctx, query, amount, at, id, amount)
	if err != nil {
		return database.Classify(err, "updating order total")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return database.Classify(err, "checking order existence")
	}
	if exists == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	return errors.NewFieldError("unitPrice",
		fmt.Sprintf("order total would exceed %s", domain.FormatMoney(domain.MaxMoney)))
}

func (r *SQLOrderRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string, at time.Time) error {
	query := `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, status, at, id)
	if err != nil {
		return database.Classify(err, "updating order status")
	}

	return requireRow(result, id)
}

// FindByID reads through q so it can see the state of an open transaction.
func (r *SQLOrderRepository) FindByID(ctx context.Context, q database.Querier, id uint) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := scanOrder(q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

func (r *SQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerEmail, &o.OrderCode, &o.Status, &o.Total,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	o.Total = o.Total.Round(domain.MoneyPlaces)
	return o, nil
}

func requireRow(result sql.Result, id uint) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
