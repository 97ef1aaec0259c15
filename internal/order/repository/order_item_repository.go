package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pasteleria/internal/domain"
	"pasteleria/internal/infrastructure/database"
)

// SQLOrderItemRepository only runs inside the caller's transaction; items
// are never read or written on their own.
type SQLOrderItemRepository struct{}

func NewSQLOrderItemRepository() *SQLOrderItemRepository {
	return &SQLOrderItemRepository{}
}

func (r *SQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
	query := `
		INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity, subtotal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		item.OrderID, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity, item.Subtotal, item.CreatedAt,
	)
	if err != nil {
		return 0, database.Classify(err, "inserting order item")
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *SQLOrderItemRepository) FindByOrderID(ctx context.Context, q database.Querier, orderID uint) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, unit_price, quantity, subtotal, created_at
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`

	rows, err := q.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.UnitPrice, &item.Quantity, &item.Subtotal, &item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		item.UnitPrice = item.UnitPrice.Round(domain.MoneyPlaces)
		item.Subtotal = item.Subtotal.Round(domain.MoneyPlaces)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
