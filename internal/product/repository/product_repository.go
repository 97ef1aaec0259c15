package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pasteleria/internal/domain"
	apperrors "pasteleria/internal/errors"
	"pasteleria/internal/infrastructure/database"
)

const productColumns = `id, name, description, price, image_url, category, available, featured, created_at, updated_at`

type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

func (r *SQLRepository) Insert(ctx context.Context, p domain.Product) (uint, error) {
	query := `
		INSERT INTO products (name, description, price, image_url, category, available, featured, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, p.ImageURL, p.Category, p.Available, p.Featured, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return 0, database.Classify(err, "inserting product")
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Category, &p.Available, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	p.Price = p.Price.Round(domain.MoneyPlaces)
	return p, nil
}
