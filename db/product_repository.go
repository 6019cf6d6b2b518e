package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"kiosk/entities"
)

type ProductRepository struct {
	conn sqlx.ExtContext
}

func NewProductRepository(db *DB) ProductRepository {
	if db == nil {
		panic("db is nil")
	}
	return ProductRepository{
		conn: db.Conn,
	}
}

func (r ProductRepository) withTx(tx *sqlx.Tx) ProductRepository {
	return ProductRepository{conn: tx}
}

func (r ProductRepository) Create(ctx context.Context, product entities.Product) error {
	_, err := sqlx.NamedExecContext(ctx, r.conn, `
		INSERT INTO
		    products (product_id, product_number, type, selling_status, name, price)
		VALUES
		    (:product_id, :product_number, :type, :selling_status, :name, :price)
	`, product)
	if isErrorUniqueViolation(err) {
		return fmt.Errorf("product number %s already exists: %w", product.ProductNumber, err)
	}
	if err != nil {
		return fmt.Errorf("could not save product: %w", err)
	}

	return nil
}

func (r ProductRepository) FindAllByProductNumberIn(ctx context.Context, productNumbers []string) ([]entities.Product, error) {
	if len(productNumbers) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT
		    product_id, product_number, type, selling_status, name, price
		FROM
		    products
		WHERE
		    product_number IN (?)
	`, productNumbers)
	if err != nil {
		return nil, fmt.Errorf("could not build products query: %w", err)
	}

	var products []entities.Product
	err = sqlx.SelectContext(ctx, r.conn, &products, r.conn.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("could not get products: %w", err)
	}

	return products, nil
}

func (r ProductRepository) FindLatestProductNumber(ctx context.Context) (string, error) {
	var productNumber string
	err := sqlx.GetContext(ctx, r.conn, &productNumber, `
		SELECT
		    product_number
		FROM
		    products
		ORDER BY
		    product_number DESC
		LIMIT 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("could not get latest product number: %w", err)
	}

	return productNumber, nil
}

func (r ProductRepository) FindAllBySellingStatusIn(ctx context.Context, statuses []entities.ProductSellingStatus) ([]entities.Product, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT
		    product_id, product_number, type, selling_status, name, price
		FROM
		    products
		WHERE
		    selling_status IN (?)
		ORDER BY
		    product_number
	`, statuses)
	if err != nil {
		return nil, fmt.Errorf("could not build products query: %w", err)
	}

	var products []entities.Product
	err = sqlx.SelectContext(ctx, r.conn, &products, r.conn.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("could not get selling products: %w", err)
	}

	return products, nil
}
