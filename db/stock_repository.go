package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"kiosk/entities"
)

type StockRepository struct {
	conn sqlx.ExtContext
}

func NewStockRepository(db *DB) StockRepository {
	if db == nil {
		panic("db is nil")
	}
	return StockRepository{
		conn: db.Conn,
	}
}

func (r StockRepository) withTx(tx *sqlx.Tx) StockRepository {
	return StockRepository{conn: tx}
}

// FindAllByProductNumberIn locks the matching stock rows for the rest
// of the transaction. Rows are locked in product-number order, so two
// orders touching the same products always acquire locks in the same
// sequence.
func (r StockRepository) FindAllByProductNumberIn(ctx context.Context, productNumbers []string) ([]entities.Stock, error) {
	if len(productNumbers) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT
		    product_number, quantity
		FROM
		    stocks
		WHERE
		    product_number IN (?)
		ORDER BY
		    product_number
		FOR UPDATE
	`, productNumbers)
	if err != nil {
		return nil, fmt.Errorf("could not build stocks query: %w", err)
	}

	var stocks []entities.Stock
	err = sqlx.SelectContext(ctx, r.conn, &stocks, r.conn.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("could not get stocks: %w", err)
	}

	return stocks, nil
}

func (r StockRepository) Update(ctx context.Context, stock entities.Stock) error {
	result, err := r.conn.ExecContext(ctx, `
		UPDATE
		    stocks
		SET
		    quantity = $2
		WHERE
		    product_number = $1
	`, stock.ProductNumber, stock.Quantity)
	if err != nil {
		return fmt.Errorf("could not update stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check stock update: %w", err)
	}
	if affected != 1 {
		return fmt.Errorf("no stock row for product %s", stock.ProductNumber)
	}

	return nil
}

// Upsert sets the quantity on hand for a product, creating the stock
// row when it does not exist yet.
func (r StockRepository) Upsert(ctx context.Context, stock entities.Stock) error {
	_, err := r.conn.ExecContext(ctx, `
		INSERT INTO
		    stocks (product_number, quantity)
		VALUES
		    ($1, $2)
		ON CONFLICT (product_number) DO UPDATE SET quantity = EXCLUDED.quantity
	`, stock.ProductNumber, stock.Quantity)
	if err != nil {
		return fmt.Errorf("could not upsert stock: %w", err)
	}

	return nil
}
