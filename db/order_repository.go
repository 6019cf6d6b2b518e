package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"kiosk/entities"
)

type OrderRepository struct {
	conn sqlx.ExtContext
}

func NewOrderRepository(db *DB) OrderRepository {
	if db == nil {
		panic("db is nil")
	}
	return OrderRepository{
		conn: db.Conn,
	}
}

func (r OrderRepository) withTx(tx *sqlx.Tx) OrderRepository {
	return OrderRepository{conn: tx}
}

func (r OrderRepository) Create(ctx context.Context, order entities.Order) error {
	_, err := sqlx.NamedExecContext(ctx, r.conn, `
		INSERT INTO
		    orders (order_id, status, total_price, registered_at)
		VALUES
		    (:order_id, :status, :total_price, :registered_at)
	`, order)
	if err != nil {
		return fmt.Errorf("could not save order: %w", err)
	}

	// lines keep request order through the serial id
	for _, line := range order.Products {
		_, err = sqlx.NamedExecContext(ctx, r.conn, `
			INSERT INTO
			    order_products (order_id, product_number, name, price)
			VALUES
			    (:order_id, :product_number, :name, :price)
		`, line)
		if err != nil {
			return fmt.Errorf("could not save order line: %w", err)
		}
	}

	return nil
}

// FindOrdersBy returns the orders with the given status registered in
// [from, to).
func (r OrderRepository) FindOrdersBy(ctx context.Context, from, to time.Time, status entities.OrderStatus) ([]entities.Order, error) {
	var orders []entities.Order
	err := sqlx.SelectContext(ctx, r.conn, &orders, `
		SELECT
		    order_id, status, total_price, registered_at
		FROM
		    orders
		WHERE
		    registered_at >= $1
		    AND registered_at < $2
		    AND status = $3
	`, from, to, status)
	if err != nil {
		return nil, fmt.Errorf("could not get orders: %w", err)
	}

	return orders, nil
}
