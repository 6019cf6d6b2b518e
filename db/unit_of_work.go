package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kiosk/message/event"
	"kiosk/message/outbox"
	"kiosk/orders"
)

const maxTxAttempts = 3

// UnitOfWork is the transaction boundary of order creation: it binds
// the catalog, stock and order repositories plus an outbox-backed event
// bus to one serializable Postgres transaction.
type UnitOfWork struct {
	db *DB
}

func NewUnitOfWork(db *DB) UnitOfWork {
	if db == nil {
		panic("db is nil")
	}
	return UnitOfWork{
		db: db,
	}
}

// Do runs fn inside a serializable transaction. Serialization failures
// and deadlocks are retried from the top; when the attempts run out the
// caller gets orders.ErrConflict.
func (u UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, r orders.Repositories) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = u.doOnce(ctx, fn)
		if err == nil || !isErrorSerialization(err) {
			return err
		}
	}

	return fmt.Errorf("%w: %s", orders.ErrConflict, err)
}

func (u UnitOfWork) doOnce(ctx context.Context, fn func(ctx context.Context, r orders.Repositories) error) (err error) {
	tx, err := u.db.Conn.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			if rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				err = errors.Join(err, rollbackErr)
			}
			return
		}
		err = tx.Commit()
	}()

	outboxPublisher, err := outbox.NewPublisherForDb(ctx, tx)
	if err != nil {
		return fmt.Errorf("could not create outbox publisher: %w", err)
	}

	return fn(ctx, orders.Repositories{
		Catalog: NewProductRepository(u.db).withTx(tx),
		Stock:   NewStockRepository(u.db).withTx(tx),
		Orders:  NewOrderRepository(u.db).withTx(tx),
		Bus:     event.NewBus(outboxPublisher),
	})
}
