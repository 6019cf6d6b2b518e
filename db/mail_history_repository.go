package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"kiosk/entities"
)

type MailHistoryRepository struct {
	db *DB
}

func NewMailHistoryRepository(db *DB) MailHistoryRepository {
	if db == nil {
		panic("db is nil")
	}
	return MailHistoryRepository{
		db: db,
	}
}

func (r MailHistoryRepository) Create(ctx context.Context, history entities.MailSendHistory) error {
	_, err := sqlx.NamedExecContext(ctx, r.db.Conn, `
		INSERT INTO
		    mail_send_history (from_email, to_email, subject, content, sent_at)
		VALUES
		    (:from_email, :to_email, :subject, :content, :sent_at)
	`, history)
	if err != nil {
		return fmt.Errorf("could not save mail history: %w", err)
	}

	return nil
}
