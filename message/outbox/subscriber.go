package outbox

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"
)

// SubscribeForPGMessages is the forwarder's source: it reads the order
// events the unit of work wrote to the outbox table. SubscribeInitialize
// creates the outbox and offsets tables, so it must run before the
// first order transaction.
func SubscribeForPGMessages(db *sqlx.DB, logger watermill.LoggerAdapter) message.Subscriber {
	sub, err := sql.NewSubscriber(db, sql.SubscriberConfig{
		SchemaAdapter:  sql.DefaultPostgreSQLSchema{},
		OffsetsAdapter: sql.DefaultPostgreSQLOffsetsAdapter{},
	}, logger)
	if err != nil {
		panic(err)
	}

	if err := sub.SubscribeInitialize(topic); err != nil {
		panic(err)
	}

	return sub
}
