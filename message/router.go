package message

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"kiosk/db"
	"kiosk/message/command"
	"kiosk/message/event"
	"kiosk/message/outbox"
)

func NewWatermillRouter(
	pgSubscriber message.Subscriber,
	redisPublisher message.Publisher,
	eventProcessorConfig cqrs.EventProcessorConfig,
	commandProcessorConfig cqrs.CommandProcessorConfig,
	eventHandler event.Handler,
	commandHandler command.Handler,
	opsReadModel db.OpsOrderReadModel,
	watermillLogger watermill.LoggerAdapter,
) *message.Router {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		panic(err)
	}

	useMiddlewares(router, watermillLogger)

	_, err = outbox.NewForwarder(pgSubscriber, redisPublisher, watermillLogger, router)
	if err != nil {
		panic(err)
	}

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		panic(err)
	}

	commandProcessor, err := cqrs.NewCommandProcessorWithConfig(router, commandProcessorConfig)
	if err != nil {
		panic(err)
	}

	err = commandProcessor.AddHandlers(
		cqrs.NewCommandHandler(
			"SendOrderStatistics",
			commandHandler.SendOrderStatistics,
		),
	)
	if err != nil {
		panic(err)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler(
			"ArchiveOrderPlaced",
			eventHandler.ArchiveOrderPlaced,
		),
		cqrs.NewEventHandler(
			"ArchiveStockDepleted",
			eventHandler.ArchiveStockDepleted,
		),
		cqrs.NewEventHandler(
			"NotifyStockDepleted",
			eventHandler.NotifyStockDepleted,
		),
		cqrs.NewEventHandler(
			"UpdateOpsOrderReadModel",
			opsReadModel.OnOrderPlaced,
		),
	)
	if err != nil {
		panic(err)
	}

	return router
}
