package service

import (
	"context"

	"kiosk/db"
	kioskHttp "kiosk/http"
	"kiosk/mail"
	"kiosk/message"
	"kiosk/message/command"
	"kiosk/message/event"
	"kiosk/message/outbox"
	"kiosk/orders"
	"kiosk/products"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Service struct {
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
}

func New(
	redisClient *redis.Client,
	mailSender mail.Sender,
	conn db.DB,
	senderEmail string,
	opsEmail string,
) Service {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	var redisPublisher watermillMessage.Publisher
	redisPublisher = message.NewRedisPublisher(redisClient, watermillLogger)
	redisPublisher = log.CorrelationPublisherDecorator{Publisher: redisPublisher}

	eventBus := event.NewBus(redisPublisher)
	commandBus := command.NewCommandBus(redisPublisher)

	productRepo := db.NewProductRepository(&conn)
	stockRepo := db.NewStockRepository(&conn)
	orderRepo := db.NewOrderRepository(&conn)
	mailHistoryRepo := db.NewMailHistoryRepository(&conn)
	eventsRepo := db.NewEventsRepository(&conn)
	opsReadModel := db.NewOpsOrderReadModel(&conn, eventBus)

	mailService := mail.NewService(mailSender, mailHistoryRepo)
	orderService := orders.NewOrderService(db.NewUnitOfWork(&conn))
	productService := products.NewProductService(productRepo)

	eventsHandler := event.NewHandler(mailService, eventsRepo, senderEmail, opsEmail)
	commandsHandler := command.NewHandler(orderRepo, mailService, senderEmail)

	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)
	commandProcessorConfig := command.NewCommandProcessorConfig(redisClient, watermillLogger)

	pgSubscriber := outbox.SubscribeForPGMessages(conn.Conn, watermillLogger)
	watermillRouter := message.NewWatermillRouter(
		pgSubscriber,
		redisPublisher,
		eventProcessorConfig,
		commandProcessorConfig,
		eventsHandler,
		commandsHandler,
		opsReadModel,
		watermillLogger,
	)

	echoRouter := kioskHttp.NewHttpRouter(
		commandBus,
		orderService,
		productService,
		stockRepo,
		opsReadModel,
	)

	return Service{
		watermillRouter,
		echoRouter,
	}
}

func (s Service) Run(
	ctx context.Context,
) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		// the HTTP server must not report healthy before the router consumes messages
		<-s.watermillRouter.Running()

		return s.echoRouter.Start(":8080")
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
