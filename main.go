package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"

	"kiosk/api"
	"kiosk/db"
	"kiosk/message"
	"kiosk/service"
	observability "kiosk/trace"
)

func main() {
	log.Init(logrus.InfoLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	tp := observability.ConfigureTraceProvider()
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	conn, err := db.NewDBConn(os.Getenv("POSTGRES_URL"))
	if err != nil {
		panic(err)
	}
	defer conn.Close()
	conn.MigrateSchema()

	redisClient := message.NewRedisClient(os.Getenv("REDIS_ADDR"))
	defer redisClient.Close()

	mailClient := api.NewMailClient(os.Getenv("MAIL_GATEWAY_ADDR"))

	svc := service.New(
		redisClient,
		mailClient,
		conn,
		os.Getenv("SENDER_MAIL_ADDRESS"),
		os.Getenv("OPS_MAIL_ADDRESS"),
	)

	err = svc.Run(ctx)
	if err != nil {
		panic(err)
	}
}
