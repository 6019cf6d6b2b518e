package command

import (
	"context"
	"time"

	"kiosk/entities"
)

type OrderRepository interface {
	FindOrdersBy(ctx context.Context, from, to time.Time, status entities.OrderStatus) ([]entities.Order, error)
}

type MailService interface {
	Send(ctx context.Context, request entities.MailRequest) error
}

type Handler struct {
	ordersRepo  OrderRepository
	mailService MailService
	senderEmail string
}

func NewHandler(ordersRepo OrderRepository, mailService MailService, senderEmail string) Handler {
	if ordersRepo == nil {
		panic("ordersRepo is required")
	}
	if mailService == nil {
		panic("mailService is required")
	}

	return Handler{
		ordersRepo:  ordersRepo,
		mailService: mailService,
		senderEmail: senderEmail,
	}
}
