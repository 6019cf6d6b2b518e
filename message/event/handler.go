package event

import (
	"context"

	"kiosk/entities"
)

type MailService interface {
	Send(ctx context.Context, request entities.MailRequest) error
}

type EventsRepository interface {
	Create(ctx context.Context, event entities.Event) error
}

type Handler struct {
	mailService MailService
	eventsRepo  EventsRepository
	senderEmail string
	opsEmail    string
}

func NewHandler(
	mailService MailService,
	eventsRepo EventsRepository,
	senderEmail string,
	opsEmail string,
) Handler {
	if mailService == nil {
		panic("missing mailService")
	}
	if eventsRepo == nil {
		panic("missing eventsRepo")
	}

	return Handler{
		mailService: mailService,
		eventsRepo:  eventsRepo,
		senderEmail: senderEmail,
		opsEmail:    opsEmail,
	}
}
