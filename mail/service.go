package mail

import (
	"context"
	"fmt"
	"time"

	"kiosk/entities"
)

type Sender interface {
	SendMail(ctx context.Context, request entities.MailRequest) error
}

type HistoryRepository interface {
	Create(ctx context.Context, history entities.MailSendHistory) error
}

// Service sends mails through the gateway client and records a history
// row for every mail that went out.
type Service struct {
	sender  Sender
	history HistoryRepository
}

func NewService(sender Sender, history HistoryRepository) Service {
	if sender == nil {
		panic("sender is nil")
	}
	if history == nil {
		panic("history is nil")
	}
	return Service{
		sender:  sender,
		history: history,
	}
}

func (s Service) Send(ctx context.Context, request entities.MailRequest) error {
	if err := s.sender.SendMail(ctx, request); err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}

	err := s.history.Create(ctx, entities.MailSendHistory{
		FromEmail: request.From,
		ToEmail:   request.To,
		Subject:   request.Subject,
		Content:   request.Content,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("could not save mail history: %w", err)
	}

	return nil
}
