package api

import (
	"context"
	"sync"

	"kiosk/entities"
)

type MailMock struct {
	mock sync.Mutex

	SentMails []entities.MailRequest
}

func (c *MailMock) SendMail(ctx context.Context, request entities.MailRequest) error {
	c.mock.Lock()
	defer c.mock.Unlock()

	c.SentMails = append(c.SentMails, request)

	return nil
}
