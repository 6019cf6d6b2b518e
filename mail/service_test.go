package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiosk/entities"
)

type senderMock struct {
	sent []entities.MailRequest
	err  error
}

func (m *senderMock) SendMail(ctx context.Context, request entities.MailRequest) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, request)
	return nil
}

type historyMock struct {
	saved []entities.MailSendHistory
}

func (m *historyMock) Create(ctx context.Context, history entities.MailSendHistory) error {
	m.saved = append(m.saved, history)
	return nil
}

func TestSendRecordsHistory(t *testing.T) {
	sender := &senderMock{}
	history := &historyMock{}
	service := NewService(sender, history)

	err := service.Send(context.Background(), entities.MailRequest{
		From:    "no-reply@kiosk.local",
		To:      "ops@kiosk.local",
		Subject: "subject",
		Content: "content",
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	require.Len(t, history.saved, 1)
	assert.Equal(t, "ops@kiosk.local", history.saved[0].ToEmail)
	assert.Equal(t, "subject", history.saved[0].Subject)
}

func TestSendFailureSkipsHistory(t *testing.T) {
	sender := &senderMock{err: errors.New("gateway down")}
	history := &historyMock{}
	service := NewService(sender, history)

	err := service.Send(context.Background(), entities.MailRequest{To: "ops@kiosk.local"})
	assert.Error(t, err)
	assert.Empty(t, history.saved)
}
