package event

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"kiosk/entities"
)

// NotifyStockDepleted mails the ops team when the last unit of a
// product is sold, so it can be restocked or taken off display.
func (h Handler) NotifyStockDepleted(ctx context.Context, event *entities.StockDepleted_v1) error {
	log.FromContext(ctx).
		WithField("product_number", event.ProductNumber).
		Info("Stock depleted, notifying ops")

	return h.mailService.Send(ctx, entities.MailRequest{
		From:    h.senderEmail,
		To:      h.opsEmail,
		Subject: fmt.Sprintf("Stock depleted for product %s", event.ProductNumber),
		Content: fmt.Sprintf("Product %s is out of stock since %s.", event.ProductNumber, event.Header.PublishedAt.Format("2006-01-02 15:04:05")),
	})
}
