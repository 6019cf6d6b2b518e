package command

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"kiosk/entities"
)

// SendOrderStatistics totals the payment-completed orders of one day
// and mails the summary to the requested address.
func (h Handler) SendOrderStatistics(ctx context.Context, cmd *entities.SendOrderStatistics) error {
	day, err := time.Parse("2006-01-02", cmd.Date)
	if err != nil {
		return fmt.Errorf("invalid statistics date %q: %w", cmd.Date, err)
	}

	orders, err := h.ordersRepo.FindOrdersBy(ctx, day, day.AddDate(0, 0, 1), entities.OrderStatusPaymentCompleted)
	if err != nil {
		return fmt.Errorf("could not get orders for %s: %w", cmd.Date, err)
	}

	totalAmount := 0
	for _, order := range orders {
		totalAmount += order.TotalPrice
	}

	log.FromContext(ctx).
		WithField("date", cmd.Date).
		WithField("total_amount", totalAmount).
		Info("Sending order statistics mail")

	return h.mailService.Send(ctx, entities.MailRequest{
		From:    h.senderEmail,
		To:      cmd.Email,
		Subject: fmt.Sprintf("Order statistics for %s", cmd.Date),
		Content: fmt.Sprintf("Total revenue on %s: %d (%d orders).", cmd.Date, totalAmount, len(orders)),
	})
}
