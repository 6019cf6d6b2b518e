package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"kiosk/entities"
)

func (h Handler) ArchiveOrderPlaced(ctx context.Context, event *entities.OrderPlaced_v1) error {
	log.FromContext(ctx).Info("Archiving order placed event")

	return h.archive(ctx, event.Header, "OrderPlaced_v1", event)
}

func (h Handler) ArchiveStockDepleted(ctx context.Context, event *entities.StockDepleted_v1) error {
	log.FromContext(ctx).Info("Archiving stock depleted event")

	return h.archive(ctx, event.Header, "StockDepleted_v1", event)
}

func (h Handler) archive(ctx context.Context, header entities.EventHeader, eventName string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", eventName, err)
	}

	return h.eventsRepo.Create(ctx, entities.Event{
		EventID:     header.ID,
		PublishedAt: header.PublishedAt,
		EventName:   eventName,
		Payload:     payload,
	})
}
