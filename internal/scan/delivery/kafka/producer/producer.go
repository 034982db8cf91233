package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"aegis-srv/internal/scan"
	kafkaDelivery "aegis-srv/internal/scan/delivery/kafka"
)

func (p *implProducer) PublishScanCompleted(ctx context.Context, event scan.ScanCompletedEvent) error {
	msg := kafkaDelivery.ScanCompletedMessage{
		ScanID:      event.ScanID,
		Mode:        string(event.Mode),
		Source:      string(event.Source),
		Matched:     event.Matched,
		Flagged:     event.Flagged,
		Piracy:      event.Piracy,
		CompletedAt: event.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal scan completed event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.ScanID), body); err != nil {
		return fmt.Errorf("failed to publish scan completed event: %w", err)
	}

	p.l.Infof(ctx, "scan.delivery.kafka.producer.PublishScanCompleted: published %s (mode=%s)", event.ScanID, event.Mode)
	return nil
}
