package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"aegis-srv/internal/model"
	scanKafka "aegis-srv/internal/scan/delivery/kafka"
)

// handleScanCompletedMessage validates the event and delegates to the report usecase.
// Malformed messages are skipped; a usecase failure leaves the message unmarked.
func (c *consumer) handleScanCompletedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	topic := c.topic()

	var message scanKafka.ScanCompletedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleScanCompletedMessage: invalid message format (skipping): %v", err)
		c.metrics.ObserveEvent(topic, "invalid")
		return nil
	}
	if message.ScanID == "" {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleScanCompletedMessage: missing scan_id (skipping)")
		c.metrics.ObserveEvent(topic, "invalid")
		return nil
	}

	prefs, err := c.settings.Get(ctx)
	if err != nil {
		c.metrics.ObserveEvent(topic, "error")
		return fmt.Errorf("load settings: %w", err)
	}
	if !prefs.AutoReport {
		c.l.Debugf(ctx, "report.delivery.kafka.consumer.handleScanCompletedMessage: auto report disabled, skipping %s", message.ScanID)
		c.metrics.ObserveEvent(topic, "skipped")
		return nil
	}

	var errs []error
	for _, kind := range reportKinds(model.ScanMode(message.Mode)) {
		out, err := c.uc.Generate(ctx, toGenerateInput(message, kind))
		if err != nil {
			c.l.Errorf(ctx, "report.delivery.kafka.consumer.handleScanCompletedMessage: Generate %s for %s failed: %v", kind, message.ScanID, err)
			errs = append(errs, err)
			continue
		}
		c.l.Infof(ctx, "report.delivery.kafka.consumer.handleScanCompletedMessage: %s report %s for %s: %s", kind, out.ReportID, message.ScanID, out.Status)
	}
	if err := errors.Join(errs...); err != nil {
		c.metrics.ObserveEvent(topic, "error")
		return fmt.Errorf("usecase error: %w", err)
	}

	c.metrics.ObserveEvent(topic, "consumed")
	return nil
}
