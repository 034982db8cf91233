package consumer

import (
	"context"

	scanKafka "aegis-srv/internal/scan/delivery/kafka"
)

// ConsumeScanCompleted joins the auto-report group and consumes in the background until ctx ends.
func (c *consumer) ConsumeScanCompleted(ctx context.Context) error {
	groupID := c.kafkaConfig.GroupID
	if groupID == "" {
		groupID = scanKafka.ConsumerGroupAutoReport
	}

	group, err := c.createConsumerGroup(groupID)
	if err != nil {
		return err
	}
	c.scanCompletedGroup = group

	handler := &scanCompletedHandler{consumer: c}

	go func() {
		if err := group.ConsumeWithContext(ctx, []string{c.topic()}, handler); err != nil {
			c.l.Errorf(ctx, "report.delivery.kafka.consumer.ConsumeScanCompleted: consumer stopped: %v", err)
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "report.delivery.kafka.consumer.ConsumeScanCompleted: group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s as %s", c.topic(), groupID)
	return nil
}

func (c *consumer) topic() string {
	if c.kafkaConfig.Topic != "" {
		return c.kafkaConfig.Topic
	}
	return scanKafka.TopicScanCompleted
}
