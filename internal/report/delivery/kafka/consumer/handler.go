package consumer

import (
	"github.com/IBM/sarama"
)

type scanCompletedHandler struct {
	consumer *consumer
}

func (h *scanCompletedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *scanCompletedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks every message, including failed ones. A failure is logged and
// counted, and the offset moves on: auto reporting is best effort and the operator
// can still generate the report by hand.
func (h *scanCompletedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for msg := range claim.Messages() {
		if err := h.consumer.handleScanCompletedMessage(ctx, msg); err != nil {
			h.consumer.l.Errorf(ctx, "report.delivery.kafka.consumer.ConsumeClaim: dropping scan completed message at offset %d: %v", msg.Offset, err)
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
