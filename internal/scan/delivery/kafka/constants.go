package kafka

const (
	// TopicScanCompleted carries one message per stored scan result.
	TopicScanCompleted = "aegis.scan.completed"

	// ConsumerGroupAutoReport is the group of the auto-report worker.
	ConsumerGroupAutoReport = "aegis-consumer-auto-report"
)
