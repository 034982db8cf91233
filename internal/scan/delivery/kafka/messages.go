package kafka

import (
	"time"
)

// ScanCompletedMessage is the payload of aegis.scan.completed.
type ScanCompletedMessage struct {
	ScanID      string    `json:"scan_id"`
	Mode        string    `json:"mode"`
	Source      string    `json:"source"`
	Matched     int       `json:"matched"`
	Flagged     int       `json:"flagged"`
	Piracy      int       `json:"piracy"`
	CompletedAt time.Time `json:"completed_at"`
}
