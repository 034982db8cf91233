package synthesizer

import (
	"time"

	"aegis-srv/internal/model"
)

const timelineLabel = "15:04"

// timeline returns hourly buckets ending at now.
func (s *Synthesizer) timeline(now time.Time) []model.TimelinePoint {
	out := make([]model.TimelinePoint, timelineHours)
	for i := range out {
		at := now.Add(-time.Duration(timelineHours-i-1) * time.Hour)
		v := s.sampler.IntRange(20, 99) + s.sampler.IntRange(-20, 19)
		out[i] = model.TimelinePoint{Label: at.Format(timelineLabel), Value: max(5, v)}
	}
	return out
}
