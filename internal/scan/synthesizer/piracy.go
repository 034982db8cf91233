package synthesizer

import (
	"strconv"
	"time"

	"aegis-srv/internal/model"
	"aegis-srv/internal/sampling"
)

const (
	piracyMin       = 3
	piracyMax       = 10
	piracyNoVidMax  = 5
	piracyBaseMatch = 95
	piracyStep      = 5
	piracyVariance  = 8
	piracyIDSuffix  = 5
	piracyLookback  = 30 * 24 * time.Hour
	piracyDateLabel = "2006-01-02"
)

// piracy lists matched entities with uploaded videos. Earlier items start from a higher base match.
func (s *Synthesizer) piracy(matched []model.Entity, now time.Time) []model.PiracyItem {
	var withVideos []model.Entity
	for _, e := range matched {
		if e.HasVideos() {
			withVideos = append(withVideos, e)
		}
	}

	var selected []model.Entity
	if len(withVideos) == 0 {
		selected = sampling.RandomSubset(s.sampler, matched, piracyMin, min(piracyNoVidMax, len(matched)))
	} else {
		count := min(len(withVideos), s.sampler.IntRange(piracyMin, piracyMax))
		selected = sampling.RandomSubset(s.sampler, withVideos, min(piracyMin, count), count)
	}

	out := make([]model.PiracyItem, 0, len(selected))
	for i, e := range selected {
		match := s.sampler.RandomMatch(piracyBaseMatch-i*piracyStep, piracyVariance)
		item := model.PiracyItem{
			ID:       "db_" + strconv.Itoa(e.ID) + "_" + s.sampler.Base36(piracyIDSuffix),
			Platform: e.Platform,
			Title:    e.Username + " content",
			Match:    match,
			Severity: sampling.RandomTieredLabel(s.sampler, sampling.SeverityTable(match)),
			URL:      ProfileURL(e),
		}
		if e.HasVideos() {
			item.Title = e.Videos[0].Name
			item.DetectedAt = e.Videos[0].UploadDate
		} else {
			ago := time.Duration(s.sampler.Float64() * float64(piracyLookback))
			item.DetectedAt = now.Add(-ago).Format(piracyDateLabel)
		}
		out = append(out, item)
	}
	return out
}
