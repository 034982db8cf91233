package usecase

import (
	"strings"

	"aegis-srv/internal/corpus"
	"aegis-srv/internal/model"
)

func filterEntities(entities []model.Entity, input corpus.ListInput) []model.Entity {
	query := strings.ToLower(strings.TrimSpace(input.Query))
	hashtag := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(input.Hashtag), "#"))

	out := make([]model.Entity, 0, len(entities))
	for _, e := range entities {
		if input.Platform != "" && !strings.EqualFold(string(e.Platform), string(input.Platform)) {
			continue
		}
		if query != "" && !strings.Contains(e.SearchText(), query) {
			continue
		}
		if hashtag != "" && !hasHashtag(e, hashtag) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func hasHashtag(e model.Entity, tag string) bool {
	for _, h := range strings.Split(e.Hashtags, ",") {
		if strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "#")) == tag {
			return true
		}
	}
	return false
}

func buildStats(entities []model.Entity, source corpus.Source) corpus.Stats {
	stats := corpus.Stats{
		Source:    source,
		Entities:  len(entities),
		Platforms: make(map[model.Platform]int),
	}
	for _, e := range entities {
		stats.MediaCount += len(e.Pictures) + len(e.Videos)
		stats.Followers += int64(e.Followers)
		stats.Platforms[e.Platform]++
		if e.Engagement == model.EngagementHigh {
			stats.HighEngagement++
		}
	}
	return stats
}
