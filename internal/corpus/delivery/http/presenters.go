package http

import (
	"sort"

	"aegis-srv/internal/corpus"
	"aegis-srv/internal/model"
	"aegis-srv/pkg/paginator"
)

type listEntitiesReq struct {
	Query    string `form:"query"`
	Platform string `form:"platform"`
	Hashtag  string `form:"hashtag"`
	paginator.PaginateQuery
}

func (r listEntitiesReq) toInput() corpus.ListInput {
	return corpus.ListInput{
		Query:    r.Query,
		Platform: model.Platform(r.Platform),
		Hashtag:  r.Hashtag,
		Paging:   r.PaginateQuery,
	}
}

type replaceCorpusReq struct {
	Entities []model.Entity `json:"entities" binding:"required"`
}

func (r replaceCorpusReq) toInput() corpus.ReplaceInput {
	return corpus.ReplaceInput{Entities: r.Entities}
}

type importCorpusReq struct {
	Format string
	Data   []byte
}

func (r importCorpusReq) toInput() corpus.ImportInput {
	return corpus.ImportInput{Format: r.Format, Data: r.Data}
}

type listEntitiesResp struct {
	Entities  []model.Entity              `json:"entities"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type platformCountResp struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

type statsResp struct {
	Source         string              `json:"source"`
	Entities       int                 `json:"entities"`
	MediaCount     int                 `json:"media_count"`
	HighEngagement int                 `json:"high_engagement"`
	Followers      int64               `json:"followers"`
	Platforms      []platformCountResp `json:"platforms"`
}

func (h *handler) newListEntitiesResp(o corpus.ListOutput) listEntitiesResp {
	entities := o.Entities
	if entities == nil {
		entities = []model.Entity{}
	}
	return listEntitiesResp{
		Entities:  entities,
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newStatsResp(s corpus.Stats) statsResp {
	platforms := make([]platformCountResp, 0, len(s.Platforms))
	for p, n := range s.Platforms {
		platforms = append(platforms, platformCountResp{Platform: string(p), Count: n})
	}
	sort.Slice(platforms, func(i, j int) bool {
		if platforms[i].Count != platforms[j].Count {
			return platforms[i].Count > platforms[j].Count
		}
		return platforms[i].Platform < platforms[j].Platform
	})
	return statsResp{
		Source:         string(s.Source),
		Entities:       s.Entities,
		MediaCount:     s.MediaCount,
		HighEngagement: s.HighEngagement,
		Followers:      s.Followers,
		Platforms:      platforms,
	}
}
