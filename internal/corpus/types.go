package corpus

import (
	"aegis-srv/internal/model"
	"aegis-srv/pkg/paginator"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Source tells whether the active corpus is the embedded seed or a stored override.
type Source string

const (
	SourceSeed     Source = "seed"
	SourceOverride Source = "override"
)

type ListInput struct {
	Query    string
	Platform model.Platform
	Hashtag  string
	Paging   paginator.PaginateQuery
}

type ListOutput struct {
	Entities  []model.Entity
	Paginator paginator.Paginator
}

type Stats struct {
	Source         Source
	Entities       int
	MediaCount     int
	HighEngagement int
	Followers      int64
	Platforms      map[model.Platform]int
}

type ReplaceInput struct {
	Entities []model.Entity
}

type ImportInput struct {
	Format string
	Data   []byte
}
