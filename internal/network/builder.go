// Package network builds the synthetic interaction graph shown for a scan.
package network

import (
	"aegis-srv/internal/model"
	"aegis-srv/internal/sampling"
)

const (
	DefaultMaxEdges = 15

	// attemptsPerEdge bounds the rejection sampling loop.
	attemptsPerEdge  = 3
	followersPerUnit = 10000
	nodeBaseValue    = 3
)

// Option configures a Builder.
type Option func(*Builder)

// WithMaxEdges caps the number of edges. Values below zero are treated as zero.
func WithMaxEdges(n int) Option {
	return func(b *Builder) {
		if n < 0 {
			n = 0
		}
		b.maxEdges = n
	}
}

// Builder turns a list of entities into a NetworkGraph.
type Builder struct {
	sampler  *sampling.Sampler
	maxEdges int
}

func New(s *sampling.Sampler, opts ...Option) *Builder {
	b := &Builder{sampler: s, maxEdges: DefaultMaxEdges}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type pair struct{ a, b int }

func key(x, y int) pair {
	if x > y {
		x, y = y, x
	}
	return pair{x, y}
}

// Build creates one node per entity and draws random edges without self loops
// or repeated unordered pairs. When the attempt budget runs out the edges found
// so far are returned.
func (b *Builder) Build(entities []model.Entity) model.NetworkGraph {
	n := len(entities)
	g := model.NetworkGraph{
		Nodes: make([]model.NetworkNode, 0, n),
		Edges: []model.NetworkEdge{},
	}
	for i, e := range entities {
		g.Nodes = append(g.Nodes, model.NetworkNode{
			ID:    i + 1,
			Label: "@" + e.Username,
			Value: e.Followers/followersPerUnit + b.sampler.IntRange(0, 4) + nodeBaseValue,
		})
	}

	target := EdgeTarget(n, b.maxEdges)
	seen := make(map[pair]struct{}, target)
	for attempts := 0; len(g.Edges) < target && attempts < target*attemptsPerEdge; attempts++ {
		from, to := b.sampler.Intn(n), b.sampler.Intn(n)
		if from == to {
			continue
		}
		k := key(from, to)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		g.Edges = append(g.Edges, model.NetworkEdge{
			From:  g.Nodes[from].ID,
			To:    g.Nodes[to].ID,
			Value: b.sampler.IntRange(1, 5),
		})
	}
	return g
}

// EdgeTarget is min(maxEdges, C(n,2), floor(1.5n)).
func EdgeTarget(n, maxEdges int) int {
	t := maxEdges
	if pairs := n * (n - 1) / 2; pairs < t {
		t = pairs
	}
	if spread := n * 3 / 2; spread < t {
		t = spread
	}
	if t < 0 {
		return 0
	}
	return t
}
