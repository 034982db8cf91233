package network

import (
	"fmt"
	"testing"

	"aegis-srv/internal/model"
	"aegis-srv/internal/sampling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entities(n int) []model.Entity {
	out := make([]model.Entity, n)
	for i := range out {
		out[i] = model.Entity{ID: i + 1, Username: fmt.Sprintf("user_%d", i+1), Followers: (i + 1) * 25000}
	}
	return out
}

func TestBuild_NoSelfLoopsNoDuplicates(t *testing.T) {
	for n := 0; n <= 12; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				g := New(sampling.NewSeeded(seed)).Build(entities(n))

				require.Len(t, g.Nodes, n)
				assert.LessOrEqual(t, len(g.Edges), EdgeTarget(n, DefaultMaxEdges))
				assert.LessOrEqual(t, len(g.Edges), n*(n-1)/2)

				seen := map[[2]int]bool{}
				for _, e := range g.Edges {
					assert.NotEqual(t, e.From, e.To)
					k := [2]int{e.From, e.To}
					if k[0] > k[1] {
						k[0], k[1] = k[1], k[0]
					}
					assert.False(t, seen[k], "duplicate edge %v", k)
					seen[k] = true
					assert.GreaterOrEqual(t, e.Value, 1)
					assert.LessOrEqual(t, e.Value, 5)
				}
			}
		})
	}
}

func TestBuild_Nodes(t *testing.T) {
	g := New(sampling.NewSeeded(1)).Build(entities(3))

	for i, node := range g.Nodes {
		assert.Equal(t, i+1, node.ID)
		assert.Equal(t, fmt.Sprintf("@user_%d", i+1), node.Label)
		base := (i + 1) * 25000 / 10000
		assert.GreaterOrEqual(t, node.Value, base+3)
		assert.LessOrEqual(t, node.Value, base+7)
	}
}

func TestBuild_WithMaxEdges(t *testing.T) {
	g := New(sampling.NewSeeded(4), WithMaxEdges(2)).Build(entities(10))
	assert.LessOrEqual(t, len(g.Edges), 2)

	g = New(sampling.NewSeeded(4), WithMaxEdges(0)).Build(entities(10))
	assert.Empty(t, g.Edges)
}

func TestBuild_Reproducible(t *testing.T) {
	a := New(sampling.NewSeeded(99)).Build(entities(8))
	b := New(sampling.NewSeeded(99)).Build(entities(8))
	assert.Equal(t, a, b)
}

func TestEdgeTarget(t *testing.T) {
	tests := []struct {
		n, max, want int
	}{
		{0, 15, 0},
		{1, 15, 0},
		{2, 15, 1},
		{3, 15, 3},
		{4, 15, 6},
		{5, 15, 7},
		{10, 15, 15},
		{10, 4, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EdgeTarget(tt.n, tt.max), "n=%d max=%d", tt.n, tt.max)
	}
}
