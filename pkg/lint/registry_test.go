//go:build !integration

package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlint/flowlint/pkg/graph"
)

func testGraph() *graph.Graph {
	return &graph.Graph{
		Name:  "test",
		Nodes: []*graph.Node{{ID: "a", Type: "trigger.manual"}},
	}
}

func TestRunGraphChecksOrder(t *testing.T) {
	r := NewRegistry()
	r.AddGraphCheck(GraphCheck{Rule: "first", Run: func(g *graph.Graph, ctx CheckContext) []Finding {
		return []Finding{{Rule: "first", Severity: SeverityNit, Path: ctx.Path}}
	}})
	r.AddGraphCheck(GraphCheck{Rule: "second", Run: func(g *graph.Graph, ctx CheckContext) []Finding {
		return []Finding{{Rule: "second", Severity: SeverityNit, Path: ctx.Path}}
	}})

	findings := r.RunGraphChecks(testGraph(), CheckContext{Path: "/p/a.yml"})
	require.Len(t, findings, 2)
	assert.Equal(t, "first", findings[0].Rule)
	assert.Equal(t, "second", findings[1].Rule)
}

func TestGraphCheckIsolation(t *testing.T) {
	r := NewRegistry()
	r.AddGraphCheck(GraphCheck{Rule: "explosive", Run: func(g *graph.Graph, ctx CheckContext) []Finding {
		panic("boom")
	}})
	r.AddGraphCheck(GraphCheck{Rule: "survivor", Run: func(g *graph.Graph, ctx CheckContext) []Finding {
		return []Finding{{Rule: "survivor", Severity: SeverityMust, Path: ctx.Path}}
	}})

	findings := r.RunGraphChecks(testGraph(), CheckContext{Path: "/p/a.yml"})
	require.Len(t, findings, 2)

	sentinel := findings[0]
	assert.Equal(t, RuleGraphCheckFailure, sentinel.Rule)
	assert.Equal(t, SeverityNit, sentinel.Severity)
	assert.Contains(t, sentinel.Message, "explosive")
	assert.Contains(t, sentinel.Detail, "boom")

	assert.Equal(t, "survivor", findings[1].Rule)
}

func TestContentCheckIsolation(t *testing.T) {
	r := NewRegistry()
	r.AddContentCheck(ContentCheck{Rule: "explosive", Run: func(content, path string) []Finding {
		panic("bang")
	}})
	r.AddContentCheck(ContentCheck{Rule: "survivor", Run: func(content, path string) []Finding {
		return []Finding{{Rule: "survivor", Severity: SeverityShould, Path: path}}
	}})

	findings := r.RunContentChecks("text", "/p/a.yml")
	require.Len(t, findings, 2)
	assert.Equal(t, RuleContentCheckFailure, findings[0].Rule)
	assert.Equal(t, SeverityNit, findings[0].Severity)
	assert.Equal(t, "survivor", findings[1].Rule)
}

func TestProjectCheckIsolation(t *testing.T) {
	r := NewRegistry()
	r.AddProjectCheck(ProjectCheck{Rule: "explosive", Run: func(folder string) []Finding {
		panic("pow")
	}})
	r.AddProjectCheck(ProjectCheck{Rule: "survivor", Run: func(folder string) []Finding {
		return []Finding{{Rule: "survivor", Severity: SeverityMust, Path: folder}}
	}})

	findings := r.RunProjectChecks("/p")
	require.Len(t, findings, 2)
	assert.Equal(t, RuleProjectCheckFailure, findings[0].Rule)
	assert.Equal(t, SeverityNit, findings[0].Severity)
	assert.Equal(t, "/p", findings[0].Path)
	assert.Equal(t, "survivor", findings[1].Rule)
}

func TestEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.RunGraphChecks(testGraph(), CheckContext{Path: "/p/a.yml"}))
	assert.Empty(t, r.RunContentChecks("text", "/p/a.yml"))
	assert.Empty(t, r.RunProjectChecks("/p"))
}
