//go:build !integration

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlint/flowlint/pkg/graph"
	"github.com/flowlint/flowlint/pkg/lint"
)

var testCtx = lint.CheckContext{Path: "/p/workflows/wf.yml"}

func runGraphCheck(t *testing.T, check lint.GraphCheck, g *graph.Graph) []lint.Finding {
	t.Helper()
	return check.Run(g, testCtx)
}

func TestMissingTrigger(t *testing.T) {
	withTrigger := &graph.Graph{Nodes: []*graph.Node{
		{ID: "a", Type: "trigger.webhook"},
		{ID: "b", Type: "http.request"},
	}}
	assert.Empty(t, runGraphCheck(t, missingTrigger(), withTrigger))

	without := &graph.Graph{Nodes: []*graph.Node{
		{ID: "b", Type: "http.request"},
	}}
	findings := runGraphCheck(t, missingTrigger(), without)
	require.Len(t, findings, 1)
	assert.Equal(t, RuleMissingTrigger, findings[0].Rule)
	assert.Equal(t, lint.SeverityMust, findings[0].Severity)
	assert.Equal(t, testCtx.Path, findings[0].Path)
}

func TestDuplicateNodeName(t *testing.T) {
	g := &graph.Graph{Nodes: []*graph.Node{
		{ID: "a", Name: "Fetch", Type: "http.request", Line: 3},
		{ID: "b", Name: "Fetch", Type: "http.request", Line: 7},
		{ID: "c", Name: "Store", Type: "data.set"},
	}}
	findings := runGraphCheck(t, duplicateNodeName(), g)
	require.Len(t, findings, 1)
	assert.Equal(t, "b", findings[0].NodeID)
	assert.Equal(t, 7, findings[0].Line)
	assert.Contains(t, findings[0].Detail, `"a"`)
}

func TestInvalidNodeType(t *testing.T) {
	g := &graph.Graph{Nodes: []*graph.Node{
		{ID: "ok", Type: "trigger.webhook"},
		{ID: "bad1", Type: "HttpRequest"},
		{ID: "bad2", Type: "http"},
	}}
	findings := runGraphCheck(t, invalidNodeType(), g)
	require.Len(t, findings, 2)
	assert.Equal(t, "bad1", findings[0].NodeID)
	assert.Equal(t, "bad2", findings[1].NodeID)
}

func TestDanglingConnection(t *testing.T) {
	g := &graph.Graph{
		Nodes: []*graph.Node{{ID: "a", Type: "trigger.manual"}},
		Edges: []*graph.Edge{{From: "a", To: "ghost"}},
	}
	findings := runGraphCheck(t, danglingConnection(), g)
	require.Len(t, findings, 1)
	assert.Equal(t, "ghost", findings[0].NodeID)
	assert.Equal(t, lint.SeverityMust, findings[0].Severity)
}

func TestOrphanNode(t *testing.T) {
	g := &graph.Graph{
		Nodes: []*graph.Node{
			{ID: "a", Type: "trigger.manual"},
			{ID: "b", Type: "http.request"},
			{ID: "lonely", Type: "data.set"},
		},
		Edges: []*graph.Edge{{From: "a", To: "b"}},
	}
	findings := runGraphCheck(t, orphanNode(), g)
	require.Len(t, findings, 1)
	assert.Equal(t, "lonely", findings[0].NodeID)
	assert.Equal(t, lint.SeverityShould, findings[0].Severity)

	// A single-node workflow is not an orphan.
	single := &graph.Graph{Nodes: []*graph.Node{{ID: "a", Type: "trigger.manual"}}}
	assert.Empty(t, runGraphCheck(t, orphanNode(), single))
}

func TestMissingErrorBranch(t *testing.T) {
	handled := &graph.Graph{
		Nodes: []*graph.Node{
			{ID: "fetch", Type: "http.request"},
			{ID: "recover", Type: "data.set"},
		},
		Edges: []*graph.Edge{{From: "fetch", To: "recover", Branch: "error"}},
	}
	assert.Empty(t, runGraphCheck(t, missingErrorBranch(), handled))

	unhandled := &graph.Graph{
		Nodes: []*graph.Node{
			{ID: "fetch", Type: "http.request"},
			{ID: "next", Type: "data.set"},
		},
		Edges: []*graph.Edge{{From: "fetch", To: "next", Branch: "main"}},
	}
	findings := runGraphCheck(t, missingErrorBranch(), unhandled)
	require.Len(t, findings, 1)
	assert.Equal(t, lint.SeverityNit, findings[0].Severity)
	assert.Equal(t, "fetch", findings[0].NodeID)
}
