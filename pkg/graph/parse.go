package graph

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/flowlint/flowlint/pkg/logger"
)

var parseLog = logger.New("graph:parse")

// ParseError distinguishes malformed workflow input from I/O failures. The
// linter treats it as fatal to the file being validated, not to the run.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing workflow: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing workflow: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes a workflow document into a Graph. Malformed YAML and
// documents missing the required top-level structure fail with a *ParseError;
// the returned graph is structurally usable by every check (non-nil nodes,
// ids present).
func Parse(content []byte) (*Graph, error) {
	var g Graph
	if err := yaml.Unmarshal(content, &g); err != nil {
		parseLog.Printf("YAML decode failed: %v", err)
		return nil, &ParseError{Reason: "invalid YAML", Err: err}
	}

	if len(g.Nodes) == 0 {
		return nil, &ParseError{Reason: "workflow declares no nodes"}
	}
	for i, n := range g.Nodes {
		if n == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("node %d is empty", i)}
		}
		if n.ID == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("node %d has no id", i)}
		}
	}
	for i, e := range g.Edges {
		if e == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("connection %d is empty", i)}
		}
		if e.From == "" || e.To == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("connection %d is missing an endpoint", i)}
		}
	}

	annotateLines(&g, content)
	parseLog.Printf("Parsed workflow %q: %d nodes, %d connections", g.Name, len(g.Nodes), len(g.Edges))
	return &g, nil
}

// IsParseError reports whether err is a workflow parse failure.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// annotateLines records the source line of each node id. The decoder does not
// surface positions, so the raw text is scanned for the id declarations.
func annotateLines(g *Graph, content []byte) {
	byID := make(map[string]*Node, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, seen := byID[n.ID]; !seen {
			byID[n.ID] = n
		}
	}

	idPattern := regexp.MustCompile(`^\s*-?\s*id:\s*["']?([\w.-]+)["']?\s*$`)
	for i, line := range strings.Split(string(content), "\n") {
		m := idPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if n, ok := byID[m[1]]; ok && n.Line == 0 {
			n.Line = i + 1
		}
	}
}
