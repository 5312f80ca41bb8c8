// Package graph models a workflow document as a directed graph of typed
// nodes and provides the YAML parser that produces it.
package graph

import (
	"strings"

	"github.com/flowlint/flowlint/pkg/constants"
)

// Node is a single step of a workflow.
type Node struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name,omitempty"`
	Type        string         `yaml:"type" json:"type"`
	Credentials string         `yaml:"credentials" json:"credentials,omitempty"`
	Params      map[string]any `yaml:"params" json:"params,omitempty"`

	// Line is the 1-based source line of the node's id, or 0 when unknown.
	Line int `yaml:"-" json:"line,omitempty"`
}

// IsTrigger reports whether the node can start a workflow.
func (n *Node) IsTrigger() bool {
	return strings.HasPrefix(n.Type, constants.TriggerTypePrefix)
}

// DisplayName returns the node name, falling back to its id.
func (n *Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Edge connects two nodes. Branch discriminates output ports, for example
// "main" versus "error".
type Edge struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Branch string `yaml:"branch" json:"branch,omitempty"`
}

// Graph is the parsed form of one workflow document. Checks read it; nothing
// in the linter mutates a Graph after parsing.
type Graph struct {
	Name  string  `yaml:"name" json:"name"`
	Nodes []*Node `yaml:"nodes" json:"nodes"`
	Edges []*Edge `yaml:"connections" json:"connections"`
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Inbound returns the edges ending at the given node id.
func (g *Graph) Inbound(id string) []*Edge {
	var edges []*Edge
	for _, e := range g.Edges {
		if e.To == id {
			edges = append(edges, e)
		}
	}
	return edges
}

// Outbound returns the edges starting at the given node id.
func (g *Graph) Outbound(id string) []*Edge {
	var edges []*Edge
	for _, e := range g.Edges {
		if e.From == id {
			edges = append(edges, e)
		}
	}
	return edges
}

// Connected reports whether the node participates in any edge.
func (g *Graph) Connected(id string) bool {
	for _, e := range g.Edges {
		if e.From == id || e.To == id {
			return true
		}
	}
	return false
}
