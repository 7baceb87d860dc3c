package graph

import "fmt"

// Node is a read-mostly view over one labeled record in the graph store.
// The wire form mixes data properties with hypermedia action links:
//
//	{"self": <url>, "data": {...}, "labels": <url>, ...}
//
// A Node keeps both: Data holds the properties (always including
// externalId) and the remaining string-valued entries become action
// links. Nodes are produced by the client; callers do not own the
// underlying remote resource and never mutate a Node locally.
type Node struct {
	Self    string
	Data    map[string]any
	actions map[string]string
}

// newNode builds a Node from a decoded response document.
func newNode(raw map[string]any) (*Node, error) {
	self, _ := raw["self"].(string)
	if self == "" {
		return nil, fmt.Errorf("graph response has no self link")
	}

	data := map[string]any{}
	if d, ok := raw["data"].(map[string]any); ok {
		data = d
	}

	actions := make(map[string]string)
	for k, v := range raw {
		if k == "data" {
			continue
		}
		if link, ok := v.(string); ok {
			actions[k] = link
		}
	}

	return &Node{Self: self, Data: data, actions: actions}, nil
}

// Action returns the URL for a named hypermedia action, e.g. "labels"
// or "create_relationship".
func (n *Node) Action(name string) (string, bool) {
	link, ok := n.actions[name]
	return link, ok
}

// Property retrieves one data property by name.
func (n *Node) Property(name string) (any, bool) {
	v, ok := n.Data[name]
	return v, ok
}

// ExternalID returns the node's stable identifier.
func (n *Node) ExternalID() string {
	id, _ := n.Data["externalId"].(string)
	return id
}
