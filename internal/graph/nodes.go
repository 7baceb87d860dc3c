package graph

import (
	"fmt"
	"net/url"
)

// CreateNode posts a new node with the given properties and returns the
// store's representation of it. The caller is responsible for labeling;
// a freshly created node carries no label.
func (c *Client) CreateNode(props map[string]any) (*Node, error) {
	var raw map[string]any
	if err := c.postJSON("node", props, &raw); err != nil {
		return nil, err
	}
	return newNode(raw)
}

// AddLabel attaches a label to a node through its node-scoped labels
// action. The body is the bare label string.
func (c *Client) AddLabel(n *Node, label string) error {
	target, ok := n.Action("labels")
	if !ok {
		return fmt.Errorf("node %s has no labels action", n.Self)
	}
	return c.postJSON(target, label, nil)
}

// FindByExternalID searches the label-scoped node listing for nodes
// whose externalId property equals id. The identifier is quoted as a
// JSON string literal in the query parameter, which is how the store
// expects property values. Returns an empty slice when nothing matches.
func (c *Client) FindByExternalID(label, id string) ([]*Node, error) {
	params := url.Values{}
	params.Set(indexProperty, `"`+id+`"`)

	var raw []map[string]any
	target := "label/" + url.PathEscape(label) + "/nodes"
	if err := c.getJSON(target, params, &raw); err != nil {
		return nil, err
	}

	nodes := make([]*Node, 0, len(raw))
	for _, doc := range raw {
		n, err := newNode(doc)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// CreateRelationship records a typed edge from one node to another via
// the from-node's create_relationship action.
func (c *Client) CreateRelationship(from *Node, relType string, to *Node) error {
	target, ok := from.Action("create_relationship")
	if !ok {
		return fmt.Errorf("node %s has no create_relationship action", from.Self)
	}
	body := map[string]any{"to": to.Self, "type": relType}
	return c.postJSON(target, body, nil)
}
