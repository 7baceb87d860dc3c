package graph

import "testing"

func sampleWireNode() map[string]any {
	return map[string]any{
		"self":                "http://graph/node/42",
		"labels":              "http://graph/node/42/labels",
		"create_relationship": "http://graph/node/42/relationships",
		"data": map[string]any{
			"externalId": "abc123",
			"name":       "Ada",
		},
	}
}

func TestNewNode(t *testing.T) {
	n, err := newNode(sampleWireNode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Self != "http://graph/node/42" {
		t.Errorf("self = %q", n.Self)
	}
	if n.ExternalID() != "abc123" {
		t.Errorf("externalId = %q", n.ExternalID())
	}
	if v, ok := n.Property("name"); !ok || v != "Ada" {
		t.Errorf("name property = %v, %v", v, ok)
	}
}

func TestNewNode_ActionLinks(t *testing.T) {
	n, err := newNode(sampleWireNode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if link, ok := n.Action("labels"); !ok || link != "http://graph/node/42/labels" {
		t.Errorf("labels action = %q, %v", link, ok)
	}
	// self is itself an action link; data is not
	if _, ok := n.Action("self"); !ok {
		t.Error("self should be available as an action link")
	}
	if _, ok := n.Action("data"); ok {
		t.Error("data must not appear among action links")
	}
}

func TestNewNode_MissingSelf(t *testing.T) {
	_, err := newNode(map[string]any{"data": map[string]any{}})
	if err == nil {
		t.Fatal("expected error for response without self link")
	}
}
