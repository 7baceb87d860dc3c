package graph

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// indexProperty is the property every label's uniqueness index covers.
const indexProperty = "externalId"

type indexEntry struct {
	Label        string   `json:"label"`
	PropertyKeys []string `json:"property_keys"`
}

// EnsureIndexed guarantees that label has an externalId index in the
// graph store so lookups by identifier stay cheap.
//
// The check-refresh-recheck-create sequence narrows the window where
// two writers race to create the same index, but cannot close it: the
// store has no atomic upsert for indexes. A conflict response from the
// create call therefore means another writer won the race and is
// treated as success.
func (c *Client) EnsureIndexed(label string) error {
	if _, ok := c.indexed[label]; ok {
		return nil
	}

	fresh, err := c.refreshIndexes()
	if err != nil {
		return err
	}
	c.indexed = fresh
	if _, ok := c.indexed[label]; ok {
		return nil
	}

	target, err := c.indexTarget(label)
	if err != nil {
		return err
	}
	body := map[string]any{"property_keys": []any{indexProperty}}
	if err := c.postJSON(target, body, nil); err != nil {
		var reqErr *RequestError
		if !errors.As(err, &reqErr) || reqErr.StatusCode != http.StatusConflict {
			return err
		}
		c.log.Debug("index already exists", "label", label)
	}

	c.indexed[label] = struct{}{}
	return nil
}

// refreshIndexes fetches the authoritative index list and returns the
// set of labels indexed on externalId.
func (c *Client) refreshIndexes() (map[string]struct{}, error) {
	var entries []indexEntry
	if err := c.getJSON("indexes", nil, &entries); err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if slices.Contains(entry.PropertyKeys, indexProperty) {
			known[entry.Label] = struct{}{}
		}
	}
	return known, nil
}

func (c *Client) indexTarget(label string) (string, error) {
	actions, err := c.Actions()
	if err != nil {
		return "", err
	}
	root, ok := actions["indexes"]
	if !ok {
		return "", fmt.Errorf("graph store advertises no indexes action")
	}
	return appendPath(root, label), nil
}

// appendPath safely appends escaped path segments to a URL stem.
func appendPath(root string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, strings.TrimSuffix(root, "/"))
	for _, segment := range segments {
		parts = append(parts, url.PathEscape(strings.Trim(segment, "/")))
	}
	return strings.Join(parts, "/")
}
