// Package graph is the client for the relationship store: a graph
// database reached over a JSON REST API that advertises its endpoints
// through a hypermedia root document.
//
// The client resolves symbolic action names ("node", "indexes", ...) to
// concrete URLs discovered once from the root document, serializes
// request bodies to JSON with graph-store timestamp encoding, and
// defaults the usual headers. Failures surface as *RequestError with no
// retries; callers decide what is fatal.
package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Client issues requests against one graph store. The memoized action
// map and indexed-label set are per-instance caches; never share a
// Client between different backing stores.
//
// A Client expects a single in-flight operation at a time, matching the
// one-user console workflow. There is no internal locking.
type Client struct {
	base *url.URL
	http *http.Client
	log  *log.Logger

	actions map[string]string
	indexed map[string]struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the graph store rooted at baseURL. A missing
// trailing slash is appended so relative joins are well-defined.
func New(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing graph store URL: %w", err)
	}

	c := &Client{
		base:    base,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log.New(io.Discard),
		indexed: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Actions returns the hypermedia action map from the store's root
// document. The document is fetched once and memoized for the client's
// lifetime; string-valued entries become action links.
func (c *Client) Actions() (map[string]string, error) {
	if c.actions != nil {
		return c.actions, nil
	}

	var doc map[string]any
	if err := c.getJSON("", nil, &doc); err != nil {
		return nil, err
	}

	actions := make(map[string]string, len(doc))
	for name, v := range doc {
		if link, ok := v.(string); ok {
			actions[name] = link
		}
	}
	c.actions = actions
	return actions, nil
}

// resolve maps a request target to an absolute URL. A target matching a
// known action name is replaced by its resolved link; anything else is
// treated as a literal URL and joined against the base. The empty
// target addresses the root document itself and skips action lookup.
func (c *Client) resolve(target string) (*url.URL, error) {
	if target == "" {
		return c.base, nil
	}

	actions, err := c.Actions()
	if err != nil {
		return nil, err
	}
	if link, ok := actions[target]; ok {
		target = link
	}

	ref, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("bad request target %q: %w", target, err)
	}
	return c.base.ResolveReference(ref), nil
}

// do runs one request through the fixed pipeline: action resolution,
// base-URL join, JSON body encoding, then header defaults.
func (c *Client) do(method, target string, params url.Values, body any, headers http.Header) (*http.Response, error) {
	endpoint, err := c.resolve(target)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		endpoint = cloneWithQuery(endpoint, params)
	}

	hdr := make(http.Header, len(headers)+2)
	for k, values := range headers {
		for _, v := range values {
			hdr.Add(k, v)
		}
	}

	var payload io.Reader
	if body != nil {
		contentType := hdr.Get("Content-Type")
		isJSON := true
		if contentType != "" {
			isJSON = subtypeIsJSON(contentType)
		} else {
			hdr.Set("Content-Type", "application/json; charset=utf-8")
		}

		if isJSON {
			encoded, err := encodeBody(body)
			if err != nil {
				return nil, fmt.Errorf("encoding request body: %w", err)
			}
			payload = bytes.NewReader(encoded)
		} else {
			switch raw := body.(type) {
			case []byte:
				payload = bytes.NewReader(raw)
			case string:
				payload = strings.NewReader(raw)
			case io.Reader:
				payload = raw
			default:
				return nil, fmt.Errorf("non-JSON body must be raw bytes, got %T", body)
			}
		}
	}

	if hdr.Get("Accept") == "" {
		hdr.Set("Accept", "application/json")
	}

	req, err := http.NewRequest(method, endpoint.String(), payload)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header = hdr

	c.log.Debug("graph request", "method", method, "url", endpoint.String())
	return c.http.Do(req)
}

// doJSON runs a request and decodes a JSON response into out. A non-2xx
// status becomes a *RequestError; out may be nil to discard the body.
func (c *Client) doJSON(method, target string, params url.Values, body, out any) error {
	resp, err := c.do(method, target, params, body, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding graph response: %w", err)
	}
	return nil
}

func (c *Client) getJSON(target string, params url.Values, out any) error {
	return c.doJSON(http.MethodGet, target, params, nil, out)
}

func (c *Client) postJSON(target string, body, out any) error {
	return c.doJSON(http.MethodPost, target, nil, body, out)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &RequestError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	}
}

// subtypeIsJSON reports whether a content type's media subtype ends in
// "json", covering vendor types like application/vnd.acme+json.
func subtypeIsJSON(contentType string) bool {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.HasSuffix(strings.TrimSpace(mediaType), "json")
}

func cloneWithQuery(u *url.URL, params url.Values) *url.URL {
	clone := *u
	q := clone.Query()
	for k, values := range params {
		for _, v := range values {
			q.Add(k, v)
		}
	}
	clone.RawQuery = q.Encode()
	return &clone
}
