// Package storage is the gatekeeper to the two persistence engines:
// simple record attributes go to the embedded relational store, the
// relationships between records go to the graph store. Callers receive
// opaque identifiers from this layer; they may be compared for equality
// but must never be altered (manipulating case breaks lookups).
//
// There is no cross-store transaction. A failure partway through an
// operation can leave a record in one store and not the other; the
// identifiers are deterministic, so repeating the operation converges
// instead of duplicating.
package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/dave-shawley/massive-octo-dangerzone/internal/db"
	"github.com/dave-shawley/massive-octo-dangerzone/internal/graph"
	"github.com/dave-shawley/massive-octo-dangerzone/internal/identity"
)

// Layer stores and retrieves family-tree concepts.
type Layer struct {
	db    *db.DB
	graph *graph.Client
	log   *log.Logger
}

// Option configures a Layer.
type Option func(*Layer)

// WithLogger attaches a logger to the layer and its graph client.
func WithLogger(l *log.Logger) Option {
	return func(layer *Layer) { layer.log = l }
}

// Open builds a storage layer over the named relational store and the
// graph store at graphURL. The graph coordinates are always passed in
// explicitly; the layer has no default service location.
func Open(storeName, graphURL string, opts ...Option) (*Layer, error) {
	layer := &Layer{log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(layer)
	}

	client, err := graph.New(graphURL, graph.WithLogger(layer.log))
	if err != nil {
		return nil, err
	}

	database, err := db.Open(storeName)
	if err != nil {
		return nil, err
	}

	layer.db = database
	layer.graph = client
	return layer, nil
}

// Close releases the relational store.
func (l *Layer) Close() error {
	return l.db.Close()
}

// Database exposes the relational store.
func (l *Layer) Database() *db.DB {
	return l.db
}

// Graph exposes the graph-store client.
func (l *Layer) Graph() *graph.Client {
	return l.graph
}

// CreateObject creates a labeled object in the graph store, or returns
// the existing one: create-if-absent keyed by a deterministic
// identifier. An empty id means "derive it from the content" via
// identity.Hash; a non-empty id is used verbatim as externalId.
//
// A found match returns immediately with no side effects. Otherwise the
// node is created, labeled, and the label's externalId index is
// ensured, in that order. Any failure surfaces unmodified: a node that
// was created but not yet labeled (or labeled but not indexed) stays in
// the store; nothing is rolled back.
func (l *Layer) CreateObject(label string, data map[string]any, id string) (*graph.Node, error) {
	if id == "" {
		id = identity.Hash(label, data)
	}

	matches, err := l.graph.FindByExternalID(label, id)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		l.log.Debug("object already exists", "label", label, "id", id)
		return matches[0], nil
	}

	full := make(map[string]any, len(data)+1)
	for k, v := range data {
		full[k] = v
	}
	full["externalId"] = id

	node, err := l.graph.CreateNode(full)
	if err != nil {
		return nil, err
	}
	if err := l.graph.AddLabel(node, label); err != nil {
		return nil, err
	}
	if err := l.graph.EnsureIndexed(label); err != nil {
		return nil, err
	}

	l.log.Info("created object", "label", label, "id", id)
	return node, nil
}

// FindObject returns the labeled object with the given identifier, or
// nil when it does not exist.
func (l *Layer) FindObject(label, id string) (*graph.Node, error) {
	matches, err := l.graph.FindByExternalID(label, id)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// Relate records a familial relationship between two graph objects.
// Relationships live only in the graph store.
func (l *Layer) Relate(from *graph.Node, relation string, to *graph.Node) error {
	return l.graph.CreateRelationship(from, relation, to)
}
