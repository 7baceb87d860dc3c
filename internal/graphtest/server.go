// Package graphtest runs an in-process fake of the graph store's REST
// API for tests: hypermedia root document, node creation and labeling,
// label-scoped search, and schema index management.
package graphtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// NodeRecord is one node held by the fake store.
type NodeRecord struct {
	ID     int
	Data   map[string]any
	Labels []string
}

// Relationship is one edge recorded by the fake store.
type Relationship struct {
	FromID int
	Type   string
	To     string
}

// Server is a fake graph store. The zero-valued status overrides mean
// "behave normally"; set one to force that endpoint to fail.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	nodes         []*NodeRecord
	indexes       map[string][]string
	relationships []Relationship

	// request counters
	RootFetches      int
	LookupCalls      int
	CreateCalls      int
	LabelCalls       int
	IndexListCalls   int
	IndexCreateCalls int

	// forced failures
	LookupStatus      int
	CreateStatus      int
	LabelStatus       int
	IndexListStatus   int
	IndexCreateStatus int
}

// New starts a fake graph store. Callers own the shutdown via Close.
func New() *Server {
	s := &Server{indexes: make(map[string][]string)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /node", s.handleCreateNode)
	mux.HandleFunc("POST /node/{id}/labels", s.handleAddLabel)
	mux.HandleFunc("POST /node/{id}/relationships", s.handleCreateRelationship)
	mux.HandleFunc("GET /label/{label}/nodes", s.handleSearch)
	mux.HandleFunc("GET /schema/index", s.handleListIndexes)
	mux.HandleFunc("POST /schema/index/{label}", s.handleCreateIndex)

	s.Server = httptest.NewServer(mux)
	return s
}

// Nodes returns a snapshot of the stored nodes.
func (s *Server) Nodes() []*NodeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*NodeRecord, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Relationships returns a snapshot of the recorded edges.
func (s *Server) Relationships() []Relationship {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Relationship, len(s.relationships))
	copy(out, s.relationships)
	return out
}

// AddIndex seeds an existing index, as if another writer created it.
func (s *Server) AddIndex(label string, propertyKeys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexes[label] = propertyKeys
}

func (s *Server) nodeDocument(n *NodeRecord) map[string]any {
	self := fmt.Sprintf("%s/node/%d", s.URL, n.ID)
	return map[string]any{
		"self":                self,
		"data":                n.Data,
		"labels":              self + "/labels",
		"create_relationship": self + "/relationships",
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.RootFetches++
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"node":          s.URL + "/node",
		"node_labels":   s.URL + "/labels",
		"indexes":       s.URL + "/schema/index",
		"cypher":        s.URL + "/cypher",
		"neo4j_version": "2.0.3",
		"extensions":    map[string]any{},
	})
}

func (s *Server) handleCreateNode(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CreateCalls++
	if s.CreateStatus != 0 {
		http.Error(w, "create refused", s.CreateStatus)
		return
	}

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	node := &NodeRecord{ID: len(s.nodes) + 1, Data: data}
	s.nodes = append(s.nodes, node)
	writeJSON(w, http.StatusCreated, s.nodeDocument(node))
}

func (s *Server) handleAddLabel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LabelCalls++
	if s.LabelStatus != 0 {
		http.Error(w, "label refused", s.LabelStatus)
		return
	}

	node := s.findNode(r.PathValue("id"))
	if node == nil {
		http.Error(w, "no such node", http.StatusNotFound)
		return
	}

	var label string
	if err := json.NewDecoder(r.Body).Decode(&label); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	node.Labels = append(node.Labels, label)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateRelationship(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := s.findNode(r.PathValue("id"))
	if node == nil {
		http.Error(w, "no such node", http.StatusNotFound)
		return
	}

	var body struct {
		To   string `json:"to"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.relationships = append(s.relationships, Relationship{
		FromID: node.ID, Type: body.Type, To: body.To,
	})
	writeJSON(w, http.StatusCreated, map[string]any{
		"self": fmt.Sprintf("%s/relationship/%d", s.URL, len(s.relationships)),
		"type": body.Type,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LookupCalls++
	if s.LookupStatus != 0 {
		http.Error(w, "lookup refused", s.LookupStatus)
		return
	}

	label := r.PathValue("label")
	// property values arrive as JSON string literals
	wanted := strings.Trim(r.URL.Query().Get("externalId"), `"`)

	matches := []map[string]any{}
	for _, node := range s.nodes {
		if !hasLabel(node, label) {
			continue
		}
		if id, _ := node.Data["externalId"].(string); id == wanted {
			matches = append(matches, s.nodeDocument(node))
		}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleListIndexes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.IndexListCalls++
	if s.IndexListStatus != 0 {
		http.Error(w, "index list refused", s.IndexListStatus)
		return
	}

	entries := []map[string]any{}
	for label, keys := range s.indexes {
		entries = append(entries, map[string]any{
			"label":         label,
			"property_keys": keys,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.IndexCreateCalls++
	if s.IndexCreateStatus != 0 {
		http.Error(w, "index create refused", s.IndexCreateStatus)
		return
	}

	label := r.PathValue("label")
	if _, exists := s.indexes[label]; exists {
		http.Error(w, "index already exists", http.StatusConflict)
		return
	}

	var body struct {
		PropertyKeys []string `json:"property_keys"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.indexes[label] = body.PropertyKeys
	writeJSON(w, http.StatusOK, map[string]any{
		"label":         label,
		"property_keys": body.PropertyKeys,
	})
}

func (s *Server) findNode(id string) *NodeRecord {
	n, err := strconv.Atoi(id)
	if err != nil || n < 1 || n > len(s.nodes) {
		return nil
	}
	return s.nodes[n-1]
}

func hasLabel(node *NodeRecord, label string) bool {
	for _, l := range node.Labels {
		if l == label {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
