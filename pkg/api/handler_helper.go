package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dd0wney/cluso-pathrace/pkg/graph"
	"github.com/dd0wney/cluso-pathrace/pkg/logging"
	"github.com/dd0wney/cluso-pathrace/pkg/validation"
)

// writeJSON writes a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

// writeError writes a JSON error body. Internal details stay in the
// logs; the client gets the message as given.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON decodes a request body, returning a client-facing error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// buildGraph converts a validated payload into the engine's graph model.
func buildGraph(payload *validation.GraphPayload) *graph.Graph {
	nodes := make([]graph.Node, 0, len(payload.Nodes))
	for _, n := range payload.Nodes {
		nodes = append(nodes, graph.Node{ID: n.ID, X: n.X, Y: n.Y, Label: n.Label})
	}
	edges := make([]graph.Edge, 0, len(payload.Edges))
	for _, e := range payload.Edges {
		edges = append(edges, graph.Edge{From: e.From, To: e.To, Weight: e.Weight})
	}
	return graph.New(nodes, edges)
}
