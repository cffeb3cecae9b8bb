package api

import (
	"net/http"
	"time"

	"github.com/dd0wney/cluso-pathrace/pkg/logging"
	"github.com/dd0wney/cluso-pathrace/pkg/traversal"
	"github.com/dd0wney/cluso-pathrace/pkg/validation"
)

// handleTraverse runs one strategy over a submitted graph and returns
// the full result, step trace included.
func (s *Server) handleTraverse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req validation.TraverseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateTraverseRequest(&req, s.limits()); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	strategy, err := traversal.ParseStrategy(req.Strategy)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	engine, err := traversal.New(strategy)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "engine construction failed")
		return
	}

	g := buildGraph(&req.Graph)
	start := time.Now()
	engine.Init(g, req.Start, req.End)
	result := engine.RunToCompletion()
	elapsed := time.Since(start)

	s.metrics.RecordTraversal(strategy.String(), result.Found(), elapsed,
		len(result.Steps), len(result.Visited), result.Weight)
	s.logger.Info("traversal finished",
		logging.Strategy(strategy.String()),
		logging.StartNode(req.Start),
		logging.EndNode(req.End),
		logging.NodeCount(g.NodeCount()),
		logging.EdgeCount(g.EdgeCount()),
		logging.Steps(len(result.Steps)),
		logging.VisitedCount(len(result.Visited)),
		logging.PathLength(len(result.Path)),
		logging.PathWeight(result.Weight),
		logging.Latency(elapsed),
	)

	s.writeJSON(w, http.StatusOK, TraverseResponse{
		Strategy: strategy.String(),
		Result:   result,
	})
}
