package api

import (
	"net/http"
	"time"

	"github.com/dd0wney/cluso-pathrace/pkg/logging"
	"github.com/dd0wney/cluso-pathrace/pkg/race"
	"github.com/dd0wney/cluso-pathrace/pkg/traversal"
	"github.com/dd0wney/cluso-pathrace/pkg/validation"
)

// handleRace runs two strategies over the same graph and judges the winner.
func (s *Server) handleRace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req validation.RaceRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateRaceRequest(&req, s.limits()); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	left, err := traversal.ParseStrategy(req.Left)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	right, err := traversal.ParseStrategy(req.Right)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	g := buildGraph(&req.Graph)
	contest, err := race.NewRace(g, req.Start, req.End, left, right)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "race construction failed")
		return
	}

	start := time.Now()
	verdict := contest.Run()
	elapsed := time.Since(start)
	leftResult, rightResult := contest.Results()

	s.metrics.RecordRace(left.String(), right.String(), string(verdict), elapsed)
	s.logger.Info("race finished",
		logging.Strategy(left.String()+" vs "+right.String()),
		logging.StartNode(req.Start),
		logging.EndNode(req.End),
		logging.Verdict(string(verdict)),
		logging.Latency(elapsed),
	)

	s.writeJSON(w, http.StatusOK, RaceResponse{
		Left:    leftResult,
		Right:   rightResult,
		Verdict: string(verdict),
		Rounds:  contest.Cursor(),
	})
}
