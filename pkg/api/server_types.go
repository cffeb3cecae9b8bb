package api

import (
	"time"

	"github.com/dd0wney/cluso-pathrace/pkg/config"
	"github.com/dd0wney/cluso-pathrace/pkg/logging"
	"github.com/dd0wney/cluso-pathrace/pkg/metrics"
	"github.com/dd0wney/cluso-pathrace/pkg/traversal"
	"github.com/dd0wney/cluso-pathrace/pkg/validation"
)

// Server is the HTTP surface over the in-process traversal library.
type Server struct {
	cfg       *config.Config
	logger    logging.Logger
	metrics   *metrics.Registry
	startTime time.Time
	version   string
}

// TraverseResponse is the body returned by POST /api/v1/traverse.
type TraverseResponse struct {
	Strategy string            `json:"strategy"`
	Result   *traversal.Result `json:"result"`
}

// RaceResponse is the body returned by POST /api/v1/race.
type RaceResponse struct {
	Left    *traversal.Result `json:"left"`
	Right   *traversal.Result `json:"right"`
	Verdict string            `json:"verdict"`
	Rounds  int               `json:"rounds"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// ErrorResponse is the body returned on any request failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// limits derives request caps from config.
func (s *Server) limits() validation.Limits {
	return validation.Limits{
		MaxNodes: s.cfg.MaxNodes,
		MaxEdges: s.cfg.MaxEdges,
	}
}
