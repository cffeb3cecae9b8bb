// Package validation validates API request payloads before they reach
// the traversal engine. The engine itself never fails on bad input;
// the checks here exist to reject oversized or nonsensical requests at
// the HTTP boundary with a useful message.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxIDLength    = 64
	MaxLabelLength = 100

	// Node ids: printable, no whitespace
	idPattern = regexp.MustCompile(`^\S+$`)
)

func init() {
	validate = validator.New()
}

// NodePayload is one node of a submitted graph
type NodePayload struct {
	ID    string  `json:"id" validate:"required,max=64"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label" validate:"omitempty,max=100"`
}

// EdgePayload is one undirected weighted edge of a submitted graph
type EdgePayload struct {
	From   string `json:"from" validate:"required,max=64"`
	To     string `json:"to" validate:"required,max=64"`
	Weight int    `json:"weight" validate:"required,min=1"`
}

// GraphPayload is a submitted graph
type GraphPayload struct {
	Nodes []NodePayload `json:"nodes" validate:"required,min=1,dive"`
	Edges []EdgePayload `json:"edges" validate:"omitempty,dive"`
}

// TraverseRequest asks for one traversal run
type TraverseRequest struct {
	Graph    GraphPayload `json:"graph" validate:"required"`
	Strategy string       `json:"strategy" validate:"required,oneof=dijkstra astar bfs dfs"`
	Start    string       `json:"start" validate:"required,max=64"`
	End      string       `json:"end" validate:"required,max=64"`
}

// RaceRequest asks for a two-strategy race over one graph
type RaceRequest struct {
	Graph GraphPayload `json:"graph" validate:"required"`
	Left  string       `json:"left" validate:"required,oneof=dijkstra astar bfs dfs"`
	Right string       `json:"right" validate:"required,oneof=dijkstra astar bfs dfs"`
	Start string       `json:"start" validate:"required,max=64"`
	End   string       `json:"end" validate:"required,max=64"`
}

// Limits caps graph sizes per request; zero values mean unlimited
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// ValidateTraverseRequest validates a traversal request
func ValidateTraverseRequest(req *TraverseRequest, limits Limits) error {
	if req == nil {
		return errors.New("traverse request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return validateGraph(&req.Graph, limits)
}

// ValidateRaceRequest validates a race request
func ValidateRaceRequest(req *RaceRequest, limits Limits) error {
	if req == nil {
		return errors.New("race request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return validateGraph(&req.Graph, limits)
}

// validateGraph applies size caps and id checks beyond struct tags.
// Dangling edge endpoints are deliberately NOT rejected here: the
// engine tolerates them by omission and callers rely on that.
func validateGraph(g *GraphPayload, limits Limits) error {
	if limits.MaxNodes > 0 && len(g.Nodes) > limits.MaxNodes {
		return fmt.Errorf("Nodes: maximum %d nodes allowed, got %d", limits.MaxNodes, len(g.Nodes))
	}
	if limits.MaxEdges > 0 && len(g.Edges) > limits.MaxEdges {
		return fmt.Errorf("Edges: maximum %d edges allowed, got %d", limits.MaxEdges, len(g.Edges))
	}

	for i, n := range g.Nodes {
		if !idPattern.MatchString(n.ID) {
			return fmt.Errorf("Nodes: node at index %d has an invalid id (whitespace not allowed)", i)
		}
	}
	return nil
}

// formatValidationError converts validator errors to user-friendly messages
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
