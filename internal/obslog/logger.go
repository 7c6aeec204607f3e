// Package obslog provides the per-call structured logger used throughout
// the planner. Grounded on viamrobotics-rdk's go.uber.org/zap dependency:
// the teacher repo itself only logs via fmt.Printf in cmd/mapfhet/main.go,
// but the rest of the examples pack uniformly reaches for zap/logrus for
// anything beyond a throwaway CLI demo, so a request-scoped zap logger
// replaces the teacher's fmt.Printf calls in the equivalent CLI/planner
// surface here.
package obslog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds a request-scoped sugared logger tagged with a fresh request
// ID, grounded on google/uuid (adopted from haricheung-agentic-shell /
// viamrobotics-rdk).
func New() (*zap.SugaredLogger, string) {
	requestID := uuid.NewString()
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return base.Sugar().With("request_id", requestID), requestID
}

// NewDevelopment builds a human-readable logger for CLI use.
func NewDevelopment() (*zap.SugaredLogger, string) {
	requestID := uuid.NewString()
	base, err := zap.NewDevelopment()
	if err != nil {
		base = zap.NewNop()
	}
	return base.Sugar().With("request_id", requestID), requestID
}
