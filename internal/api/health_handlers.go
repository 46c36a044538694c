package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Description: "Liveness probe, always succeeds with no side effects",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	OK bool `json:"ok" doc:"Always true while the server is up"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: HealthResponse{OK: true}}, nil
}
