package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerInstanceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getInstance",
		Method:      http.MethodGet,
		Path:        "/api/instance",
		Summary:     "Get server instance",
		Description: "Returns the stable identity of this server installation",
		Tags:        []string{"Instance"},
	}, s.handleGetInstance)
}

// InstanceResponse contains the server identity in API responses.
type InstanceResponse struct {
	ID        string    `json:"id" doc:"Stable server id, generated on first boot"`
	Name      string    `json:"name" doc:"Display name"`
	Version   string    `json:"version" doc:"Running server version"`
	CreatedAt time.Time `json:"created_at" doc:"First boot time"`
}

// InstanceOutput wraps the instance response for Huma.
type InstanceOutput struct {
	Body InstanceResponse
}

func (s *Server) handleGetInstance(_ context.Context, _ *struct{}) (*InstanceOutput, error) {
	return &InstanceOutput{
		Body: InstanceResponse{
			ID:        s.instance.ID,
			Name:      s.instance.Name,
			Version:   s.instance.Version,
			CreatedAt: s.instance.CreatedAt,
		},
	}, nil
}
