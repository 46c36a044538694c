package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/curatorapp/curator-server/internal/domain"
	"github.com/curatorapp/curator-server/internal/id"
)

// instanceKey holds the singleton server identity document.
const instanceKey = "instance"

// LoadOrCreateInstance returns the persisted server identity, generating
// and persisting a fresh one on first boot (or when the stored document is
// unreadable).
func LoadOrCreateInstance(backend Backend, name, version string, logger *slog.Logger) (*domain.Instance, error) {
	data, err := backend.Get(instanceKey)
	if err == nil {
		var instance domain.Instance
		if err := json.Unmarshal(data, &instance); err == nil {
			// Name and version track the running build, not first boot.
			instance.Name = name
			instance.Version = version
			return &instance, nil
		}
		if logger != nil {
			logger.Warn("discarding corrupt instance document")
		}
	} else if !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("load instance: %w", err)
	}

	instance := &domain.Instance{
		ID:        id.MustGenerate("srv"),
		Name:      name,
		Version:   version,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(instance)
	if err != nil {
		return nil, fmt.Errorf("marshal instance: %w", err)
	}
	if err := backend.Set(instanceKey, payload); err != nil {
		return nil, fmt.Errorf("persist instance: %w", err)
	}

	if logger != nil {
		logger.Info("server instance created", "id", instance.ID)
	}
	return instance, nil
}
