package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compass/internal/adapters/config"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
)

// NodeID is the unique identifier for the backend client Graft node.
const NodeID graft.ID = "adapter.backend"

func init() {
	graft.Register(graft.Node[ports.Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Backend, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.BackendURL, cfg.Timeout)
		},
	})
}
