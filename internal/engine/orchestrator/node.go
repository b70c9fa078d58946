package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compass/internal/adapters/backend"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/compass/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/compass/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/compass/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			backend.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			b, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(b, tracer, log, NewCache(cfg.CacheMaxEntries)), nil
		},
	})
}
