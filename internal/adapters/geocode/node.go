package geocode

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compass/internal/adapters/backend"
	"go.trai.ch/compass/internal/adapters/config"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
)

// NodeID is the unique identifier for the geocoder Graft node.
const NodeID graft.ID = "adapter.geocode"

func init() {
	graft.Register(graft.Node[ports.Geocoder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, backend.NodeID},
		Run: func(ctx context.Context) (ports.Geocoder, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			b, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.GeocodeURL, cfg.MapsKey, b, cfg.Timeout)
		},
	})
}
