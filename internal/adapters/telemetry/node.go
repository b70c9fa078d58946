package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/compass/internal/adapters/config"
	"go.trai.ch/compass/internal/adapters/logger"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracer(cfg.Tracing, log), nil
		},
	})
}

// NewTracer returns a tracer that reports finished spans to log when enabled,
// and a NoOpTracer otherwise.
func NewTracer(enabled bool, log ports.Logger) ports.Tracer {
	if !enabled {
		return NewNoOpTracer()
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(log)))
	return NewOTelTracer(tp, InstrumentationName)
}
