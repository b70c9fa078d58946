// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/compass/internal/adapters/backend"
	_ "go.trai.ch/compass/internal/adapters/config"
	_ "go.trai.ch/compass/internal/adapters/geocode"
	_ "go.trai.ch/compass/internal/adapters/logger"
	_ "go.trai.ch/compass/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/compass/internal/app"
	_ "go.trai.ch/compass/internal/engine/orchestrator"
	_ "go.trai.ch/compass/internal/engine/suggest"
)
