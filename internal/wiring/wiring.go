// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/undup/internal/adapters/fs"
	_ "go.trai.ch/undup/internal/adapters/logger"
	_ "go.trai.ch/undup/internal/adapters/report"
	_ "go.trai.ch/undup/internal/adapters/symlink"
	_ "go.trai.ch/undup/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/undup/internal/app"
	_ "go.trai.ch/undup/internal/engine/matcher"
)
