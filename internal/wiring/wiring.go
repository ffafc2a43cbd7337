// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/risteon/ic-workspace/internal/adapters/cas"
	_ "github.com/risteon/ic-workspace/internal/adapters/cmake"
	_ "github.com/risteon/ic-workspace/internal/adapters/config"
	_ "github.com/risteon/ic-workspace/internal/adapters/fs"
	_ "github.com/risteon/ic-workspace/internal/adapters/git"
	_ "github.com/risteon/ic-workspace/internal/adapters/logger"
	_ "github.com/risteon/ic-workspace/internal/adapters/registry"
	_ "github.com/risteon/ic-workspace/internal/adapters/report"
	_ "github.com/risteon/ic-workspace/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/risteon/ic-workspace/internal/app"
	_ "github.com/risteon/ic-workspace/internal/engine/resolver"
)
