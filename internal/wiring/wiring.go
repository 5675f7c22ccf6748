// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cmake-node/internal/adapters/artifact"
	_ "go.trai.ch/cmake-node/internal/adapters/config"
	_ "go.trai.ch/cmake-node/internal/adapters/detector"
	_ "go.trai.ch/cmake-node/internal/adapters/fs"
	_ "go.trai.ch/cmake-node/internal/adapters/logger"
	_ "go.trai.ch/cmake-node/internal/adapters/modules"
	_ "go.trai.ch/cmake-node/internal/adapters/shell"
	_ "go.trai.ch/cmake-node/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/cmake-node/internal/app"
	_ "go.trai.ch/cmake-node/internal/engine/resolver"
)
