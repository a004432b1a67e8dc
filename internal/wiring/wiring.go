// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mkdo/internal/adapters/config"
	_ "go.trai.ch/mkdo/internal/adapters/logger"
	_ "go.trai.ch/mkdo/internal/adapters/manifest"
	_ "go.trai.ch/mkdo/internal/adapters/markdown"
	_ "go.trai.ch/mkdo/internal/adapters/shell"
	_ "go.trai.ch/mkdo/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/mkdo/internal/app"
	_ "go.trai.ch/mkdo/internal/engine/dispatcher"
)
