package main

import (
	"github.com/hubastard/ember/engine/core"
	"github.com/hubastard/ember/engine/platform"
)

func main() {
	cfg, err := loadGameConfig("")
	if err != nil {
		core.LogFatal("config: %v", err)
	}

	init := func(ctx *core.Context) (core.View, error) {
		return newTitleView(ctx, cfg)
	}
	if err := platform.Run("Asteroids", init); err != nil {
		core.LogFatal("%v", err)
	}
}
