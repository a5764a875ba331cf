package main

import (
	"fmt"

	"github.com/hubastard/ember/engine/colors"
	"github.com/hubastard/ember/engine/core"
	"github.com/hubastard/ember/engine/geom"
)

// playView flies a ship around the window, constrained to the visible area.
type playView struct {
	core.BaseView
	cfg  gameConfig
	ship ship
}

func newPlayView(ctx *core.Context, cfg gameConfig) (*playView, error) {
	w, h := ctx.Surface.OutputSize()
	world := geom.NewRect(0, 0, float64(w), float64(h))

	start := geom.NewRect(
		(float64(w)-cfg.Ship.Size)/2,
		(float64(h)-cfg.Ship.Size)/2,
		cfg.Ship.Size, cfg.Ship.Size,
	)
	start, ok := start.MoveInside(world)
	if !ok {
		return nil, fmt.Errorf("ship %vpx does not fit a %dx%d window", cfg.Ship.Size, w, h)
	}

	return &playView{
		cfg:  cfg,
		ship: ship{bounds: start, speed: cfg.Ship.Speed},
	}, nil
}

func (v *playView) Resume(*core.Context) {
	core.LogInfo("game started")
}

func (v *playView) Render(ctx *core.Context, dt float64) core.ViewAction {
	snap := ctx.Input.Snapshot()
	if snap.Quit {
		return core.Quit{}
	}
	if snap.Pressed(core.KeyEscape) {
		title, err := newTitleView(ctx, v.cfg)
		if err != nil {
			core.LogError("back to title: %v", err)
			return core.Quit{}
		}
		return core.ChangeView{Next: title}
	}

	w, h := ctx.Surface.OutputSize()
	world := geom.NewRect(0, 0, float64(w), float64(h))
	dx, dy := moveAxes(ctx.Input)
	v.ship.advance(dx, dy, dt, world)

	s := ctx.Surface
	s.Clear()
	s.SetDrawColor(colors.White.RGB())
	s.FillRect(v.ship.bounds)
	return core.Continue{}
}
