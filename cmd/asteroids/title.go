package main

import (
	"fmt"

	"github.com/hubastard/ember/engine/core"
	"github.com/hubastard/ember/engine/geom"
)

// titleView is the start screen. It owns the texture it rasterized, so it
// implements io.Closer and releases it when the view is discarded.
type titleView struct {
	core.BaseView
	cfg   gameConfig
	text  core.Texture
	textW float64
	textH float64
}

func newTitleView(ctx *core.Context, cfg gameConfig) (*titleView, error) {
	font, err := ctx.Resources.GetOrLoadFont(cfg.Font.Path, cfg.Font.Size)
	if err != nil {
		return nil, err
	}

	w, h, pixels := font.Rasterize("ASTEROIDS - press Enter")
	tex, err := ctx.Surface.CreateTexture(core.TextureDesc{Width: w, Height: h, Pixels: pixels})
	if err != nil {
		return nil, fmt.Errorf("title texture: %w", err)
	}

	return &titleView{
		cfg:   cfg,
		text:  tex,
		textW: float64(w),
		textH: float64(h),
	}, nil
}

func (v *titleView) Render(ctx *core.Context, dt float64) core.ViewAction {
	snap := ctx.Input.Snapshot()
	if snap.Quit || snap.Pressed(core.KeyEscape) {
		return core.Quit{}
	}
	if snap.Pressed(core.KeyEnter) {
		play, err := newPlayView(ctx, v.cfg)
		if err != nil {
			core.LogError("start game: %v", err)
			return core.Quit{}
		}
		return core.ChangeView{Next: play}
	}

	s := ctx.Surface
	s.Clear()
	w, h := s.OutputSize()
	dst := geom.NewRect(
		(float64(w)-v.textW)/2,
		(float64(h)-v.textH)/2,
		v.textW, v.textH,
	)
	if err := s.Copy(v.text, nil, &dst); err != nil {
		core.LogWarn("draw title: %v", err)
	}
	return core.Continue{}
}

func (v *titleView) Close() error {
	if v.text != nil {
		v.text.Release()
		v.text = nil
	}
	return nil
}
