package main

import (
	"fmt"
	"image"
	stdcolor "image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/k38-suzuki/camfx"
	"github.com/k38-suzuki/camfx/frame"
)

// bars are the colour-bar columns of the synthetic test pattern.
var bars = []stdcolor.RGBA{
	{235, 235, 235, 255},
	{235, 235, 16, 255},
	{16, 235, 235, 255},
	{16, 235, 16, 255},
	{235, 16, 235, 255},
	{235, 16, 16, 255},
	{16, 16, 235, 255},
}

// simCamera is a synthetic camera that renders a labelled colour-bar
// pattern each tick and moves at constant velocity.
type simCamera struct {
	camfx.FrameSlot

	id       string
	name     string
	w, h, ch int
	params   camfx.Params

	pos, vel camfx.Vec3
}

func newSimCamera(cfg CameraConfig) *simCamera {
	return &simCamera{
		id:     cfg.ID,
		name:   cfg.Name,
		w:      cfg.Width,
		h:      cfg.Height,
		ch:     cfg.Channels,
		params: cfg.Params,
		pos:    vec(cfg.Position),
		vel:    vec(cfg.Velocity),
	}
}

func (c *simCamera) Name() string                    { return c.name }
func (c *simCamera) WorldPosition() camfx.Vec3       { return c.pos }
func (c *simCamera) EffectParameters() camfx.Params  { return c.params }
func (c *simCamera) FrameSize() (w, h, channels int) { return c.w, c.h, c.ch }

// advance moves the camera by dt seconds.
func (c *simCamera) advance(dt float64) {
	c.pos.X += c.vel.X * dt
	c.pos.Y += c.vel.Y * dt
	c.pos.Z += c.vel.Z * dt
}

// render draws the raw sensor image for tick and publishes it.
func (c *simCamera) render(tick int) error {
	var dst draw.Image
	if c.ch == 1 {
		dst = image.NewGray(image.Rect(0, 0, c.w, c.h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	}

	barW := max(c.w/len(bars), 1)
	for i, col := range bars {
		r := image.Rect(i*barW, 0, (i+1)*barW, c.h*3/4)
		if i == len(bars)-1 {
			r.Max.X = c.w
		}
		draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
	}
	// Gray ramp along the bottom quarter.
	for x := range c.w {
		v := uint8(x * 255 / max(c.w-1, 1))
		draw.Draw(dst, image.Rect(x, c.h*3/4, x+1, c.h), image.NewUniform(stdcolor.Gray{Y: v}), image.Point{}, draw.Src)
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(3, basicfont.Face7x13.Ascent+2),
	}
	d.DrawString(fmt.Sprintf("%s t=%d", c.name, tick))

	buf, err := frame.New(c.w, c.h, c.ch)
	if err != nil {
		return err
	}
	if err := buf.CopyFromImage(dst); err != nil {
		return err
	}
	c.Store(buf)
	return nil
}

// simScene is the camfx.Scene view of the configured cameras and zones.
type simScene struct {
	cameras []*simCamera
	zones   []camfx.Zone
}

func newSimScene(cfg *Config) *simScene {
	s := &simScene{zones: cfg.BuildZones()}
	for _, cc := range cfg.Cameras {
		s.cameras = append(s.cameras, newSimCamera(cc))
	}
	return s
}

func (s *simScene) Cameras() []camfx.Camera {
	out := make([]camfx.Camera, len(s.cameras))
	for i, c := range s.cameras {
		out[i] = c
	}
	return out
}

func (s *simScene) Zones() []camfx.Zone { return s.zones }

// simHost plays the simulator: each step moves and renders every camera,
// then runs the post-dynamics callbacks.
type simHost struct {
	scene *simScene
	dt    float64
	hooks []func()
}

func (h *simHost) AddPostDynamicsFunc(fn func()) {
	h.hooks = append(h.hooks, fn)
}

func (h *simHost) step(tick int) error {
	for _, c := range h.scene.cameras {
		c.advance(h.dt)
		if err := c.render(tick); err != nil {
			return fmt.Errorf("render %s: %w", c.name, err)
		}
	}
	for _, fn := range h.hooks {
		fn()
	}
	return nil
}
