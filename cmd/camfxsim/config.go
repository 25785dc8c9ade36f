package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/k38-suzuki/camfx"
)

// Config is the simulated scene read from a YAML file.
type Config struct {
	Mode        camfx.Mode     `yaml:"mode"`
	Seed        uint64         `yaml:"seed"` // 0 picks a random seed
	Ticks       int            `yaml:"ticks"`
	Dt          float64        `yaml:"dt"` // seconds per tick
	Workers     int            `yaml:"workers"`
	NoiseChance *float64       `yaml:"noise_chance,omitempty"`
	Output      OutputConfig   `yaml:"output"`
	Cameras     []CameraConfig `yaml:"cameras"`
	Zones       []ZoneConfig   `yaml:"zones"`
}

// OutputConfig controls snapshot export.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Every  int    `yaml:"every"`  // write every N ticks; 0 writes only the last tick
	Format string `yaml:"format"` // png or bmp
}

// CameraConfig describes one synthetic camera.
type CameraConfig struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	Channels int          `yaml:"channels"` // 1 gray, 3 RGB
	Position [3]float64   `yaml:"position"`
	Velocity [3]float64   `yaml:"velocity"` // world units per second
	Params   camfx.Params `yaml:"params"`
}

// ZoneConfig describes a box or sphere zone.
type ZoneConfig struct {
	Name   string       `yaml:"name"`
	Shape  string       `yaml:"shape"` // box, sphere
	Min    [3]float64   `yaml:"min"`
	Max    [3]float64   `yaml:"max"`
	Center [3]float64   `yaml:"center"`
	Radius float64      `yaml:"radius"`
	Params camfx.Params `yaml:"params"`
}

// Load reads, defaults and validates a scene file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene from YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Ticks <= 0 {
		c.Ticks = 30
	}
	if c.Dt <= 0 {
		c.Dt = 0.1
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "out"
	}
	if c.Output.Format == "" {
		c.Output.Format = "png"
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	for i := range c.Cameras {
		cam := &c.Cameras[i]
		if cam.ID == "" {
			cam.ID = uuid.New().String()
		}
		if cam.Name == "" {
			cam.Name = cam.ID
		}
		if cam.Channels == 0 {
			cam.Channels = 3
		}
	}
	for i := range c.Zones {
		if c.Zones[i].Shape == "" {
			c.Zones[i].Shape = "box"
		}
	}
}

// Validate checks the scene for values the simulator cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if !c.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("mode: %w", camfx.ErrInvalidMode))
	}
	if c.Output.Format != "png" && c.Output.Format != "bmp" {
		errs = append(errs, fmt.Errorf("output.format: unsupported %q", c.Output.Format))
	}
	if c.Output.Every < 0 {
		errs = append(errs, errors.New("output.every: must not be negative"))
	}
	if len(c.Cameras) == 0 {
		errs = append(errs, errors.New("cameras: at least one camera is required"))
	}

	seen := make(map[string]bool, len(c.Cameras))
	for i, cam := range c.Cameras {
		if seen[cam.Name] {
			errs = append(errs, fmt.Errorf("cameras[%d]: duplicate name %q", i, cam.Name))
		}
		seen[cam.Name] = true
		if cam.Width <= 0 || cam.Height <= 0 {
			errs = append(errs, fmt.Errorf("cameras[%d]: size %dx%d must be positive", i, cam.Width, cam.Height))
		}
		if cam.Channels != 1 && cam.Channels != 3 {
			errs = append(errs, fmt.Errorf("cameras[%d]: channels must be 1 or 3, got %d", i, cam.Channels))
		}
	}

	for i, z := range c.Zones {
		switch z.Shape {
		case "box":
			for a := range 3 {
				if z.Min[a] > z.Max[a] {
					errs = append(errs, fmt.Errorf("zones[%d]: min exceeds max on axis %d", i, a))
					break
				}
			}
		case "sphere":
			if z.Radius < 0 {
				errs = append(errs, fmt.Errorf("zones[%d]: negative radius", i))
			}
		default:
			errs = append(errs, fmt.Errorf("zones[%d]: unknown shape %q", i, z.Shape))
		}
	}
	return errors.Join(errs...)
}

// Options converts the run settings into orchestrator options.
func (c *Config) Options() []camfx.Option {
	opts := []camfx.Option{
		camfx.WithMode(c.Mode),
		camfx.WithWorkers(c.Workers),
	}
	if c.Seed != 0 {
		opts = append(opts, camfx.WithSeed(c.Seed))
	}
	if c.NoiseChance != nil {
		opts = append(opts, camfx.WithNoiseChance(*c.NoiseChance))
	}
	return opts
}

// BuildZones returns the scene zones in file order.
func (c *Config) BuildZones() []camfx.Zone {
	zones := make([]camfx.Zone, 0, len(c.Zones))
	for _, z := range c.Zones {
		switch z.Shape {
		case "box":
			zones = append(zones, &camfx.BoxZone{
				Name:   z.Name,
				Min:    vec(z.Min),
				Max:    vec(z.Max),
				Params: z.Params,
			})
		case "sphere":
			zones = append(zones, &camfx.SphereZone{
				Name:   z.Name,
				Center: vec(z.Center),
				Radius: z.Radius,
				Params: z.Params,
			})
		}
	}
	return zones
}

func vec(a [3]float64) camfx.Vec3 {
	return camfx.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
