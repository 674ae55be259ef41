package config

import (
	"io/ioutil"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings for the command line demo. Every field can also be set by a flag,
// which takes precedence over the file.
type Config struct {
	// Side length of the square seed mesh
	Size float64 `yaml:"size"`
	// Flip budget per insertion
	MaxFlips int `yaml:"max_flips"`
	// Rendering
	Scale         float64 `yaml:"scale"`
	Padding       int     `yaml:"padding"`
	Circumcircles bool    `yaml:"circumcircles"`
	Output        string  `yaml:"output"`
}

func Default() Config {
	return Config{
		Size:     800,
		MaxFlips: advanced.DefaultMaxFlips,
		Scale:    advanced.DefaultDrawOptions.Scale,
		Padding:  advanced.DefaultDrawOptions.Padding,
		Output:   "delaunay.png",
	}
}

// Load a YAML file on top of the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("size must be positive, got %v", c.Size)
	}
	if c.MaxFlips <= 0 {
		return errors.Errorf("max_flips must be positive, got %d", c.MaxFlips)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.Padding < 0 {
		return errors.Errorf("padding must not be negative, got %d", c.Padding)
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	return nil
}

func (c Config) DrawOptions() advanced.DrawOptions {
	opts := advanced.DefaultDrawOptions
	opts.Scale = c.Scale
	opts.Padding = c.Padding
	opts.Circumcircles = c.Circumcircles
	return opts
}
