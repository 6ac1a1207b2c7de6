package stream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

var validate = validator.New()

// Config is everything the host needs at startup. It is loaded once, passed
// down explicitly and can be written back out with Save.
type Config struct {
	Window struct {
		Width      int    `yaml:"width" validate:"gt=0"`
		Height     int    `yaml:"height" validate:"gt=0"`
		Background string `yaml:"background" validate:"hexcolor"`
	} `yaml:"window"`
	Frame struct {
		Interval time.Duration `yaml:"interval" validate:"gt=0"`
		MaxDelta time.Duration `yaml:"maxDelta" validate:"gt=0"`
	} `yaml:"frame"`
	Font struct {
		Path string  `yaml:"path"`
		Size float64 `yaml:"size" validate:"gt=0"`
	} `yaml:"font"`
	Scene struct {
		Name  string `yaml:"name" validate:"oneof=orbit twinkle"`
		Stars int    `yaml:"stars" validate:"gte=0"`
		// One in Chance frames replaces a star.
		Chance int32 `yaml:"chance" validate:"gt=0"`
		Seed   int64 `yaml:"seed"`
	} `yaml:"scene"`
	Mqtt struct {
		URL      string `yaml:"url" validate:"omitempty,url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID" validate:"required"`
		QoS      byte   `yaml:"qos" validate:"lte=2"`
		Topics   struct {
			Stream string `yaml:"stream" validate:"required"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Log struct {
		Level string `yaml:"level" validate:"oneof=debug info warn error"`
		File  string `yaml:"file"`
	} `yaml:"log"`
}

// DefaultConfig returns the settings used for anything a config file leaves
// out.
func DefaultConfig() Config {
	var c Config
	c.Window.Width = 640
	c.Window.Height = 480
	c.Window.Background = "#ffffff"
	c.Frame.Interval = 30 * time.Millisecond
	c.Frame.MaxDelta = time.Second
	c.Font.Size = 14
	c.Scene.Name = "orbit"
	c.Scene.Stars = 40
	c.Scene.Chance = 10
	c.Mqtt.ClientID = "anitx"
	c.Mqtt.Topics.Stream = "anitx/stream"
	c.HTTP.Addr = ":3000"
	c.Log.Level = "info"
	return c
}

// Validate checks the config for values the host cannot run with.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	// An empty file has no overrides.
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, c.Validate()
}

// Save writes the config to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
