package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Duration accepts "10s" style scalars from YAML and default tags.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalText implements encoding.TextUnmarshaler, which both the defaults
// filler and env parsing go through.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", b, err)
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

type Config struct {
	Environment string `yaml:"environment" default:"production" validate:"required"`
	Log         struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	API struct {
		BaseURL           string   `yaml:"base_url" default:"https://api.coingecko.com/api/v3" validate:"required,url"`
		Currency          string   `yaml:"currency" default:"usd" validate:"required"`
		TopN              int      `yaml:"top_n" default:"20" validate:"gte=1,lte=250"`
		HistoryDays       int      `yaml:"history_days" default:"7" validate:"gte=2,lte=90"`
		RequestTimeout    Duration `yaml:"request_timeout" default:"10s"`
		ThrottleGap       Duration `yaml:"throttle_gap" default:"4s"`
		RateLimitCooldown Duration `yaml:"rate_limit_cooldown" default:"60s"`
	} `yaml:"api"`
	Paths struct {
		CacheDir   string `yaml:"cache_dir" default:"./cache" validate:"required"`
		IconsDir   string `yaml:"icons_dir" default:"./icons" validate:"required"`
		OutputFile string `yaml:"output_file" default:"./current_input.json" validate:"required"`
	} `yaml:"paths"`
}

// Load reads and parses a YAML configuration file. A missing file is not an
// error: defaults apply and env overrides can fill the rest.
func Load(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Fill unset fields from default tags
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	// Validate required fields
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("CRYPTOPULSE_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("CRYPTOPULSE_TOP_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse CRYPTOPULSE_TOP_N: %w", err)
		}
		c.API.TopN = n
	}
	if v := os.Getenv("CRYPTOPULSE_CACHE_DIR"); v != "" {
		c.Paths.CacheDir = v
	}
	if v := os.Getenv("CRYPTOPULSE_OUTPUT_FILE"); v != "" {
		c.Paths.OutputFile = v
	}
	if v := os.Getenv("CRYPTOPULSE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}
