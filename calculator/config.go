package calculator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxInputLength is the default bound on expression length, in
// characters.
const DefaultMaxInputLength = 1024

// Config selects the input limit and the optional syntax.
type Config struct {
	// MaxInputLength is the longest accepted expression, in characters.
	MaxInputLength int `yaml:"max_input_length"`

	// OperatorAliases accepts x, X, × for * and ÷ for /.
	OperatorAliases bool `yaml:"operator_aliases"`
	// Exponent accepts number literals like 1e3.
	Exponent bool `yaml:"exponent"`
	// UnaryMinus accepts a prefix minus, e.g. -5 or 2*-3.
	UnaryMinus bool `yaml:"unary_minus"`
}

// DefaultConfig returns the base grammar with the default input limit.
func DefaultConfig() Config {
	return Config{MaxInputLength: DefaultMaxInputLength}
}

func (c Config) Validate() error {
	if c.MaxInputLength <= 0 {
		return fmt.Errorf("max_input_length must be positive, got %d", c.MaxInputLength)
	}
	return nil
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their default value.
func LoadConfig(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	return ParseConfig(buf)
}

// ParseConfig decodes a YAML config document over the defaults. Unknown keys
// are rejected.
func ParseConfig(buf []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
