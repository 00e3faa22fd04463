package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	uxerrors "github.com/framekit/frame-ux-sdk-go/internal/errors"
)

// defaultHandshakeTimeout bounds the WebSocket dial.
const defaultHandshakeTimeout = 10 * time.Second

// BridgeConfig describes the WebSocket bridge to the host shell.
type BridgeConfig struct {
	// URL is the host shell WebSocket endpoint, e.g. "ws://localhost:4200/ux".
	URL string `yaml:"url"`

	// Origin is sent as the Origin header on the upgrade request.
	Origin string `yaml:"origin,omitempty"`

	// HandshakeTimeout bounds the dial. Defaults to 10s.
	HandshakeTimeout time.Duration `yaml:"handshakeTimeout,omitempty"`
}

// LoadBridgeConfig reads a BridgeConfig from a YAML file.
func LoadBridgeConfig(path string) (*BridgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &uxerrors.ConfigError{Err: err}
	}

	var cfg BridgeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &uxerrors.ConfigError{Err: err}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *BridgeConfig) applyDefaults() {
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = defaultHandshakeTimeout
	}
}

// Validate checks required fields.
func (c *BridgeConfig) Validate() error {
	if c.URL == "" {
		return &uxerrors.ConfigError{Field: "url", Err: errors.New("must not be empty")}
	}

	return nil
}
