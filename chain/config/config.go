package config

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MetalBlockchain/metalgo/utils/logging"
	"github.com/MetalBlockchain/metalgo/utils/units"
)

var Default = Config{
	LogLevel:          logging.Info.String(),
	HTTPHost:          "127.0.0.1",
	HTTPPort:          9660,
	MaxCallDataSize:   64 * units.KiB,
	ReadHeaderTimeout: 30 * time.Second,
}

type Config struct {
	LogLevel          string        `json:"log-level"`
	HTTPHost          string        `json:"http-host"`
	HTTPPort          uint16        `json:"http-port"`
	MaxCallDataSize   int           `json:"max-call-data-size"`
	ReadHeaderTimeout time.Duration `json:"read-header-timeout"`
}

func GetConfig(b []byte) (*Config, error) {
	ec := Default

	// An empty slice is invalid json, so handle that as a special case.
	if len(b) == 0 {
		return &ec, nil
	}

	if err := json.Unmarshal(b, &ec); err != nil {
		return nil, err
	}
	return &ec, ec.Verify()
}

// Verify returns nil iff every field holds a usable value.
func (c *Config) Verify() error {
	if _, err := logging.ToLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log-level %q: %w", c.LogLevel, err)
	}
	if c.MaxCallDataSize <= 0 {
		return fmt.Errorf("max-call-data-size must be positive, got %d", c.MaxCallDataSize)
	}
	return nil
}

// Address is the host:port the RPC server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(int(c.HTTPPort)))
}
