// Package config handles configuration for the development backend:
// defaults, a JSON overlay and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/recruit/internal/common"
)

// secretSize is the byte length of a generated JWT secret.
const secretSize = 32

// Config holds runtime settings for the stub API.
//
// Fields:
//   - Addr: listen address of the HTTP server.
//   - SecretKey: HMAC secret for signing JWTs (HS256). A random one is
//     generated when left empty, so tokens do not survive a restart.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr                  string
	SecretKey             string
	TokenValidityDuration time.Duration
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:3001"
	c.SecretKey = ""
	c.TokenValidityDuration = 60 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the optional JSON file and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if cfg.SecretKey == "" {
		s, err := common.MakeRandHexString(secretSize)
		if err != nil {
			panic(err)
		}
		cfg.SecretKey = s
	}
	return cfg
}
