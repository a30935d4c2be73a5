package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// DefaultPort is used when nothing else sets a port
const DefaultPort = 3000

const (
	// EngineNetHTTP serves with the standard library server
	EngineNetHTTP = "nethttp"
	// EngineFastHTTP serves with valyala/fasthttp
	EngineFastHTTP = "fasthttp"
)

// Environment variables overlaid on top of the config file
const (
	EnvPort    = "HELLO_PORT"
	EnvAddress = "HELLO_ADDRESS"
	EnvEngine  = "HELLO_ENGINE"
)

// Config is the server configuration. It is immutable once handed to New.
type Config struct {
	Port    int    `yaml:"port" json:"port" mapstructure:"port"`
	Address string `yaml:"address" json:"address" mapstructure:"address"`
	Engine  string `yaml:"engine" json:"engine" mapstructure:"engine"`
}

// DefaultConfig returns port 3000 on all interfaces with the net/http engine
func DefaultConfig() Config {
	return Config{
		Port:   DefaultPort,
		Engine: EngineNetHTTP,
	}
}

// Addr returns the host:port string handed to the listener
func (c Config) Addr() string {
	return c.Address + ":" + strconv.Itoa(c.Port)
}

// LoadConfig builds a Config from defaults, then the YAML file at path, then
// the HELLO_* environment. A missing file is only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	c := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &c); err != nil {
				return c, fmt.Errorf("error parsing config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return c, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := c.overlayEnv(); err != nil {
		return c, err
	}
	return c, nil
}

// overlayEnv decodes any non-empty HELLO_* variables onto c. Values are
// strings, so the decoder runs weakly typed to turn HELLO_PORT into an int.
func (c *Config) overlayEnv() error {
	env := map[string]interface{}{}
	for key, name := range map[string]string{
		"port":    EnvPort,
		"address": EnvAddress,
		"engine":  EnvEngine,
	} {
		if val := os.Getenv(name); val != "" {
			env[key] = val
		}
	}
	if len(env) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(env); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}
