package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{EnvPort, EnvAddress, EnvEngine} {
		if val, ok := os.LookupEnv(name); ok {
			os.Unsetenv(name)
			t.Cleanup(func() { os.Setenv(name, val) })
		}
	}
}

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 3000, c.Port)
	assert.Equal(t, "", c.Address)
	assert.Equal(t, EngineNetHTTP, c.Engine)
	assert.Equal(t, ":3000", c.Addr())
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", Config{Address: "127.0.0.1", Port: 8080}.Addr())
	assert.Equal(t, "[::1]:0", Config{Address: "[::1]"}.Addr())
}

func TestLoadConfigNoFile(t *testing.T) {
	clearEnv(t)
	c, err := LoadConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "nope.yml")

	c, err := LoadConfig(missing, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	_, err = LoadConfig(missing, true)
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "port: 8080\naddress: 127.0.0.1\nengine: fasthttp\n")

	c, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{Port: 8080, Address: "127.0.0.1", Engine: EngineFastHTTP}, c)
}

func TestLoadConfigPartialFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "address: 0.0.0.0\n")

	c, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, c.Port)
	assert.Equal(t, "0.0.0.0", c.Address)
	assert.Equal(t, EngineNetHTTP, c.Engine)
}

func TestLoadConfigBadYaml(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "port: [not, a, port]\n")

	_, err := LoadConfig(path, true)
	assert.Error(t, err)
}

func TestLoadConfigEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "port: 8080\nengine: nethttp\n")

	os.Setenv(EnvPort, "9090")
	os.Setenv(EnvEngine, "fasthttp")
	defer os.Unsetenv(EnvPort)
	defer os.Unsetenv(EnvEngine)

	c, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, EngineFastHTTP, c.Engine)
	assert.Equal(t, "", c.Address)
}

func TestLoadConfigBadEnvPort(t *testing.T) {
	clearEnv(t)
	os.Setenv(EnvPort, "three thousand")
	defer os.Unsetenv(EnvPort)

	_, err := LoadConfig("", false)
	assert.Error(t, err)
}

func TestLoadConfigEmptyEnv(t *testing.T) {
	clearEnv(t)
	os.Setenv(EnvPort, "")
	defer os.Unsetenv(EnvPort)

	c, err := LoadConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, c.Port)
}
