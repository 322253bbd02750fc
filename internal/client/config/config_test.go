package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "siegectl.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Empty(t, c.AccessToken)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr": "json:1",
		"request_timeout":      "9s",
	})
	t.Setenv("SIEGECTL_ACCESS_TOKEN", "tok")
	t.Setenv("SIEGECTL_REQUEST_TIMEOUT", "7s")
	os.Args = []string{"siegectl", "-c", path, "-a", "flag:2", "-unknown", "x"}

	c := LoadConfig()
	assert.Equal(t, "flag:2", c.ServerEndpointAddr)
	assert.Equal(t, 7*time.Second, c.RequestTimeout)
	assert.Equal(t, "tok", c.AccessToken)
}

func TestParseJson_KeepsUnsetFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{"request_timeout": 2000000000})
	os.Args = []string{"siegectl", "-config=" + path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"siegectl", "-c", filepath.Join(t.TempDir(), "nope.json")}

	assert.Panics(t, func() { parseJson(&Config{}) })
}
