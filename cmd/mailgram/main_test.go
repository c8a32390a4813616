package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: "non-existent-config.yml",
	}

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	// create a temporary invalid config file
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	// write invalid yaml
	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: tmpFile.Name(),
	}

	err = run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		// no token set, the server runs with webhook handling disabled
		serverErr <- run(ctx, Opts{Listen: fmt.Sprintf("127.0.0.1:%d", port)})
	}()

	// wait for server to start
	time.Sleep(200 * time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	// webhook reports missing token
	resp2, err := http.Post(fmt.Sprintf("http://127.0.0.1:%d/webhook", port), "application/json",
		http.NoBody)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp2.StatusCode)

	cancel()
	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	err := os.WriteFile(configPath, []byte(`
server:
  listen: ":9090"
telegram:
  token: "file-token"
  domains:
    - file.com
`), 0o644)
	require.NoError(t, err)

	opts := Opts{
		Config:  configPath,
		Listen:  ":7070",
		Token:   "cli-token",
		Secret:  "cli-secret",
		Domains: "a.com,b.com",
	}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)

	listen, _ := cfg.GetServerConfig()
	assert.Equal(t, ":7070", listen, "CLI listen wins over config file")
	assert.Equal(t, "cli-token", cfg.BotToken())
	assert.Equal(t, "cli-secret", cfg.WebhookSecret())
	assert.Equal(t, []string{"a.com", "b.com"}, cfg.Domains())
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := loadConfig(Opts{})
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)
	assert.Equal(t, []string{"yourdomain.com"}, cfg.Domains(), "safe default allow-list")
}
