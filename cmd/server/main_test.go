package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/mukundan1989/baebyzleep/internal"
	"github.com/mukundan1989/baebyzleep/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func freeAddr(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.HTTPAddr = freeAddr(t)
	cfg.ShutdownTimeout = time.Second
	return cfg
}

func TestRun_ServesAndShutsDown(t *testing.T) {
	cfg := testConfig(t)
	logger := internal.NewZapLogger(zaptest.NewLogger(t).Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg, logger) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: time.Second}
	url := "http://" + cfg.HTTPAddr + "/healthz"
	var status int
	for i := 0; i < 30; i++ {
		resp, err := client.Get(url)
		if err == nil {
			status = resp.StatusCode
			resp.Body.Close()
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	assert.Equal(t, http.StatusOK, status)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := testConfig(t)
	cfg.HTTPAddr = l.Addr().String()
	logger := internal.NewZapLogger(zaptest.NewLogger(t).Sugar())

	err = Run(context.Background(), cfg, logger)
	assert.ErrorContains(t, err, "http server")
}

func TestServeCmd_RejectsArgs(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"serve", "extra"})

	assert.Error(t, root.Execute())
}

func TestServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--addr", ":9999", "-c", "custom.yaml"}))

	addr, err := cmd.Flags().GetString("addr")
	require.NoError(t, err)
	assert.Equal(t, ":9999", addr)
	cfgFile, err := cmd.Flags().GetString("config")
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", cfgFile)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: \":7001\"\n"), 0o644))

	t.Run("config flag reads that file", func(t *testing.T) {
		cmd := newServeCmd()
		require.NoError(t, cmd.ParseFlags([]string{"-c", path}))

		cfg, err := loadConfig(cmd, path)
		require.NoError(t, err)
		assert.Equal(t, ":7001", cfg.HTTPAddr)
	})

	t.Run("without flag the shared config is copied", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", path)
		cmd := newServeCmd()

		cfg, err := loadConfig(cmd, config.DefaultConfigFile)
		require.NoError(t, err)
		assert.Equal(t, ":7001", cfg.HTTPAddr)
		cfg.HTTPAddr = ":9999"

		again, err := loadConfig(cmd, config.DefaultConfigFile)
		require.NoError(t, err)
		assert.Equal(t, ":7001", again.HTTPAddr)
	})
}
