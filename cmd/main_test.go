package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/neko-list/internal/config"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "default", args: []string{"cmd"}, expected: "config.env"},
		{name: "custom", args: []string{"cmd", "-c", "myconfig.env"}, expected: "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.expected, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

// loadTestConfig points the service at a temporary SQLite file and free ports.
func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "0")
	t.Setenv("APP_LOG_LEVEL", "error")
	t.Setenv("APP_SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "data", "neko.db"))

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	return cfg
}

func runUntilCanceled(t *testing.T, cfg *config.Config) error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg) }()

	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("run did not stop after cancel")
		return nil
	}
}

func TestRun_SQLiteGracefulShutdown(t *testing.T) {
	cfg := loadTestConfig(t)
	assert.NoError(t, runUntilCanceled(t, cfg))
	assert.FileExists(t, cfg.SQLitePath)
}

func TestRun_WithRedisAndGRPC(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())
	t.Setenv("GRPC_PORT", "0")

	cfg := loadTestConfig(t)
	assert.NoError(t, runUntilCanceled(t, cfg))
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name string
		mutate func(cfg *config.Config)
	}{
		{name: "bad log level", mutate: func(cfg *config.Config) { cfg.LogLevel = "loud" }},
		{name: "unknown hasher", mutate: func(cfg *config.Config) { cfg.PasswordHasher = "md5" }},
		{name: "redis unreachable", mutate: func(cfg *config.Config) { cfg.RedisAddr = "127.0.0.1:1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t)
			tt.mutate(cfg)
			assert.Error(t, run(context.Background(), cfg))
		})
	}
}
