package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varlife/config"
	"varlife/pkg/logger"
)

func testConfig(port int) config.Config {
	return config.Config{
		ServiceName:       "varlife-test",
		HTTPPort:          port,
		ShutdownTimeout:   time.Second,
		CatalogSource:     config.CatalogSourceMemory,
		VerificationDelay: time.Second,
		RedirectDelay:     time.Second,
		MatchingDelay:     time.Second,
		DriverReplyDelay:  time.Second,
		RecentRidesLimit:  5,
	}
}

func TestRunStopsWhenContextIsDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, testConfig(0), logger.NewNop()))
}

func TestRunRejectsUnknownCatalogSource(t *testing.T) {
	cfg := testConfig(0)
	cfg.CatalogSource = "redis"

	err := run(context.Background(), cfg, logger.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog storage")
}

func TestRunReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = run(ctx, testConfig(ln.Addr().(*net.TCPAddr).Port), logger.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
}
