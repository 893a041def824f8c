package docker_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pseudomuto/caretaker/pkg/docker"
	"github.com/stretchr/testify/require"
)

func TestContainer_NotRunning(t *testing.T) {
	c := docker.New(docker.Options{})
	require.False(t, c.IsRunning())
	require.NoError(t, c.Stop(context.Background()))

	_, err := c.DSN(context.Background())
	require.EqualError(t, err, "container is not running")
}

func TestContainer_StartStop(t *testing.T) {
	docker.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c := docker.New(docker.Options{})
	require.NoError(t, c.Start(ctx))
	defer func() { _ = c.Stop(ctx) }()

	require.True(t, c.IsRunning())
	require.EqualError(t, c.Start(ctx), "container is already running")

	dsn, err := c.DSN(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dsn, "clickhouse://"), dsn)

	require.NoError(t, c.Stop(ctx))
	require.False(t, c.IsRunning())
}
