package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultImage is the ClickHouse image used when no version is given.
	DefaultImage = "clickhouse/clickhouse-server"

	// DefaultVersion is the image tag used when no version is given.
	DefaultVersion = "25.7"
)

type (
	// Options configure the ClickHouse container.
	Options struct {
		// Version is the image tag to run. Defaults to DefaultVersion.
		Version string
	}

	// Container runs a disposable ClickHouse server for integration tests of
	// the clickhouse dialect.
	Container struct {
		options   Options
		container *clickhouse.ClickHouseContainer
	}
)

// New creates a container with the given options. Nothing runs until Start.
//
// Example:
//
//	c := docker.New(docker.Options{Version: "25.7"})
//	if err := c.Start(ctx); err != nil {
//		t.Fatal(err)
//	}
//	defer c.Stop(ctx)
//
//	dsn, err := c.DSN(ctx)
func New(opts Options) *Container {
	return &Container{options: opts}
}

// Start starts ClickHouse and waits until its HTTP interface answers.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	version := c.options.Version
	if version == "" {
		version = DefaultVersion
	}

	container, err := clickhouse.Run(ctx,
		fmt.Sprintf("%s:%s-alpine", DefaultImage, version),
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(""),
		testcontainers.WithEnv(map[string]string{"CLICKHOUSE_DEFAULT_ACCESS_MANAGEMENT": "1"}),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.
				NewHTTPStrategy("/").
				WithPort(nat.Port("8123/tcp")).
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start ClickHouse container")
	}

	c.container = container
	return nil
}

// Stop terminates and removes the container. Stopping a stopped container is
// a no-op.
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop ClickHouse container")
	}

	return nil
}

// DSN returns a native protocol DSN for the running server.
func (c *Container) DSN(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	dsn, err := c.container.ConnectionString(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return dsn, nil
}

// IsRunning returns true if the container is currently running.
func (c *Container) IsRunning() bool {
	return c.container != nil
}
