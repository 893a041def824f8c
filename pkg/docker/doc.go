// Package docker runs disposable ClickHouse servers through testcontainers.
//
// It backs the integration tests of the clickhouse dialect, which exercise
// Schema and Table against a real server instead of a mocked driver:
//
//	c := docker.New(docker.Options{})
//	if err := c.Start(ctx); err != nil {
//		t.Fatal(err)
//	}
//	defer func() { _ = c.Stop(ctx) }()
//
//	dsn, err := c.DSN(ctx)
//	db, err := database.Open(ctx, "clickhouse", database.Options{DSN: dsn}, nil)
//
// Docker must be available; tests should skip otherwise (see SkipIfNoDocker).
package docker
