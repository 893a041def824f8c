package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/consts"
	"github.com/pseudomuto/caretaker/pkg/database"
	"gopkg.in/yaml.v3"
)

type (
	// Database holds the connection settings for the target database.
	Database struct {
		// Dialect names the registered engine, e.g. "spanner" or "clickhouse".
		Dialect string `yaml:"dialect"`

		// DSN is the engine-specific connection string
		DSN string `yaml:"dsn"`

		// Cluster distributes ClickHouse DDL with ON CLUSTER. Ignored by Spanner.
		Cluster string `yaml:"cluster,omitempty"`

		// TLS enables mutual TLS for ClickHouse connections
		TLS *TLS `yaml:"tls,omitempty"`
	}

	// TLS locates the PEM files used for mutual TLS.
	TLS struct {
		CertFile string `yaml:"cert_file"`
		KeyFile  string `yaml:"key_file"`
		CAFile   string `yaml:"ca_file"`
	}

	// Config represents the caretaker configuration file.
	Config struct {
		// Database contains the connection settings
		Database Database `yaml:"database"`

		// Schemas lists the schemas managed by caretaker, in the order they are
		// cleaned. The empty string is the connection's default schema.
		Schemas []string `yaml:"schemas"`

		// HistoryTable is the migration history table, locked during clean
		HistoryTable string `yaml:"history_table"`

		// CleanDisabled prevents clean from running unless forced
		CleanDisabled bool `yaml:"clean_disabled"`
	}
)

// Default returns the configuration used when a key is absent from the file.
func Default() *Config {
	return &Config{
		Database: Database{
			Dialect: consts.DefaultDialect,
		},
		Schemas:       []string{""},
		HistoryTable:  consts.DefaultHistoryTable,
		CleanDisabled: true,
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Keys missing from the document keep the values from Default, so clean stays
// disabled unless the file says otherwise.
//
// Example:
//
//	yamlData := `
//	database:
//	  dialect: spanner
//	  dsn: projects/p/instances/i/databases/d
//	clean_disabled: false
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Dialect: %s\n", cfg.Database.Dialect)
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Database.Dialect == "" {
		cfg.Database.Dialect = consts.DefaultDialect
	}
	if cfg.HistoryTable == "" {
		cfg.HistoryTable = consts.DefaultHistoryTable
	}
	if len(cfg.Schemas) == 0 {
		cfg.Schemas = []string{""}
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Write encodes the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	return errors.Wrap(enc.Close(), "failed to flush config")
}

// Options converts the connection settings for database.Open.
func (d Database) Options() database.Options {
	opts := database.Options{
		DSN:     d.DSN,
		Cluster: d.Cluster,
	}

	if d.TLS != nil {
		opts.TLS = database.TLSOptions{
			CertFile: d.TLS.CertFile,
			KeyFile:  d.TLS.KeyFile,
			CAFile:   d.TLS.CAFile,
		}
	}

	return opts
}
