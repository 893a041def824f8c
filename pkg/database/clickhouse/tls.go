package clickhouse

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/caretaker/pkg/database"
)

// TLSConfig creates a TLS config for connecting to ClickHouse over mTLS.
//
// Example usage:
//
//	cfg, err := TLSConfig(database.TLSOptions{
//		CertFile: "tls.crt",
//		KeyFile:  "tls.key",
//		CAFile:   "ca.crt",
//	})
//	if err != nil {
//		return err
//	}
func TLSConfig(opts database.TLSOptions) (*tls.Config, error) {
	if opts.CertFile == "" || opts.KeyFile == "" || opts.CAFile == "" {
		return nil, errors.New("TLS requires a cert file, key file and CA file")
	}

	cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load cert file/key file")
	}

	caCert, err := os.ReadFile(opts.CAFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load CA file")
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return nil, errors.Errorf("no certificates found in %s", opts.CAFile)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
