package clickhouse_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pseudomuto/caretaker/pkg/database"
	"github.com/pseudomuto/caretaker/pkg/database/clickhouse"
	"github.com/stretchr/testify/require"
)

// writeCerts generates a self-signed certificate and writes it as the cert and
// CA along with its key.
func writeCerts(t *testing.T) database.TLSOptions {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "caretaker test"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	opts := database.TLSOptions{
		CertFile: filepath.Join(dir, "tls.crt"),
		KeyFile:  filepath.Join(dir, "tls.key"),
		CAFile:   filepath.Join(dir, "ca.crt"),
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, os.WriteFile(opts.CertFile, certPEM, 0o600))
	require.NoError(t, os.WriteFile(opts.CAFile, certPEM, 0o600))
	require.NoError(t, os.WriteFile(opts.KeyFile, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))

	return opts
}

func TestTLSConfig(t *testing.T) {
	valid := writeCerts(t)

	notPEM := filepath.Join(t.TempDir(), "empty.crt")
	require.NoError(t, os.WriteFile(notPEM, []byte("not a certificate"), 0o600))

	tests := []struct {
		name   string
		mutate func(*database.TLSOptions)
		err    string
	}{
		{name: "valid configuration", mutate: func(*database.TLSOptions) {}},
		{
			name:   "missing key file setting",
			mutate: func(o *database.TLSOptions) { o.KeyFile = "" },
			err:    "TLS requires",
		},
		{
			name:   "invalid cert file",
			mutate: func(o *database.TLSOptions) { o.CertFile = "bogus.crt" },
			err:    "unable to load cert file/key file",
		},
		{
			name:   "invalid key file",
			mutate: func(o *database.TLSOptions) { o.KeyFile = "bogus.key" },
			err:    "unable to load cert file/key file",
		},
		{
			name:   "invalid CA file",
			mutate: func(o *database.TLSOptions) { o.CAFile = "bogus.crt" },
			err:    "unable to load CA file",
		},
		{
			name:   "CA file without certificates",
			mutate: func(o *database.TLSOptions) { o.CAFile = notPEM },
			err:    "no certificates found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)

			cfg, err := clickhouse.TLSConfig(opts)
			if tt.err != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.err)
				require.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.Len(t, cfg.Certificates, 1)
			require.NotNil(t, cfg.RootCAs)
			require.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
		})
	}
}

func TestOpen_WithTLS(t *testing.T) {
	db, err := clickhouse.Open(database.Options{DSN: "localhost:9440", TLS: writeCerts(t)})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = clickhouse.Open(database.Options{
		DSN: "localhost:9440",
		TLS: database.TLSOptions{CAFile: "missing.crt"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "TLS requires")
}
