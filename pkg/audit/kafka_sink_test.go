package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bookline/mail-relay/pkg/config"
)

func TestNewKafkaSink_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Audit
		wantErr string
	}{
		{
			name:    "no brokers",
			cfg:     config.Audit{Topic: "mail.audit"},
			wantErr: "broker",
		},
		{
			name:    "no topic",
			cfg:     config.Audit{Brokers: []string{"kafka:9092"}},
			wantErr: "topic",
		},
		{
			name: "unsupported SASL mechanism",
			cfg: config.Audit{
				Brokers: []string{"kafka:9092"},
				Topic:   "mail.audit",
				SASL:    config.AuditSASL{Mechanism: "GSSAPI"},
			},
			wantErr: "SASL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKafkaSink(tt.cfg, zaptest.NewLogger(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewKafkaSink_Valid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Audit
	}{
		{
			name: "plain broker list",
			cfg: config.Audit{
				Brokers: []string{"kafka-0:9092", "kafka-1:9092"},
				Topic:   "mail.audit",
			},
		},
		{
			name: "SASL PLAIN",
			cfg: config.Audit{
				Brokers: []string{"kafka:9092"},
				Topic:   "mail.audit",
				SASL:    config.AuditSASL{Mechanism: "PLAIN", Username: "relay", Password: "secret"},
			},
		},
		{
			name: "SASL SCRAM-SHA-512",
			cfg: config.Audit{
				Brokers: []string{"kafka:9092"},
				Topic:   "mail.audit",
				SASL:    config.AuditSASL{Mechanism: "SCRAM-SHA-512", Username: "relay", Password: "secret"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := NewKafkaSink(tt.cfg, zaptest.NewLogger(t))
			require.NoError(t, err)
			assert.Equal(t, "kafka", sink.Name())
			assert.NoError(t, sink.Close())
		})
	}
}

func TestBuildTLSConfig(t *testing.T) {
	t.Run("insecure skip verify", func(t *testing.T) {
		tlsConfig, err := buildTLSConfig(config.AuditTLS{Enabled: true, InsecureSkipVerify: true})
		require.NoError(t, err)
		assert.True(t, tlsConfig.InsecureSkipVerify)
	})

	t.Run("missing CA file", func(t *testing.T) {
		_, err := buildTLSConfig(config.AuditTLS{
			Enabled:    true,
			CACertFile: filepath.Join(t.TempDir(), "absent.pem"),
		})
		assert.Error(t, err)
	})

	t.Run("invalid CA file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ca.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))

		_, err := buildTLSConfig(config.AuditTLS{Enabled: true, CACertFile: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no valid certificates")
	})
}
