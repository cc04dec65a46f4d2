package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// DefaultListenAddress is used when no server configuration is provided.
// The relay carries no credentials of its own (SMTP settings travel with
// every request), so a config file is optional.
const DefaultListenAddress = ":8000"

type Server struct {
	ListenAddress  string   `yaml:"listenAddress"`
	TLSCertFile    string   `yaml:"tlsCertFile"`
	TLSKeyFile     string   `yaml:"tlsKeyFile"`
	TrustedProxies []string `yaml:"trustedProxies"` // IPs/CIDRs to trust for X-Forwarded-For headers
}

// CORS controls cross-origin access. The relay is deliberately open to any
// caller; keeping this in configuration makes that decision visible and
// reversible without a code change.
type CORS struct {
	// AllowAll permits any origin, method, and header. Defaults to true.
	AllowAll *bool `yaml:"allowAll"`
}

func (c CORS) AllowAllOrigins() bool {
	if c.AllowAll == nil {
		return true
	}
	return *c.AllowAll
}

// Audit configures the optional Kafka audit trail. Auditing is disabled
// unless at least one broker is configured.
type Audit struct {
	Brokers        []string `yaml:"brokers"`
	Topic          string   `yaml:"topic"`
	WriteTimeoutMs int      `yaml:"writeTimeoutMs"`

	TLS  AuditTLS  `yaml:"tls"`
	SASL AuditSASL `yaml:"sasl"`
}

// WriteTimeout returns the configured Kafka write timeout.
func (a Audit) WriteTimeout() time.Duration {
	return time.Duration(a.WriteTimeoutMs) * time.Millisecond
}

func (a Audit) Enabled() bool {
	return len(a.Brokers) > 0
}

type AuditTLS struct {
	Enabled            bool   `yaml:"enabled"`
	CACertFile         string `yaml:"caCertFile"`
	InsecureSkipVerify bool   `yaml:"insecureSkipVerify"`
}

type AuditSASL struct {
	// Mechanism is "PLAIN", "SCRAM-SHA-256", or "SCRAM-SHA-512".
	Mechanism string `yaml:"mechanism"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
}

// Telemetry configures the optional OpenTelemetry tracer.
type Telemetry struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"` // "otlp" (default), "stdout", or "none"
	Endpoint     string  `yaml:"endpoint"`
	Insecure     bool    `yaml:"insecure"`
	SamplingRate float64 `yaml:"samplingRate"`
}

type Config struct {
	Server    Server    `yaml:"server"`
	CORS      CORS      `yaml:"cors"`
	Audit     Audit     `yaml:"audit"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Load loads the relay configuration from a file path. If configPath is
// empty, the MAILRELAY_CONFIG_PATH environment variable is consulted, then
// "./config.yaml". A missing default file is not an error and the relay
// runs on built-in defaults, but an explicitly requested file must exist.
func Load(configPath ...string) (Config, error) {
	var path string
	explicit := false

	if len(configPath) > 0 && configPath[0] != "" {
		path = configPath[0]
		explicit = true
	} else if env := os.Getenv("MAILRELAY_CONFIG_PATH"); env != "" {
		path = env
		explicit = true
	} else {
		path = "./config.yaml"
	}

	var config Config

	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return withDefaults(config), nil
		}
		return config, fmt.Errorf("trying to open mail relay config file %s: %v", path, err)
	}

	if err := yaml.Unmarshal(content, &config); err != nil {
		return config, fmt.Errorf("error unmarshaling YAML %s: %v", path, err)
	}
	return withDefaults(config), nil
}

func withDefaults(config Config) Config {
	if config.Server.ListenAddress == "" {
		config.Server.ListenAddress = DefaultListenAddress
	}
	if config.Audit.Topic == "" {
		config.Audit.Topic = "mailrelay.audit"
	}
	if config.Audit.WriteTimeoutMs <= 0 {
		config.Audit.WriteTimeoutMs = 10000
	}
	return config
}
