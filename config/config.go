// Package config holds the plain-struct configuration for the
// service and client binaries, loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServiceConfig configures the service-side binary.
type ServiceConfig struct {
	InstanceName   string `yaml:"instanceName"`
	ListenAddr     string `yaml:"listenAddr"`
	Verbose        bool   `yaml:"verbose"`
	MetricsAddr    string `yaml:"metricsAddr"`
	TraceCollector string `yaml:"traceCollector"`
}

// DefaultServiceConfig returns the service config a freshly installed
// host would start from.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		ListenAddr:  "0.0.0.0:51000",
		MetricsAddr: "127.0.0.1:9100",
	}
}

// ClientConfig configures the client-side binary.
type ClientConfig struct {
	InstanceName string `yaml:"instanceName"`
	ServiceAddr  string `yaml:"serviceAddr"`
	Verbose      bool   `yaml:"verbose"`
}

// DefaultClientConfig returns the client config a freshly installed
// host would start from.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		ServiceAddr: "127.0.0.1:51000",
	}
}

// LoadServiceConfig reads and parses a ServiceConfig from path,
// starting from DefaultServiceConfig so unset fields keep their
// defaults.
func LoadServiceConfig(path string) (ServiceConfig, error) {
	cfg := DefaultServiceConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadClientConfig reads and parses a ClientConfig from path,
// starting from DefaultClientConfig so unset fields keep their
// defaults.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
