/*
 * Copyright (c) 2025, the KeyRelay project.
 *
 * The KeyRelay project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/keyrelay/keyrelay/internal/system/log"
	"github.com/keyrelay/keyrelay/internal/system/utils"
)

// Environment variables that override the corresponding YAML lists,
// given as comma separated values.
const (
	EnvAllowedAPIKeys     = "GATEWAY_ALLOWED_API_KEYS"
	EnvAllowedIPAddresses = "GATEWAY_ALLOWED_IP_ADDRESSES"
	EnvAllowedOrigins     = "GATEWAY_ALLOWED_ORIGINS"
)

const envListSeparator = ","

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// UpstreamConfig holds the connection details of the upstream identity provider.
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SecurityConfig holds the access gate configuration details.
type SecurityConfig struct {
	AllowedAPIKeys     []string `yaml:"allowed_api_keys"`
	AllowedIPAddresses []string `yaml:"allowed_ip_addresses"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Config holds the complete configuration details of the gateway.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Security SecurityConfig `yaml:"security"`
	CORS     CORSConfig     `yaml:"cors"`
}

// DefaultUpstreamTimeoutSeconds is used when the deployment does not set an outbound timeout.
const DefaultUpstreamTimeoutSeconds = 10

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Upstream.TimeoutSeconds <= 0 {
		cfg.Upstream.TimeoutSeconds = DefaultUpstreamTimeoutSeconds
	}
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides replaces the configured allow lists with the values of the
// corresponding environment variables when they are set.
func applyEnvOverrides(cfg *Config) {
	if value, ok := os.LookupEnv(EnvAllowedAPIKeys); ok {
		cfg.Security.AllowedAPIKeys = utils.ParseStringArray(value, envListSeparator)
	}
	if value, ok := os.LookupEnv(EnvAllowedIPAddresses); ok {
		cfg.Security.AllowedIPAddresses = utils.ParseStringArray(value, envListSeparator)
	}
	if value, ok := os.LookupEnv(EnvAllowedOrigins); ok {
		cfg.CORS.AllowedOrigins = utils.ParseStringArray(value, envListSeparator)
	}
}
