/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/asgardeo/emprest/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname          string `yaml:"hostname"`
	Port              int    `yaml:"port" validate:"required,min=1,max=65535"`
	HTTPOnly          bool   `yaml:"http_only"`
	ReadHeaderTimeout int    `yaml:"read_header_timeout" validate:"min=0"`
	WriteTimeout      int    `yaml:"write_timeout" validate:"min=0"`
	IdleTimeout       int    `yaml:"idle_timeout" validate:"min=0"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type" validate:"required,oneof=sqlite postgres pgx mysql"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port" validate:"min=0,max=65535"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path" validate:"required_if=Type sqlite"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `yaml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" validate:"min=0"`
	InitSchema      bool   `yaml:"init_schema"`
	SeedData        bool   `yaml:"seed_data"`
}

// DatabaseConfig holds the connection details of the two employee datasources.
type DatabaseConfig struct {
	Type2 DataSource `yaml:"type2"`
	Type4 DataSource `yaml:"type4"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	Database DatabaseConfig `yaml:"database"`
}

// LoadConfig loads the configurations from the specified YAML file.
// Environment variable references such as ${DB_PASSWORD} are expanded before decoding.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), &cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFile loads environment variables from the given file. Variables that are already set
// in the process environment are not overridden. A missing file is not an error.
func LoadEnvFile(path string) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.GetLogger().Debug("No environment file found", log.String("path", path))
			return nil
		}
		return err
	}

	return godotenv.Load(path)
}

// validateConfig validates the decoded configuration.
func validateConfig(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !cfg.Server.HTTPOnly && (cfg.Security.CertFile == "" || cfg.Security.KeyFile == "") {
		return errors.New("invalid configuration: security.cert_file and security.key_file are " +
			"required unless server.http_only is set")
	}
	return nil
}
