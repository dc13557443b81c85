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

// Package main is the entry point for starting the employee REST server.
package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/asgardeo/emprest/internal/system/cert"
	"github.com/asgardeo/emprest/internal/system/config"
	serverconst "github.com/asgardeo/emprest/internal/system/constants"
	"github.com/asgardeo/emprest/internal/system/log"
)

// Timeouts applied when the configuration leaves them unset.
const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultWriteTimeout      = 10 * time.Second
	defaultIdleTimeout       = 120 * time.Second
)

func main() {
	serverHome, homeErr := getServerHome()

	// The .env file may carry LOG_LEVEL, so it is loaded before the logger is created.
	envErr := config.LoadEnvFile(path.Join(serverHome, serverconst.EnvFileName))

	logger := log.GetLogger()
	defer logger.Sync()

	if homeErr != nil {
		logger.Fatal("Failed to get current working directory", log.Error(homeErr))
	}
	if envErr != nil {
		logger.Fatal("Failed to load environment file", log.Error(envErr))
	}
	logger.Info("Using server home", log.String("serverHome", serverHome))

	cfg := initServerConfigurations(logger, serverHome)

	mux := http.NewServeMux()
	registerServices(mux)

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(logger, cfg, mux)
	} else {
		startTLSServer(logger, cfg, mux, serverHome)
	}
}

// getServerHome returns the server home directory from the command line, or the current
// working directory when the flag is not set.
func getServerHome() (string, error) {
	serverHomeFlag := flag.String("serverHome", "", "Path to the server home directory")
	flag.Parse()

	if *serverHomeFlag != "" {
		return *serverHomeFlag, nil
	}
	return os.Getwd()
}

// initServerConfigurations loads the deployment configuration and initializes the server runtime.
func initServerConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, serverconst.DeploymentConfigPath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, serverHome string) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	tlsConfig, err := cert.GetTLSConfig(cfg.Security, serverHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}

	logger.Info("Employee REST server started (HTTPS)...", log.String("address", serverAddr))

	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	logger.Info("Employee REST server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	// Wrap the multiplexer with AccessLogHandler.
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: secondsOrDefault(cfg.Server.ReadHeaderTimeout, defaultReadHeaderTimeout),
		WriteTimeout:      secondsOrDefault(cfg.Server.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:       secondsOrDefault(cfg.Server.IdleTimeout, defaultIdleTimeout),
	}

	return server, serverAddr
}

func secondsOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
